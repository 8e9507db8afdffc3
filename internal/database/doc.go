// Package database is the content store: chapters and verses in SQLite,
// seeded from the bundled dataset and read-only afterwards.
//
// The same connection also carries the key-value table used by package
// kvstore, so bookmarks share the database file but survive a reseed:
//
//	store, err := database.Open("./quran.db", logger)
//	store.Reset(ctx)                 // drops chapters and verses only
//	store.Seed(ctx, chapters)        // insert-if-absent, safe to repeat
//	kv := kvstore.New(store.DB)
package database
