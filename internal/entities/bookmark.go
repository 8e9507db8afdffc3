package entities

// Bookmark marks a verse by its 0-based position in the chapter's verse list.
// The JSON names are the persisted wire format.
type Bookmark struct {
	ChapterID  int `json:"surahId"`
	VerseIndex int `json:"ayahIndex"`
}
