package config

const (
	// DefaultDatabasePath is where chapters, verses and bookmarks live
	DefaultDatabasePath = "./quran.db"

	// DefaultLogFile receives all diagnostics; the terminal belongs to the UI
	DefaultLogFile = "./quran-tui.log"

	DefaultTheme = "midnight"

	// EnvPrefix namespaces every environment variable, e.g. QURAN_DATABASE_PATH
	EnvPrefix = "QURAN"
)
