package entities

// Chapter is a surah. ID is the canonical 1-based ordering and is never
// auto-assigned.
type Chapter struct {
	ID              int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name            string `json:"name"`
	Transliteration string `json:"transliteration"`
	Type            string `json:"type"`
	TotalVerses     int    `json:"total_verses"`
}

func (Chapter) TableName() string {
	return "chapters"
}

// VerseIDStride separates chapters in the verse id space: id = chapter*stride + number.
const VerseIDStride = 1000

// Verse is an ayah.
type Verse struct {
	ID        int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ChapterID int    `gorm:"index;not null" json:"chapter_id"`
	Text      string `gorm:"type:text" json:"text"`
}

func (Verse) TableName() string {
	return "verses"
}

// VerseID builds the globally unique id of a verse.
func VerseID(chapterID, number int) int {
	return chapterID*VerseIDStride + number
}

// Number returns the 1-based verse number within its chapter.
func (v Verse) Number() int {
	return v.ID % VerseIDStride
}
