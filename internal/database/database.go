package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"quran-tui/internal/dataset"
	"quran-tui/internal/entities"
	"quran-tui/internal/verse"
)

const verseBatchSize = 500

// Store holds the seeded chapters and verses.
type Store struct {
	DB  *gorm.DB
	log logrus.FieldLogger
}

// Open connects to the SQLite file at path and migrates every table.
func Open(path string, log *logrus.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.New(log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Chapter{}, &entities.Verse{}, &entities.KeyValue{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.WithField("path", path).Info("database opened")

	return &Store{DB: db, log: log}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Reset drops and recreates the chapter and verse tables.
func (s *Store) Reset(ctx context.Context) error {
	db := s.DB.WithContext(ctx)
	if err := db.Migrator().DropTable(&entities.Verse{}, &entities.Chapter{}); err != nil {
		return fmt.Errorf("failed to drop content tables: %w", err)
	}
	if err := db.AutoMigrate(&entities.Chapter{}, &entities.Verse{}); err != nil {
		return fmt.Errorf("failed to recreate content tables: %w", err)
	}
	s.log.Info("content tables reset")
	return nil
}

// Seed inserts every chapter and verse that is not already present. Verse
// ids are chapter*1000+number and the first verse of a chapter carries the
// invocation. Seeding the same dataset twice changes nothing.
func (s *Store) Seed(ctx context.Context, chapters []dataset.Chapter) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range chapters {
			chapter := entities.Chapter{
				ID:              c.ID,
				Name:            c.Name,
				Transliteration: c.Transliteration,
				Type:            c.Type,
				TotalVerses:     c.TotalVerses,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&chapter).Error; err != nil {
				return fmt.Errorf("failed to insert chapter %d: %w", c.ID, err)
			}

			if len(c.Verses) == 0 {
				continue
			}
			verses := make([]entities.Verse, 0, len(c.Verses))
			for _, v := range c.Verses {
				verses = append(verses, entities.Verse{
					ID:        entities.VerseID(c.ID, v.ID),
					ChapterID: c.ID,
					Text:      verse.EnsureInvocation(c.ID, v.ID, v.Text),
				})
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&verses, verseBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert verses of chapter %d: %w", c.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.WithField("chapters", len(chapters)).Info("content seeded")
	return nil
}

// ListChapters returns every chapter in canonical order.
func (s *Store) ListChapters(ctx context.Context) ([]entities.Chapter, error) {
	var chapters []entities.Chapter
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&chapters).Error; err != nil {
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}
	return chapters, nil
}

// ListVerses returns the verses of a chapter in verse order.
func (s *Store) ListVerses(ctx context.Context, chapterID int) ([]entities.Verse, error) {
	var verses []entities.Verse
	err := s.DB.WithContext(ctx).
		Where("chapter_id = ?", chapterID).
		Order("id ASC").
		Find(&verses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list verses of chapter %d: %w", chapterID, err)
	}
	return verses, nil
}

// CountVerses returns the number of seeded verses.
func (s *Store) CountVerses(ctx context.Context) (int64, error) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&entities.Verse{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count verses: %w", err)
	}
	return n, nil
}
