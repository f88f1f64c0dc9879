package store

import (
	"encoding/json"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// documentRow is the single table backing GormStore: one row per collection,
// with the serialized JSON document as its body.
type documentRow struct {
	Name string `gorm:"primaryKey;type:varchar(100)"`
	Body string
}

func (documentRow) TableName() string {
	return "documents"
}

// GormStore keeps collection documents in a relational database, so the file
// backend can be swapped for a transactional one without touching handler
// logic.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

// NewGormStore wraps an open GORM connection and migrates the documents
// table.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate documents table: %w", err)
	}
	return &GormStore{db: db}, nil
}

// NewSQLiteStore opens (or creates) a SQLite-backed store at path.
func NewSQLiteStore(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	return NewGormStore(db)
}

// NewPostgresStore connects to PostgreSQL with the given DSN.
func NewPostgresStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return NewGormStore(db)
}

// Load reads the collection document. A missing row is not an error: the
// collection is simply empty.
func (s *GormStore) Load(name string) (Document, error) {
	var row documentRow
	if err := s.db.First(&row, "name = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return Document{}, nil
		}
		return nil, fmt.Errorf("failed to load collection %s: %w", name, err)
	}
	var doc Document
	if err := json.Unmarshal([]byte(row.Body), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", name, err)
	}
	return doc, nil
}

// Save upserts the full document under its collection name.
func (s *GormStore) Save(name string, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}
	row := documentRow{Name: name, Body: string(raw)}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to save collection %s: %w", name, err)
	}
	return nil
}
