// Package store keeps the search audit log. No customer data lands here:
// the document number is masked down to its last three digits before it is
// written.
package store

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Outcome codes for a search attempt.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeUpstream = "upstream_error"
)

// SearchLog is one tracking lookup attempt.
type SearchLog struct {
	ID         uint   `gorm:"primarykey"`
	MaskedKey  string `gorm:"index"`
	Outcome    string
	RequestID  string
	DurationMs int64
	CreatedAt  time.Time
}

// Store wraps the audit database.
type Store struct {
	Db *gorm.DB
}

// Open opens (and migrates) the sqlite audit database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&SearchLog{}); err != nil {
		return nil, err
	}
	return &Store{Db: db}, nil
}

// LogSearch records one attempt. Errors are returned for the caller to log;
// the search result never depends on this write.
func (s *Store) LogSearch(maskedKey, outcome, requestID string, duration time.Duration) error {
	entry := SearchLog{
		MaskedKey:  maskedKey,
		Outcome:    outcome,
		RequestID:  requestID,
		DurationMs: duration.Milliseconds(),
	}
	return s.Db.Create(&entry).Error
}

// Ping reports whether the audit database is reachable, for the health
// endpoint.
func (s *Store) Ping() error {
	sqlDB, err := s.Db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
