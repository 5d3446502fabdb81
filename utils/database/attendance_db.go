package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"attendance-bot/model"
)

// AttendanceStore persists the one-record-per-(guild,user) attendance ledger.
type AttendanceStore struct {
	db *sqlx.DB
}

func NewAttendanceStore(db *sqlx.DB) *AttendanceStore {
	return &AttendanceStore{db: db}
}

// GetRecord returns the live record for the pair, or nil when none exists.
func (s *AttendanceStore) GetRecord(guildID, userID int64) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := s.db.Get(&rec, "SELECT * FROM attendances WHERE guild_id = ? AND user_id = ?", guildID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance record for guild %d user %d: %w", guildID, userID, err)
	}
	return &rec, nil
}

// PutRecord creates or overwrites the pair's record with the given date and
// endpoint.
func (s *AttendanceStore) PutRecord(guildID, userID int64, markedDate, formURL string) error {
	query := `INSERT INTO attendances (guild_id, user_id, marked_date, form_url) VALUES (?, ?, ?, ?)
	          ON CONFLICT(guild_id, user_id) DO UPDATE SET marked_date = excluded.marked_date, form_url = excluded.form_url`
	if _, err := s.db.Exec(query, guildID, userID, markedDate, formURL); err != nil {
		return fmt.Errorf("failed to put attendance record for guild %d user %d: %w", guildID, userID, err)
	}
	return nil
}

// CountRecords returns the total number of attendance records.
func (s *AttendanceStore) CountRecords() (int64, error) {
	var count int64
	if err := s.db.Get(&count, "SELECT COUNT(*) FROM attendances"); err != nil {
		return 0, fmt.Errorf("failed to count attendance records: %w", err)
	}
	return count, nil
}
