package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"attendance-bot/model"
)

// GuildStore persists per-guild attendance configuration: form target,
// weekly window and timezone offset.
type GuildStore struct {
	db *sqlx.DB
}

func NewGuildStore(db *sqlx.DB) *GuildStore {
	return &GuildStore{db: db}
}

type guildRow struct {
	GuildID     int64          `db:"guild_id"`
	FormURL     sql.NullString `db:"form_url"`
	EntryID     sql.NullString `db:"entry_id"`
	Day         sql.NullInt64  `db:"day"`
	StartHour   sql.NullInt64  `db:"start_hour"`
	StartMinute sql.NullInt64  `db:"start_minute"`
	EndHour     sql.NullInt64  `db:"end_hour"`
	EndMinute   sql.NullInt64  `db:"end_minute"`
}

// GetConfig returns the guild's configuration. A guild with no row yet gets
// an empty config, never nil.
func (s *GuildStore) GetConfig(guildID int64) (*model.GuildConfig, error) {
	var row guildRow
	err := s.db.Get(&row, "SELECT * FROM guilds WHERE guild_id = ?", guildID)
	if errors.Is(err, sql.ErrNoRows) {
		return &model.GuildConfig{GuildID: guildID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get config for guild %d: %w", guildID, err)
	}

	cfg := &model.GuildConfig{
		GuildID: row.GuildID,
		FormURL: row.FormURL.String,
		EntryID: row.EntryID.String,
	}
	if row.Day.Valid {
		cfg.Window = &model.AttendanceWindow{
			Day:         int(row.Day.Int64),
			StartHour:   int(row.StartHour.Int64),
			StartMinute: int(row.StartMinute.Int64),
			EndHour:     int(row.EndHour.Int64),
			EndMinute:   int(row.EndMinute.Int64),
		}
	}
	return cfg, nil
}

// UpsertForm stores the form endpoint and field id together; they are only
// ever written as a pair.
func (s *GuildStore) UpsertForm(guildID int64, formURL, entryID string) error {
	query := `INSERT INTO guilds (guild_id, form_url, entry_id) VALUES (?, ?, ?)
	          ON CONFLICT(guild_id) DO UPDATE SET form_url = excluded.form_url, entry_id = excluded.entry_id`
	if _, err := s.db.Exec(query, guildID, formURL, entryID); err != nil {
		return fmt.Errorf("failed to upsert form for guild %d: %w", guildID, err)
	}
	return nil
}

// DeleteForm clears the form configuration and removes the guild's
// attendance records, which are owned by it.
func (s *GuildStore) DeleteForm(guildID int64) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE guilds SET form_url = NULL, entry_id = NULL WHERE guild_id = ?", guildID); err != nil {
		return fmt.Errorf("failed to clear form for guild %d: %w", guildID, err)
	}
	if _, err := tx.Exec("DELETE FROM attendances WHERE guild_id = ?", guildID); err != nil {
		return fmt.Errorf("failed to clear attendance records for guild %d: %w", guildID, err)
	}
	return tx.Commit()
}

// UpsertWindow stores the weekly window as one unit.
func (s *GuildStore) UpsertWindow(guildID int64, w model.AttendanceWindow) error {
	query := `INSERT INTO guilds (guild_id, day, start_hour, start_minute, end_hour, end_minute)
	          VALUES (?, ?, ?, ?, ?, ?)
	          ON CONFLICT(guild_id) DO UPDATE SET
	              day = excluded.day,
	              start_hour = excluded.start_hour,
	              start_minute = excluded.start_minute,
	              end_hour = excluded.end_hour,
	              end_minute = excluded.end_minute`
	if _, err := s.db.Exec(query, guildID, w.Day, w.StartHour, w.StartMinute, w.EndHour, w.EndMinute); err != nil {
		return fmt.Errorf("failed to upsert window for guild %d: %w", guildID, err)
	}
	return nil
}

// GetWindow returns the guild's window, or nil when none is configured.
func (s *GuildStore) GetWindow(guildID int64) (*model.AttendanceWindow, error) {
	cfg, err := s.GetConfig(guildID)
	if err != nil {
		return nil, err
	}
	return cfg.Window, nil
}

// DeleteWindow nulls all window fields simultaneously, so no partial window
// can persist.
func (s *GuildStore) DeleteWindow(guildID int64) error {
	query := `UPDATE guilds SET day = NULL, start_hour = NULL, start_minute = NULL, end_hour = NULL, end_minute = NULL
	          WHERE guild_id = ?`
	if _, err := s.db.Exec(query, guildID); err != nil {
		return fmt.Errorf("failed to delete window for guild %d: %w", guildID, err)
	}
	return nil
}

// GetOffsetMinutes returns the guild's UTC offset in minutes. The second
// return is false when no offset has been configured.
func (s *GuildStore) GetOffsetMinutes(guildID int64) (int, bool, error) {
	var offset int
	err := s.db.Get(&offset, "SELECT offset_minutes FROM timezones WHERE guild_id = ?", guildID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get offset for guild %d: %w", guildID, err)
	}
	return offset, true, nil
}

// SetOffsetMinutes stores the guild's UTC offset.
func (s *GuildStore) SetOffsetMinutes(guildID int64, minutes int) error {
	query := `INSERT INTO timezones (guild_id, offset_minutes) VALUES (?, ?)
	          ON CONFLICT(guild_id) DO UPDATE SET offset_minutes = excluded.offset_minutes`
	if _, err := s.db.Exec(query, guildID, minutes); err != nil {
		return fmt.Errorf("failed to set offset for guild %d: %w", guildID, err)
	}
	return nil
}
