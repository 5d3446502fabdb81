package model

// AttendanceRecord tracks the last day a user marked attendance in a guild.
// At most one record exists per (guild, user) pair; re-marking on a later day
// overwrites it.
type AttendanceRecord struct {
	GuildID    int64  `db:"guild_id"`
	UserID     int64  `db:"user_id"`
	MarkedDate string `db:"marked_date"` // guild-local calendar date, YYYY-MM-DD
	FormURL    string `db:"form_url"`
}
