package model

import "fmt"

// DefaultOffsetMinutes is used when a guild has not configured a timezone
// offset (UTC+7, Jakarta).
const DefaultOffsetMinutes = 7 * 60

// AttendanceWindow is the recurring weekly interval during which members may
// mark attendance. Day is ISO-style: 1=Monday .. 7=Sunday.
type AttendanceWindow struct {
	Day         int `db:"day"`
	StartHour   int `db:"start_hour"`
	StartMinute int `db:"start_minute"`
	EndHour     int `db:"end_hour"`
	EndMinute   int `db:"end_minute"`
}

// Validate checks field ranges and that the window start is strictly before
// its end. A window is persisted only if this passes.
func (w AttendanceWindow) Validate() error {
	if w.Day < 1 || w.Day > 7 {
		return fmt.Errorf("day must be between 1 and 7, got %d", w.Day)
	}
	if w.StartHour < 0 || w.StartHour > 23 || w.EndHour < 0 || w.EndHour > 23 {
		return fmt.Errorf("hours must be 0-23")
	}
	if w.StartMinute < 0 || w.StartMinute > 59 || w.EndMinute < 0 || w.EndMinute > 59 {
		return fmt.Errorf("minutes must be 0-59")
	}
	if w.StartHour*60+w.StartMinute >= w.EndHour*60+w.EndMinute {
		return fmt.Errorf("end time must be after start time")
	}
	return nil
}

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayName returns the English name for an ISO weekday number.
func WeekdayName(day int) string {
	if day < 1 || day > 7 {
		return fmt.Sprintf("Day %d", day)
	}
	return weekdayNames[day-1]
}

// GuildConfig is the per-guild attendance configuration. FormURL is the
// canonical form base and EntryID the bare field identifier; both are empty
// until an administrator configures a form, and always set together.
type GuildConfig struct {
	GuildID int64
	FormURL string
	EntryID string
	Window  *AttendanceWindow
}

// FormConfigured reports whether the guild has a usable form target.
func (c *GuildConfig) FormConfigured() bool {
	return c != nil && c.FormURL != "" && c.EntryID != ""
}
