package attendance

import (
	"time"

	"attendance-bot/model"
)

// InWindow reports whether now falls inside the guild's weekly attendance
// window, evaluated in the guild's fixed UTC offset. A nil window always
// admits. Both bounds are inclusive.
func InWindow(now time.Time, offsetMinutes int, w *model.AttendanceWindow) bool {
	if w == nil {
		return true
	}
	local := now.In(time.FixedZone("", offsetMinutes*60))
	if isoWeekday(local) != w.Day {
		return false
	}
	minute := local.Hour()*60 + local.Minute()
	return minute >= w.StartHour*60+w.StartMinute && minute <= w.EndHour*60+w.EndMinute
}

// LocalDate returns the calendar date of now under the guild's fixed UTC
// offset, formatted YYYY-MM-DD. This is the ledger's notion of "today".
func LocalDate(now time.Time, offsetMinutes int) string {
	return now.In(time.FixedZone("", offsetMinutes*60)).Format("2006-01-02")
}

// isoWeekday maps Go's Sunday=0 weekday to ISO Monday=1..Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
