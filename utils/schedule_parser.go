package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"attendance-bot/model"
)

var scheduleRe = regexp.MustCompile(`^(\d|[A-Za-z]+)/(\d{1,2}):(\d{2})-(\d{1,2}):(\d{2})$`)

var weekdayNumbers = map[string]int{
	"monday": 1, "tuesday": 2, "wednesday": 3,
	"thursday": 4, "friday": 5, "saturday": 6, "sunday": 7,
}

// ParseSchedule parses a "<day>/<HH:MM>-<HH:MM>" schedule string into an
// attendance window. The day is either 1-7 (Monday=1) or a weekday name.
func ParseSchedule(s string) (*model.AttendanceWindow, error) {
	m := scheduleRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, fmt.Errorf("invalid format, use day/HH:MM-HH:MM, e.g. 3/14:30-15:30")
	}

	day, err := ParseWeekday(m[1])
	if err != nil {
		return nil, err
	}

	// Digits are guaranteed by the pattern.
	h1, _ := strconv.Atoi(m[2])
	m1, _ := strconv.Atoi(m[3])
	h2, _ := strconv.Atoi(m[4])
	m2, _ := strconv.Atoi(m[5])

	w := &model.AttendanceWindow{
		Day:         day,
		StartHour:   h1,
		StartMinute: m1,
		EndHour:     h2,
		EndMinute:   m2,
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// ParseWeekday accepts "1".."7" or an English weekday name.
func ParseWeekday(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 7 {
			return 0, fmt.Errorf("day number must be between 1 and 7")
		}
		return n, nil
	}
	if n, ok := weekdayNumbers[strings.ToLower(s)]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("day must be 1-7 or a weekday name (e.g. Monday)")
}
