package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DaySchedule is a day's operating window in structured 24-hour values. Hours
// text is parsed once when configuration loads; nothing downstream ever
// re-parses free text.
type DaySchedule struct {
	Label     string `json:"label"`
	OpenHour  int    `json:"open_hour"`
	CloseHour int    `json:"close_hour"`
}

var clockPattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)

// ParseHours converts an hours string like "11am - 7pm" or "11:30am-7:30pm"
// into a structured schedule. Minutes are accepted but dropped; the park's
// pricing windows are whole hours.
func ParseHours(text string) (DaySchedule, error) {
	matches := clockPattern.FindAllStringSubmatch(text, -1)
	if len(matches) < 2 {
		return DaySchedule{}, fmt.Errorf("hours text %q does not contain an open and close time", text)
	}

	open, err := to24Hour(matches[0])
	if err != nil {
		return DaySchedule{}, err
	}

	closing, err := to24Hour(matches[1])
	if err != nil {
		return DaySchedule{}, err
	}

	if closing <= open {
		return DaySchedule{}, fmt.Errorf("hours text %q closes before it opens", text)
	}

	return DaySchedule{
		Label:     strings.TrimSpace(text),
		OpenHour:  open,
		CloseHour: closing,
	}, nil
}

func to24Hour(match []string) (int, error) {
	hour, err := strconv.Atoi(match[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("invalid clock hour %q", match[1])
	}

	meridiem := strings.ToLower(match[3])

	// 12am is midnight, 12pm stays noon.
	if hour == 12 {
		hour = 0
	}

	if meridiem == "pm" {
		hour += 12
	}

	return hour, nil
}

// IsWeekend reports whether the date falls on the park's weekend schedule.
func IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
