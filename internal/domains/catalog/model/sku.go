package model

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"
)

const (
	// AnyDaySKU marks variants bookable on any operating day. They carry a
	// placeholder date and always sort after dated entries.
	AnyDaySKU = "ANYDAY"

	// NoStartHour marks slots whose SKU carries no hour suffix.
	NoStartHour = -1

	dateKeyLength   = 6
	datedSKULength  = 8
	dateKeyBaseYear = 2000
)

var dateKeyPattern = regexp.MustCompile(`^\d{6}`)

// AnyDayPlaceholder is the fixed display-ordering date for ANYDAY slots. It is
// not a real calendar date and must never feed pricing.
var AnyDayPlaceholder = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// DateKeyFromSKU extracts the MMDDYY prefix of a SKU. Returns false for SKUs
// shorter than six characters or with a non-numeric prefix; such variants are
// excluded from the availability index without error.
func DateKeyFromSKU(sku string) (string, bool) {
	if !dateKeyPattern.MatchString(sku) {
		return "", false
	}

	return sku[:dateKeyLength], true
}

// ParseDateKey decodes a MMDDYY key into a calendar date in the 2000s.
func ParseDateKey(key string) (time.Time, error) {
	if len(key) != dateKeyLength || !dateKeyPattern.MatchString(key) {
		return time.Time{}, fmt.Errorf("invalid date key %q", key)
	}

	month, _ := strconv.Atoi(key[0:2])
	day, _ := strconv.Atoi(key[2:4])
	year, _ := strconv.Atoi(key[4:6])

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("date key %q out of range", key)
	}

	return time.Date(dateKeyBaseYear+year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// FormatDateKey re-encodes a date into its MMDDYY key form.
func FormatDateKey(t time.Time) string {
	return fmt.Sprintf("%02d%02d%02d", int(t.Month()), t.Day(), t.Year()%100)
}

// StartHourFromSKU reads the trailing two digits of an 8-character SKU as the
// slot's start hour. Shorter SKUs have no hour.
func StartHourFromSKU(sku string) (int, bool) {
	if len(sku) < datedSKULength || !dateKeyPattern.MatchString(sku) {
		return 0, false
	}

	hour, err := strconv.Atoi(sku[dateKeyLength:datedSKULength])
	if err != nil {
		return 0, false
	}

	return hour, true
}

// IsWinter reports whether a date falls in the park's winter season, October
// through February. Winter selects the discounted room rates.
func IsWinter(t time.Time) bool {
	switch t.Month() {
	case time.October, time.November, time.December, time.January, time.February:
		return true
	default:
		return false
	}
}

// SortDateKeys orders keys chronologically with the ANYDAY sentinel always
// last, regardless of its placeholder date value. Undecodable keys sort after
// dated ones but before ANYDAY.
func SortDateKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		return dateKeyRank(keys[i]).Before(dateKeyRank(keys[j]))
	})
}

func dateKeyRank(key string) time.Time {
	if key == AnyDaySKU {
		return AnyDayPlaceholder
	}

	date, err := ParseDateKey(key)
	if err != nil {
		return AnyDayPlaceholder.Add(-time.Hour)
	}

	return date
}
