package calculator

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// ErrDateOutOfRange is returned for dates whose UTC midnight does not fit in
// int64 nanoseconds (before 1677-09-22 or after 2262-04-11).
var ErrDateOutOfRange = errors.New("date outside the representable range")

var (
	minEpochDate = time.Unix(0, math.MinInt64).UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	maxEpochDate = time.Unix(0, math.MaxInt64).UTC().Truncate(24 * time.Hour)
)

// DateToEpoch interprets a YYYY-MM-DD date as UTC midnight and returns
// nanoseconds since the Unix epoch, at millisecond precision.
func DateToEpoch(date string) (int64, error) {
	t, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if t.Before(minEpochDate) || t.After(maxEpochDate) {
		return 0, fmt.Errorf("date %q: %w", date, ErrDateOutOfRange)
	}
	return t.UnixMilli() * int64(time.Millisecond), nil
}

// EpochToDate is the inverse of DateToEpoch.
func EpochToDate(epoch int64) string {
	return time.Unix(0, epoch).UTC().Format(dateLayout)
}

// ValidDate reports whether date is a real calendar date in YYYY-MM-DD form
// that DateToEpoch can represent.
func ValidDate(date string) bool {
	_, err := DateToEpoch(date)
	return err == nil
}

// ValidMonth reports whether month is in YYYY-MM form.
func ValidMonth(month string) bool {
	_, err := time.Parse(monthLayout, month)
	return err == nil
}

// Today returns the local current date as YYYY-MM-DD.
func Today() string {
	return DateString(time.Now())
}

// ThisMonth returns the local current month as YYYY-MM.
func ThisMonth() string {
	return time.Now().Format(monthLayout)
}

// DateString formats t in its own location as YYYY-MM-DD.
func DateString(t time.Time) string {
	return t.Format(dateLayout)
}

// MonthOf returns the YYYY-MM prefix of a YYYY-MM-DD date.
func MonthOf(date string) string {
	if len(date) < len(monthLayout) {
		return date
	}
	return date[:len(monthLayout)]
}
