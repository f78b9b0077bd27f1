package calculator

import (
	"errors"
	"testing"
	"time"
)

func TestDateToEpoch(t *testing.T) {
	got, err := DateToEpoch("2025-01-01")
	if err != nil {
		t.Fatalf("DateToEpoch failed: %v", err)
	}

	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli() * 1_000_000
	if got != want {
		t.Errorf("DateToEpoch = %d, want %d", got, want)
	}
	if got != 1735689600000*1_000_000 {
		t.Errorf("DateToEpoch = %d, want %d", got, int64(1735689600000*1_000_000))
	}
	if back := EpochToDate(got); back != "2025-01-01" {
		t.Errorf("EpochToDate = %q, want 2025-01-01", back)
	}
}

func TestDateToEpoch_Invalid(t *testing.T) {
	for _, in := range []string{"", "2025-13-01", "2025-02-30", "01/01/2025", "2025-1-1"} {
		if _, err := DateToEpoch(in); err == nil {
			t.Errorf("DateToEpoch(%q) expected error", in)
		}
	}
}

func TestDateToEpoch_Range(t *testing.T) {
	tests := []struct {
		date string
		ok   bool
	}{
		{"1677-09-21", false},
		{"1677-09-22", true},
		{"1970-01-01", true},
		{"2262-04-11", true},
		{"2262-04-12", false},
		{"0001-01-01", false},
		{"9999-12-31", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			epoch, err := DateToEpoch(tt.date)
			if ValidDate(tt.date) != tt.ok {
				t.Errorf("ValidDate(%q) = %v, want %v", tt.date, !tt.ok, tt.ok)
			}
			if !tt.ok {
				if !errors.Is(err, ErrDateOutOfRange) {
					t.Errorf("DateToEpoch(%q) error = %v, want ErrDateOutOfRange", tt.date, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DateToEpoch(%q) failed: %v", tt.date, err)
			}
			if back := EpochToDate(epoch); back != tt.date {
				t.Errorf("EpochToDate(DateToEpoch(%q)) = %q", tt.date, back)
			}
		})
	}
}

func TestDateHelpers(t *testing.T) {
	ts := time.Date(2025, 6, 1, 23, 45, 0, 0, time.Local)
	if got := DateString(ts); got != "2025-06-01" {
		t.Errorf("DateString = %q, want 2025-06-01", got)
	}
	if got := MonthOf("2025-06-01"); got != "2025-06" {
		t.Errorf("MonthOf = %q, want 2025-06", got)
	}
	if !ValidMonth("2025-06") || ValidMonth("2025-6") {
		t.Error("ValidMonth mismatch")
	}
	if !ValidDate(Today()) {
		t.Errorf("Today() = %q is not a valid date", Today())
	}
	if MonthOf(Today()) != ThisMonth() {
		t.Errorf("Today() and ThisMonth() disagree: %q vs %q", Today(), ThisMonth())
	}
}
