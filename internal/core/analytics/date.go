package analytics

import (
	"fmt"
	"strings"
	"time"
)

// MaxPresetDays bounds a preset length so the start date stays representable
const MaxPresetDays = 100000

// DateLayout is the calendar-date wire format (no time-of-day)
const DateLayout = "2006-01-02"

// Date builds a calendar date at UTC midnight
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TruncateDay drops the time-of-day and location, keeping the wall-clock date
func TruncateDay(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string into a calendar date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatDate renders a calendar date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func addDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

const secondsPerDay = 24 * 60 * 60

// daysBetween counts calendar days without time.Duration, which saturates
// near 292 years
func daysBetween(start, end time.Time) int {
	return int((TruncateDay(end).Unix() - TruncateDay(start).Unix()) / secondsPerDay)
}

// shiftYears moves a date by n years; a day missing in the target month
// (Feb 29 in a common year) lands on that month's last day
func shiftYears(t time.Time, n int) time.Time {
	year := t.Year() + n
	day := t.Day()
	if last := daysInMonth(year, t.Month()); day > last {
		day = last
	}
	return Date(year, t.Month(), day)
}

func daysInMonth(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// ResolveWindow turns a selection into the current window.
// availableDates must be ascending; today is used only when it is empty.
func ResolveWindow(sel SelectionState, availableDates []time.Time, today time.Time) (TimeWindow, error) {
	switch sel.Mode {
	case RangePreset, "":
		if sel.PresetDays < 1 {
			return TimeWindow{}, fmt.Errorf("%w: preset days must be positive, got %d", ErrInvalidRange, sel.PresetDays)
		}

		n := len(availableDates)
		if n > 0 && sel.PresetDays == n {
			// "All time"
			return TimeWindow{
				Start: TruncateDay(availableDates[0]),
				End:   TruncateDay(availableDates[n-1]),
			}, nil
		}

		if sel.PresetDays > MaxPresetDays {
			return TimeWindow{}, fmt.Errorf("%w: preset days must be at most %d, got %d", ErrInvalidRange, MaxPresetDays, sel.PresetDays)
		}

		end := TruncateDay(today)
		if n > 0 {
			end = TruncateDay(availableDates[n-1])
		}
		start := addDays(end, -(sel.PresetDays - 1))
		if start.After(end) {
			return TimeWindow{}, fmt.Errorf("%w: preset of %d days overflows", ErrInvalidRange, sel.PresetDays)
		}
		return TimeWindow{Start: start, End: end}, nil

	case RangeCustom:
		start, err := ParseDate(sel.CustomStart)
		if err != nil {
			return TimeWindow{}, fmt.Errorf("%w: bad start date %q", ErrInvalidRange, sel.CustomStart)
		}
		end, err := ParseDate(sel.CustomEnd)
		if err != nil {
			return TimeWindow{}, fmt.Errorf("%w: bad end date %q", ErrInvalidRange, sel.CustomEnd)
		}
		if start.After(end) {
			return TimeWindow{}, fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange, FormatDate(start), FormatDate(end))
		}
		return TimeWindow{Start: start, End: end}, nil

	default:
		return TimeWindow{}, fmt.Errorf("%w: unknown range mode %q", ErrInvalidRange, sel.Mode)
	}
}

// ResolvePreviousWindow returns the window the current one is compared against.
// It is purely geometric and does not look at records.
func ResolvePreviousWindow(current TimeWindow, mode ComparisonMode) TimeWindow {
	if mode == CompareYear {
		return TimeWindow{
			Start: shiftYears(current.Start, -1),
			End:   shiftYears(current.End, -1),
		}
	}

	duration := daysBetween(current.Start, current.End)
	prevEnd := addDays(current.Start, -1)
	return TimeWindow{
		Start: addDays(prevEnd, -duration),
		End:   prevEnd,
	}
}

// DefaultCustomRange seeds the custom date pickers: the last available date
// and the date seven days before it
func DefaultCustomRange(availableDates []time.Time) (start, end string, ok bool) {
	if len(availableDates) == 0 {
		return "", "", false
	}
	last := TruncateDay(availableDates[len(availableDates)-1])
	return FormatDate(addDays(last, -7)), FormatDate(last), true
}
