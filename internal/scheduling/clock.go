package scheduling

import (
	"errors"
	"fmt"
	"time"
)

// clockLayout is the wire format for times of day. All times are naive local
// wall-clock values; the calendar date travels separately.
const clockLayout = "15:04"

// ErrInvalidTimeFormat indicates a time string does not parse as zero-padded
// 24-hour HH:mm.
var ErrInvalidTimeFormat = errors.New("scheduling: time must be in HH:mm format")

// MinuteOfDay parses an HH:mm string into minutes since midnight. The format
// is strictly zero-padded; time.Parse alone would accept "9:30".
func MinuteOfDay(value string) (int, error) {
	if len(value) != len(clockLayout) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
	}
	ts, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
	}
	return ts.Hour()*60 + ts.Minute(), nil
}

// FormatMinute renders minutes since midnight as zero-padded HH:mm.
func FormatMinute(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// EndTime computes the end of a call starting at startTime. The business
// window never spans midnight, so the arithmetic only rolls over hours.
func EndTime(startTime string, callType CallType) (string, error) {
	start, err := MinuteOfDay(startTime)
	if err != nil {
		return "", err
	}
	return FormatMinute(start + callType.DurationMinutes()), nil
}
