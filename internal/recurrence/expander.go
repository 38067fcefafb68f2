package recurrence

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ErrInvalidDate indicates a date string does not parse as YYYY-MM-DD.
var ErrInvalidDate = errors.New("recurrence: date must be in YYYY-MM-DD format")

// ParseDate validates and parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	ts, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return ts, nil
}

// Materializes reports whether a weekly series anchored on anchorDate
// produces an occurrence on targetDate: the weekdays must match and the
// target must fall strictly after the anchor. The anchor date itself is
// served by the stored record, never by expansion, and a series materializes
// nothing before its anchor even when weekdays coincide.
func Materializes(anchorDate, targetDate string) (bool, error) {
	anchor, err := ParseDate(anchorDate)
	if err != nil {
		return false, err
	}
	target, err := ParseDate(targetDate)
	if err != nil {
		return false, err
	}
	return target.After(anchor) && target.Weekday() == anchor.Weekday(), nil
}

// OccurrenceID renders the boundary identifier for a series occurrence on a
// date: "<seriesID>-<date>". The stored record keeps the bare series id; the
// dashed form exists only in responses and inbound delete requests.
func OccurrenceID(seriesID, date string) string {
	return seriesID + "-" + date
}

// SplitID resolves a boundary identifier. Occurrence ids carry a trailing
// "-YYYY-MM-DD" suffix; anything else is a direct booking id. Matching on the
// suffix rather than the first dash keeps series ids that contain dashes
// intact.
func SplitID(id string) (seriesID, occurrenceDate string, isOccurrence bool) {
	const suffixLen = 1 + len(DateLayout)
	if len(id) <= suffixLen {
		return id, "", false
	}
	cut := len(id) - suffixLen
	if id[cut] != '-' {
		return id, "", false
	}
	date := id[cut+1:]
	if _, err := ParseDate(date); err != nil {
		return id, "", false
	}
	return id[:cut], date, true
}
