package scheduling

// Booking is the minimal view of an effective booking the engine needs for
// overlap and availability checks. Callers convert their richer models.
type Booking struct {
	ID        string
	Date      string
	StartTime string
	EndTime   string
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect, with all bounds expressed as minutes since
// midnight. Intervals that merely touch at an endpoint do not overlap: a call
// ending at 10:30 is compatible with one starting at 10:30.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// BookingsOverlap reports whether two bookings occupy overlapping time on the
// same date. Bookings on different dates never overlap; the time comparison
// only happens once both intervals are known to share a date.
func BookingsOverlap(a, b Booking) (bool, error) {
	if a.Date != b.Date {
		return false, nil
	}

	aStart, aEnd, err := bookingInterval(a)
	if err != nil {
		return false, err
	}
	bStart, bEnd, err := bookingInterval(b)
	if err != nil {
		return false, err
	}

	return Overlaps(aStart, aEnd, bStart, bEnd), nil
}

func bookingInterval(b Booking) (start, end int, err error) {
	start, err = MinuteOfDay(b.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err = MinuteOfDay(b.EndTime)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
