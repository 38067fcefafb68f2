package scheduling

// SlotWidthMinutes is the grid spacing. Every slot is 20 minutes wide
// regardless of the call booked into it; a 40 minute onboarding call simply
// blocks two consecutive slots.
const SlotWidthMinutes = 20

// timeSlots is the fixed daily business window. The grid is identical every
// day; order is chronological and is the iteration order for availability
// projections.
var timeSlots = []string{
	"10:30", "10:50", "11:10", "11:30", "11:50",
	"12:10", "12:30", "12:50", "13:10", "13:30",
	"13:50", "14:10", "14:30", "14:50", "15:10",
	"15:30", "15:50", "16:10", "16:30", "16:50",
	"17:10", "17:30", "17:50", "18:10", "18:30",
	"18:50", "19:10", "19:30",
}

// Slots returns the ordered bookable start times for any day. The returned
// slice is a copy; callers may modify it freely.
func Slots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// IsSlotStart reports whether the given HH:mm string is one of the grid's
// bookable start times.
func IsSlotStart(startTime string) bool {
	for _, slot := range timeSlots {
		if slot == startTime {
			return true
		}
	}
	return false
}
