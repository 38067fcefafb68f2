package scheduling

// TimeSlot is one grid position in a day's availability view. It is derived
// per request and never persisted.
type TimeSlot struct {
	Time      string
	Available bool
	// BookingID references the booking whose start aligns exactly with the
	// grid time. A slot blocked mid-way by a longer call is unavailable with
	// an empty BookingID.
	BookingID string
}

// ProjectSlots combines the slot grid with a day's effective bookings. For
// each grid time, in grid order: a booking starting exactly at the grid time
// binds to the slot; otherwise the slot is unavailable iff any booking
// overlaps the slot's 20 minute window.
func ProjectSlots(bookings []Booking) ([]TimeSlot, error) {
	intervals := make([][2]int, len(bookings))
	for i, booking := range bookings {
		start, end, err := bookingInterval(booking)
		if err != nil {
			return nil, err
		}
		intervals[i] = [2]int{start, end}
	}

	slots := make([]TimeSlot, 0, len(timeSlots))
	for _, label := range timeSlots {
		slotStart, err := MinuteOfDay(label)
		if err != nil {
			return nil, err
		}
		slotEnd := slotStart + SlotWidthMinutes

		slot := TimeSlot{Time: label, Available: true}
		for i, booking := range bookings {
			if booking.StartTime == label {
				slot.Available = false
				slot.BookingID = booking.ID
				break
			}
			if Overlaps(slotStart, slotEnd, intervals[i][0], intervals[i][1]) {
				slot.Available = false
			}
		}
		slots = append(slots, slot)
	}

	return slots, nil
}
