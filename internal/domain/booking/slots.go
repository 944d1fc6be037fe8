package booking

import "slices"

// SlotTimezoneLabel is shown next to slot times. No conversion is applied.
const SlotTimezoneLabel = "GST"

var timeSlots = []string{
	"09:00", "09:30", "10:00", "10:30",
	"11:00", "11:30", "12:00", "12:30",
	"13:00", "13:30", "14:00", "14:30",
	"15:00", "15:30", "16:00", "16:30",
	"17:00",
}

// TimeSlots returns the bookable half-hour marks in order
func TimeSlots() []string {
	return slices.Clone(timeSlots)
}

// IsValidSlot reports whether slot is in the slot table
func IsValidSlot(slot string) bool {
	return slices.Contains(timeSlots, slot)
}
