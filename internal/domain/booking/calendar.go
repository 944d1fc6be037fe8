package booking

import "time"

// WindowDays is the number of selectable days starting today
const WindowDays = 14

const labelLayout = "Mon 2 Jan"

// CalendarDay is one selectable day of the booking window
type CalendarDay struct {
	Date  time.Time `json:"-"`
	Label string    `json:"label"`
	Value string    `json:"value"`
}

// Window is an ordered run of consecutive calendar days
type Window []CalendarDay

// NextDays returns count consecutive days starting at now's calendar day,
// in now's location. Each day is truncated to local midnight.
func NextDays(now time.Time, count int) Window {
	if count <= 0 {
		return Window{}
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := make(Window, count)
	for i := range days {
		d := start.AddDate(0, 0, i)
		days[i] = CalendarDay{
			Date:  d,
			Label: d.Format(labelLayout),
			Value: d.Format(time.DateOnly),
		}
	}
	return days
}

// Contains reports whether value (YYYY-MM-DD) is one of the window's days
func (w Window) Contains(value string) bool {
	for _, d := range w {
		if d.Value == value {
			return true
		}
	}
	return false
}

// Day looks up a day by its value
func (w Window) Day(value string) (CalendarDay, bool) {
	for _, d := range w {
		if d.Value == value {
			return d, true
		}
	}
	return CalendarDay{}, false
}
