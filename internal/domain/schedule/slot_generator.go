package schedule

import "time"

// GenerateSlots returns the candidate start times on date, stepping by interval
// from the opening time, such that start+duration never passes closing time.
// A closed day or a non-positive interval/duration yields no slots.
func GenerateSlots(date Date, loc *time.Location, hours BusinessHours, interval, duration time.Duration) []time.Time {
	if !hours.IsOpen || interval <= 0 || duration <= 0 {
		return nil
	}
	open, closing := hours.Window(date, loc)
	if !closing.After(open) {
		return nil
	}

	var slots []time.Time
	for t := open; !t.Add(duration).After(closing); t = t.Add(interval) {
		slots = append(slots, t)
	}
	return slots
}
