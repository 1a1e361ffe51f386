package payroll

import (
	"errors"
	"time"
)

var ErrInvalidTime = errors.New("invalid arrival time, expected HH:MM")

// Lateness reports whether arrival is after the threshold and by how many minutes.
func Lateness(arrival string) (bool, int, error) {
	return DefaultPolicy.Lateness(arrival)
}

func (p Policy) Lateness(arrival string) (bool, int, error) {
	t, err := ParseClock(arrival)
	if err != nil {
		return false, 0, err
	}

	minutes := (t.Hour()-p.LateThresholdHour)*60 + t.Minute() - p.LateThresholdMinute
	if minutes > 0 {
		return true, minutes, nil
	}
	return false, 0, nil
}

// ParseClock accepts "15:04" and "15:04:05" (browsers send seconds when a step is set).
func ParseClock(value string) (time.Time, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTime
}
