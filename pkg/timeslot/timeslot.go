// Package timeslot quantizes time of day into fixed size slots and computes delivery windows.
// The day is cyclic: windows crossing midnight are split into two ranges.
package timeslot

import (
	"fmt"
	"math"
	"time"
)

// DefaultSlotSize ...
const DefaultSlotSize = 15 * time.Minute

const minutesPerDay = 24 * 60

// Clock is a time of day in minutes since midnight, in [0, 1440)
type Clock int

// NewClock ...
func NewClock(hour, minute int) Clock {
	return Clock(0).Add(hour*60 + minute)
}

// ClockOf returns the time of day of t in its own location
func ClockOf(t time.Time) Clock {
	return NewClock(t.Hour(), t.Minute())
}

// ParseClock parses "HH:MM"
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	return ClockOf(t), nil
}

// Add moves the clock by the given minutes, wrapping around midnight
func (c Clock) Add(minutes int) Clock {
	v := (int(c) + minutes) % minutesPerDay
	if v < 0 {
		v += minutesPerDay
	}
	return Clock(v)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Calculator ...
type Calculator struct {
	slotMinutes int
}

// NewCalculator panics when slotSize is not a whole number of minutes dividing a day
func NewCalculator(slotSize time.Duration) *Calculator {
	if slotSize < time.Minute || slotSize%time.Minute != 0 {
		panic("timeslot: slot size must be a whole number of minutes")
	}
	slotMinutes := int(slotSize / time.Minute)
	if minutesPerDay%slotMinutes != 0 {
		panic("timeslot: slot size must divide a day")
	}
	return &Calculator{slotMinutes: slotMinutes}
}

// SlotsPerDay ...
func (c *Calculator) SlotsPerDay() int {
	return minutesPerDay / c.slotMinutes
}

// SlotOf returns the nearest slot index in [0, SlotsPerDay), rounding half to even.
// Clocks rounding up past the last slot wrap to slot 0.
func (c *Calculator) SlotOf(clock Clock) int {
	n := int(math.RoundToEven(float64(clock) / float64(c.slotMinutes)))
	return n % c.SlotsPerDay()
}

// SlotStart returns the clock at which a slot begins
func (c *Calculator) SlotStart(slot int) Clock {
	return Clock(0).Add(slot * c.slotMinutes)
}

// WindowAround returns the window covering target ± toleranceSlots slots
func (c *Calculator) WindowAround(target Clock, toleranceSlots int) Window {
	d := toleranceSlots * c.slotMinutes
	if 2*d >= minutesPerDay-1 {
		return FullDay()
	}
	return Window{
		Earliest: target.Add(-d),
		Latest:   target.Add(d),
	}
}

// Window is an inclusive cyclic range of clock times
type Window struct {
	Earliest Clock
	Latest   Clock
}

// Range is an inclusive non-wrapping range, From <= To
type Range struct {
	From Clock
	To   Clock
}

// FullDay ...
func FullDay() Window {
	return Window{Earliest: 0, Latest: minutesPerDay - 1}
}

// DailyWindow builds a window from "HH:MM" bounds, both empty means the whole day
func DailyWindow(from, to string) (Window, error) {
	if from == "" && to == "" {
		return FullDay(), nil
	}
	earliest, err := ParseClock(from)
	if err != nil {
		return Window{}, err
	}
	latest, err := ParseClock(to)
	if err != nil {
		return Window{}, err
	}
	return Window{Earliest: earliest, Latest: latest}, nil
}

// Wraps reports whether the window crosses midnight
func (w Window) Wraps() bool {
	return w.Earliest > w.Latest
}

// Ranges splits a window crossing midnight into two disjoint ranges
func (w Window) Ranges() []Range {
	if !w.Wraps() {
		return []Range{{From: w.Earliest, To: w.Latest}}
	}
	return []Range{
		{From: w.Earliest, To: minutesPerDay - 1},
		{From: 0, To: w.Latest},
	}
}

// Contains ...
func (w Window) Contains(c Clock) bool {
	for _, r := range w.Ranges() {
		if c >= r.From && c <= r.To {
			return true
		}
	}
	return false
}

func (w Window) String() string {
	return w.Earliest.String() + "-" + w.Latest.String()
}
