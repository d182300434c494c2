package models

import (
	"fmt"
	"time"
)

// ClockTime is a wall-clock moment within a day, stored as minutes since
// midnight. All interval arithmetic treats ranges as half-open [start, end).
type ClockTime int

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Sub returns the duration from o to c.
func (c ClockTime) Sub(o ClockTime) time.Duration {
	return time.Duration(c-o) * time.Minute
}

// Day is a calendar date with its working-hours window. Start < End holds for
// every Day produced by schedule assembly.
type Day struct {
	ID    int
	Date  string
	Start ClockTime
	End   ClockTime
}

// TimeSlot is a sub-range of a day's window. It represents a busy interval in
// an assembled schedule and a free interval in computed results.
type TimeSlot struct {
	DayID int
	Start ClockTime
	End   ClockTime
}

func (t TimeSlot) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

func (t TimeSlot) String() string {
	return fmt.Sprintf("%s-%s", t.Start, t.End)
}

// Slot is a user-requested date and time range.
type Slot struct {
	Date  string
	Start ClockTime
	End   ClockTime
}

func (s Slot) String() string {
	return fmt.Sprintf("%s %s-%s", s.Date, s.Start, s.End)
}

// DaySchedule pairs a day with its intervals, kept sorted ascending by start.
type DaySchedule struct {
	Day   Day
	Slots []TimeSlot
}

// Schedule is an ordered collection of day schedules, ascending by date.
type Schedule []DaySchedule

// ByDate returns the day schedule for the given date, if present.
func (s Schedule) ByDate(date string) (*DaySchedule, bool) {
	for i := range s {
		if s[i].Day.Date == date {
			return &s[i], true
		}
	}
	return nil, false
}
