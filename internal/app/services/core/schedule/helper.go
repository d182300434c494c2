package schedule

import (
	"fmt"
	"slotfinder/internal/app/models"
	"slotfinder/internal/pkg/constvars"
	"slotfinder/internal/pkg/dto/responses"
	"slotfinder/internal/pkg/exceptions"
	"slotfinder/internal/pkg/utils"
	"sort"
	"time"
)

// buildSchedule turns a raw provider feed into an ordered schedule: days
// ascending by date, busy intervals per day ascending by start. The feed is
// validated rather than trusted — out-of-window, inverted or overlapping
// intervals and orphaned day references are rejected, so every consumer can
// rely on the Schedule invariants instead of re-checking them.
func buildSchedule(feed *responses.ScheduleFeed) (models.Schedule, error) {
	byID := make(map[int]*models.DaySchedule, len(feed.Days))
	schedule := make(models.Schedule, 0, len(feed.Days))

	for _, rawDay := range feed.Days {
		if _, exists := byID[rawDay.ID]; exists {
			return nil, exceptions.ErrScheduleFeedInvalid(fmt.Sprintf(constvars.ErrDevDuplicateDayFormat, rawDay.ID))
		}

		day, err := parseDay(rawDay)
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, models.DaySchedule{Day: day})
		byID[rawDay.ID] = &schedule[len(schedule)-1]
	}

	for _, rawSlot := range feed.Timeslots {
		daySchedule, ok := byID[rawSlot.DayID]
		if !ok {
			return nil, exceptions.ErrScheduleFeedInvalid(fmt.Sprintf(constvars.ErrDevTimeslotOrphanedFormat, rawSlot.ID, rawSlot.DayID))
		}

		slot, err := parseTimeSlot(rawSlot, daySchedule.Day)
		if err != nil {
			return nil, err
		}
		daySchedule.Slots = append(daySchedule.Slots, slot)
	}

	sort.SliceStable(schedule, func(i, j int) bool {
		return schedule[i].Day.Date < schedule[j].Day.Date
	})

	for i := range schedule {
		slots := schedule[i].Slots
		sort.SliceStable(slots, func(a, b int) bool {
			return slots[a].Start < slots[b].Start
		})
		for j := 1; j < len(slots); j++ {
			if slots[j].Start < slots[j-1].End {
				return nil, exceptions.ErrScheduleFeedInvalid(fmt.Sprintf(constvars.ErrDevTimeslotsOverlapFormat, schedule[i].Day.ID))
			}
		}
	}

	return schedule, nil
}

func parseDay(rawDay responses.FeedDay) (models.Day, error) {
	date, err := utils.ParseDate(rawDay.Date)
	if err != nil {
		return models.Day{}, exceptions.ErrScheduleFeedValidation(err)
	}
	start, err := utils.ParseClock(rawDay.Start)
	if err != nil {
		return models.Day{}, exceptions.ErrScheduleFeedValidation(err)
	}
	end, err := utils.ParseClock(rawDay.End)
	if err != nil {
		return models.Day{}, exceptions.ErrScheduleFeedValidation(err)
	}
	if start >= end {
		return models.Day{}, exceptions.ErrScheduleFeedInvalid(fmt.Sprintf(constvars.ErrDevDayWindowInvalidFormat, rawDay.ID))
	}
	return models.Day{ID: rawDay.ID, Date: date, Start: start, End: end}, nil
}

func parseTimeSlot(rawSlot responses.FeedTimeSlot, day models.Day) (models.TimeSlot, error) {
	start, err := utils.ParseClock(rawSlot.Start)
	if err != nil {
		return models.TimeSlot{}, exceptions.ErrScheduleFeedValidation(err)
	}
	end, err := utils.ParseClock(rawSlot.End)
	if err != nil {
		return models.TimeSlot{}, exceptions.ErrScheduleFeedValidation(err)
	}
	if start >= end {
		return models.TimeSlot{}, exceptions.ErrScheduleFeedInvalid(fmt.Sprintf(constvars.ErrDevTimeslotInvalidRangeFormat, rawSlot.ID))
	}
	if start < day.Start || end > day.End {
		return models.TimeSlot{}, exceptions.ErrScheduleFeedInvalid(fmt.Sprintf(constvars.ErrDevTimeslotOutOfWindowFormat, rawSlot.ID, day.ID))
	}
	return models.TimeSlot{DayID: rawSlot.DayID, Start: start, End: end}, nil
}

// freeSlotsForDay computes the gaps left by the busy intervals within the
// day's working window. busy must be sorted ascending by start and
// non-overlapping; a violation is reported instead of producing wrong gaps.
// The result tiles the complement of busy within [day.Start, day.End).
func freeSlotsForDay(day models.Day, busy []models.TimeSlot) ([]models.TimeSlot, error) {
	var free []models.TimeSlot

	cursor := day.Start
	for _, interval := range busy {
		if interval.Start < cursor {
			return nil, exceptions.ErrScheduleFeedInvalid(constvars.ErrDevBusyIntervalBehindCursor)
		}
		if cursor < interval.Start {
			free = append(free, models.TimeSlot{DayID: day.ID, Start: cursor, End: interval.Start})
		}
		cursor = interval.End
	}

	if cursor != day.End {
		free = append(free, models.TimeSlot{DayID: day.ID, Start: cursor, End: day.End})
	}

	return free, nil
}

// suitableSlotsForDuration keeps, per day, the free intervals at least
// minDuration long. Days left without a qualifying interval are dropped;
// date and interval ordering is preserved.
func suitableSlotsForDuration(schedule models.Schedule, minDuration time.Duration) (models.Schedule, error) {
	if minDuration <= 0 {
		return nil, exceptions.ErrDurationNotPositive()
	}

	var suitable models.Schedule
	for _, daySchedule := range schedule {
		free, err := freeSlotsForDay(daySchedule.Day, daySchedule.Slots)
		if err != nil {
			return nil, err
		}

		var kept []models.TimeSlot
		for _, slot := range free {
			if slot.Duration() >= minDuration {
				kept = append(kept, slot)
			}
		}
		if len(kept) == 0 {
			continue
		}
		suitable = append(suitable, models.DaySchedule{Day: daySchedule.Day, Slots: kept})
	}

	return suitable, nil
}

// withinBounds reports whether inner lies entirely inside outer; touching
// boundaries count as contained.
func withinBounds(outer models.TimeSlot, inner models.Slot) bool {
	return outer.Start <= inner.Start && inner.End <= outer.End
}

func canScheduleSlot(slot models.Slot, free []models.TimeSlot) bool {
	for _, candidate := range free {
		if withinBounds(candidate, slot) {
			return true
		}
	}
	return false
}
