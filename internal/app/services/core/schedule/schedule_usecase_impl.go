package schedule

import (
	"context"
	"slotfinder/internal/app/contracts"
	"slotfinder/internal/app/models"
	"slotfinder/internal/pkg/exceptions"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ScheduleUsecase struct {
	provider contracts.ScheduleProviderClient
	logger   *zap.Logger
}

func NewScheduleUsecase(provider contracts.ScheduleProviderClient, logger *zap.Logger) *ScheduleUsecase {
	return &ScheduleUsecase{
		provider: provider,
		logger:   logger,
	}
}

// fetchSchedule pulls a fresh dataset and assembles it. Every query starts
// here; nothing survives between invocations.
func (u *ScheduleUsecase) fetchSchedule(ctx context.Context, log *zap.Logger) (models.Schedule, error) {
	feed, err := u.provider.FetchScheduleData(ctx)
	if err != nil {
		log.With(zap.Error(err)).Error("failed to fetch schedule data")
		return nil, err
	}

	schedule, err := buildSchedule(feed)
	if err != nil {
		log.With(zap.Error(err)).Error("failed to assemble schedule")
		return nil, err
	}

	log.Info("schedule assembled",
		zap.Int("days", len(schedule)),
		zap.Int("timeslots", len(feed.Timeslots)),
	)
	return schedule, nil
}

func (u *ScheduleUsecase) queryLogger(query string) *zap.Logger {
	return u.logger.With(
		zap.String("query", query),
		zap.String("query_id", uuid.NewString()),
	)
}

func (u *ScheduleUsecase) CheckSlot(ctx context.Context, slot models.Slot) (*contracts.CheckSlotOutput, error) {
	log := u.queryLogger("check_slot")

	schedule, err := u.fetchSchedule(ctx, log)
	if err != nil {
		return nil, err
	}

	output := &contracts.CheckSlotOutput{Slot: slot}

	daySchedule, ok := schedule.ByDate(slot.Date)
	if !ok {
		return output, nil
	}

	free, err := freeSlotsForDay(daySchedule.Day, daySchedule.Slots)
	if err != nil {
		return nil, err
	}

	output.HasFreeSlots = len(free) > 0
	output.Schedulable = canScheduleSlot(slot, free)
	return output, nil
}

func (u *ScheduleUsecase) ShowBusy(ctx context.Context) (models.Schedule, error) {
	log := u.queryLogger("show_busy")

	schedule, err := u.fetchSchedule(ctx, log)
	if err != nil {
		return nil, err
	}
	if len(schedule) == 0 {
		return nil, exceptions.ErrNoScheduleFound()
	}
	return schedule, nil
}

func (u *ScheduleUsecase) FindFreeSlots(ctx context.Context, date string) (*models.DaySchedule, error) {
	log := u.queryLogger("find_free_slots")

	schedule, err := u.fetchSchedule(ctx, log)
	if err != nil {
		return nil, err
	}

	daySchedule, ok := schedule.ByDate(date)
	if !ok {
		// A date outside the feed simply has no free slots.
		return &models.DaySchedule{Day: models.Day{Date: date}}, nil
	}

	free, err := freeSlotsForDay(daySchedule.Day, daySchedule.Slots)
	if err != nil {
		return nil, err
	}
	return &models.DaySchedule{Day: daySchedule.Day, Slots: free}, nil
}

func (u *ScheduleUsecase) FindSuitableSlots(ctx context.Context, minDuration time.Duration) (models.Schedule, error) {
	log := u.queryLogger("find_suitable_slots")

	if minDuration <= 0 {
		return nil, exceptions.ErrDurationNotPositive()
	}

	schedule, err := u.fetchSchedule(ctx, log)
	if err != nil {
		return nil, err
	}

	return suitableSlotsForDuration(schedule, minDuration)
}
