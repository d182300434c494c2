package contracts

import (
	"context"
	"slotfinder/internal/app/models"
	"slotfinder/internal/pkg/dto/responses"
	"time"
)

// ScheduleProviderClient fetches the raw day/timeslot dataset from the remote
// schedule provider. Implementations perform no retries; a failed fetch aborts
// the query.
type ScheduleProviderClient interface {
	FetchScheduleData(ctx context.Context) (*responses.ScheduleFeed, error)
}

// CheckSlotOutput reports whether a requested slot fits the schedule.
type CheckSlotOutput struct {
	Slot         models.Slot
	HasFreeSlots bool
	Schedulable  bool
}

// ScheduleUsecase answers the four schedule queries. Every call fetches a
// fresh dataset; nothing is shared or cached between calls.
type ScheduleUsecase interface {
	CheckSlot(ctx context.Context, slot models.Slot) (*CheckSlotOutput, error)
	ShowBusy(ctx context.Context) (models.Schedule, error)
	FindFreeSlots(ctx context.Context, date string) (*models.DaySchedule, error)
	FindSuitableSlots(ctx context.Context, minDuration time.Duration) (models.Schedule, error)
}
