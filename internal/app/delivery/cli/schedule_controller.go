package cli

import (
	"context"
	"fmt"
	"io"
	"slotfinder/internal/app/contracts"
	"slotfinder/internal/app/models"
	"slotfinder/internal/pkg/constvars"
	"slotfinder/internal/pkg/exceptions"
	"slotfinder/internal/pkg/utils"
	"time"
)

type ScheduleController struct {
	ScheduleUsecase contracts.ScheduleUsecase
	Out             io.Writer
}

func NewScheduleController(scheduleUsecase contracts.ScheduleUsecase, out io.Writer) *ScheduleController {
	return &ScheduleController{
		ScheduleUsecase: scheduleUsecase,
		Out:             out,
	}
}

func (ctrl *ScheduleController) CheckSlot(rawSlot string) error {
	// Parse and validate input
	slot, err := utils.ParseSlotInput(rawSlot)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Send it to be processed by usecase
	output, err := ctrl.ScheduleUsecase.CheckSlot(ctx, *slot)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return err
	}

	if !output.HasFreeSlots {
		fmt.Fprintln(ctrl.Out, constvars.MsgNoSlotsForSelectedDate)
		return nil
	}
	if output.Schedulable {
		fmt.Fprintln(ctrl.Out, constvars.MsgSlotSchedulable)
		return nil
	}
	fmt.Fprintf(ctrl.Out, constvars.MsgSlotUnavailableFormat+"\n", output.Slot)
	return nil
}

func (ctrl *ScheduleController) ShowBusy() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	schedule, err := ctrl.ScheduleUsecase.ShowBusy(ctx)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return err
	}

	RenderSchedule(ctrl.Out, schedule, constvars.ScheduleTitleBusySlots, false)
	return nil
}

func (ctrl *ScheduleController) FindFreeSlots(rawDate string) error {
	// Parse and validate input
	date, err := utils.ParseDateInput(rawDate)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	daySchedule, err := ctrl.ScheduleUsecase.FindFreeSlots(ctx, date)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return err
	}

	if len(daySchedule.Slots) == 0 {
		fmt.Fprintf(ctrl.Out, constvars.MsgNoFreeSlotsFormat+"\n", date)
		return nil
	}

	RenderSchedule(ctrl.Out, models.Schedule{*daySchedule}, constvars.ScheduleTitleFreeSlots, false)
	return nil
}

func (ctrl *ScheduleController) FindSuitableSlots(rawDuration string) error {
	// Parse and validate input
	minDuration, err := utils.ParseDurationInput(rawDuration)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	schedule, err := ctrl.ScheduleUsecase.FindSuitableSlots(ctx, minDuration)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return err
	}

	if len(schedule) == 0 {
		fmt.Fprintln(ctrl.Out, constvars.MsgNoSuitableSlots)
		return nil
	}

	RenderSchedule(ctrl.Out, schedule, constvars.ScheduleTitleSuitableSlots, true)
	return nil
}
