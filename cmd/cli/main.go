package main

import (
	"flag"
	"net/url"
	"os"
	"slotfinder/internal/app/config"
	"slotfinder/internal/app/delivery/cli"
	"slotfinder/internal/app/drivers/logger"
	"slotfinder/internal/app/services/core/schedule"
	"slotfinder/internal/app/services/provider"
	"slotfinder/internal/pkg/utils"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(internalConfig)

	_, err := url.ParseRequestURI(internalConfig.Provider.BaseUrl)
	if err != nil {
		log.Fatalf("Invalid provider base URL: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	var checkSlot string
	flag.StringVar(&checkSlot, "c", "", "Date and time slot to check. Use format 'YYYY-MM-DD HH:MM-HH:MM'")
	flag.StringVar(&checkSlot, "check-slot", "", "Date and time slot to check. Use format 'YYYY-MM-DD HH:MM-HH:MM'")

	var showBusy bool
	flag.BoolVar(&showBusy, "b", false, "Show all busy slots.")
	flag.BoolVar(&showBusy, "show-busy", false, "Show all busy slots.")

	var findFreeSlot string
	flag.StringVar(&findFreeSlot, "f", "", "Find free slots at a certain date. Use format 'YYYY-MM-DD'")
	flag.StringVar(&findFreeSlot, "find-free-slot", "", "Find free slots at a certain date. Use format 'YYYY-MM-DD'")

	var findSuitableSlots string
	flag.StringVar(&findSuitableSlots, "d", "", "Find free slots for a specific duration. Use format 'HH:MM'")
	flag.StringVar(&findSuitableSlots, "find-suitable-slots", "", "Find free slots for a specific duration. Use format 'HH:MM'")

	flag.Parse()

	if checkSlot == "" && !showBusy && findFreeSlot == "" && findSuitableSlots == "" {
		flag.Usage()
		return
	}

	providerClient := provider.NewScheduleProviderClient(internalConfig)
	scheduleUsecase := schedule.NewScheduleUsecase(providerClient, zapLogger)
	scheduleController := cli.NewScheduleController(scheduleUsecase, os.Stdout)

	// Queries are independent; a failing one reports its error line and the
	// remaining queries still run.
	if checkSlot != "" {
		if err := scheduleController.CheckSlot(checkSlot); err != nil {
			utils.BuildErrorOutput(zapLogger, os.Stdout, err)
		}
	}

	if showBusy {
		if err := scheduleController.ShowBusy(); err != nil {
			utils.BuildErrorOutput(zapLogger, os.Stdout, err)
		}
	}

	if findFreeSlot != "" {
		if err := scheduleController.FindFreeSlots(findFreeSlot); err != nil {
			utils.BuildErrorOutput(zapLogger, os.Stdout, err)
		}
	}

	if findSuitableSlots != "" {
		if err := scheduleController.FindSuitableSlots(findSuitableSlots); err != nil {
			utils.BuildErrorOutput(zapLogger, os.Stdout, err)
		}
	}
}
