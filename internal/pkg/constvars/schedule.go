package constvars

// Wire and input layouts
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Schedule display
const (
	ScheduleDisplayWidth = 40

	ScheduleTitleBusySlots     = "Busy slots"
	ScheduleTitleFreeSlots     = "Free slots"
	ScheduleTitleSuitableSlots = "Suitable free slots"
)

// Query outcome messages
const (
	MsgSlotSchedulable        = "The slot can be scheduled at the selected time."
	MsgSlotUnavailableFormat  = "Sorry, slot %s is unavailable."
	MsgNoSlotsForSelectedDate = "Sorry, no slots are available for the selected date."
	MsgNoFreeSlotsFormat      = "No free slots available on %s."
	MsgNoSuitableSlots        = "No suitable free slots found."
)

const ErrorLineFormat = "ERROR: %s\n"
