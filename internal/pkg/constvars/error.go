package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"datetime": "must match the format %s",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gt":       "must be greater than %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"datetime": true,
	"min":      true,
	"max":      true,
	"gt":       true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the schedule provider is taking too long to respond"

	ErrClientFailedRetrieveSchedule = "Failed to retrieve data."
	ErrClientInvalidScheduleFeed    = "Received invalid schedule data."
	ErrClientNoScheduleFound        = "No schedule found."

	ErrClientInvalidSlotFormat     = "Invalid slot format. Provide a date and a time range in the format: 'YYYY-MM-DD HH:MM-HH:MM'."
	ErrClientInvalidDateFormat     = "Invalid date format. Use the format 'YYYY-MM-DD'."
	ErrClientInvalidDurationFormat = "Invalid duration format. Use the format 'HH:MM'."
	ErrClientSlotStartNotBeforeEnd = "Start time must be before end time"
	ErrClientDurationNotPositive   = "Invalid duration. Must be a positive duration."
)

// Error messages for developers
const (
	// Provider messages
	ErrDevFailedCreateHTTPRequest    = "failed to build schedule provider request"
	ErrDevFailedSendHTTPRequest      = "failed to send request to schedule provider"
	ErrDevProviderStatusNotOKFormat  = "schedule provider responded with status %d"
	ErrDevFailedDecodeScheduleFeed   = "failed to decode schedule feed"
	ErrDevScheduleFeedValidationFail = "schedule feed validation failed"

	// Schedule assembly messages
	ErrDevDayWindowInvalidFormat     = "day %d has an invalid working window"
	ErrDevDuplicateDayFormat         = "duplicate day id %d in feed"
	ErrDevTimeslotOrphanedFormat     = "timeslot %d references unknown day %d"
	ErrDevTimeslotInvalidRangeFormat = "timeslot %d has start >= end"
	ErrDevTimeslotOutOfWindowFormat  = "timeslot %d lies outside the window of day %d"
	ErrDevTimeslotsOverlapFormat     = "overlapping busy intervals on day %d"
	ErrDevBusyIntervalBehindCursor   = "busy interval starts before the free-slot cursor"
	ErrDevDurationMustBePositive     = "duration must be strictly positive"
	ErrDevScheduleEmpty              = "schedule is empty"

	// Input parsing messages
	ErrDevCannotParseSlotInput     = "cannot parse slot input"
	ErrDevCannotParseDateInput     = "cannot parse date input"
	ErrDevCannotParseDurationInput = "cannot parse duration input"
	ErrDevSlotStartNotBeforeEnd    = "slot start is not before slot end"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
