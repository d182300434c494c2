package exceptions

import (
	"errors"
	"fmt"
	"slotfinder/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var (
	// Provider
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientFailedRetrieveSchedule, constvars.ErrDevFailedSendHTTPRequest)
	}
	ErrProviderStatusNotOK = func(statusCode int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientFailedRetrieveSchedule, fmt.Sprintf(constvars.ErrDevProviderStatusNotOKFormat, statusCode))
	}
	ErrDecodeScheduleFeed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientInvalidScheduleFeed, constvars.ErrDevFailedDecodeScheduleFeed)
	}
	ErrScheduleFeedValidation = func(err error) *CustomError {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			err = errors.New(FormatAllValidationErrors(validationErrors))
		}
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientInvalidScheduleFeed, constvars.ErrDevScheduleFeedValidationFail)
	}
	ErrScheduleFeedInvalid = func(devMessage string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientInvalidScheduleFeed, devMessage)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Schedule queries
	ErrNoScheduleFound = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientNoScheduleFound, constvars.ErrDevScheduleEmpty)
	}
	ErrDurationNotPositive = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientDurationNotPositive, constvars.ErrDevDurationMustBePositive)
	}

	// Input parsing
	ErrInvalidSlotInput = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidSlotFormat, constvars.ErrDevCannotParseSlotInput)
	}
	ErrInvalidDateInput = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidDateFormat, constvars.ErrDevCannotParseDateInput)
	}
	ErrInvalidDurationInput = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidDurationFormat, constvars.ErrDevCannotParseDurationInput)
	}
	ErrSlotStartNotBeforeEnd = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientSlotStartNotBeforeEnd, constvars.ErrDevSlotStartNotBeforeEnd)
	}
)
