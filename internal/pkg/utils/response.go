package utils

import (
	"errors"
	"fmt"
	"io"
	"slotfinder/internal/pkg/constvars"
	"slotfinder/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// BuildErrorOutput is the outermost error boundary of the CLI. It logs the
// developer-facing message and prints a single "ERROR: <message>" line for the
// user. Queries never surface partial results alongside this line.
func BuildErrorOutput(log *zap.Logger, w io.Writer, err error) {
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		clientMessage = customErr.ClientMessage
		location := map[string]interface{}{
			"file":          customErr.Location.File,
			"line":          customErr.Location.Line,
			"function_name": customErr.Location.FunctionName,
		}
		log.Error(customErr.DevMessage,
			zap.Any("location", location),
		)
	} else {
		log.Error(err.Error())
	}

	fmt.Fprintf(w, constvars.ErrorLineFormat, clientMessage)
}
