package constvars

const MethodGet = "GET"

const (
	MIMEApplicationJSON = "application/json"

	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
)

// HTTP status codes used across the application
const (
	StatusOK = 200

	StatusBadRequest = 400
	StatusNotFound   = 404

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusGatewayTimeout      = 504
)
