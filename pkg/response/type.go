package response

// Ack is the webhook acknowledgment body. Message is only present on errors.
type Ack struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Acknowledgment statuses.
const (
	StatusSuccess = "success"
	StatusIgnored = "ignored"
	StatusError   = "error"
)

// ListError is the error body for read endpoints.
type ListError struct {
	Error string `json:"error"`
}
