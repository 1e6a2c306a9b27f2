package bridge

// Status tags the outcome of a single generation call.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Result is the outcome of one Generate call. Text is set when Status is
// StatusSucceeded; Message is set when Status is StatusFailed.
type Result struct {
	Status  Status `json:"status"`
	Text    string `json:"text,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success returns a succeeded Result carrying text unmodified.
func Success(text string) Result {
	return Result{Status: StatusSucceeded, Text: text}
}

// Failure returns a failed Result. An empty message is replaced so that a
// failed Result always carries a description.
func Failure(message string) Result {
	if message == "" {
		message = "unknown error"
	}
	return Result{Status: StatusFailed, Message: message}
}

// Succeeded reports whether the call produced text.
func (r Result) Succeeded() bool {
	return r.Status == StatusSucceeded
}
