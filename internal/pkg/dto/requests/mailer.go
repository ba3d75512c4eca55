package requests

// EmailPayload is the message consumed by the mail worker from the
// notification queue.
type EmailPayload struct {
	To       []string               `json:"to"`
	Subject  string                 `json:"subject"`
	Template string                 `json:"template"`
	Data     map[string]interface{} `json:"data,omitempty"`
}
