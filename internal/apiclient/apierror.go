package apiclient

import (
	"encoding/json"
	"net/http"
)

// APIError is a catalog API error response. Its presence means the server
// answered; transport failures are returned as plain wrapped errors instead.
type APIError struct {
	Status   int
	Messages []string
	// MessageWasList records whether the server sent a list of
	// validation messages rather than a single string.
	MessageWasList bool
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return e.Messages[0]
	}
	return http.StatusText(e.Status)
}

// Message returns the primary server message, "" when the body carried none.
func (e *APIError) Message() string {
	if len(e.Messages) == 0 {
		return ""
	}
	return e.Messages[0]
}

func newAPIError(status int, body []byte) *APIError {
	var envelope struct {
		Status int `json:"status"`
		Data   struct {
			Message json.RawMessage `json:"message"`
		} `json:"data"`
	}
	apiErr := &APIError{Status: status}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiErr
	}
	if len(envelope.Data.Message) == 0 {
		return apiErr
	}
	var list []string
	if err := json.Unmarshal(envelope.Data.Message, &list); err == nil {
		apiErr.Messages = list
		apiErr.MessageWasList = true
		return apiErr
	}
	var one string
	if err := json.Unmarshal(envelope.Data.Message, &one); err == nil && one != "" {
		apiErr.Messages = []string{one}
	}
	return apiErr
}
