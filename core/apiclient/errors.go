package apiclient

import (
	"encoding/json"
	"errors"
	"strings"
)

// Error kinds. Match them with errors.Is.
var (
	// ErrUnauthorized is returned for 401 responses.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRemote is returned for any other non-2xx response.
	ErrRemote = errors.New("remote error")
	// ErrNetwork is returned when no response was received.
	ErrNetwork = errors.New("network error")
	// ErrUnexpected is returned when a request could not be built or a response not decoded.
	ErrUnexpected = errors.New("unexpected error")

	// ErrInvalidBaseURL is returned by New for a base URL without an http(s) scheme and host.
	ErrInvalidBaseURL = errors.New("apiclient: base URL must be an absolute http(s) URL")
)

// User-facing fallback messages.
const (
	MessageRemote     = "An error occurred"
	MessageNetwork    = "No response from server. Please check your connection."
	MessageUnexpected = "An unexpected error occurred"
)

// Error is the normalized failure returned by Client.Do. Message is safe to show to users.
type Error struct {
	Status  int
	Message string
	kind    error
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches the error kind.
func (e *Error) Is(target error) bool {
	return target == e.kind
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func remoteError(status int, body []byte) *Error {
	kind := ErrRemote
	if status == 401 {
		kind = ErrUnauthorized
	}
	return &Error{Status: status, Message: extractMessage(body), kind: kind}
}

func networkError(cause error) *Error {
	return &Error{Message: MessageNetwork, kind: ErrNetwork, cause: cause}
}

func unexpectedError(cause error) *Error {
	msg := MessageUnexpected
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}
	return &Error{Message: msg, kind: ErrUnexpected, cause: cause}
}

// extractMessage reads "message" (string or list of strings), then "error",
// from a JSON error body.
func extractMessage(body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return MessageRemote
	}

	for _, raw := range []json.RawMessage{payload.Message, payload.Error} {
		if msg := rawMessage(raw); msg != "" {
			return msg
		}
	}
	return MessageRemote
}

func rawMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.TrimSpace(strings.Join(list, ", "))
	}
	return ""
}
