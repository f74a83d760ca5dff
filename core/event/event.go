package event

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Event wraps a published payload with metadata.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Payload   any       `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// NewEvent creates an Event named after the payload type with a fresh UUID.
func NewEvent(payload any) Event {
	return Event{
		ID:        uuid.New().String(),
		Name:      nameOf(payload),
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

// nameOf returns the bare type name of v, unwrapping pointers.
// Types with the same name in different packages share handlers.
func nameOf(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
