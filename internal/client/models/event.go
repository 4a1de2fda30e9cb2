package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/unievents/internal/timex"
)

type EventType string

const (
	EventAcademic EventType = "academico"
	EventSocial   EventType = "social"
)

func (t EventType) Valid() bool {
	return t == EventAcademic || t == EventSocial
}

func (t EventType) DisplayName() string {
	if t == EventAcademic {
		return "Academic event"
	}
	return "Social event"
}

type Event struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
	Type          EventType `json:"type"`
	CreatedBy     int64     `json:"created_by,omitempty"`
	CreatedByName string    `json:"created_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
}

// UnmarshalJSON reads date and created_at with timex.ParseTime, so RFC 3339,
// form values like "2025-05-10T14:00" and SQL datetimes are all accepted.
func (e *Event) UnmarshalJSON(data []byte) error {
	type plain Event
	var v struct {
		plain
		Date      string `json:"date"`
		CreatedAt string `json:"created_at"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	date, err := timex.ParseTime(v.Date)
	if err != nil {
		return fmt.Errorf("event %d date: %w", v.ID, err)
	}
	created, err := timex.ParseTime(v.CreatedAt)
	if err != nil {
		return fmt.Errorf("event %d created_at: %w", v.ID, err)
	}

	*e = Event(v.plain)
	e.Date = date
	e.CreatedAt = created
	return nil
}

// EventInput is the payload of create and update requests.
type EventInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Type        EventType `json:"type"`
}

// Input returns the editable fields of e, used to prefill an edit form.
func (e *Event) Input() EventInput {
	t := e.Type
	if t == "" {
		t = EventAcademic
	}
	return EventInput{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Type:        t,
	}
}
