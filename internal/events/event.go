package events

import (
	"encoding/json"
	"time"
)

type Type string

const (
	ExpenseCreated Type = "expense.created"
	ExpenseUpdated Type = "expense.updated"
	ExpenseDeleted Type = "expense.deleted"
	IncomeCreated  Type = "income.created"
	IncomeUpdated  Type = "income.updated"
	IncomeDeleted  Type = "income.deleted"
)

// ChangeEvent describes one committed mutation of a user's data.
type ChangeEvent struct {
	Type       Type            `json:"type"`
	UserID     string          `json:"userId"`
	ResourceID string          `json:"resourceId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// NewChangeEvent marshals payload into the event. A nil payload is left out,
// as for deletions.
func NewChangeEvent(eventType Type, userID, resourceID string, occurredAt time.Time, payload interface{}) (ChangeEvent, error) {
	ev := ChangeEvent{
		Type:       eventType,
		UserID:     userID,
		ResourceID: resourceID,
		OccurredAt: occurredAt.UTC(),
	}
	if payload == nil {
		return ev, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return ChangeEvent{}, err
	}
	ev.Payload = raw
	return ev, nil
}
