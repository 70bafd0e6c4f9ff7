package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	evt := NewBaseEvent("loan.application.submitted", "42", "Application")

	if evt.EventID() == "" {
		t.Error("EventID is empty")
	}
	if evt.EventType() != "loan.application.submitted" {
		t.Errorf("EventType = %q", evt.EventType())
	}
	if evt.AggregateID() != "42" {
		t.Errorf("AggregateID = %q", evt.AggregateID())
	}
	if evt.AggregateType() != "Application" {
		t.Errorf("AggregateType = %q", evt.AggregateType())
	}
	if evt.OccurredAt().Before(before) {
		t.Errorf("OccurredAt = %v is before %v", evt.OccurredAt(), before)
	}
}

func TestBaseEventJSON(t *testing.T) {
	evt := NewBaseEvent("loan.application.submitted", "42", "Application")
	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["aggregate_id"] != "42" {
		t.Errorf("aggregate_id = %v, want 42", decoded["aggregate_id"])
	}
	if decoded["event_type"] != "loan.application.submitted" {
		t.Errorf("event_type = %v", decoded["event_type"])
	}
}
