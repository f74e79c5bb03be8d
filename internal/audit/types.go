package audit

import "time"

// Actions recorded by the controller.
const (
	ActionAddRoom      = "add_room"
	ActionRemoveRoom   = "remove_room"
	ActionAddDevice    = "add_device"
	ActionRemoveDevice = "remove_device"
	ActionSwitchDevice = "switch_device"
	ActionReport       = "report"
)

// Entity types.
const (
	EntityRoom   = "room"
	EntityDevice = "device"
	EntityHome   = "home"
)

// Outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Entry is a single journal record.
type Entry struct {
	ID         string         `json:"id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityName string         `json:"entity_name,omitempty"`
	Room       string         `json:"room,omitempty"`
	Outcome    string         `json:"outcome"`
	Error      string         `json:"error,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Filter controls which entries List returns. Empty fields match everything.
type Filter struct {
	Action     string
	EntityType string
	EntityName string
	Room       string
	Limit      int // default 50, max 200
	Offset     int
}

// ListResult contains a page of entries, most recent first.
type ListResult struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
	Limit   int     `json:"limit"`
	Offset  int     `json:"offset"`
}
