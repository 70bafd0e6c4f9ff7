package model

// StateCodePending is the short code of the default initial workflow state.
const StateCodePending = "PEN"

// State is a workflow status for an application. Read-only reference data.
type State struct {
	ID          int64
	Name        string
	Description string
	Code        string
}
