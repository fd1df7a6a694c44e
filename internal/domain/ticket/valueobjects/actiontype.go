package valueobjects

import "fmt"

// ActionType tags a history row with the operation that produced it.
type ActionType string

const (
	ActionCreated       ActionType = "created"
	ActionStatusChanged ActionType = "status_changed"
	ActionAssigned      ActionType = "assigned"
	ActionReassigned    ActionType = "reassigned"
	ActionComment       ActionType = "comment"
	ActionReopened      ActionType = "reopened"
	ActionRated         ActionType = "rated"
	ActionFileAttached  ActionType = "file_attached"
)

var validActionTypes = map[ActionType]bool{
	ActionCreated:       true,
	ActionStatusChanged: true,
	ActionAssigned:      true,
	ActionReassigned:    true,
	ActionComment:       true,
	ActionReopened:      true,
	ActionRated:         true,
	ActionFileAttached:  true,
}

func (a ActionType) String() string {
	return string(a)
}

func (a ActionType) IsValid() bool {
	return validActionTypes[a]
}

func NewActionType(s string) (ActionType, error) {
	a := ActionType(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid action type: %s", s)
	}
	return a, nil
}
