package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusNew             TicketStatus = "new"
	StatusInProgress      TicketStatus = "in_progress"
	StatusPendingApproval TicketStatus = "pending_approval"
	StatusResolved        TicketStatus = "resolved"
	StatusRejected        TicketStatus = "rejected"
	StatusReopened        TicketStatus = "reopened"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:             true,
	StatusInProgress:      true,
	StatusPendingApproval: true,
	StatusResolved:        true,
	StatusRejected:        true,
	StatusReopened:        true,
}

// ticketStatusTransitions is the authoritative transition table. Entering
// resolved or reopened from pending_approval happens only through the
// creator's rating, and resolved→reopened only through the creator's
// explicit reopen inside the reopen window; the table records
// reachability, the entity methods enforce the trigger.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusNew: {
		StatusInProgress,
		StatusRejected,
	},
	StatusInProgress: {
		StatusPendingApproval,
		StatusRejected,
	},
	StatusReopened: {
		StatusInProgress,
		StatusPendingApproval,
		StatusRejected,
	},
	StatusPendingApproval: {
		StatusResolved,
		StatusReopened,
	},
	StatusResolved: {
		StatusReopened,
	},
	StatusRejected: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsNew() bool             { return ts == StatusNew }
func (ts TicketStatus) IsInProgress() bool      { return ts == StatusInProgress }
func (ts TicketStatus) IsPendingApproval() bool { return ts == StatusPendingApproval }
func (ts TicketStatus) IsResolved() bool        { return ts == StatusResolved }
func (ts TicketStatus) IsRejected() bool        { return ts == StatusRejected }
func (ts TicketStatus) IsReopened() bool        { return ts == StatusReopened }

// IsFinal reports whether no transition leaves the status without a
// creator action.
func (ts TicketStatus) IsFinal() bool {
	return ts == StatusRejected
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
