package ticket

import "errors"

var (
	// ErrInvalidTransition is returned when a requested status change is
	// not in the allowed-next set for the ticket's current status.
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrReopenWindowExpired is returned when a creator reopens a
	// resolved ticket past the reopen window.
	ErrReopenWindowExpired = errors.New("reopen window has expired")

	// ErrAlreadyAssigned is returned when a technician tries to take a
	// ticket that already has an assignee.
	ErrAlreadyAssigned = errors.New("ticket is already assigned")

	// ErrNotPendingApproval is returned when a rating is submitted on a
	// ticket that is not awaiting the creator's confirmation.
	ErrNotPendingApproval = errors.New("ticket is not pending approval")
)
