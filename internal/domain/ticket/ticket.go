package ticket

import (
	"fmt"
	"time"

	vo "yordam/internal/domain/ticket/valueobjects"
)

// Attachment is the metadata record of an uploaded file. Storage of the
// file body is outside this core; only the record is kept.
type Attachment struct {
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
	FileSize int64  `json:"file_size"`
}

// Ticket is a support request filed against a system. Its region is
// copied from the creator at creation time and never follows later
// changes to the creator's region.
type Ticket struct {
	id            uint
	number        string
	title         string
	description   string
	systemID      uint
	regionID      uint
	creatorID     uint
	assigneeID    *uint
	priority      vo.Priority
	status        vo.TicketStatus
	rating        *int
	ratingComment string
	attachment    *Attachment
	resolvedAt    *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewTicket(
	title string,
	description string,
	systemID uint,
	regionID uint,
	creatorID uint,
	priority vo.Priority,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 10000 {
		return nil, fmt.Errorf("description exceeds maximum length of 10000 characters")
	}
	if systemID == 0 {
		return nil, fmt.Errorf("system ID is required")
	}
	if regionID == 0 {
		return nil, fmt.Errorf("region ID is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := time.Now()
	return &Ticket{
		title:       title,
		description: description,
		systemID:    systemID,
		regionID:    regionID,
		creatorID:   creatorID,
		priority:    priority,
		status:      vo.StatusNew,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	title string,
	description string,
	systemID uint,
	regionID uint,
	creatorID uint,
	assigneeID *uint,
	priority vo.Priority,
	status vo.TicketStatus,
	rating *int,
	ratingComment string,
	attachment *Attachment,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:            id,
		number:        number,
		title:         title,
		description:   description,
		systemID:      systemID,
		regionID:      regionID,
		creatorID:     creatorID,
		assigneeID:    assigneeID,
		priority:      priority,
		status:        status,
		rating:        rating,
		ratingComment: ratingComment,
		attachment:    attachment,
		resolvedAt:    resolvedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) Number() string          { return t.number }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) SystemID() uint          { return t.systemID }
func (t *Ticket) RegionID() uint          { return t.regionID }
func (t *Ticket) CreatorID() uint         { return t.creatorID }
func (t *Ticket) AssigneeID() *uint       { return t.assigneeID }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) Rating() *int            { return t.rating }
func (t *Ticket) RatingComment() string   { return t.ratingComment }
func (t *Ticket) Attachment() *Attachment { return t.attachment }
func (t *Ticket) ResolvedAt() *time.Time  { return t.resolvedAt }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }

func (t *Ticket) IsAssigned() bool {
	return t.assigneeID != nil
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

func (t *Ticket) SetAttachment(a *Attachment) {
	t.attachment = a
	t.updatedAt = time.Now()
}

// ChangeStatus applies a directly requested target status. Only
// in_progress, pending_approval and rejected may be requested directly;
// resolved and reopened are reachable only through Rate and Reopen.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, newStatus)
	}
	if newStatus.IsResolved() || newStatus.IsReopened() {
		return fmt.Errorf("%w: %s is only reachable through rating or reopen", ErrInvalidTransition, newStatus)
	}
	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// Rate records the creator's rating on a pending_approval ticket and
// drives the resulting transition: a rating at or above the threshold
// resolves the ticket (stamping resolvedAt exactly once), a lower rating
// reopens it.
func (t *Ticket) Rate(rating int, comment string, threshold int) (vo.TicketStatus, error) {
	if !t.status.IsPendingApproval() {
		return "", fmt.Errorf("%w: current status is %s", ErrNotPendingApproval, t.status)
	}
	if rating < 1 || rating > 5 {
		return "", fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}

	t.rating = &rating
	t.ratingComment = comment
	now := time.Now()
	t.updatedAt = now

	if rating >= threshold {
		t.status = vo.StatusResolved
		if t.resolvedAt == nil {
			t.resolvedAt = &now
		}
	} else {
		t.status = vo.StatusReopened
	}
	return t.status, nil
}

// Reopen reverts a resolved ticket to reopened. Permitted only while
// now - resolvedAt is within the window; a missing resolvedAt never
// times out. The creator-only gate belongs to the caller.
func (t *Ticket) Reopen(now time.Time, window time.Duration) error {
	if !t.status.IsResolved() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.status, vo.StatusReopened)
	}
	if t.resolvedAt != nil && now.Sub(*t.resolvedAt) > window {
		return fmt.Errorf("%w: resolved at %s", ErrReopenWindowExpired, t.resolvedAt.Format(time.RFC3339))
	}

	t.status = vo.StatusReopened
	t.updatedAt = now
	return nil
}

// Take is a technician's self-claim on an unassigned new ticket. The
// responsibility and region preconditions are checked by the routing
// engine before this is called.
func (t *Ticket) Take(technicianID uint) error {
	if technicianID == 0 {
		return fmt.Errorf("technician ID cannot be zero")
	}
	if t.assigneeID != nil {
		return fmt.Errorf("%w: assignee %d", ErrAlreadyAssigned, *t.assigneeID)
	}
	if !t.status.IsNew() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.status, vo.StatusInProgress)
	}

	t.assigneeID = &technicianID
	t.status = vo.StatusInProgress
	t.updatedAt = time.Now()
	return nil
}

// AssignTo sets or replaces the assignee. The returned flag reports
// whether a prior assignee existed, which decides the assigned vs
// reassigned history tag.
func (t *Ticket) AssignTo(assigneeID uint) (reassigned bool, err error) {
	if assigneeID == 0 {
		return false, fmt.Errorf("assignee ID cannot be zero")
	}

	reassigned = t.assigneeID != nil
	t.assigneeID = &assigneeID
	t.updatedAt = time.Now()
	return reassigned, nil
}
