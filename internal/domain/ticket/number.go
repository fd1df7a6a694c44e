package ticket

import (
	"fmt"
	"time"
)

// FormatNumber derives the human-facing ticket number from the creation
// year and the ticket's database ID, e.g. "#2026-0042".
func FormatNumber(createdAt time.Time, id uint) string {
	return fmt.Sprintf("#%d-%04d", createdAt.Year(), id)
}
