package db

import (
	"time"

	"gorm.io/gorm"
)

// Active filters records whose is_active flag is set. Regions, departments,
// systems, and users all carry the flag.
func Active() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	}
}

// CreatedBetween bounds a query on the created_at column. Zero bounds are
// skipped. created_at columns store milli-epoch integers, so the bounds
// are bound as UnixMilli values.
func CreatedBetween(from, to time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !from.IsZero() {
			db = db.Where("created_at >= ?", from.UnixMilli())
		}
		if !to.IsZero() {
			db = db.Where("created_at <= ?", to.UnixMilli())
		}
		return db
	}
}

// Unassigned filters tickets with no assignee that are still in the new
// status, the routing engine's definition of the unassigned queue.
func Unassigned() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("assignee_id IS NULL AND status = ?", "new")
	}
}
