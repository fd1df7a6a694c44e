package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID            uint           `gorm:"primaryKey"`
	Number        string         `gorm:"uniqueIndex;size:50;not null"`
	Title         string         `gorm:"size:200;not null"`
	Description   string         `gorm:"type:text;not null"`
	SystemID      uint           `gorm:"not null;index"`
	RegionID      uint           `gorm:"not null;index"`
	CreatorID     uint           `gorm:"not null;index"`
	AssigneeID    *uint          `gorm:"index"`
	Priority      string         `gorm:"size:20;not null;index"`
	Status        string         `gorm:"size:30;not null;index"`
	Rating        *int           `gorm:"index"`
	RatingComment string         `gorm:"type:text"`
	Attachment    datatypes.JSON `gorm:"type:json"`
	ResolvedAt    *int64
	CreatedAt     int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt     int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketMessageModel struct {
	ID         uint           `gorm:"primaryKey"`
	TicketID   uint           `gorm:"not null;index"`
	SenderID   uint           `gorm:"not null;index"`
	Text       string         `gorm:"type:text;not null"`
	Attachment datatypes.JSON `gorm:"type:json"`
	CreatedAt  int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketMessageModel) TableName() string {
	return "ticket_messages"
}

type TicketHistoryModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	ChangedBy  *uint  `gorm:"index"`
	ActionType string `gorm:"size:30;not null;index"`
	OldValue   string `gorm:"type:text"`
	NewValue   string `gorm:"type:text"`
	Message    string `gorm:"type:text"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketHistoryModel) TableName() string {
	return "ticket_history"
}
