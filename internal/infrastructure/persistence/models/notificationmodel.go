package models

type NotificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Type      string `gorm:"size:30;not null;index"`
	Title     string `gorm:"size:255;not null"`
	Text      string `gorm:"type:text"`
	URL       string `gorm:"size:255"`
	IsRead    bool   `gorm:"not null;default:false;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
