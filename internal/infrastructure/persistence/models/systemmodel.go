package models

type SystemModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:150;not null"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SystemModel) TableName() string {
	return "systems"
}

// ResponsibilityModel stores one responsibility row. RegionID NULL
// encodes the republic-wide scope; the application layer converts it to
// the explicit scope type and never lets a default row carry a region.
type ResponsibilityModel struct {
	ID           uint   `gorm:"primaryKey"`
	SystemID     uint   `gorm:"not null;index:idx_resp_system_user_region,unique"`
	UserID       uint   `gorm:"not null;index:idx_resp_system_user_region,unique;index"`
	RegionID     *uint  `gorm:"index:idx_resp_system_user_region,unique;index"`
	RoleInSystem string `gorm:"size:20;not null;index"`
	IsDefault    bool   `gorm:"not null;default:false"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ResponsibilityModel) TableName() string {
	return "system_responsibles"
}
