package seeds

import (
	"gorm.io/gorm"

	"yordam/internal/infrastructure/persistence/models"
)

// SeedRegions inserts the standard region list on first start. Existing
// codes are left untouched.
func SeedRegions(db *gorm.DB) error {
	regions := []models.RegionModel{
		{Name: "Toshkent shahri", Code: "TAS", IsActive: true},
		{Name: "Toshkent viloyati", Code: "TOS", IsActive: true},
		{Name: "Andijon", Code: "AND", IsActive: true},
		{Name: "Buxoro", Code: "BUX", IsActive: true},
		{Name: "Farg'ona", Code: "FAR", IsActive: true},
		{Name: "Jizzax", Code: "JIZ", IsActive: true},
		{Name: "Namangan", Code: "NAM", IsActive: true},
		{Name: "Navoiy", Code: "NAV", IsActive: true},
		{Name: "Qashqadaryo", Code: "QAS", IsActive: true},
		{Name: "Qoraqalpog'iston", Code: "QOR", IsActive: true},
		{Name: "Samarqand", Code: "SAM", IsActive: true},
		{Name: "Sirdaryo", Code: "SIR", IsActive: true},
		{Name: "Surxondaryo", Code: "SUR", IsActive: true},
		{Name: "Xorazm", Code: "XOR", IsActive: true},
	}

	for _, r := range regions {
		var count int64
		if err := db.Model(&models.RegionModel{}).Where("code = ?", r.Code).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			return err
		}
	}
	return nil
}
