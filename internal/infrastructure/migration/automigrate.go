package migration

import (
	"yordam/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every model in dependency order for the
// AutoMigrate strategy.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.RegionModel{},
		&models.DepartmentModel{},
		&models.UserModel{},
		&models.SystemModel{},
		&models.ResponsibilityModel{},
		&models.TicketModel{},
		&models.TicketMessageModel{},
		&models.TicketHistoryModel{},
		&models.NotificationModel{},
	}
}
