package migration

import (
	"covena/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ContractModel{},
		&models.CovenantModel{},
		&models.CovenantHealthModel{},
		&models.AlertModel{},
	}
}
