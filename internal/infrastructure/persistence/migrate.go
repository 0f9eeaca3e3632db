package persistence

import (
	"github.com/finopenpos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for all persistence models.
// Ordered so referenced tables exist before the tables pointing at them.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.ProductModel{},
		&models.CustomerModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.TransactionModel{},
		&models.DebtPaymentModel{},
		&models.PosConfigModel{},
	)
}
