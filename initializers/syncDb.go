package initializers

import (
	"github.com/vasthra/vasthra-api/logger"
	"github.com/vasthra/vasthra-api/models"
)

func SyncDatabase() error {
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return err
	}
	logger.Log.Info("Database synced successfully.")
	return nil
}
