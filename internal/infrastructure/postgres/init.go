package postgres

import (
	"log"

	"github.com/LavaJover/shvark-merchant-service/internal/config"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func MustInitDB(cfg *config.MerchantConfig) *gorm.DB {
	dsn := cfg.MerchantDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	err = db.AutoMigrate(
		&models.MerchantModel{},
		&models.CategoryModel{},
		&models.CategoryLanguageModel{},
		&models.StoreModel{},
		&models.OperationalHourModel{},
		&models.ShiftModel{},
		&models.MenuModel{},
		&models.SettingModel{},
		&models.PriceBandModel{},
		&logger.DiscoverySearchEvent{},
	)
	if err != nil {
		log.Fatalf("failed to migrate db: %v\n", err.Error())
	}

	return db
}
