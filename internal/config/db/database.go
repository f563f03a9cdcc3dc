package db

import (
	"fmt"

	"github.com/linskybing/staffing-go/internal/config"
	"github.com/linskybing/staffing-go/internal/config/logger"
	"github.com/linskybing/staffing-go/internal/domain/audit"
	"github.com/linskybing/staffing-go/internal/domain/form"
	"github.com/linskybing/staffing-go/internal/domain/owner"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Fatal("Failed to connect to DB", zap.Error(err))
	}

	if err := Migrate(DB); err != nil {
		logger.Log.Fatal("Failed to auto migrate", zap.Error(err))
	}

	logger.Log.Info("Database connected and migrated", zap.String("host", config.DbHost), zap.String("name", config.DbName))
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Migrate creates or updates every table the service owns.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&form.Form{},
		&owner.Agency{},
		&owner.Business{},
		&owner.Worker{},
		&audit.AuditLog{},
	)
}
