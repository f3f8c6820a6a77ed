package database

import (
	"fmt"

	"github.com/yeremiapane/restaurant-api/config"
	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/utils"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to MySQL and checks the connection before returning.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	utils.InfoLogger.Printf("Connected to database %s on %s:%d", cfg.Name, cfg.Host, cfg.Port)
	return db, nil
}

// Migrate creates the menu and reservations tables when they are missing.
// Production schemas are applied outside the service; this is for local
// setups and tests.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.MenuItem{}, &models.Reservation{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, table := range []string{models.MenuItem{}.TableName(), models.Reservation{}.TableName()} {
		if !db.Migrator().HasTable(table) {
			return fmt.Errorf("table %s missing after migration", table)
		}
		utils.InfoLogger.Printf("Table verified: %s", table)
	}
	return nil
}
