package database

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/trivia/config"
	"github.com/lshigami/trivia/internal/model"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured driver without running migrations.
func Open(cfg config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	// Each connection to ":memory:" is a separate database.
	if cfg.Driver == config.DriverSQLite && cfg.Path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate creates or updates the categories and questions tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Category{}, &model.Question{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// NewDatabase provides the shared *gorm.DB and closes it when the app stops.
func NewDatabase(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(cfg.Database)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Database.Driver).Msg("Failed to connect to database")
		return nil, err
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("Database connected")

	if cfg.Database.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := Migrate(db); err != nil {
			log.Error().Err(err).Msg("Database migration failed")
			return nil, err
		}
		log.Info().Msg("Database migration completed successfully.")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			log.Info().Msg("Closing database connection...")
			return sqlDB.Close()
		},
	})
	return db, nil
}
