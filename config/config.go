package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server         Server
	Database       Database
	Log            Log
	SeedCategories bool
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Driver      string
	Host        string
	Port        string
	User        string
	Password    string `json:"-"`
	Name        string
	SSLMode     string
	Path        string // sqlite only
	AutoMigrate bool
}

type Log struct {
	Level  string
	Pretty bool
}

// DSN returns the postgres connection string.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_NAME", "trivia")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_PATH", "trivia.db")
	v.SetDefault("DATABASE_AUTO_MIGRATE", true)
	v.SetDefault("SEED_CATEGORIES", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")
	config.Database.Path = v.GetString("DATABASE_PATH")
	config.Database.AutoMigrate = v.GetBool("DATABASE_AUTO_MIGRATE")
	config.SeedCategories = v.GetBool("SEED_CATEGORIES")
	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Pretty = v.GetBool("LOG_PRETTY")

	switch config.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", config.Database.Driver)
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("unsupported GIN_MODE %q", config.Server.GinMode)
	}

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
