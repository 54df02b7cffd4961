package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort             string        `mapstructure:"HTTP_PORT" validate:"required,numeric"`
	DBHost               string        `mapstructure:"DB_HOST" validate:"required"`
	DBPort               string        `mapstructure:"DB_PORT" validate:"required,numeric"`
	DBUser               string        `mapstructure:"DB_USER" validate:"required"`
	DBPassword           string        `mapstructure:"DB_PASSWORD"`
	DBName               string        `mapstructure:"DB_NAME" validate:"required"`
	DBSslMode            string        `mapstructure:"DB_SSLMODE" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	LogLevel             string        `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	JWTSecret            string        `mapstructure:"JWT_SECRET" validate:"required,min=16"`
	StatusReportSchedule string        `mapstructure:"STATUS_REPORT_SCHEDULE" validate:"required"`
	ShutdownTimeout      time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

var defaults = map[string]any{
	"HTTP_PORT":              "8080",
	"DB_HOST":                "localhost",
	"DB_PORT":                "5432",
	"DB_USER":                "postgres",
	"DB_PASSWORD":            "",
	"DB_NAME":                "smartlogi",
	"DB_SSLMODE":             "disable",
	"LOG_LEVEL":              "info",
	"JWT_SECRET":             "",
	"STATUS_REPORT_SCHEDULE": "@every 1m",
	"SHUTDOWN_TIMEOUT":       "10s",
}

// LoadConfig reads the environment, after loading envFile if it exists, and
// validates the result. An empty envFile skips the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost,
		c.DBPort,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBSslMode,
	)
}
