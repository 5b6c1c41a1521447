package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
	Currency string `env:"CURRENCY"`
}

type Database struct {
	DSN      string `env:"DATABASE_URI"`
	MaxConns int32  `env:"DB_MAX_CONNS"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// NewConfig reads command line flags first, then lets environment
// variables (optionally loaded from a .env file) override them.
func NewConfig(args []string) (*Config, error) {
	var db Database
	var http HTTP
	var app App

	flags := flag.NewFlagSet("storefront", flag.ContinueOnError)
	flags.StringVar(&db.DSN, "d", "", "Database string")
	flags.Func("max-conns", "Max database connections", func(s string) error {
		var n int32
		if _, err := fmt.Sscan(s, &n); err != nil {
			return err
		}
		db.MaxConns = n
		return nil
	})
	flags.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flags.StringVar(&app.LogLevel, "l", `info`, "Log level")
	flags.StringVar(&app.Mode, "m", AppModeDevelop, "PROD / DEV")
	flags.StringVar(&app.Currency, "c", `EUR`, "Store currency, ISO 4217")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		App:      &app,
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("database DSN is empty")
	}
	if c.App.Mode != AppModeDevelop && c.App.Mode != AppModeProduction {
		return fmt.Errorf("unknown app mode %q", c.App.Mode)
	}
	if c.Database.MaxConns < 0 {
		return fmt.Errorf("max conns %d is negative", c.Database.MaxConns)
	}
	return nil
}

// a missing .env file is fine, the environment is used as is
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	return nil
}
