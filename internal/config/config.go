package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	TokenTTLMinutes int    `mapstructure:"TOKEN_TTL_MINUTES"`
	BcryptCost      int    `mapstructure:"BCRYPT_COST"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Shift calendar configuration
	ShiftsPerDay      int    `mapstructure:"SHIFTS_PER_DAY"`
	ShiftDayStartHour int    `mapstructure:"SHIFT_DAY_START_HOUR"`
	ShiftTimezone     string `mapstructure:"SHIFT_TIMEZONE"`
}

const defaultJWTSecret = "your-secret-key-change-in-production"

// defaults are applied before the optional config file and the environment.
// Every key needs an entry here for AutomaticEnv to reach it through Unmarshal.
var defaults = map[string]interface{}{
	"ENVIRONMENT": "development",
	"PORT":        "8000",
	"LOG_LEVEL":   "info",

	"DATABASE_URL": "",
	"DB_HOST":      "localhost",
	"DB_PORT":      "5432",
	"DB_USER":      "postgres",
	"DB_PASSWORD":  "postgres",
	"DB_NAME":      "control_room",
	"DB_SSL_MODE":  "disable",

	"JWT_SECRET":        defaultJWTSecret,
	"TOKEN_TTL_MINUTES": 30,
	"BCRYPT_COST":       12,

	"ALLOWED_ORIGINS": []string{"http://localhost:3000", "http://localhost:5173"},

	// three 8h shifts, the first starting at 07:00
	"SHIFTS_PER_DAY":       3,
	"SHIFT_DAY_START_HOUR": 7,
	"SHIFT_TIMEZONE":       "UTC",
}

// Load reads config.yaml from . or ./config when present, then the environment
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.IsProduction() && config.JWTSecret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if config.DatabaseURL == "" {
		return errors.New("DATABASE_URL or DB_* settings are required")
	}

	if config.TokenTTLMinutes <= 0 {
		return fmt.Errorf("TOKEN_TTL_MINUTES must be positive")
	}

	if config.ShiftsPerDay <= 0 || 24%config.ShiftsPerDay != 0 {
		return fmt.Errorf("SHIFTS_PER_DAY must evenly divide 24 hours, got %d", config.ShiftsPerDay)
	}

	if config.ShiftDayStartHour < 0 || config.ShiftDayStartHour > 23 {
		return fmt.Errorf("SHIFT_DAY_START_HOUR must be between 0 and 23, got %d", config.ShiftDayStartHour)
	}

	if _, err := time.LoadLocation(config.ShiftTimezone); err != nil {
		return fmt.Errorf("invalid SHIFT_TIMEZONE %q: %w", config.ShiftTimezone, err)
	}

	return nil
}

// TokenTTL returns the access token lifetime
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// ShiftLocation returns the time zone operational dates are computed in.
// Falls back to UTC for configs built without Load.
func (c *Config) ShiftLocation() *time.Location {
	loc, err := time.LoadLocation(c.ShiftTimezone)
	if err != nil || c.ShiftTimezone == "" {
		return time.UTC
	}
	return loc
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
