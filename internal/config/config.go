package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/kjschool/attendance/internal/security"
	"github.com/kjschool/attendance/internal/validation"
)

// Config holds runtime configuration values for the attendance tool.
type Config struct {
	SchoolName        string
	MinAge            int
	MaxAge            int
	AdminPasswordHash string

	// TeacherPasswordHash is loaded for compatibility with existing config
	// documents but no authentication path reads it: teacher logins check
	// the per-row hashes in the teachers table.
	TeacherPasswordHash string

	ConfigPath   string
	DatabasePath string
	LogPath      string
}

// Default file locations, overridable through the environment.
const (
	DefaultConfigPath   = "config.json"
	DefaultDatabasePath = "school_attendance.db"
	DefaultLogPath      = "school_auth.log"
)

// Load reads the JSON configuration document, creating it with defaults on
// first run. A malformed document logs a warning and falls back to defaults
// rather than failing startup. Paths come from the environment, with an
// optional .env file.
func Load(logger zerolog.Logger) Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SCHOOLATTEND")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := Config{
		ConfigPath:   firstNonEmpty(v.GetString("config"), DefaultConfigPath),
		DatabasePath: firstNonEmpty(v.GetString("db.path"), DefaultDatabasePath),
		LogPath:      firstNonEmpty(v.GetString("log.path"), DefaultLogPath),
	}

	doc := viper.New()
	doc.SetConfigFile(cfg.ConfigPath)
	doc.SetConfigType("json")

	doc.SetDefault("school_name", "King James School, Knaresborough")
	doc.SetDefault("min_age", validation.DefaultMinAge)
	doc.SetDefault("max_age", validation.DefaultMaxAge)
	doc.SetDefault("admin_password", security.HashPassword("admin123"))
	doc.SetDefault("teacher_password", security.HashPassword("teacher123"))

	if _, err := os.Stat(cfg.ConfigPath); errors.Is(err, os.ErrNotExist) {
		if writeErr := doc.SafeWriteConfigAs(cfg.ConfigPath); writeErr != nil {
			logger.Warn().Err(writeErr).Str("path", cfg.ConfigPath).
				Msg("could not create default config file")
		}
	}

	if err := doc.ReadInConfig(); err != nil {
		logger.Warn().Err(err).Str("path", cfg.ConfigPath).
			Msg("invalid config file, using default configuration")
	}

	cfg.SchoolName = doc.GetString("school_name")
	cfg.MinAge = doc.GetInt("min_age")
	cfg.MaxAge = doc.GetInt("max_age")
	cfg.AdminPasswordHash = doc.GetString("admin_password")
	cfg.TeacherPasswordHash = doc.GetString("teacher_password")

	if cfg.MinAge <= 0 || cfg.MaxAge < cfg.MinAge {
		logger.Warn().Int("min_age", cfg.MinAge).Int("max_age", cfg.MaxAge).
			Msg("invalid age bounds in config, using defaults")
		cfg.MinAge = validation.DefaultMinAge
		cfg.MaxAge = validation.DefaultMaxAge
	}

	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
