package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// DefaultEnvFile is loaded when Load is given no files
const DefaultEnvFile = ".env"

// ValidationError reports a setting that parsed but cannot be used
type ValidationError struct {
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Key, e.Reason)
}

// Config is the process configuration read from the environment
type Config struct {
	// Discord
	DiscordToken     string `env:"DISCORD_TOKEN,required,notEmpty"`
	ApplicationID    string `env:"APPLICATION_ID"`
	GuildID          string `env:"GUILD_ID"`
	ResultsChannelID string `env:"WAR_RESULTS_CHANNEL_ID"`

	// Google Sheets
	SpreadsheetID      string `env:"SPREADSHEET_ID,required,notEmpty"`
	ServiceAccountFile string `env:"SERVICE_ACCOUNT_FILE" envDefault:"resources/service_account.json"`

	// Redis holds pending close confirmations
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// War sheets and archives
	TemplateSheet  string        `env:"WAR_TEMPLATE_SHEET" envDefault:"경내(원본)"`
	SheetPrefix    string        `env:"WAR_SHEET_PREFIX" envDefault:"내전"`
	RecordPrefix   string        `env:"WAR_RECORD_PREFIX" envDefault:"내전기록"`
	RecordsDir     string        `env:"WAR_RECORDS_DIR" envDefault:"records"`
	HistorySheet   string        `env:"WAR_HISTORY_SHEET"`
	MemberSheet    string        `env:"MEMBER_SHEET" envDefault:"MEMBER"`
	ConfirmTimeout time.Duration `env:"WAR_CONFIRM_TIMEOUT" envDefault:"60s"`

	// Timezone names the zone dates are computed in
	Timezone string         `env:"TIMEZONE" envDefault:"Asia/Seoul"`
	Location *time.Location `env:"-"`

	LogLevel       zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool          `env:"LOG_DEVELOPMENT"`
}

// Load reads the optional env files and then parses the environment.
// Variables already set in the environment win over file entries.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.ConfirmTimeout <= 0 {
		return &ValidationError{Key: "WAR_CONFIRM_TIMEOUT", Reason: "must be positive"}
	}

	if c.RedisDB < 0 {
		return &ValidationError{Key: "REDIS_DB", Reason: "must not be negative"}
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return &ValidationError{Key: "TIMEZONE", Reason: err.Error()}
	}
	c.Location = loc

	return nil
}
