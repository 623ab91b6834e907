package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/angas/spotalert-go/hours"
	"github.com/angas/spotalert-go/logging"
	"github.com/spf13/viper"
)

type AppConfigTelegram struct {
	BotToken string `mapstructure:"bot_token"` // Handed over by BotFather on request
	ChatId   string `mapstructure:"chat_id"`
}

type AppConfigReport struct {
	// IANA timezone the daily price window is computed in, default: "Europe/Helsinki"
	Timezone *string `mapstructure:"timezone"`
	// First local hour of the search band (inclusive), default: 7
	StartHour *int `mapstructure:"start_hour"`
	// Last local hour of the search band (exclusive), default: 21
	EndHour *int `mapstructure:"end_hour"`
	// Cron expression for daemon mode. Empty means single-shot: run once and exit.
	RunAt string `mapstructure:"run_at"`
}

func (r AppConfigReport) GetTimezone() string {
	if r.Timezone == nil {
		return "Europe/Helsinki"
	}
	return *r.Timezone
}

func (r AppConfigReport) GetStartHour() int {
	if r.StartHour == nil {
		return 7
	}
	return *r.StartHour
}

func (r AppConfigReport) GetEndHour() int {
	if r.EndHour == nil {
		return 21
	}
	return *r.EndHour
}

func (r AppConfigReport) GetBand() hours.Band {
	return hours.Band{StartHour: r.GetStartHour(), EndHour: r.GetEndHour()}
}

type AppConfigLogging struct {
	// Min log level for console: "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	ConsoleLevel *string `mapstructure:"console_level"`
}

func (l AppConfigLogging) GetConsoleLevel() slog.Level {
	return logging.LevelFromString(l.ConsoleLevel)
}

type AppConfig struct {
	Telegram AppConfigTelegram `mapstructure:"telegram"`
	Report   AppConfigReport   `mapstructure:"report"`
	Logging  AppConfigLogging  `mapstructure:"logging"`
}

func Load(path string) (*AppConfig, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("config")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Credentials usually come from the environment (or a .env file)
	// rather than the yaml file.
	v.MustBindEnv("telegram.bot_token", "TELEGRAM_BOT_TOKEN")
	v.MustBindEnv("telegram.chat_id", "TELEGRAM_CHAT_ID")

	var c AppConfig

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *AppConfig) validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatId == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}

	start, end := c.Report.GetStartHour(), c.Report.GetEndHour()
	if start < 0 || start >= 24 {
		return fmt.Errorf("report.start_hour must be in 0-23, got %d", start)
	}
	if end <= 0 || end > 24 {
		return fmt.Errorf("report.end_hour must be in 1-24, got %d", end)
	}
	if start >= end {
		return fmt.Errorf("report.start_hour (%d) must be before report.end_hour (%d)", start, end)
	}

	return nil
}
