// Package config centralises configuration parsing for the activities service.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures runtime configuration values for the activities service.
type Config struct {
	HTTPAddress     string
	KafkaBrokers    []string // empty disables the roster event feed
	RosterTopic     string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads environment variables into Config, applying sensible defaults
// for local dev. Keys map to env names directly: HTTP_ADDRESS, KAFKA_BROKERS,
// ROSTER_TOPIC, LOG_LEVEL, LOG_FORMAT, SHUTDOWN_TIMEOUT.
func Load() Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("http_address", ":8080")
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("roster_topic", "roster_events")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("shutdown_timeout", 15*time.Second)

	cfg := Config{
		HTTPAddress:     v.GetString("http_address"),
		RosterTopic:     v.GetString("roster_topic"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}
	if brokers := v.GetString("kafka_brokers"); brokers != "" {
		cfg.KafkaBrokers = splitAndTrim(brokers)
	}
	return cfg
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
