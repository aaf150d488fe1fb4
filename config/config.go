package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Household Relay specifics
	Voice     VoiceConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// VoiceConfig tunes the interpretation pipeline.
type VoiceConfig struct {
	Timezone      string // IANA zone used to resolve relative dates
	TraceCapacity int    // Debug trace ring size
	TraceEnabled  bool   // Whether routing decisions are captured at startup
	SeedFixtures  bool   // Load the demo household on boot
}

// RateLimitConfig throttles the voice endpoints per device.
type RateLimitConfig struct {
	Enabled   bool
	PerMinute int
	Burst     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Household Relay specifics
	cfg.Voice.Timezone = viper.GetString("voice.timezone")
	cfg.Voice.TraceCapacity = viper.GetInt("voice.trace_capacity")
	cfg.Voice.TraceEnabled = viper.GetBool("voice.trace_enabled")
	cfg.Voice.SeedFixtures = viper.GetBool("voice.seed_fixtures")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("voice.timezone", "UTC")
	viper.SetDefault("voice.trace_capacity", 120)
	viper.SetDefault("voice.trace_enabled", true)
	viper.SetDefault("voice.seed_fixtures", true)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_minute", 120)
	viper.SetDefault("rate_limit.burst", 20)
}
