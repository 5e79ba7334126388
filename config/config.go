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

	// Scheduling engine
	Schedule ScheduleConfig

	// AI capture
	Capture CaptureConfig
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

type ScheduleConfig struct {
	// DefaultTimezone is used when a request carries no X-Timezone header.
	// Accepts an IANA name or a fixed ±HH:MM offset.
	DefaultTimezone string
}

type CaptureConfig struct {
	RateLimitPerMin int

	// OpenAI-compatible extraction model. Capture routes stay off when
	// APIKey is empty.
	APIKey  string
	BaseURL string
	Model   string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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

	// Scheduling
	cfg.Schedule.DefaultTimezone = viper.GetString("schedule.default_timezone")
	if tz := viper.GetString("default_timezone"); tz != "" {
		cfg.Schedule.DefaultTimezone = tz
	}

	// Capture
	cfg.Capture.RateLimitPerMin = viper.GetInt("capture.rate_limit_per_min")
	cfg.Capture.APIKey = viper.GetString("capture.api_key")
	cfg.Capture.BaseURL = viper.GetString("capture.base_url")
	cfg.Capture.Model = viper.GetString("capture.model")
	if key := viper.GetString("capture_api_key"); key != "" {
		cfg.Capture.APIKey = key
	}

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
	viper.SetDefault("schedule.default_timezone", "Asia/Karachi")
	viper.SetDefault("capture.rate_limit_per_min", 30)
}
