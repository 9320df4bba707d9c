package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Keys shared by flags, environment (AOC_ prefix) and Load.
const (
	KeyInputDir      = "input_dir"
	KeyPort          = "port"
	KeyAPIKey        = "api_key"
	KeyWorkers       = "workers"
	KeyMaxInputBytes = "max_input_bytes"
	KeyLogFormat     = "log_format"
	KeyLogLevel      = "log_level"
	KeyStatsWindow   = "stats_window"
)

const (
	defaultInputDir      = "problems"
	defaultPort          = "8090"
	defaultMaxInputBytes = 1 << 20 // 1MB
	defaultLogFormat     = "json"
	defaultLogLevel      = "info"
	defaultStatsWindow   = 1 * time.Hour
)

type Config struct {
	// Puzzle inputs live at <InputDir>/<day>/input.txt
	InputDir string

	// HTTP
	Port   string
	APIKey string // empty disables auth

	// Solver fan-out
	Workers int

	// Upload limits
	MaxInputBytes int64

	// Logging
	LogFormat string // "json" or "text"
	LogLevel  string

	// Latency stats retention
	StatsWindow time.Duration
}

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyInputDir, defaultInputDir)
	v.SetDefault(KeyPort, defaultPort)
	v.SetDefault(KeyWorkers, runtime.GOMAXPROCS(0))
	v.SetDefault(KeyMaxInputBytes, defaultMaxInputBytes)
	v.SetDefault(KeyLogFormat, defaultLogFormat)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyStatsWindow, defaultStatsWindow)
}

// Load reads the configuration from v, falling back to defaults for unset or
// non-positive values.
func Load(v *viper.Viper) Config {
	SetDefaults(v)
	cfg := Config{
		InputDir: v.GetString(KeyInputDir),

		Port:   v.GetString(KeyPort),
		APIKey: v.GetString(KeyAPIKey),

		Workers: v.GetInt(KeyWorkers),

		MaxInputBytes: v.GetInt64(KeyMaxInputBytes),

		LogFormat: v.GetString(KeyLogFormat),
		LogLevel:  v.GetString(KeyLogLevel),

		StatsWindow: v.GetDuration(KeyStatsWindow),
	}

	if cfg.InputDir == "" {
		cfg.InputDir = defaultInputDir
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.MaxInputBytes <= 0 {
		cfg.MaxInputBytes = defaultMaxInputBytes
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = defaultStatsWindow
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%s must be json or text, got %q", KeyLogFormat, c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%s must be debug, info, warn or error, got %q", KeyLogLevel, c.LogLevel)
	}
	return nil
}
