package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from environment variables
type Env struct {
	ConfigPath    string `env:"CALCIT_CONFIG"`
	Debug         bool   `env:"CALCIT_DEBUG"`
	LegacyDebug   string `env:"DEBUG"`
	LogFile       string `env:"CALCIT_LOG_FILE"`
	LogMaxSize    int    `env:"CALCIT_LOG_MAX_SIZE"    envDefault:"1"`
	LogMaxBackups int    `env:"CALCIT_LOG_MAX_BACKUPS" envDefault:"2"`
	LogMaxAge     int    `env:"CALCIT_LOG_MAX_AGE"     envDefault:"30"`
	NoInteractive bool   `env:"CALCIT_NO_INTERACTIVE"`
}

// LoadEnv parses the process environment
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e.normalized(), nil
}

// LoadEnvFrom parses the given variables instead of the process environment
func LoadEnvFrom(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e.normalized(), nil
}

// normalized replaces nonsensical rotation settings with the defaults
func (e Env) normalized() Env {
	if e.LogMaxSize <= 0 {
		e.LogMaxSize = 1
	}
	if e.LogMaxBackups < 0 {
		e.LogMaxBackups = 2
	}
	if e.LogMaxAge <= 0 {
		e.LogMaxAge = 30
	}
	return e
}

// DebugEnabled returns true if debug output was requested
func (e Env) DebugEnabled() bool {
	return e.Debug || e.LegacyDebug != ""
}

// LogFilePath returns the path to the log file.
// If CALCIT_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.calcit/logs/calcit.log
func (e Env) LogFilePath() string {
	if e.LogFile != "" {
		return e.LogFile
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "calcit.log"
	}

	return filepath.Join(homeDir, ".calcit", "logs", "calcit.log")
}

// UserConfigPath returns the path of the user preferences file.
// If CALCIT_CONFIG is set, uses that path.
// Otherwise, uses ~/.calcit/config.json
func (e Env) UserConfigPath() string {
	if e.ConfigPath != "" {
		return e.ConfigPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".calcit.json"
	}

	return filepath.Join(homeDir, ".calcit", "config.json")
}
