package config

import "fmt"

// Config bundles the environment settings and user preferences for one run
type Config struct {
	Env  Env
	User *UserConfig
}

// Load reads the environment and the user preferences it points to
func Load() (*Config, error) {
	e, err := LoadEnv()
	if err != nil {
		return nil, err
	}

	user, err := LoadUserConfig(e.UserConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &Config{Env: e, User: user}, nil
}
