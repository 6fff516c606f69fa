package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/prizmlabs/prizm/console"
	perrors "github.com/prizmlabs/prizm/internal/errors"
)

type UserConfig struct {
	Install Install        `toml:"install"`
	Console ConsoleOptions `toml:"console"`
}

type Install struct {
	UUID      string    `toml:"install_uuid"`
	CreatedAt time.Time `toml:"created_at"`
}

// ConsoleOptions holds the user's console defaults. The library never reads
// these; only the CLI applies them.
type ConsoleOptions struct {
	Directory string `toml:"directory"`
	Terminal  bool   `toml:"terminal"`
	Color     bool   `toml:"color"`
}

// ConfigPath returns the path of the user configuration file.
func ConfigPath() string {
	return filepath.Join(UserPrizmSettings.UserConfigsPath, "config.toml")
}

// DefaultUserConfig returns a fresh configuration with a new install UUID.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Install: Install{
			UUID:      uuid.New().String(),
			CreatedAt: time.Now().UTC(),
		},
		Console: ConsoleOptions{
			Directory: console.DefaultDirectory,
			Terminal:  true,
			Color:     true,
		},
	}
}

// LoadUserConfig loads the user configuration from the config file.
// Returns ErrConfigNotFound if the file does not exist.
func LoadUserConfig() (*UserConfig, error) {
	configPath := ConfigPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", perrors.ErrConfigNotFound, configPath)
	}

	config := &UserConfig{}
	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", perrors.ErrInvalidConfig, configPath, err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	if err := SaveTOML(ConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	return nil
}

// EnsureUserConfig returns the user configuration, creating and saving a
// default one if none exists. The second return value reports whether a new
// configuration was created.
func EnsureUserConfig() (*UserConfig, bool, error) {
	config, err := LoadUserConfig()
	if err == nil {
		return config, false, nil
	}
	if !errors.Is(err, perrors.ErrConfigNotFound) {
		return nil, false, err
	}

	config = DefaultUserConfig()
	if err := SaveUserConfig(config); err != nil {
		return nil, false, err
	}
	return config, true, nil
}
