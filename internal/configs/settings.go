package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
}

var UserPrizmSettings *UserSettings

func init() {
	// PRIZM_CONFIG_DIR overrides the platform config directory. Tests rely
	// on this to avoid touching the real user configuration.
	if dir := os.Getenv("PRIZM_CONFIG_DIR"); dir != "" {
		UserPrizmSettings = &UserSettings{UserConfigsPath: dir}
		return
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	UserPrizmSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "prizm"),
	}
}
