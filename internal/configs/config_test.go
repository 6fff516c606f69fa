package configs

import (
	"errors"
	"os"
	"testing"

	"github.com/prizmlabs/prizm/console"
	perrors "github.com/prizmlabs/prizm/internal/errors"
)

// useTempConfigDir points the package at a temp config directory.
func useTempConfigDir(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	originalSettings := UserPrizmSettings
	UserPrizmSettings = &UserSettings{UserConfigsPath: tempDir}
	t.Cleanup(func() {
		UserPrizmSettings = originalSettings
	})
	return tempDir
}

func TestLoadUserConfig_NotFound(t *testing.T) {
	useTempConfigDir(t)

	_, err := LoadUserConfig()
	if !errors.Is(err, perrors.ErrConfigNotFound) {
		t.Errorf("LoadUserConfig without a file = %v, want ErrConfigNotFound", err)
	}
}

func TestEnsureUserConfig_CreatesDefault(t *testing.T) {
	useTempConfigDir(t)

	config, created, err := EnsureUserConfig()
	if err != nil {
		t.Fatalf("EnsureUserConfig failed: %v", err)
	}
	if !created {
		t.Errorf("created = false, want true on first run")
	}
	if config.Install.UUID == "" {
		t.Errorf("Install UUID was not generated")
	}
	if config.Console.Directory != console.DefaultDirectory {
		t.Errorf("Directory = %q, want %q", config.Console.Directory, console.DefaultDirectory)
	}
	if !config.Console.Terminal || !config.Console.Color {
		t.Errorf("Terminal/Color defaults = %t/%t, want true/true", config.Console.Terminal, config.Console.Color)
	}

	if _, err := os.Stat(ConfigPath()); err != nil {
		t.Fatalf("Config file was not written: %v", err)
	}

	// A second call loads the same config instead of recreating it.
	again, created, err := EnsureUserConfig()
	if err != nil {
		t.Fatalf("EnsureUserConfig failed on second run: %v", err)
	}
	if created {
		t.Errorf("created = true on second run, want false")
	}
	if again.Install.UUID != config.Install.UUID {
		t.Errorf("Install UUID changed between runs: %q vs %q", again.Install.UUID, config.Install.UUID)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	useTempConfigDir(t)

	config := DefaultUserConfig()
	config.Console.Directory = "/var/log/prizm/"
	config.Console.Terminal = false
	config.Console.Color = false

	if err := SaveUserConfig(config); err != nil {
		t.Fatalf("SaveUserConfig failed: %v", err)
	}

	loaded, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig failed: %v", err)
	}
	if loaded.Console.Directory != config.Console.Directory {
		t.Errorf("Directory = %q, want %q", loaded.Console.Directory, config.Console.Directory)
	}
	if loaded.Console.Terminal != false || loaded.Console.Color != false {
		t.Errorf("Terminal/Color = %t/%t, want false/false", loaded.Console.Terminal, loaded.Console.Color)
	}
	if loaded.Install.UUID != config.Install.UUID {
		t.Errorf("Install UUID = %q, want %q", loaded.Install.UUID, config.Install.UUID)
	}
}

func TestLoadUserConfig_Malformed(t *testing.T) {
	useTempConfigDir(t)

	if err := os.MkdirAll(UserPrizmSettings.UserConfigsPath, 0700); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(ConfigPath(), []byte("not = [valid"), 0600); err != nil {
		t.Fatalf("Failed to write malformed config: %v", err)
	}

	_, err := LoadUserConfig()
	if !errors.Is(err, perrors.ErrInvalidConfig) {
		t.Errorf("LoadUserConfig on malformed file = %v, want ErrInvalidConfig", err)
	}
}
