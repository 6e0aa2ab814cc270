package app

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/customtab/internal/domain/document"
	"github.com/felixgeelhaar/customtab/internal/ports"
	"gopkg.in/ini.v1"
)

// SettingsEnv names the environment variable that overrides the settings path.
const SettingsEnv = "CUSTOMTAB_SETTINGS"

const defaultSettingsPath = "~/.config/customtab/settings.ini"

// Settings are the user preferences read from the settings file.
type Settings struct {
	// Density is the display density used for the close button size limit.
	Density  float64
	LogLevel ports.Level
	LogJSON  bool
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Density:  1,
		LogLevel: ports.LevelWarn,
	}
}

// DefaultSettingsPath returns $CUSTOMTAB_SETTINGS or the per-user default.
func DefaultSettingsPath() string {
	if p := os.Getenv(SettingsEnv); p != "" {
		return p
	}
	return ports.ExpandPath(defaultSettingsPath)
}

// LoadSettings reads the INI settings file at path. A missing file yields
// the defaults.
//
//	[parser]
//	density = 2.0
//
//	[log]
//	level = debug
//	json = false
func LoadSettings(fs ports.FileSystem, path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" || !fs.Exists(path) {
		return settings, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("read settings %s: %w", path, err)
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return settings, invalidSettings(path, "settings file is not valid INI", err)
	}

	parser := cfg.Section("parser")
	if parser.HasKey("density") {
		density, err := parser.Key("density").Float64()
		if err != nil || density <= 0 {
			return settings, invalidSettings(path, "[parser] density must be a positive number", err)
		}
		settings.Density = density
	}

	log := cfg.Section("log")
	if log.HasKey("level") {
		level, err := ports.ParseLevel(log.Key("level").String())
		if err != nil {
			return settings, invalidSettings(path, "[log] level is not a known level", err)
		}
		settings.LogLevel = level
	}
	if log.HasKey("json") {
		asJSON, err := log.Key("json").Bool()
		if err != nil {
			return settings, invalidSettings(path, "[log] json must be true or false", err)
		}
		settings.LogJSON = asJSON
	}

	return settings, nil
}

func invalidSettings(path, message string, err error) *document.UserError {
	return &document.UserError{
		Code:       document.ErrCodeSettingsInvalid,
		Message:    message,
		Context:    path,
		Suggestion: "Fix or remove the settings file; every key is optional.",
		Underlying: err,
	}
}
