package configloader

import "os"

// EnvSettingsPath is the environment variable that overrides settings file
// discovery with an explicit path.
const EnvSettingsPath = "RULEDOC_SETTINGS"

// SettingsPathFromEnv returns the settings path set in the environment, or
// empty string if unset.
func SettingsPathFromEnv() string {
	return os.Getenv(EnvSettingsPath)
}
