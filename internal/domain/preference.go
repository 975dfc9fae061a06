package domain

// SettingsKey is the store key the preference object lives under
const SettingsKey = "settings"

// Preference 用户偏好设置
// JSON field names are shared with the frontend and the settings store.
type Preference struct {
	Theme                  string `json:"theme"`
	AutoLaunch             bool   `json:"auto_launch"`
	MinimizeToTray         bool   `json:"minimize_to_tray"`
	GlobalShortcutsEnabled bool   `json:"global_shortcuts_enabled"`
}

// DefaultPreference returns the values used for any missing or corrupt field.
func DefaultPreference() Preference {
	return Preference{}
}

// SystemSetting is one persisted key-value row
type SystemSetting struct {
	Key   string
	Value string
}
