package domain

// Settings represents user preferences applied to generation and export
type Settings struct {
	InvertColors     bool `json:"invert_colors"`
	EnableValidation bool `json:"enable_validation"`
	EnableHistory    bool `json:"enable_history"`
}

// DefaultSettings returns preferences used when nothing is stored
func DefaultSettings() Settings {
	return Settings{InvertColors: false, EnableValidation: true, EnableHistory: true}
}

// StoredSettings is the persisted form of Settings. Pointers keep an explicit false
// apart from a missing value, missing values take defaults.
type StoredSettings struct {
	InvertColors     *bool `json:"invert_colors,omitempty"`
	EnableValidation *bool `json:"enable_validation,omitempty"`
	EnableHistory    *bool `json:"enable_history,omitempty"`
}

// Resolve applies stored values over defaults
func (s StoredSettings) Resolve() Settings {
	res := DefaultSettings()
	if s.InvertColors != nil {
		res.InvertColors = *s.InvertColors
	}
	if s.EnableValidation != nil {
		res.EnableValidation = *s.EnableValidation
	}
	if s.EnableHistory != nil {
		res.EnableHistory = *s.EnableHistory
	}
	return res
}

// Store makes the persisted form with every flag set explicitly
func (s Settings) Store() StoredSettings {
	return StoredSettings{
		InvertColors:     &s.InvertColors,
		EnableValidation: &s.EnableValidation,
		EnableHistory:    &s.EnableHistory,
	}
}

// SettingsUpdate is a partial settings change, nil fields are left as is
type SettingsUpdate struct {
	InvertColors     *bool `json:"invert_colors,omitempty"`
	EnableValidation *bool `json:"enable_validation,omitempty"`
	EnableHistory    *bool `json:"enable_history,omitempty"`
}
