package domain

import "time"

// setting keys
const (
	SettingPluginSettings = "plugin_settings"
	SettingCatalogSaved   = "catalog_saved" // set once a catalog was stored, even an empty one
)

// Setting represents a key-value configuration setting
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// avatar height limits, px
const (
	MinAvatarHeight = 40
	MaxAvatarHeight = 500
)

// Settings holds user-editable plugin options
type Settings struct {
	Enabled               bool    `json:"enabled" yaml:"enabled"`
	KeepOriginalAvatar    bool    `json:"keep_original_avatar" yaml:"keep_original_avatar"`
	OriginalAvatarOpacity float64 `json:"original_avatar_opacity" yaml:"original_avatar_opacity"`
	AvatarHeight          int     `json:"avatar_height" yaml:"avatar_height"`
	ApplyToUser           bool    `json:"apply_to_user" yaml:"apply_to_user"`
	MobileSupport         bool    `json:"mobile_support" yaml:"mobile_support"`
	DefaultExpression     string  `json:"default_expression" yaml:"default_expression"`
}

// DefaultSettings returns settings used when nothing is stored yet
func DefaultSettings() Settings {
	return Settings{
		Enabled:               true,
		KeepOriginalAvatar:    true,
		OriginalAvatarOpacity: 0.5,
		AvatarHeight:          160,
		ApplyToUser:           false,
		MobileSupport:         true,
		DefaultExpression:     "neutral",
	}
}

// Normalize clamps opacity and height into their allowed ranges and fills an empty default expression
func (s Settings) Normalize() Settings {
	switch {
	case s.OriginalAvatarOpacity < 0:
		s.OriginalAvatarOpacity = 0
	case s.OriginalAvatarOpacity > 1:
		s.OriginalAvatarOpacity = 1
	}
	switch {
	case s.AvatarHeight < MinAvatarHeight:
		s.AvatarHeight = MinAvatarHeight
	case s.AvatarHeight > MaxAvatarHeight:
		s.AvatarHeight = MaxAvatarHeight
	}
	if s.DefaultExpression == "" {
		s.DefaultExpression = "neutral"
	}
	return s
}
