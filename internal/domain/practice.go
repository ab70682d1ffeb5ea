package domain

import "time"

type Provider struct {
	Name         string  `json:"name" mapstructure:"name"`
	Specialty    string  `json:"specialty" mapstructure:"specialty"`
	SharePercent float64 `json:"share_percent" mapstructure:"share_percent"`
}

// PracticeConfig is the dashboard branding and display configuration. It is
// seeded from a literal at startup and mutated in memory only, so every
// deployment starts from the same defaults.
type PracticeConfig struct {
	PracticeName  string             `json:"practice_name" mapstructure:"practice_name"`
	Tagline       string             `json:"tagline" mapstructure:"tagline"`
	LogoURL       string             `json:"logo_url" mapstructure:"logo_url"`
	PrimaryColor  string             `json:"primary_color" mapstructure:"primary_color"`
	AccentColor   string             `json:"accent_color" mapstructure:"accent_color"`
	Providers     []Provider         `json:"providers" mapstructure:"providers"`
	MetricTargets map[string]float64 `json:"metric_targets" mapstructure:"metric_targets"`
	LocationNames map[string]string  `json:"location_names" mapstructure:"location_names"`
	UpdatedAt     time.Time          `json:"updated_at" mapstructure:"-"`
}
