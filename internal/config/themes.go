package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ThemePreset is one renderable color scheme for the public menu.
type ThemePreset struct {
	Background string `yaml:"background" json:"background"`
	Text       string `yaml:"text" json:"text"`
	Primary    string `yaml:"primary" json:"primary"`
	MutedText  string `yaml:"muted_text,omitempty" json:"muted_text,omitempty"`
	Border     string `yaml:"border,omitempty" json:"border,omitempty"`
	Card       string `yaml:"card,omitempty" json:"card,omitempty"`
}

// ThemePresets maps a theme name (dark/light/warm) to its preset. Loaded
// once at startup and passed explicitly to the services that render it.
type ThemePresets map[string]ThemePreset

// defaultThemes covers the built-in themes when no themes.yaml is shipped.
var defaultThemes = ThemePresets{
	"dark": {
		Background: "#0F1217",
		Text:       "#FFFFFF",
		Primary:    "#F97316",
		MutedText:  "#9CA3AF",
		Border:     "rgba(255,255,255,0.08)",
		Card:       "#151A21",
	},
	"warm": {
		Background: "#FFF7ED",
		Text:       "#2B2B2B",
		Primary:    "#EA580C",
	},
	"light": {
		Background: "#FFFFFF",
		Text:       "#1f2937",
		Primary:    "#ff6a00",
	},
}

// LoadThemes reads theme presets from the given YAML file, falling back to
// the built-in set when the file does not exist.
func LoadThemes(path string) (ThemePresets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultThemes, nil
		}
		return nil, fmt.Errorf("read themes file: %w", err)
	}

	var presets ThemePresets
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parse themes file: %w", err)
	}
	if len(presets) == 0 {
		return defaultThemes, nil
	}

	for name, p := range presets {
		if p.Background == "" || p.Text == "" || p.Primary == "" {
			return nil, fmt.Errorf("theme %q is missing background, text or primary", name)
		}
	}

	return presets, nil
}

// Get returns the preset for a theme name, falling back to dark.
func (t ThemePresets) Get(name string) ThemePreset {
	if p, ok := t[name]; ok {
		return p
	}
	return t["dark"]
}
