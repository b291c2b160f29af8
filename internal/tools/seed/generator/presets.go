package generator

import "fmt"

// Preset names a generation profile.
type Preset string

const (
	// PresetDemo creates one quest per category.
	PresetDemo Preset = "demo"

	// PresetVariety creates a handful of quests per category.
	PresetVariety Preset = "variety"

	// PresetStressTest creates many quests per category for load testing
	// the app's quest list.
	PresetStressTest Preset = "stress-test"
)

// Presets lists the known presets in display order.
func Presets() []Preset {
	return []Preset{PresetDemo, PresetVariety, PresetStressTest}
}

// PresetConfig holds the generation parameters for a preset.
type PresetConfig struct {
	// Quests generated for each category
	QuestsPerCategory int
}

// GetPresetConfig returns the configuration for a preset.
func GetPresetConfig(preset Preset) PresetConfig {
	switch preset {
	case PresetVariety:
		return PresetConfig{QuestsPerCategory: 3}
	case PresetStressTest:
		return PresetConfig{QuestsPerCategory: 50}
	case PresetDemo:
		return PresetConfig{QuestsPerCategory: 1}
	default:
		return GetPresetConfig(PresetDemo)
	}
}

// ParsePreset validates a preset name.
func ParsePreset(value string) (Preset, error) {
	for _, preset := range Presets() {
		if string(preset) == value {
			return preset, nil
		}
	}
	return "", fmt.Errorf("unknown preset %q (valid: demo, variety, stress-test)", value)
}
