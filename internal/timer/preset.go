package timer

import (
	"fmt"
	"strconv"
	"strings"
)

// Preset pairs a focus length with the break that follows it.
type Preset struct {
	Name         string
	FocusMinutes int
	BreakMinutes int
}

var presets = []Preset{
	{Name: "Test", FocusMinutes: 1, BreakMinutes: 1},
	{Name: "Classic (25/5)", FocusMinutes: 25, BreakMinutes: 5},
	{Name: "Extended (50/10)", FocusMinutes: 50, BreakMinutes: 10},
	{Name: "Long (120/20)", FocusMinutes: 120, BreakMinutes: 20},
	{Name: "Ultra (180/30)", FocusMinutes: 180, BreakMinutes: 30},
}

// DefaultPreset is the index of the classic 25/5 preset.
const DefaultPreset = 1

func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

func PresetAt(i int) (Preset, error) {
	if i < 0 || i >= len(presets) {
		return Preset{}, fmt.Errorf("preset %d: %w", i, ErrUnknownPreset)
	}
	return presets[i], nil
}

// FindPreset resolves a preset by index ("2") or by case-insensitive name
// prefix ("classic", "ultra").
func FindPreset(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if _, err := PresetAt(n); err != nil {
			return 0, err
		}
		return n, nil
	}
	lower := strings.ToLower(ref)
	for i, p := range presets {
		if lower != "" && strings.HasPrefix(strings.ToLower(p.Name), lower) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("preset %q: %w", ref, ErrUnknownPreset)
}
