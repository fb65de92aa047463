// Package content holds the static suggestion tables: detox menus by energy
// level, outdoor breaks by duration, and weekend adventures by season and
// distance tier. Tables are read-only once loaded.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/alexanderramin/mountainflow/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnknownKey is returned when a table is looked up with a key it does not define.
var ErrUnknownKey = errors.New("unknown content key")

//go:embed tables.yaml
var builtin []byte

// Tables is the full set of curated content.
type Tables struct {
	DetoxMenu          map[domain.EnergyLevel][]string                    `yaml:"detox_menu"`
	ProgressiveDetox   map[domain.DetoxMilestone]string                   `yaml:"progressive_detox"`
	OutdoorBreaks      map[int][]string                                   `yaml:"outdoor_breaks"`
	SeasonalAdventures map[domain.Season]map[domain.DistanceTier][]string `yaml:"seasonal_adventures"`
}

// Default returns the built-in tables.
func Default() (*Tables, error) {
	t, err := Parse(builtin)
	if err != nil {
		return nil, fmt.Errorf("built-in content: %w", err)
	}
	return t, nil
}

// MustDefault is Default for package-level initialisation and tests.
func MustDefault() *Tables {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}

// LoadFile reads and validates a replacement content file.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := Validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Detox returns the detox suggestions for level.
func (t *Tables) Detox(level domain.EnergyLevel) ([]string, error) {
	items, ok := t.DetoxMenu[level]
	if !ok {
		return nil, fmt.Errorf("%w: energy level %q", ErrUnknownKey, level)
	}
	return slices.Clone(items), nil
}

// Milestone returns the progressive detox instruction for m.
func (t *Tables) Milestone(m domain.DetoxMilestone) (string, error) {
	s, ok := t.ProgressiveDetox[m]
	if !ok {
		return "", fmt.Errorf("%w: detox milestone %q", ErrUnknownKey, m)
	}
	return s, nil
}

// Breaks returns the outdoor activities for a break of the given length.
func (t *Tables) Breaks(minutes int) ([]string, error) {
	items, ok := t.OutdoorBreaks[minutes]
	if !ok {
		return nil, fmt.Errorf("%w: break duration %d", ErrUnknownKey, minutes)
	}
	return slices.Clone(items), nil
}

// Adventures returns the adventure list for a season and tier. The second
// return value is the tier actually used: a tier the season does not define
// falls back to quick.
func (t *Tables) Adventures(season domain.Season, tier domain.DistanceTier) ([]string, domain.DistanceTier, error) {
	tiers, ok := t.SeasonalAdventures[season]
	if !ok {
		return nil, "", fmt.Errorf("%w: season %q", ErrUnknownKey, season)
	}
	if items, ok := tiers[tier]; ok {
		return slices.Clone(items), tier, nil
	}
	return slices.Clone(tiers[domain.TierQuick]), domain.TierQuick, nil
}
