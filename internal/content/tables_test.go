package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/mountainflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_DetoxRows(t *testing.T) {
	tables := MustDefault()

	low, err := tables.Detox(domain.EnergyLow)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"10 min mobility", "Yoga Nidra / NSDR", "Light language audio",
		"Tea + journal", "Fiction reading", "Eye relaxation",
	}, low)

	medium, err := tables.Detox(domain.EnergyMedium)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Babbel + short writing", "Strength + mobility combo", "Learn new recipe",
		"Breathwork + meditation", "Organize one small space",
	}, medium)

	ultra, err := tables.Detox(domain.EnergyUltraLow)
	require.NoError(t, err)
	assert.Len(t, ultra, 5)

	high, err := tables.Detox(domain.EnergyHigh)
	require.NoError(t, err)
	assert.Len(t, high, 4)
}

func TestDefault_ProgressiveDetox(t *testing.T) {
	tables := MustDefault()

	for _, m := range domain.DetoxMilestones {
		s, err := tables.Milestone(m)
		require.NoError(t, err)
		assert.NotEmpty(t, s)
	}
	sos, _ := tables.Milestone(domain.MilestoneSOS)
	assert.Equal(t, "UltraLow mode only — zero self-judgment", sos)

	_, err := tables.Milestone("Day30")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestDefault_Breaks(t *testing.T) {
	tables := MustDefault()

	fifteen, err := tables.Breaks(15)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sunlight walk", "Breathing + horizon gaze", "Mobility laps"}, fifteen)

	for _, d := range domain.BreakDurations {
		items, err := tables.Breaks(d)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	}

	_, err = tables.Breaks(20)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestAdventures_FallbackToQuick(t *testing.T) {
	tables := MustDefault()

	special, tier, err := tables.Adventures(domain.SeasonWinter, domain.TierSpecial)
	require.NoError(t, err)
	assert.Equal(t, domain.TierSpecial, tier)
	assert.Equal(t, []string{"Stubai ski touring weekend", "Arlberg winter trip"}, special)

	fallback, tier, err := tables.Adventures(domain.SeasonWinter, "unknown-tier")
	require.NoError(t, err)
	assert.Equal(t, domain.TierQuick, tier)
	assert.Equal(t, []string{"Brauneck snowshoe sunset lap", "Local valley winter run", "Lenggries cold exposure walk"}, fallback)

	bad, tier, err := tables.Adventures(domain.SeasonAutumn, domain.TierBad)
	require.NoError(t, err)
	assert.Equal(t, domain.TierBad, tier)
	assert.Len(t, bad, 3)

	_, _, err = tables.Adventures("Monsoon", domain.TierQuick)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestAccessorsReturnCopies(t *testing.T) {
	tables := MustDefault()

	items, err := tables.Breaks(30)
	require.NoError(t, err)
	items[0] = "mutated"

	again, err := tables.Breaks(30)
	require.NoError(t, err)
	assert.Equal(t, "Easy jog", again[0])
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	_, err := Parse([]byte(`
detox_menu:
  Low: [a]
outdoor_breaks:
  15: [walk]
seasonal_adventures:
  Winter:
    weekend: [x]
`))
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "detox_menu.UltraLow")
	assert.Contains(t, msg, "detox_menu.High")
	assert.Contains(t, msg, "progressive_detox.Day1")
	assert.Contains(t, msg, "outdoor_breaks.30")
	assert.Contains(t, msg, "seasonal_adventures.Winter.quick")
	assert.Contains(t, msg, "seasonal_adventures.Spring: season is required")
	assert.NotContains(t, msg, "detox_menu.Low")
}

func TestValidate_RejectsUnknownSeason(t *testing.T) {
	tables := MustDefault()
	tables.SeasonalAdventures["Fall"] = tables.SeasonalAdventures[domain.SeasonAutumn]

	err := Validate(tables)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSeason)
	assert.Contains(t, err.Error(), `seasonal_adventures: invalid season: "Fall"`)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("detox_menu: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding yaml")
}

func TestLoadFile_ReplacesBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, builtin, 0o644))

	tables, err := LoadFile(path)
	require.NoError(t, err)
	items, err := tables.Breaks(45)
	require.NoError(t, err)
	assert.Equal(t, "Short trail run", items[0])

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
