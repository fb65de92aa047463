package suggest

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/alexanderramin/mountainflow/internal/content"
	"github.com/alexanderramin/mountainflow/internal/domain"
	"github.com/alexanderramin/mountainflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickOutdoorBreak_MembershipAndCoverage(t *testing.T) {
	e := NewEngine(content.MustDefault(), WithRand(rand.New(rand.NewPCG(1, 2))))
	allowed := []string{"Sunlight walk", "Breathing + horizon gaze", "Mobility laps"}

	seen := map[string]int{}
	for i := 0; i < 1000; i++ {
		got, err := e.PickOutdoorBreak(15)
		require.NoError(t, err)
		require.Contains(t, allowed, got)
		seen[got]++
	}
	for _, a := range allowed {
		assert.Positive(t, seen[a], "%q never picked", a)
	}
}

func TestPickOutdoorBreak_DefaultSourceStaysInTable(t *testing.T) {
	e := NewEngine(content.MustDefault())
	allowed := []string{"Short trail run", "Hilly interval walk", "Easy bike spin"}
	for i := 0; i < 50; i++ {
		got, err := e.PickOutdoorBreak(45)
		require.NoError(t, err)
		assert.Contains(t, allowed, got)
	}
}

func TestPickOutdoorBreak_ScriptedSequence(t *testing.T) {
	e := NewEngine(content.MustDefault(), WithRand(testutil.NewSequenceRand(2, 0, 1)))

	got := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		s, err := e.PickOutdoorBreak(30)
		require.NoError(t, err)
		got = append(got, s)
	}
	assert.Equal(t, []string{"Stairs + stretch", "Easy jog", "Forest loop walk"}, got)
}

func TestPickOutdoorBreak_UnknownDuration(t *testing.T) {
	e := NewEngine(content.MustDefault())
	_, err := e.PickOutdoorBreak(20)
	assert.ErrorIs(t, err, content.ErrUnknownKey)
}

func TestPickAdventure_WinterSpecial(t *testing.T) {
	e := NewEngine(content.MustDefault(), WithRand(rand.New(rand.NewPCG(7, 7))))
	prefixes := []string{"Stubai ski touring weekend", "Arlberg winter trip"}

	for i := 0; i < 200; i++ {
		got, err := e.PickAdventure(domain.SeasonWinter, domain.TierSpecial)
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(got, " — Special Alps Trip"), got)
		head := strings.TrimSuffix(got, " — Special Alps Trip")
		assert.Contains(t, prefixes, head)
	}
}

func TestPickAdventure_UnknownTierFallsBackToQuick(t *testing.T) {
	e := NewEngine(content.MustDefault(), WithRand(testutil.NewSequenceRand(0, 1, 2)))
	quick := []string{"Brauneck snowshoe sunset lap", "Local valley winter run", "Lenggries cold exposure walk"}

	for i := 0; i < 3; i++ {
		got, err := e.PickAdventure(domain.SeasonWinter, "unknown-tier")
		require.NoError(t, err)
		assert.Equal(t, quick[i]+" — ≤1h drive", got)
	}
}

func TestPickAdventure_Labels(t *testing.T) {
	e := NewEngine(content.MustDefault(), WithRand(testutil.NewSequenceRand(0)))

	got, err := e.PickAdventure(domain.SeasonSummer, domain.TierWeekend)
	require.NoError(t, err)
	assert.Equal(t, "Karwendel ridge hike — 1–3h", got)

	got, err = e.PickAdventure(domain.SeasonSpring, domain.TierBad)
	require.NoError(t, err)
	assert.Equal(t, "Technique bouldering — Special Alps Trip", got)

	_, err = e.PickAdventure("Monsoon", domain.TierQuick)
	assert.ErrorIs(t, err, content.ErrUnknownKey)
}

func TestTierLabel(t *testing.T) {
	assert.Equal(t, "≤1h drive", TierLabel(domain.TierQuick))
	assert.Equal(t, "1–3h", TierLabel(domain.TierWeekend))
	assert.Equal(t, "Special Alps Trip", TierLabel(domain.TierSpecial))
	assert.Equal(t, "Special Alps Trip", TierLabel("other"))
}

func TestEngine_DetoxReturnsCopy(t *testing.T) {
	e := NewEngine(content.MustDefault())

	first, err := e.Detox(domain.EnergyLow)
	require.NoError(t, err)
	require.NotEmpty(t, first)
	original := first[0]
	first[0] = "mutated"

	again, err := e.Detox(domain.EnergyLow)
	require.NoError(t, err)
	assert.Equal(t, original, again[0], "callers cannot change the tables")

	_, err = e.Detox("Exhausted")
	assert.ErrorIs(t, err, content.ErrUnknownKey)
}

func TestEngine_Milestone(t *testing.T) {
	e := NewEngine(content.MustDefault())

	for _, m := range domain.DetoxMilestones {
		text, err := e.Milestone(m)
		require.NoError(t, err)
		assert.NotEmpty(t, text)
	}
	_, err := e.Milestone("Day99")
	assert.ErrorIs(t, err, content.ErrUnknownKey)
}
