package cli

import (
	"strings"
	"testing"

	"github.com/alexanderramin/mountainflow/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_DashboardRendersAllSections(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	view := d.PlainView()
	for _, want := range []string{
		"Mountain Flow", "Winter", "MORNING RITUAL", "EVENING DETOX (Low)",
		"OUTDOOR BREAK", "WEEKEND ADVENTURE (Winter)", "SPORT PLANNING & RECOVERY",
		"LANGUAGE LEARNING", "WEEKLY REVIEW",
	} {
		assert.Contains(t, view, want)
	}
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("q")
	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press("ctrl+c")
	assert.True(t, d.IsQuitting())
}

func TestTUI_NumberKeysToggleRitual(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("1", "4")
	m := app.Shell.MorningRitual()
	assert.True(t, m.Sunlight)
	assert.True(t, m.Breath)
	assert.False(t, m.Movement)
	assert.Contains(t, d.PlainView(), "[x] Sunlight")

	d.Press("4")
	assert.False(t, app.Shell.MorningRitual().Breath)
}

func TestTUI_BreakKeysReplaceSuggestion(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	assert.NotContains(t, d.PlainView(), "Suggestion:")
	assert.Contains(t, d.PlainView(), "a 15m · s 30m · d 45m")

	d.Press("a")
	assert.Contains(t, d.PlainView(), "Suggestion: Sunlight walk")

	d.Press("d")
	view := d.PlainView()
	assert.Contains(t, view, "Suggestion: Short trail run")
	assert.NotContains(t, view, "Sunlight walk")
}

func TestTUI_TierCycleAndGenerate(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("t")
	assert.Equal(t, domain.TierWeekend, app.Shell.AdventureTier())
	d.Press("t")
	assert.Equal(t, domain.TierSpecial, app.Shell.AdventureTier())

	d.Press("g")
	assert.Contains(t, d.PlainView(), "Stubai ski touring weekend — Special Alps Trip")

	d.Press("t")
	assert.Equal(t, domain.TierQuick, app.Shell.AdventureTier())
	// Changing the tier keeps the last adventure until the next request.
	assert.Contains(t, d.PlainView(), "Stubai ski touring weekend")
}

func TestTUI_EnergyFormChangesDetoxMenu(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("e")
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Contains(t, d.PlainView(), "Evening energy")

	// q goes to the form, not the quit shortcut.
	d.Press("q")
	assert.False(t, d.IsQuitting())

	// Low is preselected; moving down past the end stays on High.
	d.Press("down", "down", "down", "enter")

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, domain.EnergyHigh, app.Shell.EveningEnergy())
	view := d.PlainView()
	assert.Contains(t, view, "EVENING DETOX (High)")
	assert.Contains(t, view, "Deep strength session")
	assert.Contains(t, d.Flash(), "Energy set to High")
}

func TestTUI_EnergyFormEscCancels(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press("e")
	require.Equal(t, ViewForm, d.ActiveViewID())
	d.Press("esc")

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, domain.EnergyLow, app.Shell.EveningEnergy())
	assert.Contains(t, d.Flash(), "Cancelled.")
}

func TestTUI_NarrowTerminalStacksSections(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.Send(tea.WindowSizeMsg{Width: 60, Height: 80})

	view := d.PlainView()
	morning := strings.Index(view, "MORNING RITUAL")
	adventure := strings.Index(view, "WEEKEND ADVENTURE")
	require.GreaterOrEqual(t, morning, 0)
	assert.Greater(t, adventure, morning)
}
