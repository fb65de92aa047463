package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mountainflow/internal/cli/formatter"
	"github.com/alexanderramin/mountainflow/internal/domain"
	"github.com/alexanderramin/mountainflow/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// splitWidth is the terminal width from which sections render in two columns.
const splitWidth = 100

type dashboardKeyMap struct {
	Toggle    key.Binding
	Energy    key.Binding
	Break15   key.Binding
	Break30   key.Binding
	Break45   key.Binding
	Tier      key.Binding
	Adventure key.Binding
	Quit      key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Toggle:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "ritual")),
		Energy:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "energy")),
		Break15:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a/s/d", "15/30/45m break")),
		Break30:   key.NewBinding(key.WithKeys("s")),
		Break45:   key.NewBinding(key.WithKeys("d")),
		Tier:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tier")),
		Adventure: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "adventure")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// dashboardView is the home screen: every section of the day in one
// scrollable page, driven by single-key shortcuts.
type dashboardView struct {
	state *SharedState
	keys  dashboardKeyMap
	vp    viewport.Model
	snap  service.Snapshot
}

func newDashboardView(state *SharedState) *dashboardView {
	vp := viewport.New(0, 0)
	vp.KeyMap = dashboardViewportKeyMap()
	vp.MouseWheelEnabled = true
	v := &dashboardView{
		state: state,
		keys:  newDashboardKeyMap(),
		vp:    vp,
	}
	v.refresh()
	return v
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Today" }

func (v *dashboardView) ShortHelp() []key.Binding {
	k := v.keys
	return []key.Binding{k.Toggle, k.Energy, k.Break15, k.Tier, k.Adventure, k.Quit}
}

func (v *dashboardView) Init() tea.Cmd {
	return nil
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.refresh()
		return v, nil

	case refreshViewMsg:
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		cmd, handled := v.handleKey(msg)
		if handled {
			v.refresh()
			return v, cmd
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	shell := v.state.App.Shell
	ctx := v.state.Ctx

	switch {
	case key.Matches(msg, v.keys.Toggle):
		n := int(msg.String()[0] - '1')
		item := domain.RitualItems[n]
		if err := shell.ToggleMorningItem(ctx, item); err != nil {
			return flash(formatter.StyleRed.Render(err.Error())), true
		}
		return nil, true

	case key.Matches(msg, v.keys.Energy):
		level := shell.EveningEnergy()
		form := energyForm(&level)
		return startWizardCmd(v.state, "Energy", form, func() tea.Cmd {
			if err := shell.SetEveningEnergy(ctx, level); err != nil {
				return flash(formatter.StyleRed.Render(err.Error()))
			}
			return flash(fmt.Sprintf("Energy set to %s", level))
		}), true

	case key.Matches(msg, v.keys.Break15):
		return v.requestBreak(15), true
	case key.Matches(msg, v.keys.Break30):
		return v.requestBreak(30), true
	case key.Matches(msg, v.keys.Break45):
		return v.requestBreak(45), true

	case key.Matches(msg, v.keys.Tier):
		if err := shell.SetAdventureDistanceTier(ctx, domain.NextTier(shell.AdventureTier())); err != nil {
			return flash(formatter.StyleRed.Render(err.Error())), true
		}
		return nil, true

	case key.Matches(msg, v.keys.Adventure):
		if _, err := shell.RequestAdventure(ctx); err != nil {
			return flash(formatter.StyleRed.Render(err.Error())), true
		}
		return nil, true
	}
	return nil, false
}

func (v *dashboardView) requestBreak(minutes int) tea.Cmd {
	if _, err := v.state.App.Shell.RequestOutdoorBreak(v.state.Ctx, minutes); err != nil {
		return flash(formatter.StyleRed.Render(err.Error()))
	}
	return nil
}

// refresh re-reads the shell and re-renders the viewport content.
func (v *dashboardView) refresh() {
	v.snap = v.state.App.Shell.Snapshot()
	v.vp.Width = max(v.state.Width, 40)
	v.vp.Height = v.state.ContentHeight()
	v.vp.SetContent(v.render())
}

func (v *dashboardView) render() string {
	s := v.snap

	morning := formatter.FormatMorning(s.Morning, true)
	detox := formatter.FormatDetox(s.Energy, s.Detox) +
		"  " + formatter.FormatEnergyChoices(s.Energy) + "\n"
	outdoor := formatter.FormatOutdoorBreak(s.OutdoorBreak) +
		"  " + formatter.FormatBreakKeys([]string{"a", "s", "d"}) + "\n"
	adventure := formatter.FormatAdventure(s.Season, s.Tier, s.Adventure)

	var b strings.Builder
	if v.state.Width >= splitWidth {
		colWidth := v.state.Width/2 - 2
		col := lipgloss.NewStyle().Width(colWidth)
		left := col.Render(strings.Join([]string{morning, detox}, "\n"))
		right := col.Render(strings.Join([]string{outdoor, adventure}, "\n"))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
		b.WriteString("\n\n")
	} else {
		b.WriteString(strings.Join([]string{morning, detox, outdoor, adventure}, "\n"))
		b.WriteString("\n")
	}
	b.WriteString(formatter.FormatTracking(s.SportPlan, s.PainRecovery, s.Language))
	b.WriteString("\n")
	b.WriteString(formatter.FormatWeeklyReview())
	return b.String()
}

func (v *dashboardView) View() string {
	if v.state.Height <= 0 {
		return v.render()
	}
	return v.vp.View()
}

// dashboardViewportKeyMap scrolls with arrows and paging keys only, leaving
// letters and digits free for shortcuts.
func dashboardViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
