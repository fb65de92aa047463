package cli

import (
	"github.com/alexanderramin/mountainflow/internal/cli/formatter"
	"github.com/alexanderramin/mountainflow/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// mountainHuhTheme returns a huh theme using the formatter palette.
func mountainHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// energyForm is the evening energy dropdown. result starts at the current level.
func energyForm(result *domain.EnergyLevel) *huh.Form {
	options := make([]huh.Option[domain.EnergyLevel], 0, len(domain.EnergyLevels))
	for _, l := range domain.EnergyLevels {
		options = append(options, huh.NewOption(string(l), l))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.EnergyLevel]().
				Title("Evening energy").
				Description("Pick how much you have left tonight").
				Options(options...).
				Value(result),
		),
	).WithTheme(mountainHuhTheme()).WithShowHelp(false)
}
