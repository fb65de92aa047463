package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mountainflow/internal/domain"
	"github.com/alexanderramin/mountainflow/internal/service"
	"github.com/alexanderramin/mountainflow/internal/suggest"
)

const (
	AppName     = "Mountain Flow"
	AppSubtitle = "Habits, Movement & Mindfulness"
)

// FormatTitle renders the app banner.
func FormatTitle() string {
	return StylePurple.Bold(true).Render(AppName) + "\n" + Dim(AppSubtitle) + "\n"
}

// FormatMorning renders the ritual checklist. With numbered set, each row
// is prefixed with the key that toggles it in the TUI.
func FormatMorning(m domain.MorningRitual, numbered bool) string {
	var b strings.Builder
	b.WriteString(Header("Morning Ritual") + "\n")
	b.WriteString(Dim("10–20 min pre-work activation") + "\n")
	for i, item := range domain.RitualItems {
		prefix := "  "
		if numbered {
			prefix = fmt.Sprintf("  %s ", Dim(fmt.Sprintf("%d", i+1)))
		}
		label := Capitalize(string(item))
		if m.Done(item) {
			label = StyleGreen.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, Checkbox(m.Done(item)), label))
	}
	done := m.CompletedCount()
	b.WriteString(fmt.Sprintf("  %s %s\n",
		RenderProgress(float64(done)/float64(len(domain.RitualItems)), 10),
		Dim(fmt.Sprintf("%d/%d done", done, len(domain.RitualItems)))))
	return b.String()
}

// FormatDetox renders the detox menu for one energy level.
func FormatDetox(level domain.EnergyLevel, items []string) string {
	var b strings.Builder
	b.WriteString(HeaderNote("Evening Detox", string(level)) + "\n")
	for _, item := range items {
		b.WriteString("  • " + item + "\n")
	}
	return b.String()
}

// FormatEnergyChoices renders the energy options with the current one highlighted.
func FormatEnergyChoices(current domain.EnergyLevel) string {
	parts := make([]string, 0, len(domain.EnergyLevels))
	for _, l := range domain.EnergyLevels {
		parts = append(parts, choice(string(l), l == current))
	}
	return strings.Join(parts, " ")
}

// FormatOutdoorBreak renders the last outdoor-break suggestion, if any.
func FormatOutdoorBreak(suggestion string) string {
	var b strings.Builder
	b.WriteString(Header("Outdoor Break") + "\n")
	if suggestion != "" {
		b.WriteString("  Suggestion: " + StyleGreen.Render(suggestion) + "\n")
	}
	return b.String()
}

// FormatBreakKeys pairs shortcut keys with break lengths in order,
// e.g. "a 15m · s 30m · d 45m".
func FormatBreakKeys(keys []string) string {
	parts := make([]string, 0, len(keys))
	for i, k := range keys {
		if i >= len(domain.BreakDurations) {
			break
		}
		parts = append(parts, k+" "+FormatMinutes(domain.BreakDurations[i]))
	}
	return Dim(strings.Join(parts, " · "))
}

// FormatTierChoices renders the distance tier buttons with the current tier highlighted.
func FormatTierChoices(current domain.DistanceTier) string {
	parts := make([]string, 0, len(domain.SelectableTiers))
	for _, t := range domain.SelectableTiers {
		parts = append(parts, choice(Capitalize(string(t)), t == current))
	}
	return strings.Join(parts, " ")
}

// FormatAdventure renders the weekend adventure section.
func FormatAdventure(season domain.Season, tier domain.DistanceTier, suggestion string) string {
	var b strings.Builder
	b.WriteString(HeaderNote("Weekend Adventure", string(season)) + "\n")
	b.WriteString("  " + FormatTierChoices(tier) + "  " + Dim(suggest.TierLabel(tier)) + "\n")
	if suggestion != "" {
		b.WriteString("  " + StyleGreen.Render(suggestion) + "\n")
	}
	return b.String()
}

// FormatTracking renders the sport, recovery, and language sections. They
// have no editors yet; only their stored values are shown.
func FormatTracking(plan domain.SportPlan, pr domain.PainRecovery, lang domain.LanguageProgress) string {
	var b strings.Builder
	b.WriteString(Header("Sport Planning & Recovery") + "\n")
	b.WriteString(Dim("  Placeholder for climbing, running, skiing schedule, pain & recovery tracking.") + "\n")
	b.WriteString(fmt.Sprintf("  Climbing %d · Running %d · Skiing %d planned\n",
		len(plan.Climbing), len(plan.Running), len(plan.Skiing)))
	b.WriteString(fmt.Sprintf("  Pain %s · Recovery %s%%  %s\n",
		number(pr.Pain), number(pr.Recovery), RenderProgress(pr.Recovery/100, 10)))
	b.WriteString("\n")
	b.WriteString(Header("Language Learning") + "\n")
	b.WriteString(Dim("  Placeholder for French, Spanish, Swedish, Italian tracking and streaks.") + "\n")
	b.WriteString(fmt.Sprintf("  French %s · Spanish %s · Swedish %s · Italian %s\n",
		number(lang.French), number(lang.Spanish), number(lang.Swedish), number(lang.Italian)))
	return b.String()
}

// FormatWeeklyReview renders the review placeholder.
func FormatWeeklyReview() string {
	return Header("Weekly Review") + "\n" +
		Dim("  Placeholder for weekly narrative reflection and analytics summary.") + "\n"
}

// FormatToday renders every section of the app as plain text.
func FormatToday(snap service.Snapshot) string {
	sections := []string{
		FormatTitle(),
		FormatMorning(snap.Morning, false),
		FormatDetox(snap.Energy, snap.Detox),
		FormatOutdoorBreak(snap.OutdoorBreak),
		FormatAdventure(snap.Season, snap.Tier, snap.Adventure),
		FormatTracking(snap.SportPlan, snap.PainRecovery, snap.Language),
		FormatWeeklyReview(),
	}
	return strings.Join(sections, "\n")
}

func choice(label string, selected bool) string {
	if selected {
		return StyleSelected.Render(label)
	}
	return StyleOption.Render(label)
}

// number prints whole numbers without a decimal point.
func number(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// FormatMilestones renders the progressive detox plan.
func FormatMilestones(steps map[domain.DetoxMilestone]string) string {
	lines := make([]string, 0, len(steps))
	for _, m := range domain.DetoxMilestones {
		text, ok := steps[m]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-6s %s", Bold(string(m)), text))
	}
	return RenderBox("Progressive Detox", strings.Join(lines, "\n")) + "\n"
}
