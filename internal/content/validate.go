package content

import (
	"fmt"

	"github.com/alexanderramin/mountainflow/internal/domain"
	"github.com/hashicorp/go-multierror"
)

// Validate checks that every key the app can ask for is present and
// non-empty. All problems are reported together.
func Validate(t *Tables) error {
	var result *multierror.Error

	for _, level := range domain.EnergyLevels {
		if len(t.DetoxMenu[level]) == 0 {
			result = multierror.Append(result, fmt.Errorf("detox_menu.%s: at least one suggestion is required", level))
		}
	}

	for _, m := range domain.DetoxMilestones {
		if t.ProgressiveDetox[m] == "" {
			result = multierror.Append(result, fmt.Errorf("progressive_detox.%s: instruction is required", m))
		}
	}

	for _, d := range domain.BreakDurations {
		if len(t.OutdoorBreaks[d]) == 0 {
			result = multierror.Append(result, fmt.Errorf("outdoor_breaks.%d: at least one activity is required", d))
		}
	}

	for s := range t.SeasonalAdventures {
		if _, err := domain.ParseSeason(string(s)); err != nil {
			result = multierror.Append(result, fmt.Errorf("seasonal_adventures: %w", err))
		}
	}

	for _, s := range domain.Seasons {
		tiers, ok := t.SeasonalAdventures[s]
		if !ok {
			result = multierror.Append(result, fmt.Errorf("seasonal_adventures.%s: season is required", s))
			continue
		}
		// quick doubles as the fallback row, so it must always be usable.
		if len(tiers[domain.TierQuick]) == 0 {
			result = multierror.Append(result, fmt.Errorf("seasonal_adventures.%s.quick: at least one suggestion is required", s))
		}
		for tier, items := range tiers {
			if tier != domain.TierQuick && len(items) == 0 {
				result = multierror.Append(result, fmt.Errorf("seasonal_adventures.%s.%s: list is empty", s, tier))
			}
		}
	}

	return result.ErrorOrNil()
}
