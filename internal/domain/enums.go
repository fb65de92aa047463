package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEnergy = errors.New("invalid energy level")
	ErrInvalidTier   = errors.New("invalid distance tier")
	ErrInvalidSeason = errors.New("invalid season")
)

type EnergyLevel string

const (
	EnergyUltraLow EnergyLevel = "UltraLow"
	EnergyLow      EnergyLevel = "Low"
	EnergyMedium   EnergyLevel = "Medium"
	EnergyHigh     EnergyLevel = "High"
)

// DefaultEnergy is the evening energy level selected at startup.
const DefaultEnergy = EnergyLow

// EnergyLevels lists the selectable evening energy levels in dropdown order.
var EnergyLevels = []EnergyLevel{EnergyUltraLow, EnergyLow, EnergyMedium, EnergyHigh}

// ParseEnergyLevel accepts the exact level name.
func ParseEnergyLevel(s string) (EnergyLevel, error) {
	for _, l := range EnergyLevels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of UltraLow, Low, Medium, High)", ErrInvalidEnergy, s)
}

type Season string

const (
	SeasonWinter Season = "Winter"
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
)

var Seasons = []Season{SeasonWinter, SeasonSpring, SeasonSummer, SeasonAutumn}

func ParseSeason(s string) (Season, error) {
	for _, v := range Seasons {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSeason, s)
}

// DistanceTier selects a row of a season's adventure table.
// TierBad exists in the content tables but is not user-selectable.
type DistanceTier string

const (
	TierQuick   DistanceTier = "quick"
	TierWeekend DistanceTier = "weekend"
	TierSpecial DistanceTier = "special"
	TierBad     DistanceTier = "bad"
)

const DefaultTier = TierQuick

// SelectableTiers are the tiers offered by the tier buttons, in display order.
var SelectableTiers = []DistanceTier{TierQuick, TierWeekend, TierSpecial}

// ParseDistanceTier accepts only the selectable tiers.
func ParseDistanceTier(s string) (DistanceTier, error) {
	for _, t := range SelectableTiers {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of quick, weekend, special)", ErrInvalidTier, s)
}

// NextTier cycles quick → weekend → special → quick.
func NextTier(t DistanceTier) DistanceTier {
	for i, v := range SelectableTiers {
		if v == t {
			return SelectableTiers[(i+1)%len(SelectableTiers)]
		}
	}
	return DefaultTier
}

type DetoxMilestone string

const (
	MilestoneDay1  DetoxMilestone = "Day1"
	MilestoneDay3  DetoxMilestone = "Day3"
	MilestoneDay7  DetoxMilestone = "Day7"
	MilestoneDay14 DetoxMilestone = "Day14"
	MilestoneSOS   DetoxMilestone = "SOS"
)

var DetoxMilestones = []DetoxMilestone{MilestoneDay1, MilestoneDay3, MilestoneDay7, MilestoneDay14, MilestoneSOS}

// BreakDurations are the outdoor-break lengths in minutes offered by the break buttons.
var BreakDurations = []int{15, 30, 45}
