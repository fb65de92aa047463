package cli

import (
	"strings"

	"github.com/alexanderramin/mountainflow/internal/domain"
	"github.com/spf13/pflag"
)

// energyValue is a pflag.Value that only accepts known energy levels.
type energyValue struct {
	level domain.EnergyLevel
	set   bool
}

var _ pflag.Value = (*energyValue)(nil)

func (v *energyValue) String() string { return string(v.level) }
func (v *energyValue) Type() string   { return "energy" }

func (v *energyValue) Set(s string) error {
	l, err := domain.ParseEnergyLevel(s)
	if err != nil {
		return err
	}
	v.level, v.set = l, true
	return nil
}

// tierValue is a pflag.Value for the selectable distance tiers. Matching
// ignores case so "Weekend" and "weekend" both work.
type tierValue struct {
	tier domain.DistanceTier
	set  bool
}

var _ pflag.Value = (*tierValue)(nil)

func (v *tierValue) String() string { return string(v.tier) }
func (v *tierValue) Type() string   { return "tier" }

func (v *tierValue) Set(s string) error {
	t, err := domain.ParseDistanceTier(strings.ToLower(s))
	if err != nil {
		return err
	}
	v.tier, v.set = t, true
	return nil
}

func energyNames() string {
	names := make([]string, len(domain.EnergyLevels))
	for i, l := range domain.EnergyLevels {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

func tierNames() string {
	names := make([]string, len(domain.SelectableTiers))
	for i, t := range domain.SelectableTiers {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
