package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownRitualItem = errors.New("unknown morning ritual item")

type RitualItem string

const (
	RitualSunlight  RitualItem = "sunlight"
	RitualMovement  RitualItem = "movement"
	RitualIntention RitualItem = "intention"
	RitualBreath    RitualItem = "breath"
	RitualHydration RitualItem = "hydration"
)

// RitualItems is the fixed key set of MorningRitual in display order.
var RitualItems = []RitualItem{RitualSunlight, RitualMovement, RitualIntention, RitualBreath, RitualHydration}

func ParseRitualItem(s string) (RitualItem, error) {
	for _, it := range RitualItems {
		if string(it) == s {
			return it, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRitualItem, s)
}

// MorningRitual is the persisted checklist of morning activation habits.
type MorningRitual struct {
	Sunlight  bool `json:"sunlight"`
	Movement  bool `json:"movement"`
	Intention bool `json:"intention"`
	Breath    bool `json:"breath"`
	Hydration bool `json:"hydration"`
}

// DefaultMorningRitual returns the first-run checklist with every item unchecked.
func DefaultMorningRitual() MorningRitual {
	return MorningRitual{}
}

func (m *MorningRitual) field(item RitualItem) *bool {
	switch item {
	case RitualSunlight:
		return &m.Sunlight
	case RitualMovement:
		return &m.Movement
	case RitualIntention:
		return &m.Intention
	case RitualBreath:
		return &m.Breath
	case RitualHydration:
		return &m.Hydration
	}
	return nil
}

// Done reports whether item is checked. Unknown items report false.
func (m MorningRitual) Done(item RitualItem) bool {
	if f := m.field(item); f != nil {
		return *f
	}
	return false
}

// Toggle flips a single item in place.
func (m *MorningRitual) Toggle(item RitualItem) error {
	f := m.field(item)
	if f == nil {
		return fmt.Errorf("%w: %q", ErrUnknownRitualItem, item)
	}
	*f = !*f
	return nil
}

// CompletedCount returns how many items are checked.
func (m MorningRitual) CompletedCount() int {
	n := 0
	for _, it := range RitualItems {
		if m.Done(it) {
			n++
		}
	}
	return n
}
