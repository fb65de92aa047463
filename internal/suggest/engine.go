// Package suggest picks outdoor-break and weekend-adventure suggestions
// from the content tables.
package suggest

import (
	"fmt"
	"math/rand/v2"

	"github.com/alexanderramin/mountainflow/internal/content"
	"github.com/alexanderramin/mountainflow/internal/domain"
)

// Rand is the random source used for uniform picks. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Engine selects suggestions. It holds no mutable state besides its random source.
type Engine struct {
	tables *content.Tables
	rng    Rand
}

type Option func(*Engine)

// WithRand substitutes the random source, e.g. a seeded or scripted one in tests.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

func NewEngine(tables *content.Tables, opts ...Option) *Engine {
	e := &Engine{tables: tables, rng: globalRand{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Detox returns a copy of the detox menu for an energy level.
func (e *Engine) Detox(level domain.EnergyLevel) ([]string, error) {
	return e.tables.Detox(level)
}

// Milestone returns the progressive detox text for one milestone.
func (e *Engine) Milestone(m domain.DetoxMilestone) (string, error) {
	return e.tables.Milestone(m)
}

// PickOutdoorBreak returns one activity for a break of the given length,
// chosen uniformly at random.
func (e *Engine) PickOutdoorBreak(minutes int) (string, error) {
	items, err := e.tables.Breaks(minutes)
	if err != nil {
		return "", err
	}
	return e.pick(items)
}

// PickAdventure returns a random adventure for the season and tier,
// formatted as "<adventure> — <tier label>". Tiers the season does not
// define fall back to its quick list and label.
func (e *Engine) PickAdventure(season domain.Season, tier domain.DistanceTier) (string, error) {
	items, used, err := e.tables.Adventures(season, tier)
	if err != nil {
		return "", err
	}
	adventure, err := e.pick(items)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s — %s", adventure, TierLabel(used)), nil
}

// TierLabel describes how far a tier's adventures are.
func TierLabel(tier domain.DistanceTier) string {
	switch tier {
	case domain.TierQuick:
		return "≤1h drive"
	case domain.TierWeekend:
		return "1–3h"
	default:
		return "Special Alps Trip"
	}
}

func (e *Engine) pick(items []string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("%w: empty suggestion list", content.ErrUnknownKey)
	}
	return items[e.rng.IntN(len(items))], nil
}
