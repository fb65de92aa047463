package service

import (
	"context"
	"time"

	"github.com/alexanderramin/mountainflow/internal/domain"
	"github.com/alexanderramin/mountainflow/internal/store"
	"github.com/alexanderramin/mountainflow/internal/suggest"
)

// SeasonSource reports the current season.
type SeasonSource interface {
	Current() domain.Season
}

// Shell owns all app state. The persisted slices are read from the store
// once, at construction, and written back after every change. Selector
// state and generated suggestions live only in memory.
//
// A Shell is not safe for concurrent use. Callers drive it from a single
// thread of control, which is what keeps reads consistent with writes.
type Shell struct {
	store    *store.Store
	engine   *suggest.Engine
	seasons  SeasonSource
	observer UseCaseObserver

	morning  domain.MorningRitual
	sport    domain.SportPlan
	pain     domain.PainRecovery
	language domain.LanguageProgress

	energy       domain.EnergyLevel
	outdoorBreak string
	tier         domain.DistanceTier
	adventure    string
}

type ShellOption func(*Shell)

func WithSeasons(src SeasonSource) ShellOption {
	return func(s *Shell) { s.seasons = src }
}

func WithObserver(obs UseCaseObserver) ShellOption {
	return func(s *Shell) { s.observer = useCaseObserverOrNoop([]UseCaseObserver{obs}) }
}

// NewShell loads the persisted slices and immediately writes each one back
// so storage holds the normalized representation. A stored value is written
// back as its own compacted text, never re-encoded from the decoded struct.
func NewShell(ctx context.Context, st *store.Store, engine *suggest.Engine, opts ...ShellOption) *Shell {
	s := &Shell{
		store:    st,
		engine:   engine,
		seasons:  suggest.NewResolver(),
		observer: NoopUseCaseObserver{},
		energy:   domain.DefaultEnergy,
		tier:     domain.DefaultTier,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.morning = normalize(ctx, s, store.KeyMorningRitual, domain.DefaultMorningRitual())
	s.sport = normalize(ctx, s, store.KeySportPlan, domain.DefaultSportPlan())
	s.pain = normalize(ctx, s, store.KeyPainRecovery, domain.DefaultPainRecovery())
	s.language = normalize(ctx, s, store.KeyLanguage, domain.DefaultLanguageProgress())

	return s
}

func normalize[T any](ctx context.Context, s *Shell, key string, def T) T {
	startedAt := time.Now()
	loaded := store.Load(ctx, s.store, key, def)
	if loaded.Issue != nil {
		observe(ctx, s.observer, "load-preference", startedAt, loaded.Issue, map[string]any{"key": key})
	}
	if !loaded.FromStorage() {
		persist(ctx, s, key, loaded.Value)
		return loaded.Value
	}

	startedAt = time.Now()
	err := s.store.SaveRaw(ctx, key, loaded.Raw)
	observe(ctx, s.observer, "persist", startedAt, err, map[string]any{"key": key})
	return loaded.Value
}

// persist writes one slice. Failures are logged and otherwise absorbed:
// there is no retry and nothing is shown to the user.
func persist[T any](ctx context.Context, s *Shell, key string, v T) {
	startedAt := time.Now()
	err := store.Save(ctx, s.store, key, v)
	observe(ctx, s.observer, "persist", startedAt, err, map[string]any{"key": key})
}

// ToggleMorningItem flips one checklist item and persists the checklist.
func (s *Shell) ToggleMorningItem(ctx context.Context, item domain.RitualItem) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"item": string(item)}
	defer func() { observe(ctx, s.observer, "toggle-morning-item", startedAt, err, fields) }()

	if err = s.morning.Toggle(item); err != nil {
		return err
	}
	fields["done"] = s.morning.Done(item)
	persist(ctx, s, store.KeyMorningRitual, s.morning)
	return nil
}

// SetEveningEnergy switches the detox menu row. Not persisted.
func (s *Shell) SetEveningEnergy(ctx context.Context, level domain.EnergyLevel) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "set-evening-energy", startedAt, err, map[string]any{"level": string(level)})
	}()

	if _, err = domain.ParseEnergyLevel(string(level)); err != nil {
		return err
	}
	s.energy = level
	return nil
}

// DetoxMenu returns the suggestions for the current evening energy level.
func (s *Shell) DetoxMenu() []string {
	items, err := s.engine.Detox(s.energy)
	if err != nil {
		return nil
	}
	return items
}

// DetoxMilestones returns the progressive detox plan keyed by milestone.
func (s *Shell) DetoxMilestones() map[domain.DetoxMilestone]string {
	out := make(map[domain.DetoxMilestone]string, len(domain.DetoxMilestones))
	for _, m := range domain.DetoxMilestones {
		if text, err := s.engine.Milestone(m); err == nil {
			out[m] = text
		}
	}
	return out
}

// RequestOutdoorBreak picks a new outdoor break, replacing the previous one.
// On error the previous suggestion is kept.
func (s *Shell) RequestOutdoorBreak(ctx context.Context, minutes int) (suggestion string, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "request-outdoor-break", startedAt, err, map[string]any{"minutes": minutes})
	}()

	suggestion, err = s.engine.PickOutdoorBreak(minutes)
	if err != nil {
		return "", err
	}
	s.outdoorBreak = suggestion
	return suggestion, nil
}

// SetAdventureDistanceTier changes the tier used by the next RequestAdventure.
func (s *Shell) SetAdventureDistanceTier(ctx context.Context, tier domain.DistanceTier) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "set-adventure-tier", startedAt, err, map[string]any{"tier": string(tier)})
	}()

	if _, err = domain.ParseDistanceTier(string(tier)); err != nil {
		return err
	}
	s.tier = tier
	return nil
}

// RequestAdventure picks an adventure for the current season and tier,
// replacing the previous one.
func (s *Shell) RequestAdventure(ctx context.Context) (suggestion string, err error) {
	startedAt := time.Now()
	season := s.seasons.Current()
	defer func() {
		observe(ctx, s.observer, "request-adventure", startedAt, err, map[string]any{
			"season": string(season),
			"tier":   string(s.tier),
		})
	}()

	suggestion, err = s.engine.PickAdventure(season, s.tier)
	if err != nil {
		return "", err
	}
	s.adventure = suggestion
	return suggestion, nil
}

func (s *Shell) MorningRitual() domain.MorningRitual       { return s.morning }
func (s *Shell) SportPlan() domain.SportPlan               { return s.sport }
func (s *Shell) PainRecovery() domain.PainRecovery         { return s.pain }
func (s *Shell) LanguageProgress() domain.LanguageProgress { return s.language }
func (s *Shell) EveningEnergy() domain.EnergyLevel         { return s.energy }
func (s *Shell) OutdoorBreak() string                      { return s.outdoorBreak }
func (s *Shell) AdventureTier() domain.DistanceTier        { return s.tier }
func (s *Shell) Adventure() string                         { return s.adventure }
func (s *Shell) Season() domain.Season                     { return s.seasons.Current() }

// Snapshot is a point-in-time copy of everything the UI renders.
type Snapshot struct {
	Morning      domain.MorningRitual
	SportPlan    domain.SportPlan
	PainRecovery domain.PainRecovery
	Language     domain.LanguageProgress
	Energy       domain.EnergyLevel
	Detox        []string
	OutdoorBreak string
	Tier         domain.DistanceTier
	Adventure    string
	Season       domain.Season
}

func (s *Shell) Snapshot() Snapshot {
	return Snapshot{
		Morning:      s.morning,
		SportPlan:    s.sport,
		PainRecovery: s.pain,
		Language:     s.language,
		Energy:       s.energy,
		Detox:        s.DetoxMenu(),
		OutdoorBreak: s.outdoorBreak,
		Tier:         s.tier,
		Adventure:    s.adventure,
		Season:       s.seasons.Current(),
	}
}
