// Package store persists JSON-serializable slices of user state under
// logical keys. Reads are lenient: anything missing or unreadable yields
// the caller's default. Writes replace the whole slice; stored shapes are
// never migrated.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/alexanderramin/mountainflow/internal/db"
	"github.com/alexanderramin/mountainflow/internal/repository"
)

// Logical keys of the persisted slices.
const (
	KeyMorningRitual = "morningRitual"
	KeySportPlan     = "sportPlan"
	KeyPainRecovery  = "painRecovery"
	KeyLanguage      = "language"
)

// Keys lists every persisted slice.
var Keys = []string{KeyMorningRitual, KeySportPlan, KeyPainRecovery, KeyLanguage}

type Store struct {
	repo repository.PreferenceRepo
	uow  db.UnitOfWork
}

func New(repo repository.PreferenceRepo, uow db.UnitOfWork) *Store {
	return &Store{repo: repo, uow: uow}
}

// Loaded is one slice as read at startup.
type Loaded[T any] struct {
	Value T
	// Raw is the compacted stored text when Value came from storage, and
	// empty when Value is the default.
	Raw string
	// Issue is set when a stored value existed but could not be read. Value
	// is then the default.
	Issue error
}

// FromStorage reports whether Value was decoded from a stored value.
func (l Loaded[T]) FromStorage() bool { return l.Raw != "" }

// Load returns the value stored under key, or def when nothing usable is
// stored. A stored value is decoded into a fresh zero T and is never merged
// with def, so fields added to a default after the value was written stay
// at their zero value.
func Load[T any](ctx context.Context, s *Store, key string, def T) Loaded[T] {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Loaded[T]{Value: def}
		}
		return Loaded[T]{Value: def, Issue: fmt.Errorf("reading %s: %w", key, err)}
	}

	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Loaded[T]{Value: def}
	}

	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return Loaded[T]{Value: def, Issue: fmt.Errorf("decoding %s: %w", key, err)}
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return Loaded[T]{Value: def, Issue: fmt.Errorf("compacting %s: %w", key, err)}
	}
	return Loaded[T]{Value: v, Raw: compact.String()}
}

// Save serializes v and writes it under key, replacing any prior value.
func Save[T any](ctx context.Context, s *Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.repo.Put(ctx, key, string(data)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// SaveRaw writes already-encoded JSON text under key as is.
func (s *Store) SaveRaw(ctx context.Context, key, raw string) error {
	if err := s.repo.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Reset deletes the given slices (all of Keys when none are given) in one
// transaction, so their defaults apply on the next start.
func (s *Store) Reset(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		keys = Keys
	}
	for _, k := range keys {
		if !IsKey(k) {
			return fmt.Errorf("unknown preference %q", k)
		}
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLitePreferenceRepo(tx)
		for _, k := range keys {
			if err := repo.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
}

// Dump returns the raw stored JSON text by key.
func (s *Store) Dump(ctx context.Context) (map[string]string, error) {
	prefs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(prefs))
	for _, p := range prefs {
		out[p.Key] = p.Value
	}
	return out, nil
}

// IsKey reports whether k names a persisted slice.
func IsKey(k string) bool {
	return slices.Contains(Keys, k)
}
