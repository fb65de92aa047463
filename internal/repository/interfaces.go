package repository

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Preference is one persisted slice of user state: a logical key and its
// JSON text.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

type PreferenceRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]Preference, error)
}
