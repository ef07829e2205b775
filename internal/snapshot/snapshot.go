// Package snapshot keeps a single in-memory state value in sync with a durable store.
//
// The whole value is serialized to JSON and written under its key after every
// successful mutation. Mutations run on a copy of the value which only replaces
// the current one once the write succeeded, so a rejected or failed mutation never
// leaves a partial change behind.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned by a Store when no snapshot exists for a key.
var ErrNotFound = errors.New("no snapshot is stored for this key")

// Store persists serialized snapshots by key.
type Store interface {
	// Load returns the blob stored under key, or an error wrapping ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the blob stored under key.
	Save(ctx context.Context, key string, data []byte) error

	// Quarantine keeps a copy of a blob that could not be decoded.
	Quarantine(ctx context.Context, key string, data []byte, reason string) error
}

// Writes counts snapshot writes, partitioned by key and result.
var Writes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "snapshot_writes_total",
		Help: "How many snapshot writes were attempted, partitioned by key and result.",
	},
	[]string{"key", "result"},
)

// Keeper owns one value of T and its persisted snapshot.
type Keeper[T any] struct {
	mu       sync.Mutex
	key      string
	store    Store
	value    T
	defaults func() T
	clone    func(T) T
}

// Open loads the snapshot stored under key.
//
// When nothing is stored yet, the value returned by defaults is used. A blob that
// cannot be decoded is quarantined, logged and replaced with the defaults.
func Open[T any](ctx context.Context, store Store, key string, defaults func() T, clone func(T) T) (*Keeper[T], error) {
	k := &Keeper[T]{
		key:      key,
		store:    store,
		defaults: defaults,
		clone:    clone,
	}

	data, err := store.Load(ctx, key)
	if errors.Is(err, ErrNotFound) {
		k.value = defaults()
		return k, nil
	}

	if err != nil {
		return nil, fmt.Errorf("loading snapshot %q failed: %w", key, err)
	}

	var value T
	decodeErr := json.Unmarshal(data, &value)
	if decodeErr == nil {
		k.value = value
		return k, nil
	}

	log.Error().Str("key", key).Err(decodeErr).Int("size", len(data)).Msg("snapshot is corrupted, starting with defaults")

	err = store.Quarantine(ctx, key, data, decodeErr.Error())
	if err != nil {
		return nil, fmt.Errorf("quarantining corrupted snapshot %q failed: %w", key, err)
	}

	k.value = defaults()
	err = k.save(ctx, k.value)
	if err != nil {
		return nil, err
	}

	return k, nil
}

// Key is the key the snapshot is stored under.
func (k *Keeper[T]) Key() string {
	return k.key
}

// Get returns a copy of the current value.
func (k *Keeper[T]) Get() T {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.clone(k.value)
}

// Update applies fn to a copy of the current value and persists the result.
//
// If fn returns an error, nothing is written and the current value is kept.
func (k *Keeper[T]) Update(ctx context.Context, fn func(*T) error) (T, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	next := k.clone(k.value)
	if err := fn(&next); err != nil {
		return k.clone(k.value), err
	}

	if err := k.save(ctx, next); err != nil {
		return k.clone(k.value), err
	}

	k.value = next
	return k.clone(next), nil
}

// Reset replaces the value with the defaults and persists them.
func (k *Keeper[T]) Reset(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	value := k.defaults()
	if err := k.save(ctx, value); err != nil {
		return err
	}

	k.value = value
	return nil
}

// Export returns the serialized snapshot as it is stored.
func (k *Keeper[T]) Export() (json.RawMessage, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	return json.Marshal(k.value)
}

func (k *Keeper[T]) save(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		Writes.WithLabelValues(k.key, "error").Inc()
		return fmt.Errorf("encoding snapshot %q failed: %w", k.key, err)
	}

	err = k.store.Save(ctx, k.key, data)
	if err != nil {
		Writes.WithLabelValues(k.key, "error").Inc()
		return fmt.Errorf("saving snapshot %q failed: %w", k.key, err)
	}

	Writes.WithLabelValues(k.key, "ok").Inc()
	log.Debug().Str("key", k.key).Int("size", len(data)).Msg("snapshot saved")
	return nil
}
