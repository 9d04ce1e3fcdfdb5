// Package storage provides typed access to the durable key/value store that
// session state is persisted in.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/educhain-backend/internal/model"
)

// ErrCorruptValue is returned when a stored value cannot be decoded.
var ErrCorruptValue = errors.New("corrupt stored value")

// Store is a string keyed, string valued persistent map.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Key binds a storage key to a value type and its string codec.
type Key[T any] struct {
	name   string
	encode func(T) (string, error)
	decode func(string) (T, error)
}

// Name returns the raw storage key.
func (k Key[T]) Name() string {
	return k.name
}

// Get reads and decodes the value. A missing key yields the zero value and false.
func (k Key[T]) Get(ctx context.Context, s Store) (T, bool, error) {
	var zero T
	raw, ok, err := s.Get(ctx, k.name)
	if err != nil {
		return zero, false, fmt.Errorf("get %s: %w", k.name, err)
	}
	if !ok {
		return zero, false, nil
	}
	v, err := k.decode(raw)
	if err != nil {
		return zero, false, fmt.Errorf("decode %s: %w: %v", k.name, ErrCorruptValue, err)
	}
	return v, true, nil
}

// Set encodes and writes the value.
func (k Key[T]) Set(ctx context.Context, s Store, v T) error {
	raw, err := k.encode(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", k.name, err)
	}
	if err := s.Set(ctx, k.name, raw); err != nil {
		return fmt.Errorf("set %s: %w", k.name, err)
	}
	return nil
}

// Delete removes the value.
func (k Key[T]) Delete(ctx context.Context, s Store) error {
	if err := s.Delete(ctx, k.name); err != nil {
		return fmt.Errorf("delete %s: %w", k.name, err)
	}
	return nil
}

// StringKey stores the value verbatim.
func StringKey(name string) Key[string] {
	return Key[string]{
		name:   name,
		encode: func(v string) (string, error) { return v, nil },
		decode: func(raw string) (string, error) { return raw, nil },
	}
}

// TimeKey stores an ISO-8601 UTC timestamp with millisecond precision.
func TimeKey(name string) Key[time.Time] {
	return Key[time.Time]{
		name: name,
		encode: func(v time.Time) (string, error) {
			return v.UTC().Format(TimestampLayout), nil
		},
		decode: func(raw string) (time.Time, error) {
			return time.Parse(time.RFC3339Nano, raw)
		},
	}
}

// JSONKey stores the value as a JSON document.
func JSONKey[T any](name string) Key[T] {
	return Key[T]{
		name: name,
		encode: func(v T) (string, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
		decode: func(raw string) (T, error) {
			var v T
			err := json.Unmarshal([]byte(raw), &v)
			return v, err
		},
	}
}

// TimestampLayout matches JavaScript's Date.prototype.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Keys shared with browser clients reading the same origin storage.
var (
	WalletAddressKey   = StringKey("wallet-address")
	LastSyncedKey      = TimeKey("lastSynced")
	DownloadedItemsKey = JSONKey[[]model.DownloadedItem]("downloaded-items")
)
