package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// jsonDocument reads and writes one JSON value under a fixed key. A value
// that no longer decodes is reported as absent so a damaged store never
// blocks startup.
type jsonDocument[T any] struct {
	kv  KVStore
	key string
	log logrus.FieldLogger
}

func (d jsonDocument[T]) load(ctx context.Context) (*T, error) {
	raw, err := d.kv.Get(ctx, d.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		d.log.WithError(err).WithField("key", d.key).Warn("ignoring unreadable document")
		return nil, nil
	}
	return &v, nil
}

func (d jsonDocument[T]) save(ctx context.Context, v *T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", d.key, err)
	}
	return d.kv.Set(ctx, d.key, raw)
}

func (d jsonDocument[T]) clear(ctx context.Context) error {
	return d.kv.Clear(ctx, d.key)
}
