package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"soulshub/internal/middleware"
	"soulshub/internal/store"
)

// loadJSON reads the document at key into T. A missing key hydrates the
// built-in default, and so does a corrupt document: losing one collection to
// bad bytes should never take the page down.
func loadJSON[T any](ctx context.Context, s store.Store, key string, def func() T) (T, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return def(), nil
	}
	if err != nil {
		var zero T
		return zero, err
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		middleware.Logger.WarnContext(ctx, "corrupt document, falling back to default",
			"key", key, "error", err)
		return def(), nil
	}
	return v, nil
}

// saveJSON marshals v and writes it under key.
func saveJSON[T any](ctx context.Context, s store.Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	return s.Put(ctx, key, raw)
}
