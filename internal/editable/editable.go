// Package editable implements the draft lifecycle shared by every
// admin-editable section: begin an edit on a copy, mutate the copy freely,
// then commit all-or-nothing or discard.
package editable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// ErrNotEditing is returned when a draft operation arrives outside an edit.
var ErrNotEditing = errors.New("no edit in progress")

// ErrAlreadyEditing is returned when Begin is called twice without a commit
// or discard in between.
var ErrAlreadyEditing = errors.New("edit already in progress")

// Unit manages one editable section's draft. The live value is never touched
// until Commit persists the draft through the injected commit func; Discard
// throws the draft away and the live value stands untouched.
type Unit[T any] struct {
	mu      sync.Mutex
	editing bool
	draft   T
	commit  func(ctx context.Context, v T) error
}

// NewUnit creates a Unit whose Commit persists through fn.
func NewUnit[T any](fn func(ctx context.Context, v T) error) *Unit[T] {
	return &Unit[T]{commit: fn}
}

// Clone deep-copies v through a JSON round-trip, so draft mutations can never
// leak into the live value through shared slices or maps.
func Clone[T any](v T) (T, error) {
	var out T
	raw, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("clone: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("clone: %w", err)
	}
	return out, nil
}

// Begin starts an edit seeded with a deep copy of current.
func (u *Unit[T]) Begin(current T) (T, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var zero T
	if u.editing {
		return zero, ErrAlreadyEditing
	}

	draft, err := Clone(current)
	if err != nil {
		return zero, err
	}

	u.draft = draft
	u.editing = true
	return draft, nil
}

// Editing reports whether an edit is in progress.
func (u *Unit[T]) Editing() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.editing
}

// Draft returns a copy of the current draft.
func (u *Unit[T]) Draft() (T, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var zero T
	if !u.editing {
		return zero, ErrNotEditing
	}
	return Clone(u.draft)
}

// Update applies fn to the draft. The live value is unaffected.
func (u *Unit[T]) Update(fn func(*T)) (T, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var zero T
	if !u.editing {
		return zero, ErrNotEditing
	}

	fn(&u.draft)
	return Clone(u.draft)
}

// Commit persists the draft and ends the edit. If persisting fails the edit
// stays open with the draft intact, so nothing is half-saved.
func (u *Unit[T]) Commit(ctx context.Context) (T, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var zero T
	if !u.editing {
		return zero, ErrNotEditing
	}

	if err := u.commit(ctx, u.draft); err != nil {
		return zero, err
	}

	committed := u.draft
	u.editing = false
	u.draft = zero
	return committed, nil
}

// Discard drops the draft and ends the edit.
func (u *Unit[T]) Discard() {
	u.mu.Lock()
	defer u.mu.Unlock()

	var zero T
	u.editing = false
	u.draft = zero
}
