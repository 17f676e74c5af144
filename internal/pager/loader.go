// Package pager exposes a growable window over an in-memory sequence, the
// paging half of an infinite-scroll list.
//
// A Loader is owned by a single view. It performs no I/O and never blocks, so
// it carries no locks; hosts that share one across goroutines must serialize
// access themselves.
package pager

import (
	"errors"
	"fmt"
)

// ErrInvalidPageSize is returned by New when the page size is not positive.
var ErrInvalidPageSize = errors.New("page size must be positive")

// Loader grows a visible prefix of a backing sequence one page at a time.
//
// Invariants:
//
//	len(visible) == min(cursor*pageSize, len(backing))
//	exhausted == (len(visible) == len(backing)), and never reverts
type Loader[T any] struct {
	backing   []T
	pageSize  int
	visible   []T
	cursor    int
	exhausted bool
}

// New materializes the first page of backing. The backing slice is not
// copied and must not be mutated while the loader is in use.
func New[T any](backing []T, pageSize int) (*Loader[T], error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}

	first := min(pageSize, len(backing))
	l := &Loader[T]{
		backing:  backing,
		pageSize: pageSize,
		visible:  make([]T, first, max(first, min(len(backing), 2*pageSize))),
	}
	copy(l.visible, backing[:first])
	if first > 0 {
		l.cursor = 1
	}
	l.exhausted = len(l.visible) == len(backing)
	return l, nil
}

// Advance appends the next page to the visible window and reports whether
// anything was appended. It is a no-op once the loader is exhausted, so hosts
// may call it on every qualifying scroll event.
func (l *Loader[T]) Advance() bool {
	if l.exhausted {
		return false
	}

	start := l.cursor * l.pageSize
	end := min(start+l.pageSize, len(l.backing))
	if start >= end {
		l.exhausted = true
		return false
	}

	l.visible = append(l.visible, l.backing[start:end]...)
	l.cursor++
	if len(l.visible) == len(l.backing) {
		l.exhausted = true
	}
	return true
}

// Items returns a copy of the visible window.
func (l *Loader[T]) Items() []T {
	out := make([]T, len(l.visible))
	copy(out, l.visible)
	return out
}

// Len returns the number of visible items.
func (l *Loader[T]) Len() int { return len(l.visible) }

// Total returns the length of the backing sequence.
func (l *Loader[T]) Total() int { return len(l.backing) }

// PageSize returns the configured page size.
func (l *Loader[T]) PageSize() int { return l.pageSize }

// PageCursor returns the number of pages materialized so far.
func (l *Loader[T]) PageCursor() int { return l.cursor }

// Exhausted reports whether the window covers the whole backing sequence.
func (l *Loader[T]) Exhausted() bool { return l.exhausted }

// State is a point-in-time snapshot of a loader.
type State[T any] struct {
	Visible    []T  `json:"visible"`
	PageCursor int  `json:"page_cursor"`
	Exhausted  bool `json:"exhausted"`
}

// State snapshots the loader.
func (l *Loader[T]) State() State[T] {
	return State[T]{
		Visible:    l.Items(),
		PageCursor: l.cursor,
		Exhausted:  l.exhausted,
	}
}
