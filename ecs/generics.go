package ecs

import (
	"fmt"

	"github.com/milk9111/flycam/ecs/component"
)

func storeFor[T any](w *World, handle component.ComponentHandle[T]) *sparseSet[T] {
	if w == nil || w.stores == nil {
		return nil
	}
	s, ok := w.stores[handle.Kind().ID()]
	if !ok {
		return nil
	}
	return s.(*sparseSet[T])
}

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if !handle.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("ecs: add %s: %w", handle.Kind(), component.ErrNilComponent)
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("ecs: add %s to %s: %w", handle.Kind(), e, component.ErrEntityNotAlive)
	}
	s := storeFor(w, handle)
	if s == nil {
		s = &sparseSet[T]{}
		w.stores[handle.Kind().ID()] = s
	}
	s.set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	s := storeFor(w, handle)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	_, ok := Get(w, e, handle)
	return ok
}

// Get returns the component of e. It fails for dead or stale handles, which
// makes it safe to resolve weak entity references.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s := storeFor(w, handle)
	if s == nil {
		return nil, false
	}
	return s.get(e.id())
}

// Count returns how many entities hold the component.
func Count[T any](w *World, handle component.ComponentHandle[T]) int {
	s := storeFor(w, handle)
	if s == nil {
		return 0
	}
	return s.len()
}
