package ecs

import "reflect"

// SetResource stores r as the world's singleton of type T.
func SetResource[T any](w *World, r *T) {
	if w == nil || r == nil {
		return
	}
	w.resources[reflect.TypeFor[T]()] = r
}

// Resource returns the world's singleton of type T.
func Resource[T any](w *World) (*T, bool) {
	if w == nil {
		return nil, false
	}
	r, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

// EnsureResource returns the singleton of type T, inserting init() first if
// the world has none.
func EnsureResource[T any](w *World, init func() *T) *T {
	if r, ok := Resource[T](w); ok {
		return r
	}
	r := init()
	SetResource(w, r)
	return r
}

// RemoveResource drops the singleton of type T.
func RemoveResource[T any](w *World) bool {
	if w == nil {
		return false
	}
	key := reflect.TypeFor[T]()
	if _, ok := w.resources[key]; !ok {
		return false
	}
	delete(w.resources, key)
	return true
}
