package ecs

import "github.com/milk9111/flycam/ecs/component"

// ForEach calls fn for every entity holding the component. fn must not add
// or remove components of the same kind.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	s := storeFor(w, handle)
	if s == nil {
		return
	}
	for i := 0; i < len(s.owners); i++ {
		fn(s.owners[i], s.values[i])
	}
}

// ForEach2 calls fn for every entity holding both components, iterating the
// smaller set.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ha)
	sb := storeFor(w, hb)
	if sa == nil || sb == nil {
		return
	}
	if sa.len() <= sb.len() {
		for i := 0; i < len(sa.owners); i++ {
			if vb, ok := sb.get(sa.owners[i].id()); ok {
				fn(sa.owners[i], sa.values[i], vb)
			}
		}
		return
	}
	for i := 0; i < len(sb.owners); i++ {
		if va, ok := sa.get(sb.owners[i].id()); ok {
			fn(sb.owners[i], va, sb.values[i])
		}
	}
}

// First returns the first entity holding the component.
func First[T any](w *World, handle component.ComponentHandle[T]) (Entity, bool) {
	s := storeFor(w, handle)
	if s == nil || s.len() == 0 {
		return 0, false
	}
	return s.owners[0], true
}
