package ecs

// storage is the type-erased view of a component set the world needs for
// entity teardown.
type storage interface {
	has(id entityID) bool
	remove(id entityID) bool
	len() int
}

// sparseSet is a cache-friendly storage for components keyed by entity id.
// Values are stored as pointers so systems mutate components in place.
type sparseSet[T any] struct {
	owners []Entity
	values []*T
	sparse []int
}

func (s *sparseSet[T]) has(id entityID) bool {
	if id == 0 || int(id) > len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.owners) && s.owners[idx].id() == id
}

func (s *sparseSet[T]) get(id entityID) (*T, bool) {
	if !s.has(id) {
		return nil, false
	}
	return s.values[s.sparse[id-1]], true
}

func (s *sparseSet[T]) set(e Entity, v *T) {
	id := e.id()
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(id) {
		idx := s.sparse[id-1]
		s.owners[idx] = e
		s.values[idx] = v
		return
	}
	s.owners = append(s.owners, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.owners) - 1
}

func (s *sparseSet[T]) remove(id entityID) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.owners) - 1
	lastID := s.owners[last].id()

	s.owners[idx] = s.owners[last]
	s.values[idx] = s.values[last]
	s.sparse[lastID-1] = idx

	s.values[last] = nil
	s.owners = s.owners[:last]
	s.values = s.values[:last]
	s.sparse[id-1] = -1
	return true
}

func (s *sparseSet[T]) len() int {
	return len(s.owners)
}
