// Package ecs implements the entity/component registry that holds generated
// terrain and ocean state between ticks.
package ecs

import (
	"errors"
	"fmt"

	"github.com/Faultbox/surfgen/internal/pkg/idgen"
)

var (
	// ErrDuplicateEntity is returned when adding an entity that is already registered.
	ErrDuplicateEntity = errors.New("entity already registered")
	// ErrUnknownEntity is returned when attaching a component to an unregistered entity.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrNilComponent is returned when attaching a nil component.
	ErrNilComponent = errors.New("nil component")
	// ErrIDsExhausted is returned when the id generator keeps repeating registered ids.
	ErrIDsExhausted = errors.New("id generator produced no unused id")
)

// maxCreateAttempts bounds how many generated ids Create tries.
const maxCreateAttempts = 8

// Entity is an opaque, globally unique identifier.
type Entity string

// store holds all components of one kind in first-attach order.
type store struct {
	items map[Entity]Component
	order []Entity
}

func newStore() *store {
	return &store{items: make(map[Entity]Component)}
}

func (s *store) set(e Entity, c Component) {
	if _, ok := s.items[e]; !ok {
		s.order = append(s.order, e)
	}
	s.items[e] = c
}

func (s *store) remove(e Entity) bool {
	if _, ok := s.items[e]; !ok {
		return false
	}
	delete(s.items, e)
	for i, o := range s.order {
		if o == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Registry owns entities and their components. It is not safe for concurrent
// mutation; a tick mutates it from a single goroutine.
type Registry struct {
	ids      idgen.Generator
	entities map[Entity]struct{}
	order    []Entity
	stores   map[Kind]*store
}

// NewRegistry creates an empty registry. A nil generator defaults to UUIDs.
func NewRegistry(ids idgen.Generator) *Registry {
	if ids == nil {
		ids = idgen.NewUUID("")
	}
	return &Registry{
		ids:      ids,
		entities: make(map[Entity]struct{}),
		stores:   make(map[Kind]*store),
	}
}

// Add registers e.
func (r *Registry) Add(e Entity) error {
	if _, ok := r.entities[e]; ok {
		return fmt.Errorf("add %q: %w", e, ErrDuplicateEntity)
	}
	r.entities[e] = struct{}{}
	r.order = append(r.order, e)
	return nil
}

// Create registers and returns a new entity with a generated id. Ids already
// registered are skipped, up to maxCreateAttempts tries.
func (r *Registry) Create() (Entity, error) {
	for i := 0; i < maxCreateAttempts; i++ {
		e := Entity(r.ids.Generate())
		if err := r.Add(e); err == nil {
			return e, nil
		}
	}
	return "", fmt.Errorf("create after %d attempts: %w", maxCreateAttempts, ErrIDsExhausted)
}

// Has reports whether e is registered.
func (r *Registry) Has(e Entity) bool {
	_, ok := r.entities[e]
	return ok
}

// Len returns the number of registered entities.
func (r *Registry) Len() int { return len(r.order) }

// Entities returns all registered entities in the order they were added.
func (r *Registry) Entities() []Entity {
	return append([]Entity(nil), r.order...)
}

// AddComponent attaches c to e, replacing any component of the same kind.
func (r *Registry) AddComponent(e Entity, c Component) error {
	if c == nil {
		return fmt.Errorf("attach to %q: %w", e, ErrNilComponent)
	}
	if !r.Has(e) {
		return fmt.Errorf("attach %s to %q: %w", c.Kind(), e, ErrUnknownEntity)
	}
	s, ok := r.stores[c.Kind()]
	if !ok {
		s = newStore()
		r.stores[c.Kind()] = s
	}
	s.set(e, c)
	return nil
}

// Component returns the component of the given kind attached to e.
func (r *Registry) Component(e Entity, kind Kind) (Component, bool) {
	s, ok := r.stores[kind]
	if !ok {
		return nil, false
	}
	c, ok := s.items[e]
	return c, ok
}

// HasComponent reports whether e holds a component of kind.
func (r *Registry) HasComponent(e Entity, kind Kind) bool {
	_, ok := r.Component(e, kind)
	return ok
}

// EntitiesWith returns the entities holding a component of kind, in the order
// the component was first attached.
func (r *Registry) EntitiesWith(kind Kind) []Entity {
	s, ok := r.stores[kind]
	if !ok {
		return nil
	}
	return append([]Entity(nil), s.order...)
}

// RemoveComponent detaches the component of kind from e.
func (r *Registry) RemoveComponent(e Entity, kind Kind) bool {
	s, ok := r.stores[kind]
	if !ok {
		return false
	}
	return s.remove(e)
}

// Remove unregisters e and drops all of its components.
func (r *Registry) Remove(e Entity) bool {
	if !r.Has(e) {
		return false
	}
	for _, s := range r.stores {
		s.remove(e)
	}
	delete(r.entities, e)
	for i, o := range r.order {
		if o == e {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns e's component of type T. T must be a concrete component type;
// an interface type always reports false.
func Get[T Component](r *Registry, e Entity) (T, bool) {
	var zero T
	if any(zero) == nil {
		return zero, false
	}
	c, ok := r.Component(e, zero.Kind())
	if !ok {
		return zero, false
	}
	t, ok := c.(T)
	return t, ok
}
