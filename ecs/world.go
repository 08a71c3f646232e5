package ecs

import "github.com/milk9111/soundscape/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// KindRef identifies a registered component kind without its type parameter.
// component.ComponentKind[T] satisfies it for every T.
type KindRef interface {
	ID() component.ComponentID
}

// World owns entities and one component table per registered kind. It is not
// safe for concurrent use; the scheduler runs systems one at a time.
type World struct {
	entities entityStore
	tables   map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{tables: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components. It reports
// whether the handle referred to a live entity.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, table := range w.tables {
		table.Remove(int(e.id()))
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// AddComponent attaches value to e under the given kind. value should be a
// pointer; the generic Add wrapper enforces that.
func (w *World) AddComponent(e Entity, kind KindRef, value any) error {
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.table(kind.ID()).Set(int(e.id()), value)
	return nil
}

// GetComponent returns the stored value for e under kind.
func (w *World) GetComponent(e Entity, kind KindRef) (any, bool) {
	if kind == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	table, ok := w.tables[kind.ID()]
	if !ok || !table.Has(int(e.id())) {
		return nil, false
	}
	return table.Get(int(e.id())), true
}

// HasComponent reports whether e has a component of the given kind.
func (w *World) HasComponent(e Entity, kind KindRef) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

// RemoveComponent detaches the component of the given kind from e.
func (w *World) RemoveComponent(e Entity, kind KindRef) bool {
	if kind == nil || !w.entities.isAlive(e) {
		return false
	}
	table, ok := w.tables[kind.ID()]
	if !ok {
		return false
	}
	return table.Remove(int(e.id()))
}

func (w *World) table(id component.ComponentID) *SparseSet {
	if w.tables == nil {
		w.tables = make(map[component.ComponentID]*SparseSet)
	}
	table, ok := w.tables[id]
	if !ok {
		table = &SparseSet{}
		w.tables[id] = table
	}
	return table
}
