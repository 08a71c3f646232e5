package ecs

import "github.com/milk9111/soundscape/ecs/component"

// The free functions below mirror the World methods with generic type
// safety layered on top. Components are always stored as *T.

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns every live entity handle.
func Entities(w *World) []Entity {
	return w.entities.all()
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	return w.AddComponent(e, kind, value)
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.RemoveComponent(e, kind)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.HasComponent(e, kind)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	value, ok := w.GetComponent(e, kind)
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// First returns any one entity that has the given component kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	table, ok := w.tables[kind.ID()]
	if !ok || table.Len() == 0 {
		return 0, false
	}
	for _, id := range table.Entities() {
		if ent, ok := w.entities.liveEntity(entityID(id)); ok {
			return ent, true
		}
	}
	return 0, false
}

// ForEach visits every live entity holding the given component kind. The
// callback may add or remove components and destroy entities; it iterates a
// snapshot of the table taken before the first call.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	table, ok := w.tables[kind.ID()]
	if !ok || table.Len() == 0 {
		return
	}
	ids := append([]int(nil), table.Entities()...)
	for _, id := range ids {
		ent, ok := w.entities.liveEntity(entityID(id))
		if !ok {
			continue
		}
		value, ok := table.Get(id).(*T)
		if !ok {
			continue
		}
		fn(ent, value)
	}
}
