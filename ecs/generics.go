package ecs

import "github.com/milk9111/hovergallery/ecs/component"

// Add stores value for e, replacing any previous component of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	return w.addComponent(e, kind.ID(), value)
}

// Get returns the stored pointer; mutations are visible to later systems.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	value, ok := w.getComponent(e, kind.ID())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	for _, e := range w.query(a.ID()) {
		va, _ := Get(w, e, a)
		fn(e, va)
	}
}

func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.query(a.ID(), b.ID()) {
		va, _ := Get(w, e, a)
		vb, _ := Get(w, e, b)
		fn(e, va, vb)
	}
}
