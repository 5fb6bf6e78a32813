package system

import (
	"github.com/milk9111/hovergallery/ecs"
	"github.com/milk9111/hovergallery/ecs/component"
	"github.com/milk9111/hovergallery/scene"
)

// EventPointer is the event type carrying an ecs.PointerEvent.
const EventPointer = "pointer"

// PointerHoverSystem turns the pointer position into enter/leave events for
// the element under it.
type PointerHoverSystem struct {
	ctx *scene.Context
}

func NewPointerHoverSystem(ctx *scene.Context) *PointerHoverSystem {
	return &PointerHoverSystem{ctx: ctx}
}

func (s *PointerHoverSystem) Update(w *ecs.World) {
	if s == nil || s.ctx == nil || s.ctx.Page == nil || !s.ctx.Pointer.Known {
		return
	}
	p := s.ctx.Pointer
	under := s.ctx.Page.ElementAt(p.X, p.Y+s.ctx.Scroll)

	ecs.ForEach2(w, component.TrackedImageComponent.Kind(), component.HoverComponent.Kind(), func(e ecs.Entity, ti *component.TrackedImage, h *component.Hover) {
		inside := under != nil && under == ti.Element
		if inside == h.Hovered {
			return
		}
		h.Hovered = inside
		kind := ecs.PointerLeave
		if inside {
			kind = ecs.PointerEnter
		}
		w.Events().Push(ecs.Event{Type: EventPointer, Data: ecs.PointerEvent{Entity: e, Kind: kind}})
	})
}
