package system

import (
	"github.com/milk9111/hovergallery/ecs"
	"github.com/milk9111/hovergallery/ecs/component"
	"github.com/milk9111/hovergallery/scene"
)

// HoverTweenSystem starts hover tweens from this frame's pointer events and
// advances them into each material's hoverState uniform.
type HoverTweenSystem struct {
	ctx *scene.Context
}

func NewHoverTweenSystem(ctx *scene.Context) *HoverTweenSystem {
	return &HoverTweenSystem{ctx: ctx}
}

func (s *HoverTweenSystem) Update(w *ecs.World) {
	if s == nil || s.ctx == nil {
		return
	}

	for _, evt := range w.Events().Peek() {
		if evt.Type != EventPointer {
			continue
		}
		pe, ok := evt.Data.(ecs.PointerEvent)
		if !ok {
			continue
		}
		h, ok := ecs.Get(w, pe.Entity, component.HoverComponent.Kind())
		if !ok {
			continue
		}
		switch pe.Kind {
		case ecs.PointerEnter:
			h.Tween.Start(1)
		case ecs.PointerLeave:
			h.Tween.Start(0)
		}
	}

	dt := s.ctx.Frame.Delta
	ecs.ForEach2(w, component.HoverComponent.Kind(), component.MaterialComponent.Kind(), func(_ ecs.Entity, h *component.Hover, m *component.Material) {
		v := h.Tween.Advance(dt)
		if m.Material != nil {
			m.Material.Uniforms.HoverState = float32(v)
		}
	})
}
