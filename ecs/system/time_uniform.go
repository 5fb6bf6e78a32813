package system

import (
	"github.com/milk9111/hovergallery/ecs"
	"github.com/milk9111/hovergallery/ecs/component"
	"github.com/milk9111/hovergallery/scene"
)

type TimeUniformSystem struct {
	ctx *scene.Context
}

func NewTimeUniformSystem(ctx *scene.Context) *TimeUniformSystem {
	return &TimeUniformSystem{ctx: ctx}
}

func (s *TimeUniformSystem) Update(w *ecs.World) {
	if s == nil || s.ctx == nil {
		return
	}
	t := s.ctx.Time()
	ecs.ForEach(w, component.MaterialComponent.Kind(), func(_ ecs.Entity, m *component.Material) {
		if m.Material != nil {
			m.Material.Uniforms.Time = t
		}
	})
}
