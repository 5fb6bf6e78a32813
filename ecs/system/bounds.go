package system

import (
	"github.com/milk9111/hovergallery/ecs"
	"github.com/milk9111/hovergallery/ecs/component"
	"github.com/milk9111/hovergallery/scene"
)

// BoundsSystem re-measures every tracked element so planes follow the page
// even when it moves without a resize.
type BoundsSystem struct {
	ctx *scene.Context
}

func NewBoundsSystem(ctx *scene.Context) *BoundsSystem {
	return &BoundsSystem{ctx: ctx}
}

func (s *BoundsSystem) Update(w *ecs.World) {
	if s == nil || s.ctx == nil || s.ctx.Page == nil {
		return
	}
	ecs.ForEach(w, component.TrackedImageComponent.Kind(), func(_ ecs.Entity, ti *component.TrackedImage) {
		ti.Bounds = s.ctx.Page.BoundingRect(ti.Element)
	})
}
