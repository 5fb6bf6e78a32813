package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hovergallery/ecs"
	"github.com/milk9111/hovergallery/ecs/component"
	"github.com/milk9111/hovergallery/scene"
)

type pageDrawer interface {
	Draw(screen *ebiten.Image, scroll float64)
}

// RenderSystem paints the page text layer, then every plane in creation
// order with its own material.
type RenderSystem struct {
	ctx *scene.Context
}

func NewRenderSystem(ctx *scene.Context) *RenderSystem {
	return &RenderSystem{ctx: ctx}
}

func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || r.ctx == nil || r.ctx.Camera == nil {
		return
	}
	if pd, ok := r.ctx.Page.(pageDrawer); ok {
		pd.Draw(screen, r.ctx.Scroll)
	}
	ecs.ForEach2(w, component.MeshComponent.Kind(), component.MaterialComponent.Kind(), func(_ ecs.Entity, m *component.Mesh, mat *component.Material) {
		m.Mesh.Draw(screen, r.ctx.Camera, mat.Material)
	})
}
