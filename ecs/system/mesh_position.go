package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/hovergallery/ecs"
	"github.com/milk9111/hovergallery/ecs/component"
	"github.com/milk9111/hovergallery/scene"
)

type MeshPositionSystem struct {
	ctx *scene.Context
}

func NewMeshPositionSystem(ctx *scene.Context) *MeshPositionSystem {
	return &MeshPositionSystem{ctx: ctx}
}

// Update centers each plane on its element's box, offset by scroll.
func (s *MeshPositionSystem) Update(w *ecs.World) {
	if s == nil || s.ctx == nil {
		return
	}
	ecs.ForEach2(w, component.TrackedImageComponent.Kind(), component.MeshComponent.Kind(), func(_ ecs.Entity, ti *component.TrackedImage, m *component.Mesh) {
		if m.Mesh == nil {
			return
		}
		x, y := scene.MeshPosition(ti.Bounds, s.ctx.Scroll, s.ctx.Viewport)
		m.Mesh.Position = mgl32.Vec3{float32(x), float32(y), 0}
	})
}
