package system

import (
	"math"

	"github.com/milk9111/hovergallery/ecs"
	"github.com/milk9111/hovergallery/ecs/component"
	"github.com/milk9111/hovergallery/scene"
)

// RaycastSystem casts a ray through the pointer after it moves and writes the
// nearest hit's UV into that mesh's hover uniform. A miss changes nothing.
type RaycastSystem struct {
	ctx *scene.Context
}

func NewRaycastSystem(ctx *scene.Context) *RaycastSystem {
	return &RaycastSystem{ctx: ctx}
}

func (s *RaycastSystem) Update(w *ecs.World) {
	if s == nil || s.ctx == nil || s.ctx.Camera == nil || !s.ctx.Pointer.Moved {
		return
	}
	s.ctx.Pointer.Moved = false

	nx, ny := s.ctx.Camera.NDC(s.ctx.Pointer.X, s.ctx.Pointer.Y)
	ray := s.ctx.Camera.Ray(nx, ny)

	var (
		nearest *component.Material
		best    scene.Hit
		bestD   = float32(math.Inf(1))
	)
	ecs.ForEach2(w, component.MeshComponent.Kind(), component.MaterialComponent.Kind(), func(_ ecs.Entity, m *component.Mesh, mat *component.Material) {
		hit, ok := m.Mesh.Hit(ray)
		if !ok || hit.Distance >= bestD {
			return
		}
		nearest, best, bestD = mat, hit, hit.Distance
	})
	if nearest == nil || nearest.Material == nil {
		return
	}
	nearest.Material.Uniforms.Hover = best.UV
}
