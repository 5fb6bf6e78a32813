package gallery

import (
	"gopkg.in/yaml.v3"

	"github.com/milk9111/hovergallery/ecs"
	"github.com/milk9111/hovergallery/ecs/component"
	"github.com/milk9111/hovergallery/page"
)

// Snapshot is a plain view of the scene for dumps and the clipboard.
type Snapshot struct {
	Viewport struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
		Aspect float64 `yaml:"aspect"`
	} `yaml:"viewport"`
	FOV    float64        `yaml:"fov_degrees"`
	Scroll float64        `yaml:"scroll"`
	Time   float32        `yaml:"time"`
	Meshes []MeshSnapshot `yaml:"meshes"`
}

type MeshSnapshot struct {
	ID         string     `yaml:"id"`
	Bounds     page.Rect  `yaml:"bounds"`
	Position   [3]float32 `yaml:"position,flow"`
	Hover      [2]float32 `yaml:"hover,flow"`
	HoverState float32    `yaml:"hover_state"`
}

func (s *Synchronizer) Snapshot() Snapshot {
	var snap Snapshot
	vp := s.ctx.Viewport
	snap.Viewport.Width = vp.Width
	snap.Viewport.Height = vp.Height
	snap.Viewport.Aspect = s.ctx.Camera.Aspect()
	snap.FOV = s.ctx.Camera.FOVDegrees()
	snap.Scroll = s.ctx.Scroll
	snap.Time = s.ctx.Time()

	for _, e := range s.entities {
		ti, ok := ecs.Get(s.world, e, component.TrackedImageComponent.Kind())
		if !ok {
			continue
		}
		ms := MeshSnapshot{Bounds: ti.Bounds}
		if ti.Element != nil {
			ms.ID = ti.Element.ID
		}
		if m, ok := ecs.Get(s.world, e, component.MeshComponent.Kind()); ok && m.Mesh != nil {
			ms.Position = m.Mesh.Position
		}
		if m, ok := ecs.Get(s.world, e, component.MaterialComponent.Kind()); ok && m.Material != nil {
			ms.Hover = m.Material.Uniforms.Hover
			ms.HoverState = m.Material.Uniforms.HoverState
		}
		snap.Meshes = append(snap.Meshes, ms)
	}
	return snap
}

// YAML renders the snapshot.
func (snap Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(snap)
}
