package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Mesh is a plane placed in the world. Its geometry keeps the size it was
// built with; only the position follows the page.
type Mesh struct {
	Geometry *PlaneGeometry
	Position mgl32.Vec3

	vertices []ebiten.Vertex
}

func NewMesh(width, height float64, segments int) *Mesh {
	return &Mesh{Geometry: NewPlaneGeometry(float32(width), float32(height), segments, segments)}
}

// Hit ray-casts the undisplaced plane.
func (m *Mesh) Hit(r Ray) (Hit, bool) {
	if m == nil || m.Geometry == nil {
		return Hit{}, false
	}
	return r.IntersectPlane(m.Position, m.Geometry.Width, m.Geometry.Height)
}

// Vertices runs the vertex stage and returns screen-space vertices. ok is
// false when any vertex falls behind the camera.
func (m *Mesh) Vertices(cam *Camera, mat *Material, texW, texH float32) ([]ebiten.Vertex, bool) {
	g := m.Geometry
	if cap(m.vertices) < len(g.Positions) {
		m.vertices = make([]ebiten.Vertex, len(g.Positions))
	}
	m.vertices = m.vertices[:len(g.Positions)]

	var vp VertexProgram
	if mat.Program != nil {
		vp = mat.Program.Vertex
	}
	for i, p := range g.Positions {
		uv := g.UVs[i]
		world := p.Add(m.Position)
		if vp != nil && mat.Uniforms.HoverState != 0 {
			world[2] += vp.Displace(uv, mat.Uniforms)
		}
		x, y, ok := cam.Project(world)
		if !ok {
			return nil, false
		}
		m.vertices[i] = ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   uv.X() * texW,
			SrcY:   (1 - uv.Y()) * texH,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	return m.vertices, true
}

// Draw renders the mesh with its material. Meshes without a texture or a
// compiled shader are skipped.
func (m *Mesh) Draw(screen *ebiten.Image, cam *Camera, mat *Material) {
	if m == nil || screen == nil || cam == nil || mat == nil || mat.Texture == nil {
		return
	}
	shader := mat.Program.Shader()
	if shader == nil {
		return
	}
	b := mat.Texture.Bounds()
	verts, ok := m.Vertices(cam, mat, float32(b.Dx()), float32(b.Dy()))
	if !ok {
		return
	}
	for i := range verts {
		verts[i].SrcX += float32(b.Min.X)
		verts[i].SrcY += float32(b.Min.Y)
	}
	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Uniforms = mat.Uniforms.Values()
	op.Images[0] = mat.Texture
	screen.DrawTrianglesShader(verts, m.Geometry.Indices, shader, op)
}
