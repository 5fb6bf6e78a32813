package scene

import "github.com/go-gl/mathgl/mgl32"

// MaxSegments keeps (segX+1)*(segY+1) within 16-bit index range.
const MaxSegments = 255

func clampSegments(n int) int {
	return min(max(n, 1), MaxSegments)
}

// PlaneGeometry is a subdivided rectangle in the XY plane centered on the
// origin. Vertices run row by row from the top edge, left to right.
type PlaneGeometry struct {
	Width     float32
	Height    float32
	SegX      int
	SegY      int
	Positions []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint16
}

func NewPlaneGeometry(width, height float32, segX, segY int) *PlaneGeometry {
	segX = clampSegments(segX)
	segY = clampSegments(segY)
	g := &PlaneGeometry{Width: width, Height: height, SegX: segX, SegY: segY}

	cols := segX + 1
	rows := segY + 1
	segW := width / float32(segX)
	segH := height / float32(segY)

	g.Positions = make([]mgl32.Vec3, 0, cols*rows)
	g.UVs = make([]mgl32.Vec2, 0, cols*rows)
	for iy := 0; iy < rows; iy++ {
		y := height/2 - float32(iy)*segH
		for ix := 0; ix < cols; ix++ {
			x := float32(ix)*segW - width/2
			g.Positions = append(g.Positions, mgl32.Vec3{x, y, 0})
			g.UVs = append(g.UVs, mgl32.Vec2{float32(ix) / float32(segX), 1 - float32(iy)/float32(segY)})
		}
	}

	g.Indices = make([]uint16, 0, segX*segY*6)
	for iy := 0; iy < segY; iy++ {
		for ix := 0; ix < segX; ix++ {
			a := uint16(ix + cols*iy)
			b := uint16(ix + cols*(iy+1))
			c := uint16(ix + 1 + cols*(iy+1))
			d := uint16(ix + 1 + cols*iy)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g
}

func (g *PlaneGeometry) VertexCount() int {
	return len(g.Positions)
}
