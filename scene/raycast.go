package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// Hit is a ray/mesh intersection.
type Hit struct {
	Distance float32
	Point    mgl32.Vec3
	UV       mgl32.Vec2
}

// IntersectPlane tests the ray against an axis-aligned rectangle of the given
// size centered at center in the plane z = center.Z. UV runs 0..1 left to
// right and bottom to top.
func (r Ray) IntersectPlane(center mgl32.Vec3, width, height float32) (Hit, bool) {
	dz := r.Direction.Z()
	if math.Abs(float64(dz)) < 1e-9 {
		return Hit{}, false
	}
	t := (center.Z() - r.Origin.Z()) / dz
	if t < 0 {
		return Hit{}, false
	}
	p := r.Origin.Add(r.Direction.Mul(t))
	lx := p.X() - center.X()
	ly := p.Y() - center.Y()
	if math.Abs(float64(lx)) > float64(width)/2 || math.Abs(float64(ly)) > float64(height)/2 {
		return Hit{}, false
	}
	return Hit{
		Distance: t,
		Point:    p,
		UV:       mgl32.Vec2{lx/width + 0.5, ly/height + 0.5},
	}, true
}
