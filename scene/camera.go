// Package scene holds the 3D side of the gallery: a perspective camera whose
// units match page pixels, subdivided plane meshes, shader programs and the
// per-instance uniform records they animate.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultCameraDistance = 600
	DefaultNear           = 100
	DefaultFar            = 2000
)

// Viewport is the render surface size in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

func (v Viewport) Aspect() float64 {
	if v.Height == 0 {
		return 1
	}
	return v.Width / v.Height
}

func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Camera is a perspective camera on the +Z axis looking at the origin. Its
// field of view is chosen once so that at z=0 one world unit is one pixel of
// the initial viewport height. Resizing changes only the aspect ratio.
type Camera struct {
	Distance float64
	Near     float64
	Far      float64

	fov      float64
	aspect   float64
	viewport Viewport

	eye        mgl32.Vec3
	view       mgl32.Mat4
	projection mgl32.Mat4
	viewProj   mgl32.Mat4
}

func NewCamera(vp Viewport, distance, near, far float64) *Camera {
	if distance <= 0 {
		distance = DefaultCameraDistance
	}
	if near <= 0 {
		near = DefaultNear
	}
	if far <= near {
		far = DefaultFar
	}
	c := &Camera{
		Distance: distance,
		Near:     near,
		Far:      far,
		fov:      2 * math.Atan((vp.Height/2)/distance),
		eye:      mgl32.Vec3{0, 0, float32(distance)},
	}
	c.view = mgl32.LookAtV(c.eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	c.Resize(vp)
	return c
}

// Resize updates viewport, aspect and projection. The FOV is left alone.
func (c *Camera) Resize(vp Viewport) {
	if !vp.Valid() {
		return
	}
	c.viewport = vp
	c.aspect = vp.Width / vp.Height
	c.projection = mgl32.Perspective(float32(c.fov), float32(c.aspect), float32(c.Near), float32(c.Far))
	c.viewProj = c.projection.Mul4(c.view)
}

// FOV returns the vertical field of view in radians.
func (c *Camera) FOV() float64 { return c.fov }

func (c *Camera) FOVDegrees() float64 { return c.fov * 180 / math.Pi }

func (c *Camera) Aspect() float64 { return c.aspect }

func (c *Camera) Viewport() Viewport { return c.viewport }

func (c *Camera) Projection() mgl32.Mat4 { return c.projection }

func (c *Camera) ViewProjection() mgl32.Mat4 { return c.viewProj }

// Project maps a world point to viewport pixels (y down). ok is false for
// points at or behind the camera plane.
func (c *Camera) Project(p mgl32.Vec3) (x, y float32, ok bool) {
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 1e-6 {
		return 0, 0, false
	}
	nx := clip.X() / w
	ny := clip.Y() / w
	x = (nx + 1) / 2 * float32(c.viewport.Width)
	y = (1 - ny) / 2 * float32(c.viewport.Height)
	return x, y, true
}

// NDC normalizes viewport pixel coordinates to [-1,1] with y up.
func (c *Camera) NDC(px, py float64) (float64, float64) {
	if !c.viewport.Valid() {
		return 0, 0
	}
	return px/c.viewport.Width*2 - 1, -(py/c.viewport.Height)*2 + 1
}

// Ray returns the ray from the camera through a point in NDC.
func (c *Camera) Ray(ndcX, ndcY float64) Ray {
	inv := c.viewProj.Inv()
	far := inv.Mul4x1(mgl32.Vec4{float32(ndcX), float32(ndcY), 1, 1})
	target := far.Vec3().Mul(1 / far.W())
	return Ray{Origin: c.eye, Direction: target.Sub(c.eye).Normalize()}
}
