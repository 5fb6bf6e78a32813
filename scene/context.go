package scene

import (
	"github.com/milk9111/hovergallery/clock"
	"github.com/milk9111/hovergallery/page"
)

// Pointer is the last known pointer position in viewport pixels.
type Pointer struct {
	X, Y  float64
	Known bool
	Moved bool
}

// Page is the document the scene overlays. *page.Document implements it.
type Page interface {
	QueryImages() []*page.Element
	BoundingRect(el *page.Element) page.Rect
	ElementAt(x, y float64) *page.Element
	Layout(containerWidth float64) bool
}

// Context is the mutable per-frame state shared by the scene systems.
type Context struct {
	Frame     clock.Frame
	TimeScale float64
	Viewport  Viewport
	Scroll    float64
	Pointer   Pointer
	Camera    *Camera
	Page      Page
}

// Time is the value written to every material's time uniform this frame.
func (c *Context) Time() float32 {
	scale := c.TimeScale
	if scale == 0 {
		scale = 1
	}
	return float32(c.Frame.Seconds() * scale)
}

// MeshPosition converts a document box to the world-space center of its
// plane. It depends only on its arguments.
func MeshPosition(b page.Rect, scroll float64, vp Viewport) (x, y float64) {
	x = b.Left - vp.Width/2 + b.Width/2
	y = scroll - b.Top + vp.Height/2 - b.Height/2
	return x, y
}
