package page

import "github.com/jakecoffman/cp"

// HitIndex answers "which element is under this document point" using a
// Chipmunk space of static boxes. The space is never stepped.
type HitIndex struct {
	space          *cp.Space
	shapeToElement map[*cp.Shape]*Element
}

func NewHitIndex() *HitIndex {
	return &HitIndex{
		space:          cp.NewSpace(),
		shapeToElement: make(map[*cp.Shape]*Element),
	}
}

// Rebuild replaces every box with the elements' current rects.
func (h *HitIndex) Rebuild(elements []*Element) {
	if h == nil {
		return
	}
	for shape := range h.shapeToElement {
		h.space.RemoveShape(shape)
	}
	h.shapeToElement = make(map[*cp.Shape]*Element, len(elements))

	for _, el := range elements {
		if el == nil || el.rect.Empty() {
			continue
		}
		r := el.rect
		bb := cp.BB{L: r.Left, B: r.Top, R: r.Left + r.Width, T: r.Top + r.Height}
		shape := cp.NewBox2(h.space.StaticBody, bb, 0)
		shape.UserData = el
		h.space.AddShape(shape)
		h.shapeToElement[shape] = el
	}
}

// At returns the element containing (x, y), or nil.
func (h *HitIndex) At(x, y float64) *Element {
	if h == nil || len(h.shapeToElement) == 0 {
		return nil
	}
	info := h.space.PointQueryNearest(cp.Vector{X: x, Y: y}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return nil
	}
	return h.shapeToElement[info.Shape]
}

func (h *HitIndex) Len() int {
	if h == nil {
		return 0
	}
	return len(h.shapeToElement)
}
