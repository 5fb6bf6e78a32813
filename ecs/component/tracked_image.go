package component

import "github.com/milk9111/hovergallery/page"

// TrackedImage links an entity to its page element and the bounds measured
// for it on the most recent frame.
type TrackedImage struct {
	Element *page.Element
	Bounds  page.Rect
	Index   int
}

var TrackedImageComponent = NewComponent[TrackedImage]()
