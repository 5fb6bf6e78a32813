package component

import "github.com/milk9111/hovergallery/common"

// Hover drives the material's hoverState uniform.
type Hover struct {
	Tween   common.Tween
	Hovered bool
}

var HoverComponent = NewComponent[Hover]()
