package component

import "github.com/milk9111/hovergallery/scene"

type Material struct {
	Material *scene.Material
}

var MaterialComponent = NewComponent[Material]()
