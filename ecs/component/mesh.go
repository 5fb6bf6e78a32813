package component

import "github.com/milk9111/hovergallery/scene"

type Mesh struct {
	Mesh *scene.Mesh
}

var MeshComponent = NewComponent[Mesh]()
