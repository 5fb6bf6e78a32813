package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Uniform names of the shader contract.
const (
	UniformTime       = "time"
	UniformImage      = "uImage"
	UniformHover      = "hover"
	UniformHoverState = "hoverState"
)

// Kage requires exported uniform names; uImage is bound to image slot 0.
var kageUniformNames = map[string]string{
	UniformTime:       "Time",
	UniformHover:      "Hover",
	UniformHoverState: "HoverState",
}

// KageName returns the Kage variable backing a contract uniform.
func KageName(uniform string) (string, bool) {
	n, ok := kageUniformNames[uniform]
	return n, ok
}

// Uniforms is the per-material mutable uniform record.
type Uniforms struct {
	Time       float32
	Hover      mgl32.Vec2
	HoverState float32
}

func DefaultUniforms() Uniforms {
	return Uniforms{Hover: mgl32.Vec2{0.5, 0.5}}
}

// Values returns the record keyed by Kage names, ready for draw options.
func (u Uniforms) Values() map[string]any {
	return map[string]any{
		kageUniformNames[UniformTime]:       u.Time,
		kageUniformNames[UniformHover]:      []float32{u.Hover.X(), u.Hover.Y()},
		kageUniformNames[UniformHoverState]: u.HoverState,
	}
}

// Program is the shared shader description. It is not mutated after Compile;
// hot reload builds a new Program and swaps it into every material.
type Program struct {
	Name           string
	FragmentSource []byte
	Vertex         VertexProgram

	shader *ebiten.Shader
}

func NewProgram(name string, fragment []byte, vertex VertexProgram) *Program {
	if vertex == nil {
		vertex = DefaultWave()
	}
	return &Program{Name: name, FragmentSource: fragment, Vertex: vertex}
}

// Compile builds the fragment shader. It must run on the game thread.
func (p *Program) Compile() error {
	if p == nil {
		return fmt.Errorf("scene: nil program")
	}
	if len(p.FragmentSource) == 0 {
		return fmt.Errorf("scene: program %q has no fragment source", p.Name)
	}
	s, err := ebiten.NewShader(p.FragmentSource)
	if err != nil {
		return fmt.Errorf("scene: compile %q: %w", p.Name, err)
	}
	p.shader = s
	return nil
}

func (p *Program) Shader() *ebiten.Shader {
	if p == nil {
		return nil
	}
	return p.shader
}

// NewMaterial clones the program into an instance with its own uniforms.
func (p *Program) NewMaterial(texture *ebiten.Image) *Material {
	return &Material{Program: p, Texture: texture, Uniforms: DefaultUniforms()}
}

// Material binds a shared program to one texture and one uniform record.
type Material struct {
	Program  *Program
	Texture  *ebiten.Image
	Uniforms Uniforms
}
