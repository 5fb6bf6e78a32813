package scene

import (
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl32"
)

// VertexProgram displaces plane vertices along Z. It runs on the CPU for each
// vertex of each mesh every frame, before projection.
type VertexProgram interface {
	Displace(uv mgl32.Vec2, u Uniforms) float32
}

// Wave ripples the plane outward from the hover point, scaled by hoverState.
type Wave struct {
	Amplitude float32
	Frequency float32
}

func DefaultWave() Wave {
	return Wave{Amplitude: 10, Frequency: 10}
}

func (w Wave) Displace(uv mgl32.Vec2, u Uniforms) float32 {
	dist := uv.Sub(u.Hover).Len()
	return u.HoverState * w.Amplitude * float32(math.Sin(float64(dist*w.Frequency+u.Time)))
}

// scriptVars are the globals a vertex script reads; it must assign z.
var scriptVars = []string{"u", "v", "hover_x", "hover_y", "time", "hover_state", "z"}

// Script is a tengo vertex program. Params become script globals as well.
type Script struct {
	Path     string
	compiled *tengo.Compiled
	err      error
}

func NewScript(path string, src []byte, params map[string]float64) (*Script, error) {
	script := tengo.NewScript(src)
	for _, name := range scriptVars {
		if err := script.Add(name, 0.0); err != nil {
			return nil, fmt.Errorf("scene: script %s: add %s: %w", path, name, err)
		}
	}
	for name, value := range params {
		if err := script.Add(name, value); err != nil {
			return nil, fmt.Errorf("scene: script %s: add %s: %w", path, name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scene: compile script %s: %w", path, err)
	}
	return &Script{Path: path, compiled: compiled}, nil
}

// Err returns the first runtime error; after one the script displaces nothing.
func (s *Script) Err() error {
	return s.err
}

func (s *Script) Displace(uv mgl32.Vec2, u Uniforms) float32 {
	if s == nil || s.compiled == nil || s.err != nil {
		return 0
	}
	set := func(name string, v float32) {
		if s.err == nil {
			s.err = s.compiled.Set(name, float64(v))
		}
	}
	set("u", uv.X())
	set("v", uv.Y())
	set("hover_x", u.Hover.X())
	set("hover_y", u.Hover.Y())
	set("time", u.Time)
	set("hover_state", u.HoverState)
	set("z", 0)
	if s.err != nil {
		return 0
	}
	if err := s.compiled.Run(); err != nil {
		s.err = fmt.Errorf("scene: run script %s: %w", s.Path, err)
		return 0
	}
	return float32(s.compiled.Get("z").Float())
}
