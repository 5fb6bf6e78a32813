package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const waveScript = `
math := import("math")
dist := math.sqrt(math.pow(u - hover_x, 2) + math.pow(v - hover_y, 2))
z = hover_state * amplitude * math.sin(dist * frequency + time)
`

func TestWaveRestsWithoutHover(t *testing.T) {
	w := DefaultWave()
	u := DefaultUniforms()
	u.Time = 3.7
	if z := w.Displace(mgl32.Vec2{0.1, 0.9}, u); z != 0 {
		t.Fatalf("displacement = %v, want 0 when hoverState is 0", z)
	}
}

func TestScriptMatchesWave(t *testing.T) {
	s, err := NewScript("wave.tengo", []byte(waveScript), map[string]float64{"amplitude": 10, "frequency": 10})
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	w := DefaultWave()

	cases := []struct {
		name string
		uv   mgl32.Vec2
		u    Uniforms
	}{
		{"center", mgl32.Vec2{0.5, 0.5}, Uniforms{Time: 1, Hover: mgl32.Vec2{0.5, 0.5}, HoverState: 1}},
		{"corner", mgl32.Vec2{0, 1}, Uniforms{Time: 2.5, Hover: mgl32.Vec2{0.3, 0.6}, HoverState: 0.4}},
		{"off_hover", mgl32.Vec2{0.8, 0.2}, Uniforms{Time: 0.25, Hover: mgl32.Vec2{0.1, 0.1}, HoverState: 0.75}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := s.Displace(c.uv, c.u)
			want := w.Displace(c.uv, c.u)
			if !near32(got, want, 1e-3) {
				t.Fatalf("script = %v, wave = %v", got, want)
			}
		})
	}
	if s.Err() != nil {
		t.Fatalf("unexpected script error: %v", s.Err())
	}
}

func TestScriptCompileError(t *testing.T) {
	if _, err := NewScript("bad.tengo", []byte("z = ("), nil); err == nil {
		t.Fatalf("expected compile error")
	}
}
