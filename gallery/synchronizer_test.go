package gallery

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/hovergallery/clock"
	"github.com/milk9111/hovergallery/ecs"
	"github.com/milk9111/hovergallery/ecs/component"
	"github.com/milk9111/hovergallery/page"
	"github.com/milk9111/hovergallery/scene"
)

type fakePage struct {
	elements []*page.Element
	rects    map[*page.Element]page.Rect
	layouts  []float64
}

func newFakePage(rects ...page.Rect) *fakePage {
	p := &fakePage{rects: make(map[*page.Element]page.Rect)}
	for i, r := range rects {
		el := &page.Element{ID: string(rune('a' + i))}
		p.elements = append(p.elements, el)
		p.rects[el] = r
	}
	return p
}

func (p *fakePage) QueryImages() []*page.Element { return append([]*page.Element(nil), p.elements...) }

func (p *fakePage) BoundingRect(el *page.Element) page.Rect { return p.rects[el] }

func (p *fakePage) ElementAt(x, y float64) *page.Element {
	for _, el := range p.elements {
		if p.rects[el].Contains(x, y) {
			return el
		}
	}
	return nil
}

func (p *fakePage) Layout(width float64) bool {
	p.layouts = append(p.layouts, width)
	return false
}

func newTestSynchronizer(t *testing.T, p scene.Page, step time.Duration) (*Synchronizer, *clock.Manual) {
	t.Helper()
	clk := &clock.Manual{Step: step}
	s, err := New(p, scene.NewProgram("test", nil, nil), Options{
		Viewport: scene.Viewport{Width: 800, Height: 600},
		Clock:    clk,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, clk
}

func TestNewTracksEveryImageOnce(t *testing.T) {
	p := newFakePage(
		page.Rect{Top: 10, Left: 10, Width: 100, Height: 80},
		page.Rect{Top: 10, Left: 200, Width: 120, Height: 90},
		page.Rect{Top: 200, Left: 10, Width: 60, Height: 60},
	)
	s, _ := newTestSynchronizer(t, p, 16*time.Millisecond)

	if s.Len() != len(p.elements) {
		t.Fatalf("tracked %d images, want %d", s.Len(), len(p.elements))
	}
	seen := make(map[*scene.Mesh]bool)
	for i := 0; i < s.Len(); i++ {
		m := s.Mesh(i)
		if m == nil || seen[m] {
			t.Fatalf("mesh %d missing or shared", i)
		}
		seen[m] = true
		r := p.rects[p.elements[i]]
		if float64(m.Geometry.Width) != r.Width || float64(m.Geometry.Height) != r.Height {
			t.Fatalf("mesh %d sized %vx%v, want %vx%v", i, m.Geometry.Width, m.Geometry.Height, r.Width, r.Height)
		}
		if m.Geometry.VertexCount() != 121 {
			t.Fatalf("mesh %d has %d vertices, want 121", i, m.Geometry.VertexCount())
		}
	}
	if s.Material(0) == s.Material(1) {
		t.Fatalf("materials must not be shared")
	}
	if s.Material(0).Program != s.Material(1).Program {
		t.Fatalf("program should be shared")
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	prog := scene.NewProgram("test", nil, nil)
	vp := scene.Viewport{Width: 800, Height: 600}
	cases := []struct {
		name string
		page scene.Page
		prog *scene.Program
		vp   scene.Viewport
		want error
	}{
		{"nil page", nil, prog, vp, ErrNoPage},
		{"typed nil document", (*page.Document)(nil), prog, vp, ErrNoPage},
		{"nil program", newFakePage(), nil, vp, ErrNoProgram},
		{"empty container", newFakePage(), prog, scene.Viewport{}, ErrNoContainer},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.page, c.prog, Options{Viewport: c.vp})
			if !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
		})
	}
}

func TestCloseDestroysTrackedEntities(t *testing.T) {
	p := newFakePage(
		page.Rect{Top: 0, Left: 0, Width: 100, Height: 100},
		page.Rect{Top: 200, Left: 0, Width: 100, Height: 100},
	)
	s, _ := newTestSynchronizer(t, p, 20*time.Millisecond)
	ents := s.Entities()
	if len(ents) != 2 {
		t.Fatalf("tracked %d entities, want 2", len(ents))
	}

	s.Close()
	if s.Len() != 0 || s.Mesh(0) != nil || s.Material(0) != nil {
		t.Fatalf("synchronizer still tracks planes after Close")
	}
	for _, e := range ents {
		if _, ok := ecs.Get(s.World(), e, component.MeshComponent.Kind()); ok {
			t.Fatalf("entity %v kept its mesh", e)
		}
	}
	// stepping an empty scene is a no-op
	s.Update()
}

func TestStepPositionsPlaneOverElement(t *testing.T) {
	p := newFakePage(page.Rect{Top: 100, Left: 50, Width: 200, Height: 150})
	s, _ := newTestSynchronizer(t, p, 16*time.Millisecond)

	s.Update()
	pos := s.Mesh(0).Position
	if pos.X() != -250 || pos.Y() != 125 || pos.Z() != 0 {
		t.Fatalf("position = %v, want (-250, 125, 0)", pos)
	}

	s.Update()
	if again := s.Mesh(0).Position; again != pos {
		t.Fatalf("position changed without input change: %v -> %v", pos, again)
	}
}

func TestStepFollowsPageAndScroll(t *testing.T) {
	p := newFakePage(page.Rect{Top: 100, Left: 50, Width: 200, Height: 150})
	clk := &clock.Manual{Step: 16 * time.Millisecond}
	scroll := FixedScroll(40)
	s, err := New(p, scene.NewProgram("test", nil, nil), Options{
		Viewport: scene.Viewport{Width: 800, Height: 600},
		Clock:    clk,
		Scroll:   scroll,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Update()
	if y := s.Mesh(0).Position.Y(); y != 165 {
		t.Fatalf("scrolled y = %v, want 165", y)
	}

	p.rects[p.elements[0]] = page.Rect{Top: 300, Left: 50, Width: 200, Height: 150}
	s.Update()
	if y := s.Mesh(0).Position.Y(); y != -35 {
		t.Fatalf("y after page moved = %v, want -35", y)
	}
}

func TestTimeUniformFollowsClock(t *testing.T) {
	p := newFakePage(page.Rect{Top: 0, Left: 0, Width: 10, Height: 10})
	s, err := New(p, scene.NewProgram("test", nil, nil), Options{
		Viewport:  scene.Viewport{Width: 800, Height: 600},
		Clock:     &clock.Manual{Step: 250 * time.Millisecond},
		TimeScale: 2,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 4; i++ {
		s.Update()
	}
	if got := s.Material(0).Uniforms.Time; got != 2 {
		t.Fatalf("time = %v, want 2", got)
	}
}

func TestHoverTweenTakesConfiguredDuration(t *testing.T) {
	p := newFakePage(page.Rect{Top: 100, Left: 50, Width: 200, Height: 150})
	s, _ := newTestSynchronizer(t, p, 20*time.Millisecond)
	state := func() float32 { return s.Material(0).Uniforms.HoverState }

	s.Update()
	if state() != 0 {
		t.Fatalf("hover state before enter = %v", state())
	}

	s.PointerMove(150, 175)
	for i := 1; i < 50; i++ {
		s.Update()
		if v := state(); v <= 0 || v >= 1 {
			t.Fatalf("frame %d: hover state %v, want in (0,1)", i, v)
		}
	}
	s.Update()
	if state() != 1 {
		t.Fatalf("hover state after 1s = %v, want 1", state())
	}

	s.PointerMove(700, 550)
	for i := 1; i < 50; i++ {
		s.Update()
		if v := state(); v <= 0 || v >= 1 {
			t.Fatalf("leave frame %d: hover state %v, want in (0,1)", i, v)
		}
	}
	s.Update()
	if state() != 0 {
		t.Fatalf("hover state 1s after leave = %v, want 0", state())
	}
}

func TestHoverRapidAlternationStaysInRange(t *testing.T) {
	p := newFakePage(page.Rect{Top: 100, Left: 50, Width: 200, Height: 150})
	s, _ := newTestSynchronizer(t, p, 7*time.Millisecond)
	for i := 0; i < 300; i++ {
		if i%2 == 0 {
			s.PointerMove(150, 175)
		} else {
			s.PointerMove(700, 550)
		}
		s.Update()
		if v := s.Material(0).Uniforms.HoverState; v < 0 || v > 1 {
			t.Fatalf("frame %d: hover state %v out of range", i, v)
		}
	}
}

func TestPointerOutLeavesHoveredPlanes(t *testing.T) {
	p := newFakePage(page.Rect{Top: 100, Left: 50, Width: 200, Height: 150})
	s, _ := newTestSynchronizer(t, p, 100*time.Millisecond)
	s.PointerMove(150, 175)
	for i := 0; i < 10; i++ {
		s.Update()
	}
	s.PointerOut()
	for i := 0; i < 10; i++ {
		s.Update()
	}
	if v := s.Material(0).Uniforms.HoverState; v != 0 {
		t.Fatalf("hover state after pointer out = %v, want 0", v)
	}
}

func TestRaycastWritesHitUVAndKeepsItOnMiss(t *testing.T) {
	// 200x150 plane centered in an 800x600 viewport.
	p := newFakePage(page.Rect{Top: 225, Left: 300, Width: 200, Height: 150})
	s, _ := newTestSynchronizer(t, p, 16*time.Millisecond)
	s.Update()
	if pos := s.Mesh(0).Position; pos.X() != 0 || pos.Y() != 0 {
		t.Fatalf("plane not centered: %v", pos)
	}

	s.PointerMove(350, 262.5)
	s.Update()
	uv := s.Material(0).Uniforms.Hover
	if math.Abs(float64(uv.X())-0.25) > 0.01 || math.Abs(float64(uv.Y())-0.75) > 0.01 {
		t.Fatalf("hover uv = %v, want (0.25, 0.75)", uv)
	}

	s.PointerMove(5, 5)
	s.Update()
	if got := s.Material(0).Uniforms.Hover; got != uv {
		t.Fatalf("miss changed hover uv: %v -> %v", uv, got)
	}
}

func TestRaycastCenterHitsCenteredPlane(t *testing.T) {
	p := newFakePage(page.Rect{Top: 225, Left: 300, Width: 200, Height: 150})
	s, _ := newTestSynchronizer(t, p, 16*time.Millisecond)
	s.Update()

	cam := s.Camera()
	nx, ny := cam.NDC(400, 300)
	if _, ok := s.Mesh(0).Hit(cam.Ray(nx, ny)); !ok {
		t.Fatalf("expected center ray to hit")
	}
	nx, ny = cam.NDC(790, 10)
	if _, ok := s.Mesh(0).Hit(cam.Ray(nx, ny)); ok {
		t.Fatalf("expected corner ray to miss")
	}
}

func TestResizeKeepsFieldOfView(t *testing.T) {
	p := newFakePage(page.Rect{Top: 100, Left: 50, Width: 200, Height: 150})
	s, _ := newTestSynchronizer(t, p, 16*time.Millisecond)
	fov := s.Camera().FOV()

	s.Resize(1024, 400)
	if s.Camera().FOV() != fov {
		t.Fatalf("fov changed on resize: %v -> %v", fov, s.Camera().FOV())
	}
	if s.Camera().Aspect() != 1024.0/400.0 {
		t.Fatalf("aspect = %v, want %v", s.Camera().Aspect(), 1024.0/400.0)
	}
	if len(p.layouts) != 1 || p.layouts[0] != 1024 {
		t.Fatalf("page layouts = %v, want [1024]", p.layouts)
	}

	s.Update()
	x, y := scene.MeshPosition(p.rects[p.elements[0]], 0, scene.Viewport{Width: 1024, Height: 400})
	if pos := s.Mesh(0).Position; float64(pos.X()) != x || float64(pos.Y()) != y {
		t.Fatalf("position after resize = %v, want (%v, %v)", pos, x, y)
	}

	s.Resize(0, 0)
	if s.Camera().Aspect() != 1024.0/400.0 {
		t.Fatalf("empty resize should be ignored")
	}
}

func TestReplaceProgramKeepsUniforms(t *testing.T) {
	p := newFakePage(page.Rect{Top: 225, Left: 300, Width: 200, Height: 150})
	s, _ := newTestSynchronizer(t, p, 16*time.Millisecond)
	s.PointerMove(350, 262.5)
	s.Update()
	before := s.Material(0).Uniforms

	next := scene.NewProgram("next", nil, scene.Wave{})
	s.ReplaceProgram(next)
	if s.Program() != next || s.Material(0).Program != next {
		t.Fatalf("program not replaced")
	}
	if s.Material(0).Uniforms != before {
		t.Fatalf("uniforms changed on replace")
	}
}

func TestSnapshotYAML(t *testing.T) {
	p := newFakePage(page.Rect{Top: 100, Left: 50, Width: 200, Height: 150})
	s, _ := newTestSynchronizer(t, p, 16*time.Millisecond)
	s.Update()

	snap := s.Snapshot()
	if len(snap.Meshes) != 1 || snap.Meshes[0].Position != [3]float32{-250, 125, 0} {
		t.Fatalf("unexpected snapshot %+v", snap.Meshes)
	}
	out, err := snap.YAML()
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	for _, want := range []string{"id: a", "position: [-250, 125, 0]", "width: 800"} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("snapshot yaml missing %q:\n%s", want, out)
		}
	}
}
