// Package gallery keeps one textured plane per page image in step with the
// page: position from layout and scroll, hover from the pointer, time from
// the frame clock.
package gallery

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hovergallery/clock"
	"github.com/milk9111/hovergallery/common"
	"github.com/milk9111/hovergallery/ecs"
	"github.com/milk9111/hovergallery/ecs/component"
	"github.com/milk9111/hovergallery/ecs/system"
	"github.com/milk9111/hovergallery/page"
	"github.com/milk9111/hovergallery/scene"
)

var (
	ErrNoPage      = errors.New("gallery: nil page")
	ErrNoProgram   = errors.New("gallery: nil program")
	ErrNoContainer = errors.New("gallery: container has no size")
)

// Options configures a Synchronizer. Viewport is the container; every other
// field falls back to a default.
type Options struct {
	Viewport scene.Viewport

	Segments       int
	HoverDuration  time.Duration
	Ease           common.Ease
	TimeScale      float64
	CameraDistance float64
	Near           float64
	Far            float64

	Scroll ScrollSource
	Clock  clock.Source
}

func (o *Options) applyDefaults() {
	if o.Segments <= 0 {
		o.Segments = 10
	}
	if o.HoverDuration <= 0 {
		o.HoverDuration = time.Second
	}
	if o.Ease == nil {
		o.Ease = common.Power1Out
	}
	if o.Scroll == nil {
		o.Scroll = FixedScroll(0)
	}
	if o.Clock == nil {
		o.Clock = clock.NewFixed(ebiten.DefaultTPS)
	}
}

type Synchronizer struct {
	ctx       *scene.Context
	world     *ecs.World
	scheduler *ecs.Scheduler
	program   *scene.Program
	entities  []ecs.Entity
	opts      Options
}

// New builds one plane per image the page reports, sized to its current box.
// The page must already be laid out with fonts and images settled.
func New(p scene.Page, program *scene.Program, opts Options) (*Synchronizer, error) {
	if isNilPage(p) {
		return nil, ErrNoPage
	}
	if program == nil {
		return nil, ErrNoProgram
	}
	if !opts.Viewport.Valid() {
		return nil, ErrNoContainer
	}
	opts.applyDefaults()

	ctx := &scene.Context{
		TimeScale: opts.TimeScale,
		Viewport:  opts.Viewport,
		Camera:    scene.NewCamera(opts.Viewport, opts.CameraDistance, opts.Near, opts.Far),
		Page:      p,
	}
	s := &Synchronizer{
		ctx:     ctx,
		world:   ecs.NewWorld(),
		program: program,
		opts:    opts,
		scheduler: ecs.NewScheduler(
			system.NewBoundsSystem(ctx),
			system.NewMeshPositionSystem(ctx),
			system.NewPointerHoverSystem(ctx),
			system.NewHoverTweenSystem(ctx),
			system.NewTimeUniformSystem(ctx),
			system.NewRaycastSystem(ctx),
			system.NewRenderSystem(ctx),
		),
	}

	for i, el := range p.QueryImages() {
		if err := s.track(i, el); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// isNilPage also catches a nil pointer wrapped in the interface.
func isNilPage(p scene.Page) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func (s *Synchronizer) track(index int, el *page.Element) error {
	w := s.world
	e := ecs.CreateEntity(w)
	bounds := s.ctx.Page.BoundingRect(el)

	if err := ecs.Add(w, e, component.TrackedImageComponent.Kind(), &component.TrackedImage{Element: el, Bounds: bounds, Index: index}); err != nil {
		return fmt.Errorf("gallery: track %s: %w", el.ID, err)
	}
	mesh := scene.NewMesh(bounds.Width, bounds.Height, s.opts.Segments)
	if err := ecs.Add(w, e, component.MeshComponent.Kind(), &component.Mesh{Mesh: mesh}); err != nil {
		return fmt.Errorf("gallery: mesh %s: %w", el.ID, err)
	}
	if err := ecs.Add(w, e, component.MaterialComponent.Kind(), &component.Material{Material: s.program.NewMaterial(el.Texture)}); err != nil {
		return fmt.Errorf("gallery: material %s: %w", el.ID, err)
	}
	hover := &component.Hover{Tween: common.NewTween(0, s.opts.HoverDuration, s.opts.Ease)}
	if err := ecs.Add(w, e, component.HoverComponent.Kind(), hover); err != nil {
		return fmt.Errorf("gallery: hover %s: %w", el.ID, err)
	}
	s.entities = append(s.entities, e)
	return nil
}

// Close tears the scene down: every tracked entity and its components are
// destroyed. The synchronizer tracks nothing afterwards.
func (s *Synchronizer) Close() {
	for _, e := range s.entities {
		ecs.DestroyEntity(s.world, e)
	}
	s.entities = nil
}

// Update pulls the next frame from the clock and steps the scene.
func (s *Synchronizer) Update() {
	s.Step(s.opts.Clock.Next())
}

// Step repositions every plane, advances hover tweens and time uniforms and
// applies any pending pointer ray-cast.
func (s *Synchronizer) Step(frame clock.Frame) {
	s.ctx.Frame = frame
	s.ctx.Scroll = s.opts.Scroll.Scroll()
	s.scheduler.Update(s.world)
}

func (s *Synchronizer) Draw(screen *ebiten.Image) {
	s.scheduler.Draw(s.world, screen)
}

// PointerMove records the pointer in viewport pixels. The ray-cast runs on
// the next Step.
func (s *Synchronizer) PointerMove(x, y float64) {
	p := &s.ctx.Pointer
	if p.Known && p.X == x && p.Y == y {
		return
	}
	p.X, p.Y = x, y
	p.Known = true
	p.Moved = true
}

// PointerOut forgets the pointer so every hovered plane leaves. Hover UVs are
// left as they are.
func (s *Synchronizer) PointerOut() {
	s.ctx.Pointer = scene.Pointer{}
	ecs.ForEach(s.world, component.HoverComponent.Kind(), func(e ecs.Entity, h *component.Hover) {
		if h.Hovered {
			h.Hovered = false
			s.world.Events().Push(ecs.Event{Type: system.EventPointer, Data: ecs.PointerEvent{Entity: e, Kind: ecs.PointerLeave}})
		}
	})
}

// Resize follows a container resize: the page reflows, the camera takes the
// new aspect and projection, and the field of view stays as built.
func (s *Synchronizer) Resize(width, height float64) {
	vp := scene.Viewport{Width: width, Height: height}
	if !vp.Valid() {
		return
	}
	s.ctx.Viewport = vp
	s.ctx.Camera.Resize(vp)
	s.ctx.Page.Layout(width)
}

// ReplaceProgram swaps the shared program into every material, keeping each
// material's uniforms.
func (s *Synchronizer) ReplaceProgram(p *scene.Program) {
	if p == nil {
		return
	}
	s.program = p
	ecs.ForEach(s.world, component.MaterialComponent.Kind(), func(_ ecs.Entity, m *component.Material) {
		if m.Material != nil {
			m.Material.Program = p
		}
	})
}

func (s *Synchronizer) Program() *scene.Program { return s.program }

func (s *Synchronizer) Camera() *scene.Camera { return s.ctx.Camera }

func (s *Synchronizer) Context() *scene.Context { return s.ctx }

func (s *Synchronizer) World() *ecs.World { return s.world }

// Len is the number of tracked images.
func (s *Synchronizer) Len() int { return len(s.entities) }

// Entities returns tracked entities in page order.
func (s *Synchronizer) Entities() []ecs.Entity {
	return append([]ecs.Entity(nil), s.entities...)
}

// Mesh returns the plane of the i-th tracked image.
func (s *Synchronizer) Mesh(i int) *scene.Mesh {
	if i < 0 || i >= len(s.entities) {
		return nil
	}
	m, ok := ecs.Get(s.world, s.entities[i], component.MeshComponent.Kind())
	if !ok {
		return nil
	}
	return m.Mesh
}

// Material returns the material of the i-th tracked image.
func (s *Synchronizer) Material(i int) *scene.Material {
	if i < 0 || i >= len(s.entities) {
		return nil
	}
	m, ok := ecs.Get(s.world, s.entities[i], component.MaterialComponent.Kind())
	if !ok {
		return nil
	}
	return m.Material
}
