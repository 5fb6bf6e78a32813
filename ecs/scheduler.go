package ecs

import "github.com/hajimehoshi/ebiten/v2"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// RenderSystem draws world state onto the screen.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// Scheduler runs systems in registration order, one pass per frame.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system once, then drops the frame's events.
func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
	w.events.flush()
}

// Draw calls every system that can render.
func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if s == nil || w == nil || screen == nil {
		return
	}
	for _, system := range s.systems {
		if rs, ok := system.(RenderSystem); ok {
			rs.Draw(w, screen)
		}
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
