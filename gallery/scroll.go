package gallery

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hovergallery/common"
)

// ScrollSource supplies the page's vertical scroll offset each frame.
type ScrollSource interface {
	Scroll() float64
}

// FixedScroll is a constant offset. Its zero value is the unscrolled page.
type FixedScroll float64

func (f FixedScroll) Scroll() float64 { return float64(f) }

// WheelScroll eases toward a wheel-driven target clamped to the content.
type WheelScroll struct {
	Speed     float64
	Smoothing float64

	target  float64
	current float64
	max     float64
}

func NewWheelScroll(speed, smoothing float64) *WheelScroll {
	if speed <= 0 {
		speed = 60
	}
	if smoothing <= 0 || smoothing > 1 {
		smoothing = 0.2
	}
	return &WheelScroll{Speed: speed, Smoothing: smoothing}
}

// SetLimits bounds scrolling to a document of the given height seen through
// a viewport of the given height.
func (s *WheelScroll) SetLimits(contentHeight, viewportHeight float64) {
	s.max = contentHeight - viewportHeight
	if s.max < 0 {
		s.max = 0
	}
	s.target = common.Clamp(s.target, 0, s.max)
}

// Wheel applies a wheel delta; positive dy scrolls up as in ebiten.Wheel.
func (s *WheelScroll) Wheel(dy float64) {
	s.target = common.Clamp(s.target-dy*s.Speed, 0, s.max)
}

// Update reads the wheel and moves the offset one step toward the target.
func (s *WheelScroll) Update() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		s.Wheel(dy)
	}
	s.Step()
}

func (s *WheelScroll) Step() {
	s.current = common.Lerp(s.current, s.target, s.Smoothing)
	if d := s.target - s.current; d < 0.5 && d > -0.5 {
		s.current = s.target
	}
}

func (s *WheelScroll) Scroll() float64 { return s.current }

func (s *WheelScroll) Target() float64 { return s.target }
