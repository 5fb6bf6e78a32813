package common

import (
	"fmt"
	"math"
	"strings"
	"time"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ease maps normalized progress in [0,1] to eased progress in [0,1].
type Ease func(t float64) float64

func Linear(t float64) float64 { return t }

// Power1Out is a quadratic ease out.
func Power1Out(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Power2Out is a cubic ease out.
func Power2Out(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

var eases = map[string]Ease{
	"linear":     Linear,
	"none":       Linear,
	"power1.out": Power1Out,
	"power2.out": Power2Out,
	"sine.inout": SineInOut,
}

// EaseByName resolves an ease name. An empty name yields Power1Out.
func EaseByName(name string) (Ease, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Power1Out, nil
	}
	e, ok := eases[key]
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", name)
	}
	return e, nil
}

// Tween animates a scalar from its value at Start time to a target.
type Tween struct {
	Duration time.Duration
	Ease     Ease

	value   float64
	from    float64
	to      float64
	elapsed time.Duration
	active  bool
}

func NewTween(value float64, duration time.Duration, ease Ease) Tween {
	if ease == nil {
		ease = Power1Out
	}
	return Tween{Duration: duration, Ease: ease, value: value, from: value, to: value}
}

// Start retargets the tween, beginning from the current value.
func (tw *Tween) Start(target float64) {
	tw.from = tw.value
	tw.to = target
	tw.elapsed = 0
	tw.active = tw.from != tw.to
	if tw.Duration <= 0 {
		tw.value = target
		tw.active = false
	}
}

// Advance steps the tween by dt and returns the new value.
func (tw *Tween) Advance(dt time.Duration) float64 {
	if !tw.active {
		return tw.value
	}
	tw.elapsed += dt
	if tw.elapsed >= tw.Duration {
		tw.value = tw.to
		tw.active = false
		return tw.value
	}
	ease := tw.Ease
	if ease == nil {
		ease = Power1Out
	}
	p := ease(float64(tw.elapsed) / float64(tw.Duration))
	tw.value = Lerp(tw.from, tw.to, Clamp(p, 0, 1))
	return tw.value
}

func (tw *Tween) Value() float64 { return tw.value }

func (tw *Tween) Target() float64 { return tw.to }

func (tw *Tween) Active() bool { return tw.active }
