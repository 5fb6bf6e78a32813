// Package clock supplies frame timing to the per-frame scene update.
package clock

import "time"

// Frame describes one tick of the render loop.
type Frame struct {
	Index   uint64
	Delta   time.Duration
	Elapsed time.Duration
}

// Seconds returns the elapsed time in seconds.
func (f Frame) Seconds() float64 {
	return f.Elapsed.Seconds()
}

// Source yields successive frames. The host calls Next once per tick.
type Source interface {
	Next() Frame
}

// Fixed advances by a constant rate of ticks per second. Elapsed is derived
// from the tick index so the sum of deltas never drifts from Elapsed.
type Fixed struct {
	tps  int
	last Frame
}

func NewFixed(tps int) *Fixed {
	if tps <= 0 {
		tps = 60
	}
	return &Fixed{tps: tps}
}

func (f *Fixed) Next() Frame {
	idx := f.last.Index + 1
	elapsed := time.Duration(idx) * time.Second / time.Duration(f.tps)
	f.last = Frame{Index: idx, Delta: elapsed - f.last.Elapsed, Elapsed: elapsed}
	return f.last
}

// Last returns the most recent frame, or the zero frame before the first tick.
func (f *Fixed) Last() Frame {
	return f.last
}

// Manual steps by caller-provided deltas.
type Manual struct {
	Step time.Duration
	last Frame
}

func (m *Manual) Next() Frame {
	return m.Advance(m.Step)
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) Frame {
	m.last = Frame{Index: m.last.Index + 1, Delta: d, Elapsed: m.last.Elapsed + d}
	return m.last
}
