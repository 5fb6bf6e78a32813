package common

import (
	"math"
	"testing"
	"time"
)

func TestEaseEndpoints(t *testing.T) {
	for name, ease := range eases {
		t.Run(name, func(t *testing.T) {
			if got := ease(0); math.Abs(got) > 1e-12 {
				t.Fatalf("ease(0) = %v, want 0", got)
			}
			if got := ease(1); math.Abs(got-1) > 1e-12 {
				t.Fatalf("ease(1) = %v, want 1", got)
			}
		})
	}
}

func TestEaseByName(t *testing.T) {
	cases := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{"power1.out", false},
		{"Sine.InOut", false},
		{"bounce", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := EaseByName(c.name)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", c.name)
				}
				return
			}
			if err != nil || e == nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestTweenReachesTargetAtDuration(t *testing.T) {
	tw := NewTween(0, time.Second, Power1Out)
	tw.Start(1)

	step := 20 * time.Millisecond
	for i := 1; i < 50; i++ {
		v := tw.Advance(step)
		if v >= 1 {
			t.Fatalf("reached target early at step %d", i)
		}
		if !tw.Active() {
			t.Fatalf("tween inactive at step %d", i)
		}
	}
	if v := tw.Advance(step); v != 1 {
		t.Fatalf("expected 1 at duration, got %v", v)
	}
	if tw.Active() {
		t.Fatalf("tween should be finished")
	}

	tw.Start(0)
	for i := 0; i < 50; i++ {
		tw.Advance(step)
	}
	if tw.Value() != 0 {
		t.Fatalf("expected 0 after leave, got %v", tw.Value())
	}
}

func TestTweenRapidRetargetStaysInRange(t *testing.T) {
	tw := NewTween(0, time.Second, Power2Out)
	for i := 0; i < 400; i++ {
		if i%3 == 0 {
			tw.Start(1)
		} else if i%5 == 0 {
			tw.Start(0)
		}
		v := tw.Advance(7 * time.Millisecond)
		if v < 0 || v > 1 {
			t.Fatalf("value %v out of range at step %d", v, i)
		}
	}
}

func TestTweenZeroDurationSnaps(t *testing.T) {
	tw := NewTween(0, 0, nil)
	tw.Start(1)
	if tw.Value() != 1 || tw.Active() {
		t.Fatalf("expected snap to 1, got %v active=%v", tw.Value(), tw.Active())
	}
}
