package main

import (
	"testing"

	"github.com/milk9111/hovergallery/page"
)

func TestCenteredPagePlacement(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		want page.Rect
	}{
		{"fits", 400, 300, page.Rect{Top: 150, Left: 200, Width: 400, Height: 300}},
		{"too_wide", 1280, 480, page.Rect{Top: 180, Left: 80, Width: 640, Height: 240}},
		{"too_tall", 300, 960, page.Rect{Top: 60, Left: 325, Width: 150, Height: 480}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			el := &page.Element{ID: "x", NaturalWidth: c.w, NaturalHeight: c.h}
			p := newCenteredPage(el, 800, 600)
			if got := p.BoundingRect(el); got != c.want {
				t.Fatalf("rect = %+v, want %+v", got, c.want)
			}
			if p.ElementAt(400, 300) != el {
				t.Fatalf("center should hit the element")
			}
			if p.ElementAt(1, 1) != nil {
				t.Fatalf("corner should miss")
			}
		})
	}
}
