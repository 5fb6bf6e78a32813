package page

import "testing"

func newTestDocument(n int) (*Document, []*Element) {
	els := make([]*Element, 0, n)
	for i := 0; i < n; i++ {
		els = append(els, &Element{ID: string(rune('a' + i)), NaturalWidth: 640, NaturalHeight: 480})
	}
	return NewDocument("", DefaultStyle(), Fonts{}, els), els
}

func TestLayoutGrid(t *testing.T) {
	doc, els := newTestDocument(4)
	if !doc.Layout(1280) {
		t.Fatalf("first layout should report a change")
	}

	want := []Rect{
		{Top: 80, Left: 120, Width: 320, Height: 240},
		{Top: 80, Left: 480, Width: 320, Height: 240},
		{Top: 80, Left: 840, Width: 320, Height: 240},
		{Top: 360, Left: 120, Width: 320, Height: 240},
	}
	for i, el := range els {
		if got := doc.BoundingRect(el); got != want[i] {
			t.Fatalf("element %d rect = %+v, want %+v", i, got, want[i])
		}
	}
	if doc.Height() != 680 {
		t.Fatalf("height = %v, want 680", doc.Height())
	}
	if doc.Layout(1280) {
		t.Fatalf("same width should not report a change")
	}
}

func TestLayoutReflowOnNarrowContainer(t *testing.T) {
	doc, els := newTestDocument(2)
	doc.Layout(1280)
	if !doc.Layout(800) {
		t.Fatalf("narrow layout should move elements")
	}
	cases := []struct {
		name string
		el   *Element
		want Rect
	}{
		{"first", els[0], Rect{Top: 80, Left: 240, Width: 320, Height: 240}},
		{"second", els[1], Rect{Top: 360, Left: 240, Width: 320, Height: 240}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := doc.BoundingRect(c.el); got != c.want {
				t.Fatalf("rect = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestLayoutUnloadedImageUsesDefaultAspect(t *testing.T) {
	el := &Element{ID: "pending"}
	doc := NewDocument("", DefaultStyle(), Fonts{}, []*Element{el})
	doc.Layout(1280)
	if got := doc.BoundingRect(el).Height; got != 240 {
		t.Fatalf("height = %v, want 240", got)
	}
}

func TestElementAt(t *testing.T) {
	doc, els := newTestDocument(3)
	doc.Layout(1280)

	cases := []struct {
		name string
		x, y float64
		want *Element
	}{
		{"inside_first", 130, 90, els[0]},
		{"inside_third", 1000, 300, els[2]},
		{"gutter", 460, 100, nil},
		{"margin", 10, 10, nil},
		{"below", 200, 900, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := doc.ElementAt(c.x, c.y); got != c.want {
				t.Fatalf("ElementAt(%v,%v) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestQueryImagesReturnsCopy(t *testing.T) {
	doc, els := newTestDocument(2)
	got := doc.QueryImages()
	got[0] = nil
	if doc.QueryImages()[0] != els[0] {
		t.Fatalf("QueryImages should not expose internal slice")
	}
}
