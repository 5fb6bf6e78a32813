// Package page models the document the gallery overlays: a title, a grid of
// images and their captions laid out in CSS-like pixel units.
package page

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Rect is a document-relative box in pixels. Top grows downward.
type Rect struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Left+r.Width && y >= r.Top && y <= r.Top+r.Height
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Element is one image on the page.
type Element struct {
	ID      string
	Src     string
	Caption string

	// Natural size of the decoded image; zero until the image has loaded.
	NaturalWidth  int
	NaturalHeight int
	Texture       *ebiten.Image

	rect    Rect
	caption Rect
}

// Loaded reports whether the element's natural size is known.
func (e *Element) Loaded() bool {
	return e != nil && e.NaturalWidth > 0 && e.NaturalHeight > 0
}

type Style struct {
	Margin      float64
	Gutter      float64
	ColumnWidth float64
	CaptionGap  float64
	TitleGap    float64
	Background  color.Color
	TitleColor  color.Color
	TextColor   color.Color
}

func DefaultStyle() Style {
	return Style{
		Margin:      80,
		Gutter:      40,
		ColumnWidth: 320,
		CaptionGap:  12,
		TitleGap:    48,
		Background:  color.RGBA{0x11, 0x11, 0x11, 0xff},
		TitleColor:  color.White,
		TextColor:   color.RGBA{0xbb, 0xbb, 0xbb, 0xff},
	}
}

// Fonts are the two families the layout depends on. Nil faces measure as zero.
type Fonts struct {
	Heading text.Face
	Body    text.Face
}

type Document struct {
	Title string
	Style Style
	Fonts Fonts

	elements []*Element
	title    Rect
	width    float64
	height   float64
	laidOut  bool
	hits     *HitIndex
}

func NewDocument(title string, style Style, fonts Fonts, elements []*Element) *Document {
	return &Document{
		Title:    title,
		Style:    style,
		Fonts:    fonts,
		elements: append([]*Element(nil), elements...),
		hits:     NewHitIndex(),
	}
}

// QueryImages returns the page's image elements in document order.
func (d *Document) QueryImages() []*Element {
	if d == nil {
		return nil
	}
	return append([]*Element(nil), d.elements...)
}

// BoundingRect returns the element's current document-relative box.
func (d *Document) BoundingRect(el *Element) Rect {
	if d == nil || el == nil {
		return Rect{}
	}
	return el.rect
}

// CaptionRect returns the box of the element's caption text.
func (d *Document) CaptionRect(el *Element) Rect {
	if d == nil || el == nil {
		return Rect{}
	}
	return el.caption
}

func (d *Document) TitleRect() Rect {
	return d.title
}

// Height is the total content height after the last layout.
func (d *Document) Height() float64 {
	if d == nil {
		return 0
	}
	return d.height
}

// ElementAt returns the element whose box contains the document point.
func (d *Document) ElementAt(x, y float64) *Element {
	if d == nil {
		return nil
	}
	return d.hits.At(x, y)
}

// Layout flows the document into a container of the given width. It returns
// true when element boxes changed.
func (d *Document) Layout(containerWidth float64) bool {
	if d == nil {
		return false
	}
	if d.laidOut && containerWidth == d.width {
		return false
	}
	s := d.Style
	d.width = containerWidth

	y := s.Margin
	if d.Title != "" {
		w, h := measure(d.Title, d.Fonts.Heading)
		d.title = Rect{Top: y, Left: s.Margin, Width: w, Height: h}
		y += h + s.TitleGap
	}

	colW := s.ColumnWidth
	if colW <= 0 {
		colW = 320
	}
	avail := containerWidth - 2*s.Margin
	cols := int(math.Floor((avail + s.Gutter) / (colW + s.Gutter)))
	if cols < 1 {
		cols = 1
	}
	gridW := float64(cols)*colW + float64(cols-1)*s.Gutter
	left0 := s.Margin
	if gridW < avail {
		left0 = math.Floor((containerWidth - gridW) / 2)
	}

	rowHeight := 0.0
	changed := false
	for i, el := range d.elements {
		col := i % cols
		if col == 0 && i > 0 {
			y += rowHeight + s.Gutter
			rowHeight = 0
		}

		h := colW * 0.75
		if el.Loaded() {
			h = math.Round(colW * float64(el.NaturalHeight) / float64(el.NaturalWidth))
		}
		r := Rect{Top: y, Left: left0 + float64(col)*(colW+s.Gutter), Width: colW, Height: h}

		cw, ch := measure(el.Caption, d.Fonts.Body)
		c := Rect{Top: y + h + s.CaptionGap, Left: r.Left, Width: cw, Height: ch}
		if el.Caption == "" {
			c = Rect{Top: y + h, Left: r.Left}
		}

		if r != el.rect {
			changed = true
		}
		el.rect = r
		el.caption = c
		rowHeight = math.Max(rowHeight, c.Top+c.Height-y)
	}
	d.height = y + rowHeight + s.Margin
	d.laidOut = true

	if changed {
		d.hits.Rebuild(d.elements)
	}
	return changed
}

// Draw paints the text layer: title and captions, offset by scroll. Images
// themselves are left to the scene.
func (d *Document) Draw(screen *ebiten.Image, scroll float64) {
	if d == nil || screen == nil {
		return
	}
	if d.Title != "" && d.Fonts.Heading != nil {
		drawText(screen, d.Title, d.Fonts.Heading, d.title.Left, d.title.Top-scroll, d.Style.TitleColor)
	}
	if d.Fonts.Body == nil {
		return
	}
	sh := float64(screen.Bounds().Dy())
	for _, el := range d.elements {
		if el.Caption == "" {
			continue
		}
		top := el.caption.Top - scroll
		if top+el.caption.Height < 0 || top > sh {
			continue
		}
		drawText(screen, el.Caption, d.Fonts.Body, el.caption.Left, top, d.Style.TextColor)
	}
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}
	op.LineSpacing = lineHeight(face)
	text.Draw(dst, s, face, op)
}

func measure(s string, face text.Face) (float64, float64) {
	if s == "" || face == nil {
		return 0, 0
	}
	return text.Measure(s, face, lineHeight(face))
}

func lineHeight(face text.Face) float64 {
	if face == nil {
		return 0
	}
	m := face.Metrics()
	return math.Ceil(m.HAscent + m.HDescent + m.HLineGap)
}
