// Command shaderview previews a material on a single centered plane. Hover
// the plane to run the transition; R recompiles the fragment shader.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hovergallery/assets"
	"github.com/milk9111/hovergallery/gallery"
	"github.com/milk9111/hovergallery/page"
	"github.com/milk9111/hovergallery/prefabs"
	"github.com/milk9111/hovergallery/preload"
	"github.com/milk9111/hovergallery/scene"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

// centeredPage keeps one element centered in the container at its natural
// size, scaled down to fit.
type centeredPage struct {
	el    *page.Element
	rect  page.Rect
	width float64
}

func newCenteredPage(el *page.Element, width, height float64) *centeredPage {
	p := &centeredPage{el: el}
	p.place(width, height)
	return p
}

func (p *centeredPage) place(width, height float64) {
	w, h := float64(p.el.NaturalWidth), float64(p.el.NaturalHeight)
	scale := 1.0
	if w > width*0.8 {
		scale = width * 0.8 / w
	}
	if h*scale > height*0.8 {
		scale = height * 0.8 / h
	}
	w, h = w*scale, h*scale
	p.width = width
	p.rect = page.Rect{Top: (height - h) / 2, Left: (width - w) / 2, Width: w, Height: h}
}

func (p *centeredPage) QueryImages() []*page.Element { return []*page.Element{p.el} }

func (p *centeredPage) BoundingRect(*page.Element) page.Rect { return p.rect }

func (p *centeredPage) ElementAt(x, y float64) *page.Element {
	if p.rect.Contains(x, y) {
		return p.el
	}
	return nil
}

func (p *centeredPage) Layout(containerWidth float64) bool {
	return containerWidth != p.width
}

type Game struct {
	spec *prefabs.MaterialSpec
	sync *gallery.Synchronizer
}

func NewGame(materialName, imagePath, fragment string) (*Game, error) {
	ms, err := prefabs.LoadMaterialSpec(materialName)
	if err != nil {
		return nil, err
	}
	if fragment != "" {
		ms.Fragment = fragment
	}

	req := preload.ImageRequest{ID: "preview", Src: imagePath, Width: 480, Height: 360, Placeholder: color.NRGBA{R: 0x45, G: 0x7b, B: 0x9d, A: 0xff}}
	img, err := assets.DecodeImage(imagePath)
	if err != nil {
		if imagePath != "" {
			log.Printf("shaderview: %v; using placeholder", err)
		}
		img = preload.Placeholder(req)
	}
	b := img.Bounds()
	el := &page.Element{ID: req.ID, Src: imagePath, NaturalWidth: b.Dx(), NaturalHeight: b.Dy(), Texture: ebiten.NewImageFromImage(img)}

	program, err := gallery.BuildProgram(ms)
	if err != nil {
		return nil, err
	}
	if err := program.Compile(); err != nil {
		return nil, err
	}
	opts, err := gallery.OptionsFromSpec(ms, scene.Viewport{Width: screenWidth, Height: screenHeight})
	if err != nil {
		return nil, err
	}
	s, err := gallery.New(newCenteredPage(el, screenWidth, screenHeight), program, opts)
	if err != nil {
		return nil, err
	}
	return &Game{spec: ms, sync: s}, nil
}

func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	g.sync.PointerMove(float64(x), float64(y))
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.recompile()
	}
	g.sync.Update()
	return nil
}

func (g *Game) recompile() {
	program, err := gallery.BuildProgram(g.spec)
	if err != nil {
		log.Printf("shaderview: %v", err)
		return
	}
	if err := program.Compile(); err != nil {
		log.Printf("shaderview: %v", err)
		return
	}
	g.sync.ReplaceProgram(program)
	log.Printf("shaderview: recompiled %s", g.spec.Fragment)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x11, 0x11, 0x11, 0xff})
	g.sync.Draw(screen)
	u := g.sync.Material(0).Uniforms
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nR: recompile\nhover %.2f,%.2f  state %.2f", g.spec.Fragment, u.Hover.X(), u.Hover.Y(), u.HoverState))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	materialName := flag.String("material", "material.yaml", "material prefab")
	imagePath := flag.String("image", "", "image to preview (default: placeholder)")
	fragment := flag.String("fragment", "", "override the material's fragment shader")
	flag.Parse()

	game, err := NewGame(*materialName, *imagePath, *fragment)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("shaderview")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
