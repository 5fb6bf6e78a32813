package main

import (
	"context"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/hovergallery/gallery"
	"github.com/milk9111/hovergallery/page"
	"github.com/milk9111/hovergallery/prefabs"
	"github.com/milk9111/hovergallery/preload"
	"github.com/milk9111/hovergallery/scene"
)

type Options struct {
	Gallery  string
	Material string
	Debug    bool
	Watch    bool
	Scroll   bool
}

type gameState int

const (
	stateLoading gameState = iota
	stateRunning
	stateBlank
)

type Game struct {
	opts   Options
	state  gameState
	frames int

	width, height float64

	gallerySpec  *prefabs.GallerySpec
	materialSpec *prefabs.MaterialSpec
	loader       *preload.Loader

	doc     *page.Document
	sync    *gallery.Synchronizer
	scroll  *gallery.WheelScroll
	watcher *prefabs.Watcher
	debug   *DebugUI
}

// NewGame reads both prefabs and starts the preload. The scene is built on
// the first Update after every font and image has settled.
func NewGame(opts Options) (*Game, error) {
	gs, err := prefabs.LoadGallerySpec(opts.Gallery)
	if err != nil {
		return nil, err
	}
	ms, err := prefabs.LoadMaterialSpec(opts.Material)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:         opts,
		gallerySpec:  gs,
		materialSpec: ms,
		width:        float64(gs.Container.Width),
		height:       float64(gs.Container.Height),
		loader:       preload.Start(context.Background(), gallery.PreloadRequest(gs)),
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts", "assets/shaders")
		if err != nil {
			log.Printf("watch: disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Title() string {
	if g.gallerySpec.Title == "" {
		return "hovergallery"
	}
	return g.gallerySpec.Title
}

// ContainerSize is the initial window size in device-independent pixels.
func (g *Game) ContainerSize() (int, int) {
	return g.gallerySpec.Container.Width, g.gallerySpec.Container.Height
}

func (g *Game) Close() {
	if g.sync != nil {
		g.sync.Close()
	}
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	switch g.state {
	case stateLoading:
		res, done, err := g.loader.Poll()
		if !done {
			return nil
		}
		if err != nil {
			log.Printf("gallery: preload failed: %v", err)
			g.state = stateBlank
			return nil
		}
		if err := g.build(res); err != nil {
			log.Printf("gallery: %v", err)
			g.state = stateBlank
			return nil
		}
		g.state = stateRunning
	case stateBlank:
		return nil
	}

	g.updatePointer()
	if g.scroll != nil {
		g.scroll.SetLimits(g.doc.Height(), g.height)
		g.scroll.Update()
	}
	g.sync.Update()
	g.pollWatcher()

	if g.debug != nil {
		g.debug.Update()
	}
	return nil
}

func (g *Game) build(res *preload.Result) error {
	for _, id := range res.Placeholders {
		log.Printf("gallery: %s uses a placeholder", id)
	}
	g.doc = gallery.BuildDocument(g.gallerySpec, res, true)
	g.doc.Layout(g.width)

	program, err := gallery.BuildProgram(g.materialSpec)
	if err != nil {
		return err
	}
	if err := program.Compile(); err != nil {
		return err
	}

	opts, err := gallery.OptionsFromSpec(g.materialSpec, scene.Viewport{Width: g.width, Height: g.height})
	if err != nil {
		return err
	}
	if g.opts.Scroll && g.gallerySpec.Scroll.Enabled {
		g.scroll = gallery.NewWheelScroll(g.gallerySpec.Scroll.Speed, g.gallerySpec.Scroll.Smoothing)
		opts.Scroll = g.scroll
	}

	s, err := gallery.New(g.doc, program, opts)
	if err != nil {
		return err
	}
	g.sync = s
	log.Printf("gallery: tracking %d images", s.Len())

	if g.opts.Debug {
		g.debug = NewDebugUI(g)
	}
	return nil
}

func (g *Game) updatePointer() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		g.sync.PointerOut()
		return
	}
	g.sync.PointerMove(x, y)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.doc != nil {
		screen.Fill(g.doc.Style.Background)
	}
	if g.state != stateRunning {
		return
	}
	g.sync.Draw(screen)

	if g.debug != nil {
		g.debug.Draw(screen)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}
}

// LayoutF keeps one logical pixel per page pixel; a changed window size is a
// container resize.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if g.sync != nil {
			g.sync.Resize(outsideWidth, outsideHeight)
		}
	}
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
