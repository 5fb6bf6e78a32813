package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"sync"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// DebugUI is a corner panel with camera and hover state. C copies a YAML
// snapshot of the scene to the clipboard.
type DebugUI struct {
	game   *Game
	ui     *ebitenui.UI
	status *widget.Text
	stats  *widget.Text
}

func NewDebugUI(g *Game) *DebugUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	rowData := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})

	d := &DebugUI{game: g}
	d.stats = widget.NewText(widget.TextOpts.Text("", &face, white), widget.TextOpts.WidgetOpts(rowData))
	d.status = widget.NewText(widget.TextOpts.Text("C: copy snapshot", &face, white), widget.TextOpts.WidgetOpts(rowData))

	copyBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Copy snapshot", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(rowData),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			d.copySnapshot()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 10, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(d.stats)
	panel.AddChild(copyBtn)
	panel.AddChild(d.status)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	d.ui = &ebitenui.UI{Container: root}
	return d
}

func (d *DebugUI) Update() {
	snap := d.game.sync.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "viewport %.0fx%.0f  aspect %.3f\n", snap.Viewport.Width, snap.Viewport.Height, snap.Viewport.Aspect)
	fmt.Fprintf(&b, "fov %.2f deg  scroll %.1f  time %.2f\n", snap.FOV, snap.Scroll, snap.Time)
	for _, m := range snap.Meshes {
		if m.HoverState == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s  state %.2f  uv %.2f,%.2f\n", m.ID, m.HoverState, m.Hover[0], m.Hover[1])
	}
	d.stats.Label = strings.TrimRight(b.String(), "\n")

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		d.copySnapshot()
	}
	d.ui.Update()
}

func (d *DebugUI) Draw(screen *ebiten.Image) {
	d.ui.Draw(screen)
}

func (d *DebugUI) copySnapshot() {
	snap := d.game.sync.Snapshot()
	out, err := snap.YAML()
	if err != nil {
		d.status.Label = "snapshot failed"
		log.Printf("gallery: snapshot: %v", err)
		return
	}
	clipboardOnce.Do(func() { clipboardErr = clipboard.Init() })
	if clipboardErr != nil {
		d.status.Label = "clipboard unavailable"
		log.Printf("gallery: clipboard: %v", clipboardErr)
		return
	}
	clipboard.Write(clipboard.FmtText, out)
	d.status.Label = fmt.Sprintf("copied %d meshes", len(snap.Meshes))
}
