package gallery

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hovergallery/assets"
	"github.com/milk9111/hovergallery/common"
	"github.com/milk9111/hovergallery/page"
	"github.com/milk9111/hovergallery/prefabs"
	"github.com/milk9111/hovergallery/preload"
	"github.com/milk9111/hovergallery/scene"
)

// PreloadRequest lists everything the layout waits for.
func PreloadRequest(spec *prefabs.GallerySpec) preload.Request {
	req := preload.Request{
		Families: []string{spec.Fonts.Heading.Family, spec.Fonts.Body.Family},
	}
	for _, img := range spec.Images {
		ir := preload.ImageRequest{ID: img.ID, Src: img.Src, Width: img.Width, Height: img.Height}
		if img.Placeholder != nil {
			ir.Placeholder = img.Placeholder.Color
		}
		req.Images = append(req.Images, ir)
	}
	return req
}

// BuildDocument assembles the page from a settled preload. Textures are only
// created when withTextures is set, since that needs the game thread.
func BuildDocument(spec *prefabs.GallerySpec, res *preload.Result, withTextures bool) *page.Document {
	style := page.DefaultStyle()
	if l := spec.Layout; l.ColumnWidth > 0 {
		style.Margin = l.Margin
		style.Gutter = l.Gutter
		style.ColumnWidth = l.ColumnWidth
		style.CaptionGap = l.CaptionGap
		style.TitleGap = l.TitleGap
	}
	style.Background = spec.Colors.Background.ColorOr(style.Background)
	style.TitleColor = spec.Colors.Title.ColorOr(style.TitleColor)
	style.TextColor = spec.Colors.Text.ColorOr(style.TextColor)

	fonts := page.Fonts{
		Heading: res.Face(spec.Fonts.Heading.Family, spec.Fonts.Heading.Size),
		Body:    res.Face(spec.Fonts.Body.Family, spec.Fonts.Body.Size),
	}

	elements := make([]*page.Element, 0, len(spec.Images))
	for _, img := range spec.Images {
		el := &page.Element{ID: img.ID, Src: img.Src, Caption: img.Caption}
		if decoded, ok := res.Images[img.ID]; ok && decoded != nil {
			b := decoded.Bounds()
			el.NaturalWidth, el.NaturalHeight = b.Dx(), b.Dy()
			if withTextures {
				el.Texture = ebiten.NewImageFromImage(decoded)
			}
		}
		elements = append(elements, el)
	}
	return page.NewDocument(spec.Title, style, fonts, elements)
}

// BuildProgram reads the fragment source and resolves the vertex program.
// The returned program still needs Compile on the game thread.
func BuildProgram(spec *prefabs.MaterialSpec) (*scene.Program, error) {
	fragment, err := assets.LoadShader(spec.Fragment)
	if err != nil {
		return nil, err
	}
	var vertex scene.VertexProgram
	switch strings.ToLower(spec.Vertex.Program) {
	case "", "wave":
		vertex = scene.Wave{Amplitude: float32(spec.Vertex.Amplitude), Frequency: float32(spec.Vertex.Frequency)}
	case "script":
		src, err := prefabs.LoadScript(spec.Vertex.Script)
		if err != nil {
			return nil, fmt.Errorf("gallery: vertex script %q: %w", spec.Vertex.Script, err)
		}
		s, err := scene.NewScript(spec.Vertex.Script, src, spec.Vertex.ScriptParams())
		if err != nil {
			return nil, err
		}
		vertex = s
	case "flat":
		vertex = scene.Wave{}
	default:
		return nil, fmt.Errorf("gallery: unknown vertex program %q", spec.Vertex.Program)
	}
	return scene.NewProgram(spec.Name, fragment, vertex), nil
}

// OptionsFromSpec maps the material prefab onto synchronizer options for a
// container of the given size.
func OptionsFromSpec(spec *prefabs.MaterialSpec, vp scene.Viewport) (Options, error) {
	ease, err := common.EaseByName(spec.Hover.Ease)
	if err != nil {
		return Options{}, fmt.Errorf("gallery: material %s: %w", spec.Name, err)
	}
	return Options{
		Viewport:       vp,
		Segments:       spec.Segments,
		HoverDuration:  spec.Hover.Duration,
		Ease:           ease,
		TimeScale:      spec.TimeScale,
		CameraDistance: spec.Camera.Distance,
		Near:           spec.Camera.Near,
		Far:            spec.Camera.Far,
	}, nil
}
