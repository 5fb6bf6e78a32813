// Package preload settles every asset the page layout depends on (two font
// families and all gallery images) before the scene is built.
package preload

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/hovergallery/assets"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"
)

var builtinFamilies = map[string][]byte{
	"go regular": goregular.TTF,
	"go bold":    gobold.TTF,
	"go italic":  goitalic.TTF,
	"go medium":  gomedium.TTF,
	"go mono":    gomono.TTF,
}

var placeholderPalette = []color.RGBA{
	colornames.Coral,
	colornames.Steelblue,
	colornames.Seagreen,
	colornames.Goldenrod,
	colornames.Slateblue,
	colornames.Indianred,
	colornames.Teal,
}

type ImageRequest struct {
	ID          string
	Src         string
	Placeholder color.Color
	Width       int
	Height      int
}

type Request struct {
	Families []string
	Images   []ImageRequest
}

type Result struct {
	Fonts  map[string]*text.GoTextFaceSource
	Images map[string]image.Image
	// Placeholders lists image ids whose source could not be loaded.
	Placeholders []string
}

// Face returns a face of the given size for a loaded family.
func (r *Result) Face(family string, size float64) text.Face {
	if r == nil {
		return nil
	}
	src, ok := r.Fonts[normalizeFamily(family)]
	if !ok {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// Load blocks until every font and image has settled. Fonts must load;
// images that fail fall back to a generated placeholder.
func Load(ctx context.Context, req Request) (*Result, error) {
	res := &Result{
		Fonts:  make(map[string]*text.GoTextFaceSource, len(req.Families)),
		Images: make(map[string]image.Image, len(req.Images)),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, family := range req.Families {
		g.Go(func() error {
			src, err := loadFamily(family)
			if err != nil {
				return fmt.Errorf("preload: font %q: %w", family, err)
			}
			mu.Lock()
			res.Fonts[normalizeFamily(family)] = src
			mu.Unlock()
			return nil
		})
	}

	for _, ir := range req.Images {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := assets.DecodeImage(ir.Src)
			placeholder := false
			if err != nil {
				log.Printf("preload: image %s (%s): %v; using placeholder", ir.ID, ir.Src, err)
				img = Placeholder(ir)
				placeholder = true
			}
			mu.Lock()
			res.Images[ir.ID] = img
			if placeholder {
				res.Placeholders = append(res.Placeholders, ir.ID)
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// Loader runs Load in the background so the frame loop can poll it.
type Loader struct {
	done   chan struct{}
	result *Result
	err    error
}

func Start(ctx context.Context, req Request) *Loader {
	l := &Loader{done: make(chan struct{})}
	go func() {
		defer close(l.done)
		l.result, l.err = Load(ctx, req)
	}()
	return l
}

func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Poll reports the outcome without blocking; done is false while loading.
func (l *Loader) Poll() (res *Result, done bool, err error) {
	select {
	case <-l.done:
		return l.result, true, l.err
	default:
		return nil, false, nil
	}
}

func (l *Loader) Wait(ctx context.Context) (*Result, error) {
	select {
	case <-l.done:
		return l.result, l.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

func loadFamily(family string) (*text.GoTextFaceSource, error) {
	key := normalizeFamily(family)
	ttf, ok := builtinFamilies[key]
	if !ok {
		ext := strings.ToLower(filepath.Ext(key))
		if ext != ".ttf" && ext != ".otf" {
			return nil, fmt.Errorf("unknown family")
		}
		b, err := os.ReadFile(strings.TrimSpace(family))
		if err != nil {
			return nil, err
		}
		ttf = b
	}
	return text.NewGoTextFaceSource(bytes.NewReader(ttf))
}

// Placeholder draws a striped gradient in the request's color, or a palette
// color picked from its id.
func Placeholder(ir ImageRequest) image.Image {
	w, h := ir.Width, ir.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 480
	}
	base := ir.Placeholder
	if base == nil {
		f := fnv.New32a()
		_, _ = f.Write([]byte(ir.ID))
		base = placeholderPalette[int(f.Sum32()%uint32(len(placeholderPalette)))]
	}
	c := color.NRGBAModel.Convert(base).(color.NRGBA)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		shade := 0.6 + 0.4*float64(h-y)/float64(h)
		for x := 0; x < w; x++ {
			s := shade
			if (x/32+y/32)%2 == 0 {
				s *= 0.9
			}
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(float64(c.R) * s),
				G: uint8(float64(c.G) * s),
				B: uint8(float64(c.B) * s),
				A: 255,
			})
		}
	}
	return img
}
