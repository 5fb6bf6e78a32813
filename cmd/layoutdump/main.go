// Command layoutdump lays the gallery out for a container size without
// opening a window and prints element bounds and plane positions as YAML.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/milk9111/hovergallery/clock"
	"github.com/milk9111/hovergallery/gallery"
	"github.com/milk9111/hovergallery/prefabs"
	"github.com/milk9111/hovergallery/preload"
	"github.com/milk9111/hovergallery/scene"
)

func main() {
	galleryName := flag.String("gallery", "gallery.yaml", "gallery prefab")
	materialName := flag.String("material", "material.yaml", "material prefab")
	width := flag.Float64("width", 0, "container width (default: prefab container)")
	height := flag.Float64("height", 0, "container height (default: prefab container)")
	scroll := flag.Float64("scroll", 0, "scroll offset in pixels")
	timeout := flag.Duration("timeout", 30*time.Second, "preload timeout")
	flag.Parse()

	if err := run(os.Stdout, *galleryName, *materialName, *width, *height, *scroll, *timeout); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer, galleryName, materialName string, width, height, scroll float64, timeout time.Duration) error {
	gs, err := prefabs.LoadGallerySpec(galleryName)
	if err != nil {
		return err
	}
	ms, err := prefabs.LoadMaterialSpec(materialName)
	if err != nil {
		return err
	}
	if width <= 0 {
		width = float64(gs.Container.Width)
	}
	if height <= 0 {
		height = float64(gs.Container.Height)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	res, err := preload.Load(ctx, gallery.PreloadRequest(gs))
	if err != nil {
		return err
	}
	for _, id := range res.Placeholders {
		log.Printf("layoutdump: %s uses a placeholder", id)
	}

	doc := gallery.BuildDocument(gs, res, false)
	doc.Layout(width)

	program, err := gallery.BuildProgram(ms)
	if err != nil {
		return err
	}
	opts, err := gallery.OptionsFromSpec(ms, scene.Viewport{Width: width, Height: height})
	if err != nil {
		return err
	}
	opts.Scroll = gallery.FixedScroll(scroll)
	opts.Clock = &clock.Manual{}

	s, err := gallery.New(doc, program, opts)
	if err != nil {
		return err
	}
	s.Update()

	b, err := s.Snapshot().YAML()
	if err != nil {
		return fmt.Errorf("layoutdump: %w", err)
	}
	_, err = out.Write(b)
	return err
}
