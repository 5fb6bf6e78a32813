package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	galleryName := flag.String("gallery", "gallery.yaml", "gallery prefab (images, fonts, layout)")
	materialName := flag.String("material", "material.yaml", "material prefab (shader, vertex program, hover tween)")
	debug := flag.Bool("debug", false, "show the debug overlay (press C to copy a scene snapshot)")
	watch := flag.Bool("watch", false, "hot reload shaders, vertex scripts and the material prefab")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	scroll := flag.Bool("scroll", true, "scroll the page with the mouse wheel")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(Options{
		Gallery:  *galleryName,
		Material: *materialName,
		Debug:    *debug,
		Watch:    *watch,
		Scroll:   *scroll,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.ContainerSize())
	ebiten.SetWindowTitle(game.Title())

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
