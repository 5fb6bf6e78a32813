package main

import (
	"log"
	"path/filepath"

	"github.com/milk9111/hovergallery/gallery"
	"github.com/milk9111/hovergallery/prefabs"
)

// pollWatcher applies at most one pending file change per frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("watch: %v", err)
		}
	default:
	}

	name, ok := g.watcher.Poll()
	if !ok {
		return
	}
	switch prefabs.Classify(name) {
	case prefabs.FileShader, prefabs.FileScript:
		g.reloadProgram(name)
	case prefabs.FileSpec:
		if filepath.Base(name) == filepath.Base(g.opts.Material) {
			ms, err := prefabs.LoadMaterialSpec(g.opts.Material)
			if err != nil {
				log.Printf("watch: %s: %v", name, err)
				return
			}
			g.materialSpec = ms
			g.reloadProgram(name)
			return
		}
		log.Printf("watch: %s changed; restart to apply", name)
	}
}

// reloadProgram rebuilds and compiles the shared program, keeping the old one
// if anything fails.
func (g *Game) reloadProgram(trigger string) {
	program, err := gallery.BuildProgram(g.materialSpec)
	if err != nil {
		log.Printf("watch: %s: %v", trigger, err)
		return
	}
	if err := program.Compile(); err != nil {
		log.Printf("watch: %s: %v", trigger, err)
		return
	}
	g.sync.ReplaceProgram(program)
	log.Printf("watch: reloaded program %q after %s", program.Name, filepath.Base(trigger))
}
