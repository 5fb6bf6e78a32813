package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

//go:embed shaders/*.kage
var assetsFS embed.FS

// LoadFile reads an asset, preferring the on-disk copy under assets/ so shader
// edits hot reload. Paths that exist as given are read directly.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if b, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return b, nil
	}
	if b, err := os.ReadFile(path); err == nil {
		return b, nil
	}
	return assetsFS.ReadFile(clean)
}

// LoadShader reads Kage source by assets-relative path.
func LoadShader(path string) ([]byte, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: shader %q: %w", path, err)
	}
	return b, nil
}

// DecodeImage loads and decodes an image without touching the GPU, so it is
// safe to call from loader goroutines.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %q: %w", path, err)
	}
	return img, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
