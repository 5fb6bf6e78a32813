package prefabs

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadGallerySpec(t *testing.T) {
	spec, err := LoadGallerySpec("gallery.yaml")
	if err != nil {
		t.Fatalf("LoadGallerySpec: %v", err)
	}
	if len(spec.Images) == 0 {
		t.Fatalf("expected images in the embedded gallery")
	}
	if spec.Fonts.Heading.Family == "" || spec.Fonts.Body.Family == "" {
		t.Fatalf("expected two font families, got %+v", spec.Fonts)
	}
	seen := map[string]bool{}
	for _, img := range spec.Images {
		if img.ID == "" {
			t.Fatalf("image without id: %+v", img)
		}
		if seen[img.ID] {
			t.Fatalf("duplicate image id %q", img.ID)
		}
		seen[img.ID] = true
	}
	if got := spec.Colors.Background.ColorOr(color.Black); got != (color.NRGBA{0x11, 0x11, 0x11, 0xff}) {
		t.Fatalf("background = %v", got)
	}
}

func TestLoadMaterialSpec(t *testing.T) {
	spec, err := LoadMaterialSpec("prefabs/material.yaml")
	if err != nil {
		t.Fatalf("LoadMaterialSpec: %v", err)
	}
	if spec.Hover.Duration != time.Second {
		t.Fatalf("hover duration = %v, want 1s", spec.Hover.Duration)
	}
	if spec.Segments != 10 {
		t.Fatalf("segments = %d, want 10", spec.Segments)
	}
	if spec.Camera.Distance != 600 || spec.Camera.Near != 100 || spec.Camera.Far != 2000 {
		t.Fatalf("camera = %+v", spec.Camera)
	}
}

func TestMaterialDefaults(t *testing.T) {
	var spec MaterialSpec
	if err := yaml.Unmarshal([]byte("hover:\n  duration: 250ms\n"), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	spec.applyDefaults()

	cases := []struct {
		name string
		ok   bool
	}{
		{"duration_kept", spec.Hover.Duration == 250*time.Millisecond},
		{"fragment", spec.Fragment == "shaders/hover.kage"},
		{"vertex_program", spec.Vertex.Program == "wave"},
		{"time_scale", spec.TimeScale == 3},
		{"far_after_near", spec.Camera.Far > spec.Camera.Near},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !c.ok {
				t.Fatalf("default not applied: %+v", spec)
			}
		})
	}
}

func TestMaterialSegmentsBound(t *testing.T) {
	cases := []struct {
		name     string
		segments int
		wantErr  bool
	}{
		{"default", 0, false},
		{"at_limit", MaxSegments, false},
		{"over_limit", 300, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := MaterialSpec{Segments: c.segments}
			spec.applyDefaults()
			err := spec.validate()
			if (err != nil) != c.wantErr {
				t.Fatalf("validate(%d) err = %v, wantErr %v", c.segments, err, c.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "segments 300 too large") {
				t.Fatalf("unexpected message %q", err)
			}
		})
	}
}

func TestScriptParams(t *testing.T) {
	v := VertexSpec{Amplitude: 4, Frequency: 8, Params: map[string]float64{"frequency": 2, "decay": 0.5}}
	p := v.ScriptParams()
	if p["amplitude"] != 4 || p["frequency"] != 2 || p["decay"] != 0.5 {
		t.Fatalf("params = %v", p)
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"wave.tengo", "scripts/wave.tengo", "prefabs/scripts/swell.tengo"} {
		t.Run(name, func(t *testing.T) {
			b, err := LoadScript(name)
			if err != nil || len(b) == 0 {
				t.Fatalf("LoadScript(%q): %v", name, err)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{`"#ff0000"`, color.NRGBA{255, 0, 0, 255}, false},
		{`"00ff0080"`, color.NRGBA{0, 255, 0, 128}, false},
		{`"#fff"`, nil, true},
		{`[1, 2]`, nil, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("color = %v, want %v", got.Color, c.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	cases := map[string]FileKind{
		"prefabs/gallery.yaml":      FileSpec,
		"x.YML":                     FileSpec,
		"prefabs/scripts/w.tengo":   FileScript,
		"assets/shaders/hover.kage": FileShader,
		"notes.txt":                 FileOther,
	}
	for path, want := range cases {
		if got := Classify(path); got != want {
			t.Fatalf("Classify(%q) = %v, want %v", path, got, want)
		}
	}
}
