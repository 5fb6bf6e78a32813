package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GallerySpec struct {
	Title     string        `yaml:"title"`
	Container ContainerSpec `yaml:"container"`
	Fonts     FontsSpec     `yaml:"fonts"`
	Layout    LayoutSpec    `yaml:"layout"`
	Colors    ColorsSpec    `yaml:"colors"`
	Scroll    ScrollSpec    `yaml:"scroll"`
	Images    []ImageSpec   `yaml:"images"`
}

type ContainerSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type FontSpec struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
}

type FontsSpec struct {
	Heading FontSpec `yaml:"heading"`
	Body    FontSpec `yaml:"body"`
}

type LayoutSpec struct {
	Margin      float64 `yaml:"margin"`
	Gutter      float64 `yaml:"gutter"`
	ColumnWidth float64 `yaml:"column_width"`
	CaptionGap  float64 `yaml:"caption_gap"`
	TitleGap    float64 `yaml:"title_gap"`
}

type ColorsSpec struct {
	Background *YAMLColor `yaml:"background"`
	Title      *YAMLColor `yaml:"title"`
	Text       *YAMLColor `yaml:"text"`
}

type ScrollSpec struct {
	Enabled   bool    `yaml:"enabled"`
	Speed     float64 `yaml:"speed"`
	Smoothing float64 `yaml:"smoothing"`
}

type ImageSpec struct {
	ID          string     `yaml:"id"`
	Src         string     `yaml:"src"`
	Caption     string     `yaml:"caption"`
	Placeholder *YAMLColor `yaml:"placeholder"`
	// Natural size used for placeholders when Src cannot be loaded.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func LoadGallerySpec(name string) (*GallerySpec, error) {
	spec, err := LoadSpec[GallerySpec](name)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

func (s *GallerySpec) applyDefaults() {
	if s.Container.Width <= 0 {
		s.Container.Width = 1280
	}
	if s.Container.Height <= 0 {
		s.Container.Height = 720
	}
	if s.Fonts.Heading.Family == "" {
		s.Fonts.Heading.Family = "Go Bold"
	}
	if s.Fonts.Heading.Size <= 0 {
		s.Fonts.Heading.Size = 32
	}
	if s.Fonts.Body.Family == "" {
		s.Fonts.Body.Family = "Go Regular"
	}
	if s.Fonts.Body.Size <= 0 {
		s.Fonts.Body.Size = 16
	}
	if s.Scroll.Speed <= 0 {
		s.Scroll.Speed = 40
	}
	if s.Scroll.Smoothing <= 0 || s.Scroll.Smoothing > 1 {
		s.Scroll.Smoothing = 0.15
	}
	for i := range s.Images {
		if s.Images[i].ID == "" {
			s.Images[i].ID = fmt.Sprintf("image-%d", i+1)
		}
	}
}

type MaterialSpec struct {
	Name      string     `yaml:"name"`
	Fragment  string     `yaml:"fragment"`
	Vertex    VertexSpec `yaml:"vertex"`
	Hover     HoverSpec  `yaml:"hover"`
	TimeScale float64    `yaml:"time_scale"`
	Segments  int        `yaml:"segments"`
	Camera    CameraSpec `yaml:"camera"`
}

type VertexSpec struct {
	Program   string             `yaml:"program"`
	Script    string             `yaml:"script"`
	Amplitude float64            `yaml:"amplitude"`
	Frequency float64            `yaml:"frequency"`
	Params    map[string]float64 `yaml:"params"`
}

type HoverSpec struct {
	Duration time.Duration `yaml:"duration"`
	Ease     string        `yaml:"ease"`
}

type CameraSpec struct {
	Distance float64 `yaml:"distance"`
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
}

func LoadMaterialSpec(name string) (*MaterialSpec, error) {
	spec, err := LoadSpec[MaterialSpec](name)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// MaxSegments bounds plane subdivision so vertex indices fit in 16 bits.
const MaxSegments = 255

func (s *MaterialSpec) validate() error {
	if s.Segments > MaxSegments {
		return fmt.Errorf("prefabs: material %s: segments %d too large", s.Name, s.Segments)
	}
	return nil
}

func (s *MaterialSpec) applyDefaults() {
	if s.Name == "" {
		s.Name = "hover"
	}
	if s.Fragment == "" {
		s.Fragment = "shaders/hover.kage"
	}
	if s.Vertex.Program == "" {
		s.Vertex.Program = "wave"
	}
	if s.Vertex.Amplitude == 0 {
		s.Vertex.Amplitude = 10
	}
	if s.Vertex.Frequency == 0 {
		s.Vertex.Frequency = 10
	}
	if s.Hover.Duration <= 0 {
		s.Hover.Duration = time.Second
	}
	if s.TimeScale == 0 {
		s.TimeScale = 3
	}
	if s.Segments <= 0 {
		s.Segments = 10
	}
	if s.Camera.Distance <= 0 {
		s.Camera.Distance = 600
	}
	if s.Camera.Near <= 0 {
		s.Camera.Near = 100
	}
	if s.Camera.Far <= s.Camera.Near {
		s.Camera.Far = 2000
	}
}

// ScriptParams merges amplitude and frequency into the script globals.
func (v VertexSpec) ScriptParams() map[string]float64 {
	out := make(map[string]float64, len(v.Params)+2)
	for k, val := range v.Params {
		out[k] = val
	}
	if _, ok := out["amplitude"]; !ok {
		out["amplitude"] = v.Amplitude
	}
	if _, ok := out["frequency"]; !ok {
		out["frequency"] = v.Frequency
	}
	return out
}

type YAMLColor struct {
	color.Color
}

// ColorOr returns the parsed color, or fallback when unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return "", nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}
