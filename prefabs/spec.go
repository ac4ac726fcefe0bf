package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/tailchase/chase"
)

const (
	TuningFile = "tuning.yaml"
	SceneFile  = "scene.yaml"
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

// TuningSpec holds the chase and camera constants. Zero fields fall back to
// the built-in defaults.
type TuningSpec struct {
	CatchUpSpeed int64 `yaml:"catch_up_speed"`
	Slack        int64 `yaml:"slack"`
	CameraSpeed  int64 `yaml:"camera_speed"`
	RecenterMS   int64 `yaml:"recenter_ms"`
}

func (s TuningSpec) Tuning() chase.Tuning {
	return chase.Tuning{
		CatchUpSpeed:   s.CatchUpSpeed,
		Slack:          s.Slack,
		CameraSpeed:    s.CameraSpeed,
		RecenterMillis: s.RecenterMS,
	}.WithDefaults()
}

func LoadTuning() (chase.Tuning, error) {
	spec, err := LoadSpec[TuningSpec](TuningFile)
	if err != nil {
		return chase.DefaultTuning(), err
	}
	return spec.Tuning(), nil
}

type SceneSpec struct {
	Camera    CameraSpec     `yaml:"camera"`
	Landmarks []LandmarkSpec `yaml:"landmarks"`
	Chain     ChainSpec      `yaml:"chain"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](SceneFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// PointSpec is a logical world position.
type PointSpec struct {
	X int64 `yaml:"x"`
	Y int64 `yaml:"y"`
}

// RectSpec is a screen rectangle in pixels, origin top left.
type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type CameraSpec struct {
	Viewport *RectSpec `yaml:"viewport"`
	Start    PointSpec `yaml:"start"`
	// Home defaults to Start.
	Home *PointSpec `yaml:"home"`
}

type SpriteSpec struct {
	Size  float64    `yaml:"size"`
	Color *YAMLColor `yaml:"color"`
	Depth float64    `yaml:"depth"`
}

type LandmarkSpec struct {
	Name   string     `yaml:"name"`
	At     PointSpec  `yaml:"at"`
	Sprite SpriteSpec `yaml:"sprite"`
}

type ChainSpec struct {
	// LayoutScript names a tengo script under scripts/ that places the links.
	// Links without a scripted position fall back to At, then to the origin.
	LayoutScript string     `yaml:"layout_script"`
	Spacing      int64      `yaml:"spacing"`
	Links        []LinkSpec `yaml:"links"`
}

type LinkSpec struct {
	At     *PointSpec `yaml:"at"`
	Sprite SpriteSpec `yaml:"sprite"`
	// Head lets the next link chase this one. The last link is usually not a
	// head.
	Head bool `yaml:"head"`
}

type YAMLColor struct {
	color.Color
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
