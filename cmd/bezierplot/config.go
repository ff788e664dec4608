package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/bezier/coefficient"
	"github.com/katalvlaran/bezier/curve"
	"github.com/katalvlaran/bezier/editor"
	"github.com/pelletier/go-toml/v2"
	"gonum.org/v1/plot/vg"
)

// errBadSize indicates a non-positive output width or height.
var errBadSize = errors.New("bezierplot: width and height must be > 0")

// PointConfig is one [[control_points]] table.
type PointConfig struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// Config is the TOML session description. Fields missing from the file keep
// the values of DefaultConfig.
type Config struct {
	Steps               int           `toml:"steps"`
	Computer            string        `toml:"computer"`
	RenderCurvePoints   bool          `toml:"render_curve_points"`
	RenderControlPoints bool          `toml:"render_control_points"`
	RenderLines         bool          `toml:"render_lines"`
	Width               float64       `toml:"width"`
	Height              float64       `toml:"height"`
	ControlPoints       []PointConfig `toml:"control_points"`
}

// DefaultConfig mirrors the editor defaults: one step, cache computer,
// control points and polygon drawn, curve samples hidden, 6×6 inches.
// ControlPoints stays nil so an absent table selects
// editor.DefaultControlPoints while an explicit empty array does not.
func DefaultConfig() Config {
	opts := editor.DefaultOptions()

	return Config{
		Steps:               opts.Steps,
		Computer:            opts.Kind.String(),
		RenderCurvePoints:   false,
		RenderControlPoints: true,
		RenderLines:         true,
		Width:               6,
		Height:              6,
	}
}

// DecodeConfig reads a TOML description from r on top of DefaultConfig.
// Unknown keys are an error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// LoadConfig opens path and decodes it with DecodeConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Options converts the session part of the config.
func (c Config) Options() (editor.Options, error) {
	kind, err := coefficient.ParseKind(c.Computer)
	if err != nil {
		return editor.Options{}, err
	}

	return editor.Options{Steps: c.Steps, Kind: kind}, nil
}

// Points returns the configured control points, or the editor defaults when
// the file had no control_points table.
func (c Config) Points() []curve.Point {
	if c.ControlPoints == nil {
		return editor.DefaultControlPoints()
	}
	points := make([]curve.Point, len(c.ControlPoints))
	for i, p := range c.ControlPoints {
		points[i] = curve.Pt(p.X, p.Y)
	}

	return points
}

// Style returns the rendering switches and page size.
func (c Config) Style() (Style, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return Style{}, fmt.Errorf("%gx%g: %w", c.Width, c.Height, errBadSize)
	}

	return Style{
		CurvePoints:   c.RenderCurvePoints,
		ControlPoints: c.RenderControlPoints,
		Lines:         c.RenderLines,
		Width:         vg.Length(c.Width) * vg.Inch,
		Height:        vg.Length(c.Height) * vg.Inch,
	}, nil
}
