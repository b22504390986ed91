// Package charts builds themed line and bar charts and binds them to named
// rendering surfaces. Drawing is delegated to a Renderer, so the same chart
// can come out as an interactive ECharts page or a static PNG.
package charts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chartkit/internal/options"
	"chartkit/internal/theme"
)

var (
	// ErrSurfaceNotFound is returned when no surface has the requested id.
	ErrSurfaceNotFound = errors.New("rendering surface not found")
	// ErrInvalidSurfaceID is returned for ids that cannot name a surface.
	ErrInvalidSurfaceID = errors.New("invalid surface id")
	// ErrUnknownColor is returned for a series color key the theme lacks.
	ErrUnknownColor = errors.New("unknown series color")
	// ErrEmptySeries is returned by renderers that cannot draw zero points.
	ErrEmptySeries = errors.New("series has no data points")
)

// ChartType selects the chart geometry.
type ChartType string

const (
	TypeLine ChartType = "line"
	TypeBar  ChartType = "bar"
)

// Dataset is one data series with its styling.
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
	Fill            bool      `json:"fill"`
	Tension         float64   `json:"tension,omitempty"`
}

// Config is everything a renderer needs to draw a chart.
type Config struct {
	Type     ChartType            `json:"type"`
	Labels   []string             `json:"labels"`
	Datasets []Dataset            `json:"datasets"`
	Options  options.ChartOptions `json:"options"`
}

// Artifact is the rendered output of a chart.
type Artifact struct {
	ContentType string
	Extension   string
	Data        []byte
}

// Chart is a rendered chart bound to a surface.
type Chart struct {
	SurfaceID string
	// Width and Height are the surface size the chart was drawn at.
	Width     int
	Height    int
	Config    Config
	Artifact  Artifact
	CreatedAt time.Time
}

// FileName is the name the chart's artifact is stored under.
func (c *Chart) FileName() string {
	return c.SurfaceID + "." + c.Artifact.Extension
}

// Renderer draws a chart config onto a surface.
type Renderer interface {
	Name() string
	Render(ctx context.Context, surface *Surface, cfg Config) (Artifact, error)
}

// NewRenderer returns the renderer registered under name ("echarts" or "png").
func NewRenderer(name string, th theme.Theme) (Renderer, error) {
	switch name {
	case "echarts":
		return NewEChartsRenderer(th), nil
	case "png":
		return NewPNGRenderer(th), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}
