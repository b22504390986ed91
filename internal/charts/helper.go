package charts

import (
	"context"
	"fmt"
	"time"

	"chartkit/internal/logger"
	"chartkit/internal/options"
	"chartkit/internal/theme"
)

// Default series labels.
const (
	PriceSeriesLabel = "Price"
	BarSeriesLabel   = "Quantity"
)

// BarOptions picks the label and color key of a bar chart's series. Empty
// fields fall back to BarSeriesLabel and theme.SeriesPrimary.
type BarOptions struct {
	Label string
	Color string
}

// Helper creates themed charts on the surfaces of a document.
type Helper struct {
	theme    theme.Theme
	renderer Renderer
	doc      *Document
	log      *logger.Logger
	now      func() time.Time
}

// NewHelper wires a theme, a renderer and a document together.
func NewHelper(th theme.Theme, r Renderer, doc *Document) *Helper {
	return &Helper{
		theme:    th,
		renderer: r,
		doc:      doc,
		log:      logger.GetGlobalLogger().WithComponent("charts"),
		now:      time.Now,
	}
}

// Theme returns the helper's theme.
func (h *Helper) Theme() theme.Theme { return h.theme }

// Document returns the document charts are drawn on.
func (h *Helper) Document() *Document { return h.doc }

// Renderer returns the backend charts are drawn with.
func (h *Helper) Renderer() Renderer { return h.renderer }

// DefaultOptions returns fresh themed options; a non-empty title is displayed.
func (h *Helper) DefaultOptions(title string) options.ChartOptions {
	return options.Default(h.theme, title)
}

// CreatePriceChangeChart draws a smoothed line of prices on the surface
// targetID. Keys set in overrides replace the defaults.
func (h *Helper) CreatePriceChangeChart(ctx context.Context, targetID string, labels []string, data []float64, overrides options.Overrides) (*Chart, error) {
	color, _ := h.theme.SeriesColor(theme.SeriesPrimary)

	cfg := Config{
		Type:   TypeLine,
		Labels: labels,
		Datasets: []Dataset{{
			Label:           PriceSeriesLabel,
			Data:            data,
			BackgroundColor: color,
			BorderColor:     theme.Opaque(color),
			BorderWidth:     2,
			Fill:            false,
			Tension:         0.4,
		}},
		Options: options.Merge(h.DefaultOptions(""), overrides),
	}
	return h.create(ctx, targetID, cfg)
}

// CreateBarChart draws a single-series bar chart on the surface targetID.
func (h *Helper) CreateBarChart(ctx context.Context, targetID string, labels []string, data []float64, bar BarOptions, overrides options.Overrides) (*Chart, error) {
	if bar.Label == "" {
		bar.Label = BarSeriesLabel
	}
	if bar.Color == "" {
		bar.Color = theme.SeriesPrimary
	}
	color, ok := h.theme.SeriesColor(bar.Color)
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownColor, bar.Color, h.theme.SeriesKeys())
	}

	cfg := Config{
		Type:   TypeBar,
		Labels: labels,
		Datasets: []Dataset{{
			Label:           bar.Label,
			Data:            data,
			BackgroundColor: color,
			BorderColor:     theme.Opaque(color),
			BorderWidth:     1,
		}},
		Options: options.Merge(h.DefaultOptions(""), overrides),
	}
	return h.create(ctx, targetID, cfg)
}

func (h *Helper) create(ctx context.Context, targetID string, cfg Config) (*Chart, error) {
	surface, err := h.doc.Lookup(targetID)
	if err != nil {
		return nil, err
	}

	artifact, err := h.renderer.Render(ctx, surface, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s chart on %q: %w", cfg.Type, targetID, err)
	}

	c := &Chart{
		SurfaceID: surface.ID,
		Width:     surface.Width,
		Height:    surface.Height,
		Config:    cfg,
		Artifact:  artifact,
		CreatedAt: h.now(),
	}
	if prev := surface.bind(c); prev != nil {
		h.log.Debug("Replaced chart on surface", map[string]interface{}{
			"surface":  surface.ID,
			"previous": string(prev.Config.Type),
		})
	}

	h.log.Info("Chart rendered", map[string]interface{}{
		"surface":  surface.ID,
		"type":     string(cfg.Type),
		"renderer": h.renderer.Name(),
		"points":   len(cfg.Datasets[0].Data),
		"bytes":    len(artifact.Data),
	})
	return c, nil
}
