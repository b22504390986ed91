package charts

import (
	"bytes"
	"context"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"chartkit/internal/options"
	"chartkit/internal/theme"
)

// maxXTicks caps the number of category labels drawn under a line chart.
const maxXTicks = 12

// PNGRenderer renders charts to static PNG images with go-chart.
type PNGRenderer struct {
	theme theme.Theme
}

// NewPNGRenderer creates a PNG renderer styled with th.
func NewPNGRenderer(th theme.Theme) *PNGRenderer {
	return &PNGRenderer{theme: th}
}

// Name implements Renderer.
func (r *PNGRenderer) Name() string { return "png" }

// Render implements Renderer.
func (r *PNGRenderer) Render(ctx context.Context, surface *Surface, cfg Config) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	if len(cfg.Datasets) == 0 || len(cfg.Datasets[0].Data) == 0 {
		return Artifact{}, fmt.Errorf("png %s chart: %w", cfg.Type, ErrEmptySeries)
	}

	st, err := r.styles(cfg.Options)
	if err != nil {
		return Artifact{}, err
	}

	var buf bytes.Buffer
	switch cfg.Type {
	case TypeLine:
		err = r.renderLine(&buf, surface, cfg, st)
	case TypeBar:
		err = r.renderBar(&buf, surface, cfg, st)
	default:
		err = fmt.Errorf("unsupported chart type %q", cfg.Type)
	}
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		ContentType: "image/png",
		Extension:   "png",
		Data:        buf.Bytes(),
	}, nil
}

// pngStyles holds the resolved go-chart styles shared by both chart types.
type pngStyles struct {
	title      string
	titleStyle chart.Style
	background chart.Style
	canvas     chart.Style
	axisX      chart.Style
	axisY      chart.Style
	gridX      chart.Style
	gridY      chart.Style
	legend     chart.Style
}

func (r *PNGRenderer) styles(o options.ChartOptions) (pngStyles, error) {
	p := r.theme.Palette()
	o = withThemeDefaults(r.theme, o)

	var st pngStyles
	var err error
	parse := func(css string) drawing.Color {
		if err != nil {
			return drawing.ColorTransparent
		}
		var c drawing.Color
		c, err = theme.ParseColor(css)
		return c
	}

	bg := parse(p.Background)
	surface := parse(p.Surface)

	st.background = chart.Style{
		FillColor: bg,
		Padding:   chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
	}
	st.canvas = chart.Style{FillColor: surface}

	if o.Plugins.Title.Display {
		st.title = o.Plugins.Title.Text
		st.titleStyle = chart.Style{
			FontSize:  float64(o.Plugins.Title.Font.Size),
			FontColor: parse(o.Plugins.Title.Color),
		}
	}

	st.axisX = chart.Style{FontColor: parse(o.Scales.X.Ticks.Color), StrokeColor: parse(p.Border)}
	st.axisY = chart.Style{FontColor: parse(o.Scales.Y.Ticks.Color), StrokeColor: parse(p.Border)}
	st.gridX = chart.Style{StrokeColor: parse(o.Scales.X.Grid.Color), StrokeWidth: 1}
	st.gridY = chart.Style{StrokeColor: parse(o.Scales.Y.Grid.Color), StrokeWidth: 1}

	st.legend = chart.Style{
		FillColor:   parse(p.Surface2),
		FontColor:   parse(o.Plugins.Legend.Labels.Color),
		FontSize:    float64(o.Plugins.Legend.Labels.Font.Size),
		StrokeColor: parse(p.Border),
	}

	if err != nil {
		return pngStyles{}, fmt.Errorf("png styles: %w", err)
	}
	return st, nil
}

func (r *PNGRenderer) renderLine(buf *bytes.Buffer, surface *Surface, cfg Config, st pngStyles) error {
	n := 0
	series := make([]chart.Series, 0, len(cfg.Datasets))
	for _, ds := range cfg.Datasets {
		stroke, err := theme.ParseColor(ds.BorderColor)
		if err != nil {
			return fmt.Errorf("dataset %q: %w", ds.Label, err)
		}
		fill := drawing.ColorTransparent
		if ds.Fill {
			if fill, err = theme.ParseColor(ds.BackgroundColor); err != nil {
				return fmt.Errorf("dataset %q: %w", ds.Label, err)
			}
		}

		xs := make([]float64, len(ds.Data))
		for i := range xs {
			xs[i] = float64(i)
		}
		n = max(n, len(ds.Data))

		series = append(series, chart.ContinuousSeries{
			Name: ds.Label,
			Style: chart.Style{
				StrokeColor: stroke,
				StrokeWidth: float64(ds.BorderWidth),
				FillColor:   fill,
				DotColor:    stroke,
				DotWidth:    2,
			},
			XValues: xs,
			YValues: ds.Data,
		})
	}

	lo, hi := valueRange(cfg.Datasets, false)

	graph := chart.Chart{
		Title:      st.title,
		TitleStyle: st.titleStyle,
		Width:      surface.Width,
		Height:     surface.Height,
		Background: st.background,
		Canvas:     st.canvas,
		XAxis: chart.XAxis{
			Style:          st.axisX,
			GridMajorStyle: st.gridX,
			Range:          &chart.ContinuousRange{Min: 0, Max: math.Max(float64(n-1), 1)},
			Ticks:          categoryTicks(cfg.Labels, n),
		},
		YAxis: chart.YAxis{
			Style:          st.axisY,
			GridMajorStyle: st.gridY,
			Range:          &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph, st.legend)}

	if err := graph.Render(chart.PNG, buf); err != nil {
		return fmt.Errorf("png line: %w", err)
	}
	return nil
}

func (r *PNGRenderer) renderBar(buf *bytes.Buffer, surface *Surface, cfg Config, st pngStyles) error {
	ds := cfg.Datasets[0]
	fill, err := theme.ParseColor(ds.BackgroundColor)
	if err != nil {
		return fmt.Errorf("dataset %q: %w", ds.Label, err)
	}
	stroke, err := theme.ParseColor(ds.BorderColor)
	if err != nil {
		return fmt.Errorf("dataset %q: %w", ds.Label, err)
	}

	bars := make([]chart.Value, 0, len(ds.Data))
	for i, v := range ds.Data {
		label := ""
		if i < len(cfg.Labels) {
			label = cfg.Labels[i]
		}
		bars = append(bars, chart.Value{
			Value: v,
			Label: label,
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: stroke,
				StrokeWidth: float64(ds.BorderWidth),
			},
		})
	}

	lo, hi := valueRange(cfg.Datasets, true)
	spacing := barSpacing(surface.Width, len(bars))

	graph := chart.BarChart{
		Title:      st.title,
		TitleStyle: st.titleStyle,
		Width:      surface.Width,
		Height:     surface.Height,
		Background: st.background,
		Canvas:     st.canvas,
		XAxis:      st.axisX,
		YAxis: chart.YAxis{
			Style:          st.axisY,
			GridMajorStyle: st.gridY,
			Range:          &chart.ContinuousRange{Min: lo, Max: hi},
		},
		BarSpacing: spacing,
		BarWidth:   barWidth(surface.Width, len(bars), spacing),
		Bars:       bars,
	}

	if err := graph.Render(chart.PNG, buf); err != nil {
		return fmt.Errorf("png bar: %w", err)
	}
	return nil
}

// valueRange returns a padded y range covering every data point. Bar ranges
// always include zero.
func valueRange(datasets []Dataset, withZero bool) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	if withZero {
		lo, hi = 0, 0
	}
	for _, ds := range datasets {
		for _, v := range ds.Data {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.1, 1)
	}
	if withZero {
		if lo < 0 {
			lo -= pad
		}
		if hi > 0 || lo == 0 {
			hi += pad
		}
		return lo, hi
	}
	return lo - pad, hi + pad
}

// categoryTicks places labels at integer x positions, thinned so at most
// maxXTicks are drawn.
func categoryTicks(labels []string, n int) []chart.Tick {
	if n == 0 {
		return nil
	}
	step := 1
	if n > maxXTicks {
		step = int(math.Ceil(float64(n) / maxXTicks))
	}
	ticks := make([]chart.Tick, 0, n/step+1)
	for i := 0; i < n; i += step {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: label})
	}
	return ticks
}

func barSpacing(width, bars int) int {
	if bars <= 1 {
		return 0
	}
	return max(2, min(20, width/(bars*4)))
}

// barWidth fits bars into the plot area left after the y axis and padding.
func barWidth(width, bars, spacing int) int {
	avail := width - 120
	return max(2, min(50, (avail-spacing*(bars-1))/bars))
}
