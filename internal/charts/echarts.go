package charts

import (
	"bytes"
	"context"
	"fmt"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"chartkit/internal/options"
	"chartkit/internal/theme"
)

// EChartsRenderer renders charts as standalone go-echarts HTML pages. The
// chart root element carries the surface id.
type EChartsRenderer struct {
	theme theme.Theme
}

// NewEChartsRenderer creates an ECharts renderer styled with th.
func NewEChartsRenderer(th theme.Theme) *EChartsRenderer {
	return &EChartsRenderer{theme: th}
}

// Name implements Renderer.
func (r *EChartsRenderer) Name() string { return "echarts" }

// Render implements Renderer.
func (r *EChartsRenderer) Render(ctx context.Context, surface *Surface, cfg Config) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}

	global := r.globalOptions(surface, cfg.Options)

	var buf bytes.Buffer
	switch cfg.Type {
	case TypeLine:
		line := echarts.NewLine()
		line.SetGlobalOptions(global...)
		line.SetXAxis(cfg.Labels)
		for _, ds := range cfg.Datasets {
			series := make([]opts.LineData, 0, len(ds.Data))
			for _, v := range ds.Data {
				series = append(series, opts.LineData{Value: v})
			}
			seriesOpts := []echarts.SeriesOpts{
				echarts.WithLineChartOpts(opts.LineChart{Smooth: ds.Tension > 0}),
				echarts.WithLineStyleOpts(opts.LineStyle{Color: ds.BorderColor, Width: float32(ds.BorderWidth)}),
				echarts.WithItemStyleOpts(opts.ItemStyle{Color: ds.BackgroundColor, BorderColor: ds.BorderColor}),
			}
			if ds.Fill {
				seriesOpts = append(seriesOpts, echarts.WithAreaStyleOpts(opts.AreaStyle{Color: ds.BackgroundColor, Opacity: 0.3}))
			}
			line.AddSeries(ds.Label, series, seriesOpts...)
		}
		if err := line.Render(&buf); err != nil {
			return Artifact{}, fmt.Errorf("echarts line: %w", err)
		}

	case TypeBar:
		bar := echarts.NewBar()
		bar.SetGlobalOptions(global...)
		bar.SetXAxis(cfg.Labels)
		for _, ds := range cfg.Datasets {
			series := make([]opts.BarData, 0, len(ds.Data))
			for _, v := range ds.Data {
				series = append(series, opts.BarData{Value: v})
			}
			bar.AddSeries(ds.Label, series,
				echarts.WithItemStyleOpts(opts.ItemStyle{Color: ds.BackgroundColor, BorderColor: ds.BorderColor}),
			)
		}
		if err := bar.Render(&buf); err != nil {
			return Artifact{}, fmt.Errorf("echarts bar: %w", err)
		}

	default:
		return Artifact{}, fmt.Errorf("unsupported chart type %q", cfg.Type)
	}

	return Artifact{
		ContentType: "text/html; charset=utf-8",
		Extension:   "html",
		Data:        buf.Bytes(),
	}, nil
}

func (r *EChartsRenderer) globalOptions(surface *Surface, o options.ChartOptions) []echarts.GlobalOpts {
	p := r.theme.Palette()
	o = withThemeDefaults(r.theme, o)
	title := o.Plugins.Title
	legend := o.Plugins.Legend.Labels

	pageTitle := surface.ID
	titleText := ""
	if title.Display {
		titleText = title.Text
		pageTitle = title.Text
	}

	return []echarts.GlobalOpts{
		echarts.WithInitializationOpts(opts.Initialization{
			PageTitle:       pageTitle,
			ChartID:         surface.ID,
			Width:           fmt.Sprintf("%dpx", surface.Width),
			Height:          fmt.Sprintf("%dpx", surface.Height),
			BackgroundColor: p.Background,
		}),
		echarts.WithTitleOpts(opts.Title{
			Title: titleText,
			TitleStyle: &opts.TextStyle{
				Color:    title.Color,
				FontSize: title.Font.Size,
			},
		}),
		echarts.WithLegendOpts(opts.Legend{
			Show: true,
			Top:  "bottom",
			TextStyle: &opts.TextStyle{
				Color:    legend.Color,
				FontSize: legend.Font.Size,
			},
		}),
		echarts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
		echarts.WithXAxisOpts(axisX(o.Scales.X)),
		echarts.WithYAxisOpts(axisY(o.Scales.Y)),
	}
}

func axisX(a options.Axis) opts.XAxis {
	return opts.XAxis{
		SplitLine: &opts.SplitLine{Show: true, LineStyle: &opts.LineStyle{Color: a.Grid.Color}},
		AxisLabel: &opts.AxisLabel{Show: true, Color: a.Ticks.Color},
	}
}

func axisY(a options.Axis) opts.YAxis {
	return opts.YAxis{
		SplitLine: &opts.SplitLine{Show: true, LineStyle: &opts.LineStyle{Color: a.Grid.Color}},
		AxisLabel: &opts.AxisLabel{Show: true, Color: a.Ticks.Color},
	}
}
