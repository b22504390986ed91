package charts

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartkit/internal/options"
	"chartkit/internal/theme"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func renderers() []Renderer {
	th := theme.Dark()
	return []Renderer{NewEChartsRenderer(th), NewPNGRenderer(th)}
}

func TestRenderersDrawBothChartTypes(t *testing.T) {
	labels := []string{"2024/01/01", "2024/01/02", "2024/01/03", "2024/01/04"}
	data := []float64{101.5, 99.25, 104, 103.75}

	for _, r := range renderers() {
		t.Run(r.Name(), func(t *testing.T) {
			doc := NewDocument(800, 400)
			_, err := doc.AddSurface("prices")
			require.NoError(t, err)
			_, err = doc.AddSurface("volume")
			require.NoError(t, err)
			h := NewHelper(theme.Dark(), r, doc)

			line, err := h.CreatePriceChangeChart(context.Background(), "prices", labels, data, options.Overrides{})
			require.NoError(t, err)
			assertArtifact(t, r.Name(), "prices", line.Artifact)

			bar, err := h.CreateBarChart(context.Background(), "volume", labels, []float64{3, 0, 7, 1}, BarOptions{Color: theme.SeriesWarning}, options.Overrides{})
			require.NoError(t, err)
			assertArtifact(t, r.Name(), "volume", bar.Artifact)
		})
	}
}

func assertArtifact(t *testing.T, renderer, surfaceID string, a Artifact) {
	t.Helper()
	require.NotEmpty(t, a.Data)
	switch renderer {
	case "png":
		assert.Equal(t, "image/png", a.ContentType)
		assert.Equal(t, "png", a.Extension)
		assert.True(t, bytes.HasPrefix(a.Data, pngSignature))
	case "echarts":
		assert.Equal(t, "text/html; charset=utf-8", a.ContentType)
		assert.Equal(t, "html", a.Extension)
		assert.Contains(t, string(a.Data), surfaceID)
	}
}

func TestEChartsTitleOnlyWhenDisplayed(t *testing.T) {
	r := NewEChartsRenderer(theme.Dark())
	s := &Surface{ID: "prices", Width: 800, Height: 400}

	titled := Config{
		Type:     TypeLine,
		Labels:   []string{"a", "b"},
		Datasets: []Dataset{{Label: "Price", Data: []float64{1, 2}}},
		Options:  options.Default(theme.Dark(), "Weekly Summary"),
	}
	a, err := r.Render(context.Background(), s, titled)
	require.NoError(t, err)
	assert.Contains(t, string(a.Data), "Weekly Summary")

	hidden := titled
	hidden.Options.Plugins.Title.Display = false
	a, err = r.Render(context.Background(), s, hidden)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(a.Data), "Weekly Summary"))
}

func TestPNGSinglePointAndFlatSeries(t *testing.T) {
	r := NewPNGRenderer(theme.Dark())
	s := &Surface{ID: "flat", Width: 400, Height: 200}

	for _, data := range [][]float64{{5}, {0, 0, 0}, {-3, -3}} {
		for _, typ := range []ChartType{TypeLine, TypeBar} {
			cfg := Config{
				Type:     typ,
				Labels:   make([]string, len(data)),
				Datasets: []Dataset{{Label: "x", Data: data, BackgroundColor: "#3F51B5", BorderColor: "#3F51B5", BorderWidth: 1}},
				Options:  options.Default(theme.Dark(), ""),
			}
			a, err := r.Render(context.Background(), s, cfg)
			require.NoError(t, err, "%s %v", typ, data)
			assert.True(t, bytes.HasPrefix(a.Data, pngSignature))
		}
	}
}

func TestPNGManyLabels(t *testing.T) {
	r := NewPNGRenderer(theme.Dark())
	s := &Surface{ID: "long", Width: 800, Height: 400}

	n := 60
	labels := make([]string, n)
	data := make([]float64, n)
	for i := range labels {
		labels[i] = "d"
		data[i] = float64(i % 7)
	}
	cfg := Config{
		Type:     TypeLine,
		Labels:   labels,
		Datasets: []Dataset{{Label: "Price", Data: data, BackgroundColor: "rgba(54, 162, 235, 0.7)", BorderColor: "rgba(54, 162, 235, 1)", BorderWidth: 2}},
		Options:  options.Default(theme.Dark(), "Long"),
	}
	a, err := r.Render(context.Background(), s, cfg)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(a.Data, pngSignature))
}

func TestPNGEmptySeries(t *testing.T) {
	r := NewPNGRenderer(theme.Dark())
	s := &Surface{ID: "empty", Width: 400, Height: 200}

	_, err := r.Render(context.Background(), s, Config{Type: TypeBar, Datasets: []Dataset{{Label: "x"}}})
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestRenderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &Surface{ID: "c", Width: 400, Height: 200}
	cfg := Config{Type: TypeLine, Datasets: []Dataset{{Data: []float64{1}}}}
	for _, r := range renderers() {
		_, err := r.Render(ctx, s, cfg)
		assert.ErrorIs(t, err, context.Canceled, r.Name())
	}
}

func TestCategoryTicks(t *testing.T) {
	assert.Nil(t, categoryTicks(nil, 0))

	short := categoryTicks([]string{"a", "b", "c"}, 3)
	require.Len(t, short, 3)
	assert.Equal(t, "c", short[2].Label)
	assert.Equal(t, 2.0, short[2].Value)

	long := categoryTicks(make([]string, 30), 30)
	assert.LessOrEqual(t, len(long), maxXTicks)
}

func TestValueRange(t *testing.T) {
	ds := []Dataset{{Data: []float64{10, 20}}}

	lo, hi := valueRange(ds, false)
	assert.InDelta(t, 9, lo, 1e-9)
	assert.InDelta(t, 21, hi, 1e-9)

	lo, hi = valueRange(ds, true)
	assert.Equal(t, 0.0, lo)
	assert.InDelta(t, 22, hi, 1e-9)

	lo, hi = valueRange([]Dataset{{Data: []float64{0}}}, true)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}

func TestNewRenderer(t *testing.T) {
	for _, name := range []string{"echarts", "png"} {
		r, err := NewRenderer(name, theme.Dark())
		require.NoError(t, err)
		assert.Equal(t, name, r.Name())
	}

	_, err := NewRenderer("svg", theme.Dark())
	assert.Error(t, err)
}

func TestRenderersHonourPartialOverrides(t *testing.T) {
	overrides := []struct {
		name string
		o    options.Overrides
	}{
		{"title only plugins", options.Overrides{Plugins: &options.Plugins{Title: options.Title{Display: true, Text: "X"}}}},
		{"empty plugins", options.Overrides{Plugins: &options.Plugins{}}},
		{"empty scales", options.Overrides{Scales: &options.Scales{}}},
		{"grid color only", options.Overrides{Scales: &options.Scales{X: options.Axis{Grid: options.Grid{Color: "#000"}}}}},
	}

	for _, r := range renderers() {
		for _, tt := range overrides {
			t.Run(r.Name()+"/"+tt.name, func(t *testing.T) {
				doc := NewDocument(400, 200)
				_, err := doc.AddSurface("p")
				require.NoError(t, err)
				h := NewHelper(theme.Dark(), r, doc)

				line, err := h.CreatePriceChangeChart(context.Background(), "p", []string{"a", "b"}, []float64{1, 2}, tt.o)
				require.NoError(t, err)
				assertArtifact(t, r.Name(), "p", line.Artifact)

				bar, err := h.CreateBarChart(context.Background(), "p", []string{"a", "b"}, []float64{1, 2}, BarOptions{}, tt.o)
				require.NoError(t, err)
				assertArtifact(t, r.Name(), "p", bar.Artifact)

				// the override itself is kept as given
				if tt.o.Scales != nil {
					assert.Equal(t, *tt.o.Scales, bar.Config.Options.Scales)
				}
				if tt.o.Plugins != nil {
					assert.Equal(t, *tt.o.Plugins, bar.Config.Options.Plugins)
				}
			})
		}
	}
}

func TestWithThemeDefaults(t *testing.T) {
	th := theme.Dark()

	got := withThemeDefaults(th, options.ChartOptions{
		Scales: options.Scales{X: options.Axis{Grid: options.Grid{Color: "#000"}}},
	})
	assert.Equal(t, th.DefaultTextColor(), got.Plugins.Title.Color)
	assert.Equal(t, th.DefaultTextColor(), got.Plugins.Legend.Labels.Color)
	assert.Equal(t, th.DefaultTextColor(), got.Scales.Y.Ticks.Color)
	assert.Equal(t, th.DefaultBorderColor(), got.Scales.Y.Grid.Color)
	assert.Equal(t, th.DefaultBorderColor(), got.Plugins.Tooltip.BorderColor)
	assert.Equal(t, "#000", got.Scales.X.Grid.Color)

	full := options.Default(th, "T")
	assert.Equal(t, full, withThemeDefaults(th, full))
}
