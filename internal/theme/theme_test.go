package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func TestDarkPalette(t *testing.T) {
	th := Dark()

	p := th.Palette()
	assert.Equal(t, "#3F51B5", p.Primary)
	assert.Equal(t, "#121212", p.Background)
	assert.Equal(t, "#FFFFFF", p.TextPrimary)

	c, ok := th.Color("surface2")
	require.True(t, ok)
	assert.Equal(t, "#2D2D2D", c)

	_, ok = th.Color("nope")
	assert.False(t, ok)
}

func TestPaletteCopyDoesNotLeak(t *testing.T) {
	th := Dark()
	p := th.Palette()
	p.Primary = "#000000"

	assert.Equal(t, "#3F51B5", th.Palette().Primary)
}

func TestSeriesColors(t *testing.T) {
	th := Dark()

	c, ok := th.SeriesColor(SeriesDanger)
	require.True(t, ok)
	assert.Equal(t, "rgba(255, 99, 132, 0.7)", c)

	_, ok = th.SeriesColor("magenta")
	assert.False(t, ok)

	assert.Equal(t, []string{"danger", "info", "primary", "secondary", "success", "warning"}, th.SeriesKeys())
}

func TestOpaque(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"rgba(54, 162, 235, 0.7)", "rgba(54, 162, 235, 1)"},
		{"rgba(1,2,3,0.25)", "rgba(1, 2, 3, 1)"},
		{"#3F51B5", "#3F51B5"},
		{"rgb(1, 2, 3)", "rgb(1, 2, 3)"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Opaque(tt.in))
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    drawing.Color
		wantErr bool
	}{
		{"hex6", "#3F51B5", drawing.Color{R: 0x3F, G: 0x51, B: 0xB5, A: 255}, false},
		{"hex3", "#fff", drawing.Color{R: 255, G: 255, B: 255, A: 255}, false},
		{"rgb", "rgb(10, 20, 30)", drawing.Color{R: 10, G: 20, B: 30, A: 255}, false},
		{"rgba", "rgba(255, 255, 255, 0.1)", drawing.Color{R: 255, G: 255, B: 255, A: 26}, false},
		{"rgba opaque", "rgba(54, 162, 235, 1)", drawing.Color{R: 54, G: 162, B: 235, A: 255}, false},
		{"bad hex", "#12345", drawing.Color{}, true},
		{"bad hex digits", "#zzzzzz", drawing.Color{}, true},
		{"channel out of range", "rgb(300, 0, 0)", drawing.Color{}, true},
		{"alpha out of range", "rgba(0, 0, 0, 2)", drawing.Color{}, true},
		{"wrong arity", "rgba(0, 0, 0)", drawing.Color{}, true},
		{"named", "red", drawing.Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
