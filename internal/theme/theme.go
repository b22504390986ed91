// Package theme holds the dark visual theme shared by every chart.
package theme

import (
	"sort"
)

// Palette is the named set of theme colors used across chart elements.
type Palette struct {
	Primary       string
	PrimaryLight  string
	Accent        string
	Success       string
	Warning       string
	Danger        string
	Info          string
	Background    string
	Surface       string
	Surface2      string
	TextPrimary   string
	TextSecondary string
	Border        string
}

// Series color keys accepted by bar charts.
const (
	SeriesPrimary   = "primary"
	SeriesSecondary = "secondary"
	SeriesSuccess   = "success"
	SeriesDanger    = "danger"
	SeriesWarning   = "warning"
	SeriesInfo      = "info"
)

// Theme is an immutable set of colors and fonts. Build it once with Dark and
// pass it by value; accessors never hand out the internal maps.
type Theme struct {
	palette Palette
	series  map[string]string

	fontFamily   string
	defaultText  string
	defaultLines string
	gridColor    string
}

// Dark returns the dark theme used by the dashboard.
func Dark() Theme {
	return Theme{
		palette: Palette{
			Primary:       "#3F51B5",
			PrimaryLight:  "#7986CB",
			Accent:        "#FF4081",
			Success:       "#4CAF50",
			Warning:       "#FFC107",
			Danger:        "#F44336",
			Info:          "#2196F3",
			Background:    "#121212",
			Surface:       "#1E1E1E",
			Surface2:      "#2D2D2D",
			TextPrimary:   "#FFFFFF",
			TextSecondary: "#B0B0B0",
			Border:        "#333333",
		},
		series: map[string]string{
			SeriesPrimary:   "rgba(54, 162, 235, 0.7)",
			SeriesSecondary: "rgba(153, 102, 255, 0.7)",
			SeriesSuccess:   "rgba(75, 192, 192, 0.7)",
			SeriesDanger:    "rgba(255, 99, 132, 0.7)",
			SeriesWarning:   "rgba(255, 159, 64, 0.7)",
			SeriesInfo:      "rgba(201, 203, 207, 0.7)",
		},
		fontFamily:   "'Roboto', sans-serif",
		defaultText:  "#B0B0B0",
		defaultLines: "#333333",
		gridColor:    "rgba(255, 255, 255, 0.1)",
	}
}

// Palette returns a copy of the theme palette.
func (t Theme) Palette() Palette {
	return t.palette
}

// Color returns the palette color with the given name, e.g. "textPrimary".
func (t Theme) Color(name string) (string, bool) {
	p := t.palette
	switch name {
	case "primary":
		return p.Primary, true
	case "primaryLight":
		return p.PrimaryLight, true
	case "accent":
		return p.Accent, true
	case "success":
		return p.Success, true
	case "warning":
		return p.Warning, true
	case "danger":
		return p.Danger, true
	case "info":
		return p.Info, true
	case "background":
		return p.Background, true
	case "surface":
		return p.Surface, true
	case "surface2":
		return p.Surface2, true
	case "textPrimary":
		return p.TextPrimary, true
	case "textSecondary":
		return p.TextSecondary, true
	case "border":
		return p.Border, true
	}
	return "", false
}

// SeriesColor returns the translucent dataset color for key.
func (t Theme) SeriesColor(key string) (string, bool) {
	c, ok := t.series[key]
	return c, ok
}

// SeriesKeys lists the accepted series color keys in sorted order.
func (t Theme) SeriesKeys() []string {
	keys := make([]string, 0, len(t.series))
	for k := range t.series {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FontFamily is the font stack used for legend, title and tooltip text.
func (t Theme) FontFamily() string { return t.fontFamily }

// DefaultTextColor is the fallback color for text the options do not style.
func (t Theme) DefaultTextColor() string { return t.defaultText }

// DefaultBorderColor is the fallback color for chart lines and borders.
func (t Theme) DefaultBorderColor() string { return t.defaultLines }

// GridColor is the color of the axis grid lines.
func (t Theme) GridColor() string { return t.gridColor }
