// Package options builds the chart options value handed to a renderer and
// merges caller overrides into it.
package options

import (
	"chartkit/internal/theme"
)

// Font describes the text font of a chart element.
type Font struct {
	Family string `json:"family,omitempty"`
	Size   int    `json:"size,omitempty"`
	Weight string `json:"weight,omitempty"`
}

// Legend configures the series legend.
type Legend struct {
	Labels LegendLabels `json:"labels"`
}

// LegendLabels styles legend entries.
type LegendLabels struct {
	Color string `json:"color,omitempty"`
	Font  Font   `json:"font"`
}

// Title configures the chart title.
type Title struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
	Color   string `json:"color,omitempty"`
	Font    Font   `json:"font"`
}

// Tooltip configures the hover tooltip.
type Tooltip struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TitleColor      string `json:"titleColor,omitempty"`
	BodyColor       string `json:"bodyColor,omitempty"`
	BorderColor     string `json:"borderColor,omitempty"`
	BorderWidth     int    `json:"borderWidth"`
	CornerRadius    int    `json:"cornerRadius"`
	DisplayColors   bool   `json:"displayColors"`
	Padding         int    `json:"padding"`
	TitleFont       Font   `json:"titleFont"`
	BodyFont        Font   `json:"bodyFont"`
}

// Plugins groups legend, title and tooltip.
type Plugins struct {
	Legend  Legend  `json:"legend"`
	Title   Title   `json:"title"`
	Tooltip Tooltip `json:"tooltip"`
}

// Grid styles the grid lines of an axis.
type Grid struct {
	Color string `json:"color,omitempty"`
}

// Ticks styles the tick labels of an axis.
type Ticks struct {
	Color string `json:"color,omitempty"`
}

// Axis styles one axis.
type Axis struct {
	Grid  Grid  `json:"grid"`
	Ticks Ticks `json:"ticks"`
}

// Scales holds the x and y axis styles.
type Scales struct {
	X Axis `json:"x"`
	Y Axis `json:"y"`
}

// Animation configures the draw-in animation.
type Animation struct {
	Duration int    `json:"duration"`
	Easing   string `json:"easing,omitempty"`
}

// ChartOptions is the composite configuration passed to a renderer.
type ChartOptions struct {
	Responsive          bool      `json:"responsive"`
	MaintainAspectRatio bool      `json:"maintainAspectRatio"`
	Plugins             Plugins   `json:"plugins"`
	Scales              Scales    `json:"scales"`
	Animation           Animation `json:"animation"`
}

// Default returns a fresh options value styled with th. A non-empty title
// turns title display on.
func Default(th theme.Theme, title string) ChartOptions {
	p := th.Palette()
	family := th.FontFamily()

	axis := Axis{
		Grid:  Grid{Color: th.GridColor()},
		Ticks: Ticks{Color: p.TextSecondary},
	}

	return ChartOptions{
		Responsive:          true,
		MaintainAspectRatio: false,
		Plugins: Plugins{
			Legend: Legend{
				Labels: LegendLabels{
					Color: p.TextPrimary,
					Font:  Font{Family: family, Size: 12},
				},
			},
			Title: Title{
				Display: title != "",
				Text:    title,
				Color:   p.TextPrimary,
				Font:    Font{Family: family, Size: 16, Weight: "bold"},
			},
			Tooltip: Tooltip{
				BackgroundColor: p.Surface2,
				TitleColor:      p.TextPrimary,
				BodyColor:       p.TextSecondary,
				BorderColor:     p.Border,
				BorderWidth:     1,
				CornerRadius:    4,
				DisplayColors:   true,
				Padding:         10,
				TitleFont:       Font{Family: family, Size: 14, Weight: "bold"},
				BodyFont:        Font{Family: family, Size: 13},
			},
		},
		Scales: Scales{X: axis, Y: axis},
		Animation: Animation{
			Duration: 1000,
			Easing:   "easeOutQuart",
		},
	}
}
