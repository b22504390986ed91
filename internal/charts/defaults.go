package charts

import (
	"chartkit/internal/options"
	"chartkit/internal/theme"
)

// withThemeDefaults fills the colors a partial override left empty with the
// theme's default text and border colors.
func withThemeDefaults(th theme.Theme, o options.ChartOptions) options.ChartOptions {
	text, border := th.DefaultTextColor(), th.DefaultBorderColor()

	fill(&o.Plugins.Title.Color, text)
	fill(&o.Plugins.Legend.Labels.Color, text)
	fill(&o.Plugins.Tooltip.TitleColor, text)
	fill(&o.Plugins.Tooltip.BodyColor, text)
	fill(&o.Plugins.Tooltip.BorderColor, border)

	for _, axis := range []*options.Axis{&o.Scales.X, &o.Scales.Y} {
		fill(&axis.Ticks.Color, text)
		fill(&axis.Grid.Color, border)
	}
	return o
}

func fill(dst *string, fallback string) {
	if *dst == "" {
		*dst = fallback
	}
}
