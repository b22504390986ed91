package server

import (
	"fmt"
	"html"
	"net/http"
	"strings"
	"unicode"

	"chartkit/internal/charts"
	"chartkit/internal/format"
	"chartkit/internal/theme"
)

// HandleDashboard serves a page embedding every chart bound to a surface
func (s *Server) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	page := BuildDashboardHTML(s.Helper.Theme(), s.Helper.Document().Charts())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// BuildDashboardHTML renders a dark page with one card per chart. HTML
// artifacts are embedded in an iframe, images in an img tag.
func BuildDashboardHTML(th theme.Theme, list []*charts.Chart) string {
	p := th.Palette()

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>Charts</title>\n<style>\n")
	fmt.Fprintf(&b, "body { background: %s; color: %s; font-family: %s; margin: 24px; }\n",
		p.Background, p.TextPrimary, th.FontFamily())
	fmt.Fprintf(&b, ".charts-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(480px, 1fr)); gap: 16px; }\n")
	fmt.Fprintf(&b, ".chart-container { background: %s; border: 1px solid %s; border-radius: 4px; padding: 12px; }\n",
		p.Surface, p.Border)
	fmt.Fprintf(&b, ".chart-container h3 { margin: 0 0 8px; font-size: 16px; }\n")
	fmt.Fprintf(&b, ".chart-meta { color: %s; font-size: 12px; margin-top: 6px; }\n", p.TextSecondary)
	b.WriteString(".chart-image, .chart-frame { width: 100%; border: 0; }\n")
	b.WriteString("</style>\n</head>\n<body>\n<h2>Charts</h2>\n")

	if len(list) == 0 {
		b.WriteString("<p>No charts available</p>\n</body>\n</html>\n")
		return b.String()
	}

	b.WriteString("<div class=\"charts-grid\">\n")
	for _, c := range list {
		writeChartCard(&b, c)
	}
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

func writeChartCard(b *strings.Builder, c *charts.Chart) {
	title := chartTitle(c)
	src := html.EscapeString("/charts/" + c.FileName())
	alt := html.EscapeString(title)

	b.WriteString("<div class=\"chart-container\">\n")
	fmt.Fprintf(b, "<h3>%s</h3>\n", alt)
	if strings.HasPrefix(c.Artifact.ContentType, "text/html") {
		fmt.Fprintf(b, "<iframe class=\"chart-frame\" src=\"%s\" title=\"%s\" height=\"%d\"></iframe>\n",
			src, alt, c.Height+20)
	} else {
		fmt.Fprintf(b, "<img class=\"chart-image\" src=\"%s\" alt=\"%s\">\n", src, alt)
	}

	var points []float64
	if len(c.Config.Datasets) > 0 {
		points = c.Config.Datasets[0].Data
	}
	fmt.Fprintf(b, "<div class=\"chart-meta\">%s &middot; %d points &middot; avg %s &middot; %s</div>\n",
		html.EscapeString(string(c.Config.Type)),
		len(points),
		html.EscapeString(format.LargeNumber(format.Average(points))),
		html.EscapeString(c.CreatedAt.Format("2006/01/02 15:04:05")),
	)
	b.WriteString("</div>\n")
}

// chartTitle prefers the displayed chart title and falls back to the
// surface id in title case.
func chartTitle(c *charts.Chart) string {
	if t := c.Config.Options.Plugins.Title; t.Display && t.Text != "" {
		return t.Text
	}
	return toTitleCase(strings.NewReplacer("-", " ", "_", " ").Replace(c.SurfaceID))
}

// toTitleCase capitalizes the first letter of each word
func toTitleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
