package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Opaque returns css with its alpha channel forced to 1. Hex colors are
// already opaque and come back unchanged.
func Opaque(css string) string {
	s := strings.TrimSpace(css)
	args, fn, ok := splitFunc(s)
	if !ok || fn != "rgba" || len(args) != 4 {
		return css
	}
	return fmt.Sprintf("rgba(%s, %s, %s, 1)", args[0], args[1], args[2])
}

// ParseColor converts a CSS color (#RGB, #RRGGBB, rgb() or rgba()) into a
// go-chart drawing color.
func ParseColor(css string) (drawing.Color, error) {
	s := strings.TrimSpace(css)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if (len(hex) != 3 && len(hex) != 6) || !isHex(hex) {
			return drawing.Color{}, fmt.Errorf("invalid hex color %q", css)
		}
		return drawing.ColorFromHex(hex), nil
	}

	args, fn, ok := splitFunc(s)
	if !ok {
		return drawing.Color{}, fmt.Errorf("unsupported color %q", css)
	}
	switch {
	case fn == "rgb" && len(args) == 3:
	case fn == "rgba" && len(args) == 4:
	default:
		return drawing.Color{}, fmt.Errorf("unsupported color %q", css)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(args[i])
		if err != nil || v < 0 || v > 255 {
			return drawing.Color{}, fmt.Errorf("invalid channel %q in %q", args[i], css)
		}
		channels[i] = uint8(v)
	}

	alpha := uint8(255)
	if len(args) == 4 {
		a, err := strconv.ParseFloat(args[3], 64)
		if err != nil || a < 0 || a > 1 {
			return drawing.Color{}, fmt.Errorf("invalid alpha %q in %q", args[3], css)
		}
		alpha = uint8(math.Round(a * 255))
	}

	return drawing.Color{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

// splitFunc splits "name(a, b, c)" into its trimmed arguments.
func splitFunc(s string) ([]string, string, bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return nil, "", false
	}
	fn := strings.ToLower(strings.TrimSpace(s[:open]))
	parts := strings.Split(s[open+1:len(s)-1], ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, fn, true
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
