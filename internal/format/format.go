// Package format turns prices, dates and counts into display strings.
// Nothing here returns an error: input that cannot be read degrades to a
// sentinel display value (InvalidDate, "$NaN").
package format

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

const (
	// InvalidDate is shown for dates that cannot be parsed.
	InvalidDate = "Invalid Date"
	// NaN is shown for values that are not numbers.
	NaN = "NaN"

	// DisplayDateLayout is the fixed numeric year/month/day display form.
	DisplayDateLayout = "2006/01/02"
)

// dateLayouts are tried in order by Date.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"2006-01",
	time.RFC1123Z,
	time.RFC1123,
	"Jan 2, 2006",
	"January 2, 2006",
}

var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// Date formats a date string as YYYY/MM/DD. The date is shown in the zone it
// was written in.
func Date(input string) string {
	s := strings.TrimSpace(input)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DisplayDateLayout)
		}
	}
	return InvalidDate
}

// Price formats v as a dollar amount with two decimals. v may be any numeric
// type or a string; strings are read up to the end of their leading number,
// so "3.5kg" is $3.50.
func Price(v any) string {
	f, ok := toNumber(v)
	if !ok {
		return "$" + NaN
	}
	return "$" + fixed(f, 2)
}

// Average returns the arithmetic mean of values, or 0 when there are none.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// LargeNumber abbreviates v with a K or M suffix and one decimal. Values
// below 1000 are returned as they are.
func LargeNumber(v float64) string {
	switch {
	case v >= 1_000_000:
		return fixed(v/1_000_000, 1) + "M"
	case v >= 1_000:
		return fixed(v/1_000, 1) + "K"
	}
	return plain(v)
}

func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		return parseLeading(x)
	case []byte:
		return parseLeading(string(x))
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func parseLeading(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "Infinity"), strings.HasPrefix(s, "+Infinity"):
		return math.Inf(1), true
	case strings.HasPrefix(s, "-Infinity"):
		return math.Inf(-1), true
	}
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// out-of-range exponents still parse to ±Inf
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// exactDigits is enough fraction digits to print any float64 exactly.
const exactDigits = 1074

// fixed formats f with prec decimals, rounding half away from zero on the
// exact binary value. A negative prec prints the shortest exact form.
func fixed(f float64, prec int) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return NaN
	case prec < 0:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	sign := ""
	if f < 0 {
		sign = "-"
	}
	return sign + roundHalfUp(strconv.FormatFloat(math.Abs(f), 'f', exactDigits, 64), prec)
}

// roundHalfUp cuts the non-negative decimal string s to prec fraction digits,
// rounding up when the first dropped digit is 5 or more.
func roundHalfUp(s string, prec int) string {
	dot := strings.IndexByte(s, '.')
	digits := []byte(s[:dot] + s[dot+1:dot+1+prec])

	if s[dot+1+prec] >= '5' {
		i := len(digits) - 1
		for ; i >= 0 && digits[i] == '9'; i-- {
			digits[i] = '0'
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		} else {
			digits[i]++
		}
	}

	if prec == 0 {
		return string(digits)
	}
	cut := len(digits) - prec
	return string(digits[:cut]) + "." + string(digits[cut:])
}

func plain(f float64) string {
	return fixed(f, -1)
}
