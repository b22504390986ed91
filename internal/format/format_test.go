package format

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"nil", nil, 0},
		{"empty", []float64{}, 0},
		{"single", []float64{7}, 7},
		{"even spread", []float64{2, 4, 6}, 4},
		{"fractional", []float64{1, 2}, 1.5},
		{"negative", []float64{-3, 3, -6}, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Average(tt.values))
		})
	}
}

func TestLargeNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{999, "999"},
		{999.5, "999.5"},
		{12.25, "12.25"},
		{0, "0"},
		{-5000, "-5000"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{999_999, "1000.0K"},
		{1_000_000, "1.0M"},
		{2_500_000, "2.5M"},
		{123_456_789, "123.5M"},
		{1250, "1.3K"},
		{1050, "1.1K"},
		{3_250_000, "3.3M"},
		{9_950, "9.9K"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, LargeNumber(tt.in))
		})
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"rounds up", 9.999, "$10.00"},
		{"exact half rounds up", 0.125, "$0.13"},
		{"exact half negative", -0.125, "$-0.13"},
		{"half string", "2.5", "$2.50"},
		{"just below half", 1.005, "$1.00"},
		{"carry into integer", 99.995, "$100.00"},
		{"small negative", -0.001, "$-0.00"},
		{"zero", 0, "$0.00"},
		{"numeric string", "3", "$3.00"},
		{"int", 5, "$5.00"},
		{"uint8", uint8(7), "$7.00"},
		{"float32", float32(1.5), "$1.50"},
		{"json number", json.Number("2.5"), "$2.50"},
		{"negative", -1.234, "$-1.23"},
		{"leading number", " 3.5kg", "$3.50"},
		{"bare fraction", ".5", "$0.50"},
		{"exponent", "1e3", "$1000.00"},
		{"bytes", []byte("42"), "$42.00"},
		{"infinity", math.Inf(1), "$Infinity"},
		{"infinity string", "-Infinity", "$-Infinity"},
		{"not a number", "abc", "$NaN"},
		{"empty", "", "$NaN"},
		{"nil", nil, "$NaN"},
		{"bool", true, "$NaN"},
		{"nan", math.NaN(), "$NaN"},
		{"struct", struct{}{}, "$NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Price(tt.in))
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-05", "2024/01/05"},
		{"2024-01-05T10:20:30Z", "2024/01/05"},
		{"2024-01-05T23:59:59+08:00", "2024/01/05"},
		{"2024-03-09 08:00:00", "2024/03/09"},
		{"2024-03-09T08:00:00", "2024/03/09"},
		{"2024/12/31", "2024/12/31"},
		{"  2024-07-04  ", "2024/07/04"},
		{"Jul 4, 2024", "2024/07/04"},
		{"Mon, 02 Jan 2006 15:04:05 MST", "2006/01/02"},
		{"2024-02-30", InvalidDate},
		{"garbage", InvalidDate},
		{"", InvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.in))
		})
	}
}

func TestFixedRoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		prec int
		want string
	}{
		{0.5, 0, "1"},
		{1.5, 0, "2"},
		{2.5, 0, "3"},
		{-2.5, 0, "-3"},
		{0.25, 1, "0.3"},
		{0.35, 1, "0.3"},
		{999.95, 1, "1000.0"},
		{1e21, 2, "1000000000000000000000.00"},
		{12.5, -1, "12.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fixed(tt.in, tt.prec), "fixed(%v, %d)", tt.in, tt.prec)
	}
}
