package storage

import (
	"errors"
	"testing"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"prices.html", "text/html; charset=utf-8"},
		{"PRICES.HTML", "text/html; charset=utf-8"},
		{"volume.png", "image/png"},
		{"data.json", "application/json"},
		{"notes.txt", "text/plain; charset=utf-8"},
		{"style.css", "text/css"},
		{"photo.jpeg", "image/jpeg"},
		{"photo.jpg", "image/jpeg"},
		{"anim.gif", "image/gif"},
		{"unknown.bin", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := GetContentType(tt.filename); got != tt.expected {
				t.Errorf("GetContentType(%q) = %q, want %q", tt.filename, got, tt.expected)
			}
		})
	}
}

func TestChartPath(t *testing.T) {
	if got := ChartPath("prices.png"); got != "charts/prices.png" {
		t.Errorf("ChartPath() = %q", got)
	}
}

func TestCleanPath(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"charts/a.png", "charts/a.png", false},
		{"charts//a.png", "charts/a.png", false},
		{"charts/x/../a.png", "charts/a.png", false},
		{`charts\a.png`, "charts/a.png", false},
		{".", "", false},
		{"", "", true},
		{"..", "", true},
		{"../a", "", true},
		{"charts/../../a", "", true},
		{"/abs", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CleanPath(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPath) {
					t.Errorf("CleanPath(%q) error = %v, want ErrInvalidPath", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CleanPath(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("CleanPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
