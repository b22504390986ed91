package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Renderer backends.
const (
	RendererECharts = "echarts"
	RendererPNG     = "png"
)

// Storage modes.
const (
	StorageLocal = "local"
	StorageGCS   = "gcs"
)

// Config holds all configuration for the chart service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8981"`

	// Rendering
	Renderer    string `env:"RENDERER,default=echarts"`
	ChartWidth  int    `env:"CHART_WIDTH,default=800"`
	ChartHeight int    `env:"CHART_HEIGHT,default=400"`

	// Storage for rendered charts
	StorageMode    string `env:"STORAGE_MODE,default=local"`
	LocalChartsDir string `env:"LOCAL_CHARTS_DIR,default=./charts-out"`
	GCPProjectID   string `env:"GCP_PROJECT_ID"`
	GCSBucket      string `env:"GCS_BUCKET"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=json"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.Renderer {
	case RendererECharts, RendererPNG:
	default:
		return fmt.Errorf("unsupported renderer %q (want %s or %s)", c.Renderer, RendererECharts, RendererPNG)
	}

	switch c.StorageMode {
	case StorageLocal:
	case StorageGCS:
		if c.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required when STORAGE_MODE=%s", StorageGCS)
		}
	default:
		return fmt.Errorf("unsupported storage mode %q (want %s or %s)", c.StorageMode, StorageLocal, StorageGCS)
	}

	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", c.ChartWidth, c.ChartHeight)
	}
	return nil
}
