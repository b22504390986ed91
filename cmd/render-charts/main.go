// Command render-charts renders a batch of line and bar charts described in a
// JSON file and prints a short summary of each series.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"chartkit/internal/charts"
	"chartkit/internal/config"
	"chartkit/internal/format"
	"chartkit/internal/logger"
	"chartkit/internal/options"
	"chartkit/internal/storage"
	"chartkit/internal/theme"
)

// ChartSpec is one chart of the input file.
type ChartSpec struct {
	Kind   string    `json:"kind"`
	ID     string    `json:"id"`
	Title  string    `json:"title,omitempty"`
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
	Label  string    `json:"label,omitempty"`
	Color  string    `json:"color,omitempty"`
}

// Input is the top-level document read from --input.
type Input struct {
	Charts []ChartSpec `json:"charts"`
}

type cliOptions struct {
	input    string
	renderer string
	out      string
	width    int
	height   int
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		logger.Error("render-charts failed", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	opts, err := parseFlags(args, cfg)
	if err != nil {
		return err
	}

	in, err := readInput(opts.input)
	if err != nil {
		return err
	}

	th := theme.Dark()
	renderer, err := charts.NewRenderer(opts.renderer, th)
	if err != nil {
		return err
	}
	store, err := openStore(ctx, cfg, opts.out)
	if err != nil {
		return err
	}
	defer store.Close()

	doc := charts.NewDocument(opts.width, opts.height)
	helper := charts.NewHelper(th, renderer, doc)

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tPOINTS\tAVERAGE\tLAST\tFROM\tTO\tFILE")

	for i, spec := range in.Charts {
		c, err := renderOne(ctx, helper, spec)
		if err != nil {
			return fmt.Errorf("chart %d (%s): %w", i, spec.ID, err)
		}
		path := storage.ChartPath(c.FileName())
		if err := store.StoreFile(ctx, path, c.Artifact.Data); err != nil {
			return fmt.Errorf("chart %d (%s): %w", i, spec.ID, err)
		}
		fmt.Fprintln(tw, summaryRow(spec, path))
	}
	return tw.Flush()
}

func parseFlags(args []string, cfg *config.Config) (cliOptions, error) {
	fs := pflag.NewFlagSet("render-charts", pflag.ContinueOnError)

	var opts cliOptions
	fs.StringVarP(&opts.input, "input", "i", "", "JSON file with the charts to render (- for stdin)")
	fs.StringVarP(&opts.renderer, "renderer", "r", cfg.Renderer, "renderer: echarts or png (env: RENDERER)")
	fs.StringVarP(&opts.out, "out", "o", "", "write to this local directory instead of the configured storage")
	fs.IntVar(&opts.width, "width", cfg.ChartWidth, "surface width in pixels (env: CHART_WIDTH)")
	fs.IntVar(&opts.height, "height", cfg.ChartHeight, "surface height in pixels (env: CHART_HEIGHT)")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}
	if opts.input == "" {
		return cliOptions{}, fmt.Errorf("--input is required")
	}
	if opts.width <= 0 || opts.height <= 0 {
		return cliOptions{}, fmt.Errorf("surface size must be positive, got %dx%d", opts.width, opts.height)
	}
	return opts, nil
}

// openStore writes into out when it is set and into the configured storage
// (STORAGE_MODE, LOCAL_CHARTS_DIR, GCS_BUCKET) otherwise.
func openStore(ctx context.Context, cfg *config.Config, out string) (storage.StorageClient, error) {
	if out != "" {
		return storage.NewLocalStorageClient(out)
	}
	return storage.NewStorageClient(ctx, cfg)
}

func readInput(path string) (*Input, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var in Input
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	return &in, nil
}

func renderOne(ctx context.Context, h *charts.Helper, spec ChartSpec) (*charts.Chart, error) {
	if _, err := h.Document().AddSurface(spec.ID); err != nil {
		return nil, err
	}

	var o options.Overrides
	if spec.Title != "" {
		plugins := h.DefaultOptions(spec.Title).Plugins
		o.Plugins = &plugins
	}

	switch spec.Kind {
	case "line", "price":
		return h.CreatePriceChangeChart(ctx, spec.ID, spec.Labels, spec.Data, o)
	case "bar":
		return h.CreateBarChart(ctx, spec.ID, spec.Labels, spec.Data,
			charts.BarOptions{Label: spec.Label, Color: spec.Color}, o)
	default:
		return nil, fmt.Errorf("unknown chart kind %q (want line or bar)", spec.Kind)
	}
}

// summaryRow formats one tab-separated summary line.
func summaryRow(spec ChartSpec, path string) string {
	last := format.NaN
	if n := len(spec.Data); n > 0 {
		last = format.LargeNumber(spec.Data[n-1])
		if spec.Kind != "bar" {
			last = format.Price(spec.Data[n-1])
		}
	}

	from, to := "-", "-"
	if n := len(spec.Labels); n > 0 {
		from, to = format.Date(spec.Labels[0]), format.Date(spec.Labels[n-1])
	}

	return fmt.Sprintf("%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s",
		spec.ID, spec.Kind, len(spec.Data),
		format.LargeNumber(format.Average(spec.Data)), last, from, to, path)
}
