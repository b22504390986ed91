package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cast"

	"chartkit/internal/charts"
	"chartkit/internal/config"
	"chartkit/internal/format"
	"chartkit/internal/options"
	"chartkit/internal/storage"
)

// ChartRequest is the body of the chart creation endpoints.
type ChartRequest struct {
	Labels  []string           `json:"labels"`
	Data    []float64          `json:"data"`
	Label   string             `json:"label,omitempty"`
	Color   string             `json:"color,omitempty"`
	Title   string             `json:"title,omitempty"`
	Options *options.Overrides `json:"options,omitempty"`
}

// ChartResponse describes a chart that was rendered and stored.
type ChartResponse struct {
	Surface     string    `json:"surface"`
	Type        string    `json:"type"`
	Renderer    string    `json:"renderer"`
	File        string    `json:"file"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	Bytes       int       `json:"bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChartFile is one entry of the stored chart listing.
type ChartFile struct {
	File        string `json:"file"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":    "healthy",
		"version":   config.GetVersion(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"renderer": s.Helper.Renderer().Name(),
			"storage":  s.Config.StorageMode,
		},
		"surfaces": len(s.Helper.Document().Surfaces()),
	}
	writeJSON(w, http.StatusOK, health)
}

// HandleLineChart renders a price change chart on the surface named in the path
func (s *Server) HandleLineChart(w http.ResponseWriter, r *http.Request) {
	s.handleCreate(w, r, charts.TypeLine)
}

// HandleBarChart renders a bar chart on the surface named in the path
func (s *Server) HandleBarChart(w http.ResponseWriter, r *http.Request) {
	s.handleCreate(w, r, charts.TypeBar)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request, typ charts.ChartType) {
	ctx := r.Context()
	id := r.PathValue("id")

	var req ChartRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	// the page owns its canvases, so a surface exists for every id it names
	if _, err := s.Helper.Document().AddSurface(id); err != nil {
		s.writeChartError(w, err)
		return
	}

	overrides := s.overrides(req)

	var (
		chart *charts.Chart
		err   error
	)
	switch typ {
	case charts.TypeLine:
		chart, err = s.Helper.CreatePriceChangeChart(ctx, id, req.Labels, req.Data, overrides)
	case charts.TypeBar:
		chart, err = s.Helper.CreateBarChart(ctx, id, req.Labels, req.Data,
			charts.BarOptions{Label: req.Label, Color: req.Color}, overrides)
	}
	if err != nil {
		s.writeChartError(w, err)
		return
	}

	file := chart.FileName()
	if err := s.Storage.StoreFile(ctx, storage.ChartPath(file), chart.Artifact.Data); err != nil {
		s.log.Error("Failed to store chart", err, map[string]interface{}{"file": file})
		writeError(w, http.StatusInternalServerError, "failed to store chart")
		return
	}

	writeJSON(w, http.StatusCreated, ChartResponse{
		Surface:     chart.SurfaceID,
		Type:        string(chart.Config.Type),
		Renderer:    s.Helper.Renderer().Name(),
		File:        file,
		URL:         "/charts/" + file,
		ContentType: chart.Artifact.ContentType,
		Bytes:       len(chart.Artifact.Data),
		CreatedAt:   chart.CreatedAt,
	})
}

// overrides folds a request title into its option overrides. Explicit
// plugins overrides win over the title.
func (s *Server) overrides(req ChartRequest) options.Overrides {
	var o options.Overrides
	if req.Options != nil {
		o = *req.Options
	}
	if req.Title != "" && o.Plugins == nil {
		plugins := s.Helper.DefaultOptions(req.Title).Plugins
		o.Plugins = &plugins
	}
	return o
}

func (s *Server) writeChartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, charts.ErrSurfaceNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, charts.ErrInvalidSurfaceID),
		errors.Is(err, charts.ErrUnknownColor),
		errors.Is(err, charts.ErrEmptySeries):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Error("Chart creation failed", err)
		writeError(w, http.StatusInternalServerError, "chart creation failed")
	}
}

// HandleListCharts lists stored chart artifacts
func (s *Server) HandleListCharts(w http.ResponseWriter, r *http.Request) {
	paths, err := s.Storage.ListDir(r.Context(), storage.ChartsDir, false)
	if err != nil {
		s.log.Error("Failed to list charts", err)
		writeError(w, http.StatusInternalServerError, "failed to list charts")
		return
	}

	files := make([]ChartFile, 0, len(paths))
	for _, p := range paths {
		name := strings.TrimPrefix(p, storage.ChartsDir+"/")
		files = append(files, ChartFile{
			File:        name,
			URL:         "/charts/" + name,
			ContentType: storage.GetContentType(name),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"charts":    files,
		"count":     len(files),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleChartFile serves a stored chart artifact
func (s *Server) HandleChartFile(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	if file == "" || strings.Contains(file, "..") {
		writeError(w, http.StatusBadRequest, "invalid file path")
		return
	}

	data, err := s.Storage.GetFile(r.Context(), storage.ChartPath(file))
	switch {
	case errors.Is(err, storage.ErrInvalidPath):
		writeError(w, http.StatusBadRequest, "invalid file path")
		return
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "file not found")
		return
	case err != nil:
		s.log.Error("Failed to get file from storage", err, map[string]interface{}{"file": file})
		writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(file))
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(data)
}

// HandleDeleteChart drops a surface together with its stored chart artifact
func (s *Server) HandleDeleteChart(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	surface, err := s.Helper.Document().Lookup(id)
	if err != nil {
		s.writeChartError(w, err)
		return
	}
	chart := surface.Chart()
	s.Helper.Document().Remove(id)

	if chart != nil {
		file := chart.FileName()
		err := s.Storage.DeleteFile(r.Context(), storage.ChartPath(file))
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			s.log.Error("Failed to delete chart file", err, map[string]interface{}{"file": file})
			writeError(w, http.StatusInternalServerError, "failed to delete chart")
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("deleted chart %s", id),
	})
}

// HandleFormat formats the price, date, number and values query parameters
// that are present.
func (s *Server) HandleFormat(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out := map[string]interface{}{}

	if q.Has("price") {
		out["price"] = format.Price(q.Get("price"))
	}
	if q.Has("date") {
		out["date"] = format.Date(q.Get("date"))
	}
	if q.Has("number") {
		n, err := cast.ToFloat64E(strings.TrimSpace(q.Get("number")))
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("number: %v", err))
			return
		}
		out["number"] = format.LargeNumber(n)
	}
	if q.Has("values") {
		values, err := parseValues(q.Get("values"))
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("values: %v", err))
			return
		}
		out["average"] = format.Average(values)
	}

	if len(out) == 0 {
		writeError(w, http.StatusBadRequest, "expected at least one of price, date, number, values")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func parseValues(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := cast.ToFloat64E(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error":  msg,
		"status": http.StatusText(status),
	})
}
