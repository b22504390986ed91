// Package server exposes the chart helper over HTTP: it renders charts on
// request, stores the artifacts and serves them back with a dashboard page.
package server

import (
	"net/http"

	"chartkit/internal/charts"
	"chartkit/internal/config"
	"chartkit/internal/logger"
	"chartkit/internal/storage"
)

// maxRequestBody caps the size of chart request bodies.
const maxRequestBody = 1 << 20

// Server represents the main application server
type Server struct {
	Config  *config.Config
	Helper  *charts.Helper
	Storage storage.StorageClient

	log *logger.Logger
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, helper *charts.Helper, store storage.StorageClient) *Server {
	return &Server{
		Config:  cfg,
		Helper:  helper,
		Storage: store,
		log:     logger.GetGlobalLogger().WithComponent("server"),
	}
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.HandleHealth)
	mux.HandleFunc("POST /charts/line/{id}", s.HandleLineChart)
	mux.HandleFunc("POST /charts/bar/{id}", s.HandleBarChart)
	mux.HandleFunc("GET /charts", s.HandleListCharts)
	mux.HandleFunc("GET /charts/{file}", s.HandleChartFile)
	mux.HandleFunc("DELETE /charts/{id}", s.HandleDeleteChart)
	mux.HandleFunc("GET /api/format", s.HandleFormat)
	mux.HandleFunc("GET /{$}", s.HandleDashboard)

	return mux
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}
