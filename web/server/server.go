// Package server exposes progressive rendering over HTTP with live updates
// streamed as server-sent events.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/strohs/raytracer/log"
	"github.com/strohs/raytracer/pkg/scene"
)

var logger = log.New("web")

// Config contains the web server configuration
type Config struct {
	Port        int    // Listen port
	StaticDir   string // Directory of static web assets
	TexturePath string // Image file for texture-mapped scenes
}

// Server handles web requests for the progressive renderer
type Server struct {
	config Config
	mux    *http.ServeMux
}

// New creates a web server with its routes registered
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
	}

	s.mux.Handle("/", http.FileServer(http.Dir(config.StaticDir)))
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/health", s.handleHealth)

	return s
}

// Handler returns the server's routing handler
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server and blocks until it exits
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	logger.Noticef("starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the registered preset scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	type sceneInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	infos := scene.List()
	response := make([]sceneInfo, 0, len(infos))
	for _, info := range infos {
		response = append(response, sceneInfo{Name: info.Name, Description: info.Description})
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseInt64Param parses an int64 parameter from URL query
func parseInt64Param(values url.Values, key string, defaultValue int64) (int64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
