package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/calluna-lt3/raytrace/pkg/encoders"
	"github.com/calluna-lt3/raytrace/pkg/renderer"
	"github.com/calluna-lt3/raytrace/pkg/scene"
)

// maxPixels bounds the size of a single render request
const maxPixels = 4096 * 4096

// Server handles web requests for the raytracer
type Server struct {
	port     int
	sceneDir string      // Directory scanned for JSON scene files
	logger   *log.Logger // Server log output
	renders  atomic.Int64
}

// NewServer creates a new web server
func NewServer(port int, sceneDir string) *Server {
	return &Server{
		port:     port,
		sceneDir: sceneDir,
		logger:   log.Default(),
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string          // Scene ID (built-in or file scene)
	Width   int             // Image width (0 = scene default)
	Height  int             // Image height (0 = scene default)
	Workers int             // Parallel row workers (0 = CPU count)
	Format  encoders.Format // Response encoding
}

// ScenesResponse lists every scene the server can render
type ScenesResponse struct {
	Builtin []scene.SceneInfo `json:"builtin"`
	Files   []scene.SceneInfo `json:"files"`
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists built-in and file scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	files, err := scene.ListSceneFiles(s.sceneDir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScenesResponse{
		Builtin: scene.ListBuiltinScenes(),
		Files:   files,
	})
}

// handleRender renders a scene and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := s.parseRenderRequest(r.URL.Query())
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renders.Add(1))
	raytracer := renderer.NewRaytracer(sceneObj, sceneObj.Width, sceneObj.Height)
	raytracer.SetConfig(renderer.Config{NumWorkers: req.Workers})
	raytracer.SetLogger(NewRenderLogger(renderID, s.logger))

	// Use request context to stop rendering when the client disconnects
	plane, stats, err := raytracer.Render(r.Context())
	if err != nil {
		s.logger.Printf("[%s] Render aborted: %v", renderID, err)
		http.Error(w, "render aborted", http.StatusServiceUnavailable)
		return
	}

	var buf bytes.Buffer
	if err := encoders.Encode(&buf, plane, req.Format); err != nil {
		s.logger.Printf("[%s] Error encoding image: %v", renderID, err)
		http.Error(w, "failed to encode image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Lit", strconv.Itoa(stats.LitPixels))
	w.Header().Set("X-Render-Shadowed", strconv.Itoa(stats.ShadowedPixels))
	w.Header().Set("X-Render-Background", strconv.Itoa(stats.BackgroundPixels))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Printf("[%s] Error writing response: %v", renderID, err)
	}
}

// parseRenderRequest reads render parameters from the query string
func (s *Server) parseRenderRequest(query url.Values) (*RenderRequest, error) {
	req := &RenderRequest{
		Scene:  "default",
		Format: encoders.FormatPNG,
	}

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"width", &req.Width},
		{"height", &req.Height},
		{"workers", &req.Workers},
	}
	for _, p := range ints {
		str := query.Get(p.key)
		if str == "" {
			continue
		}
		val, err := strconv.Atoi(str)
		if err != nil || val < 0 {
			return nil, fmt.Errorf("%s must be a non-negative integer, got %q", p.key, str)
		}
		*p.dst = val
	}

	if str := query.Get("format"); str != "" {
		format, err := encoders.ParseFormat(str)
		if err != nil {
			return nil, err
		}
		req.Format = format
	}

	return req, nil
}

// createScene resolves the request's scene ID and applies size overrides.
// File scenes are only reachable by ID, never by raw path.
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	var sceneObj *scene.Scene
	var err error

	for _, info := range scene.ListBuiltinScenes() {
		if info.ID == req.Scene {
			sceneObj, err = scene.Create(info.ID)
			break
		}
	}

	if sceneObj == nil && err == nil {
		files, listErr := scene.ListSceneFiles(s.sceneDir)
		if listErr != nil {
			return nil, listErr
		}
		for _, info := range files {
			if info.ID == req.Scene {
				sceneObj, err = scene.NewFileScene(info.FilePath)
				break
			}
		}
	}

	if err != nil {
		return nil, err
	}
	if sceneObj == nil {
		return nil, fmt.Errorf("unknown scene: %s", req.Scene)
	}

	if req.Width > 0 {
		sceneObj.Width = req.Width
	}
	if req.Height > 0 {
		sceneObj.Height = req.Height
	}
	if err := sceneObj.Validate(); err != nil {
		return nil, err
	}
	// Compare per side so the pixel count cannot overflow
	if sceneObj.Width > maxPixels/sceneObj.Height {
		return nil, fmt.Errorf("image too large: %dx%d", sceneObj.Width, sceneObj.Height)
	}

	return sceneObj, nil
}
