package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/indicdlp/snipview/internal/config"
	"github.com/indicdlp/snipview/internal/storage"
)

type Handler struct {
	cfg       *config.Config
	scanCache *storage.ScanCache
}

func New(cfg *config.Config) *Handler {
	return &Handler{
		cfg:       cfg,
		scanCache: storage.New(),
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// validSegment rejects path components that could escape the catalog root
// when joined into a filesystem path.
func validSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "/\\") && !strings.Contains(s, "..")
}

// annotationPath builds the sidecar path for a validated selection.
func annotationPath(root, language, region, stem string) string {
	return filepath.Join(root, language, region, "jsons", stem+".json")
}

// imagePath builds the image path for a validated selection.
func imagePath(root, language, region, name string) string {
	return filepath.Join(root, language, region, "images", name)
}

// selection pulls the language/region query parameters shared by the
// browse endpoints, writing the error response itself on failure.
func (h *Handler) selection(w http.ResponseWriter, r *http.Request) (language, region string, ok bool) {
	language = r.URL.Query().Get("language")
	region = r.URL.Query().Get("region")
	if !validSegment(language) || !validSegment(region) {
		h.writeError(w, "Invalid language or region", http.StatusBadRequest)
		return "", "", false
	}
	return language, region, true
}
