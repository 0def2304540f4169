package handlers

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/indicdlp/snipview/internal/images"
)

// HandleImage serves a sample's image bytes. An optional w parameter
// returns an in-memory resized JPEG preview instead of the original
// file; if the preview cannot be rendered the original is served so a
// bad image stays visible as the browser's own decode error.
func (h *Handler) HandleImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	language, region, ok := h.selection(w, r)
	if !ok {
		return
	}
	name := r.URL.Query().Get("name")
	if !validSegment(name) || !h.allowedExtension(name) {
		h.writeError(w, "Invalid image name", http.StatusBadRequest)
		return
	}

	path := imagePath(h.cfg.Root, language, region, name)

	if widthParam := r.URL.Query().Get("w"); widthParam != "" {
		width, err := strconv.Atoi(widthParam)
		if err != nil || width < 1 || width > 4096 {
			h.writeError(w, "Invalid width", http.StatusBadRequest)
			return
		}
		preview, err := images.Thumbnail(path, width)
		if err == nil {
			w.Header().Set("Content-Type", "image/jpeg")
			if _, err := w.Write(preview); err != nil {
				slog.Error("Unable to write preview", "path", path, "err", err)
			}
			return
		}
		slog.Error("Preview rendering failed, serving original", "path", path, "err", err)
	}

	http.ServeFile(w, r, path)
}

func (h *Handler) allowedExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range h.cfg.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
