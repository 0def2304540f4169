package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/indicdlp/snipview/internal/annotation"
	"github.com/indicdlp/snipview/internal/catalog"
	"github.com/indicdlp/snipview/internal/images"
)

type sampleItem struct {
	Stem          string `json:"stem"`
	ImageName     string `json:"image_name"`
	ImageURL      string `json:"image_url"`
	AnnotationURL string `json:"annotation_url"`
	ImageWidth    int    `json:"image_width,omitempty"`
	ImageHeight   int    `json:"image_height,omitempty"`
	ImageFormat   string `json:"image_format,omitempty"`
}

type annotationItem struct {
	CategoryID int    `json:"category_id"`
	Label      string `json:"label"`
	Text       string `json:"text"`
}

type annotationResponse struct {
	File        string           `json:"file"`
	Categories  map[int]string   `json:"categories"`
	Annotations []annotationItem `json:"annotations"`
}

// HandleLanguages lists the language directories under the catalog root.
func (h *Handler) HandleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	languages, err := catalog.ListLanguages(h.cfg.Root)
	if err != nil {
		h.writeError(w, "Failed to list languages: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, map[string]interface{}{"languages": languages})
}

// HandleRegions lists the region directories under the selected language.
func (h *Handler) HandleRegions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	language := r.URL.Query().Get("language")
	if !validSegment(language) {
		h.writeError(w, "Invalid language", http.StatusBadRequest)
		return
	}

	regions, err := catalog.ListRegions(h.cfg.Root, language)
	if err != nil {
		h.writeError(w, "Failed to list regions: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, map[string]interface{}{"regions": regions})
}

// HandleSamples returns the ordered sample pairs for a selection. Scans
// are cached per selection; refresh=1 forces a fresh scan.
func (h *Handler) HandleSamples(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	language, region, ok := h.selection(w, r)
	if !ok {
		return
	}

	pairs, err := h.loadPairs(language, region, r.URL.Query().Get("refresh") == "1")
	if err != nil {
		h.writeError(w, "Failed to load samples: "+err.Error(), http.StatusInternalServerError)
		return
	}

	samples := make([]sampleItem, 0, len(pairs))
	for _, pair := range pairs {
		query := url.Values{
			"language": {language},
			"region":   {region},
		}
		annQuery := url.Values{
			"language": {language},
			"region":   {region},
			"stem":     {pair.Stem()},
		}
		query.Set("name", pair.ImageName())
		item := sampleItem{
			Stem:          pair.Stem(),
			ImageName:     pair.ImageName(),
			ImageURL:      "/api/image?" + query.Encode(),
			AnnotationURL: "/api/annotations?" + annQuery.Encode(),
		}
		// Dimensions are a nicety for layout; an undecodable image still
		// lists, the browser reports the decode failure.
		if info, err := images.Probe(pair.ImagePath); err == nil {
			item.ImageWidth = info.Width
			item.ImageHeight = info.Height
			item.ImageFormat = info.Format
		}
		samples = append(samples, item)
	}

	h.writeJSON(w, map[string]interface{}{
		"language": language,
		"region":   region,
		"count":    len(samples),
		"samples":  samples,
	})
}

func (h *Handler) loadPairs(language, region string, refresh bool) ([]catalog.Pair, error) {
	if !refresh {
		if pairs, exists := h.scanCache.Get(h.cfg.Root, language, region); exists {
			return pairs, nil
		}
	}

	pairs, err := catalog.LoadPairs(h.cfg.Root, language, region, h.cfg.Extensions)
	if err != nil {
		return nil, err
	}

	slog.Debug("Scanned region", "language", language, "region", region, "pairs", len(pairs))
	h.scanCache.Set(h.cfg.Root, language, region, pairs)
	return pairs, nil
}

// HandleAnnotations parses one sample's annotation sidecar and returns
// its categories plus label-resolved records. A malformed sidecar is the
// one surfaced data error: it answers 422 with the offending path.
func (h *Handler) HandleAnnotations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	language, region, ok := h.selection(w, r)
	if !ok {
		return
	}
	stem := r.URL.Query().Get("stem")
	if !validSegment(stem) {
		h.writeError(w, "Invalid stem", http.StatusBadRequest)
		return
	}

	path := annotationPath(h.cfg.Root, language, region, stem)
	cats, records, err := annotation.Parse(path)
	if err != nil {
		var malformed *annotation.MalformedAnnotationError
		if errors.As(err, &malformed) {
			slog.Error("Malformed annotation file", "path", malformed.Path, "err", malformed.Err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			if err := json.NewEncoder(w).Encode(map[string]string{
				"error": "malformed annotation file",
				"path":  malformed.Path,
			}); err != nil {
				slog.Error("Unable to encode JSON response", "err", err)
			}
			return
		}
		h.writeError(w, "Failed to parse annotation: "+err.Error(), http.StatusInternalServerError)
		return
	}

	items := make([]annotationItem, 0, len(records))
	for _, record := range records {
		id := record.Category()
		items = append(items, annotationItem{
			CategoryID: id,
			Label:      cats.Label(id),
			Text:       record.Text,
		})
	}

	h.writeJSON(w, annotationResponse{
		File:        stem + catalog.AnnotationExt,
		Categories:  cats,
		Annotations: items,
	})
}
