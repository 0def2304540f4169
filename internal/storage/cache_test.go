package storage

import (
	"testing"

	"github.com/indicdlp/snipview/internal/catalog"
)

func TestScanCache(t *testing.T) {
	cache := New()
	pairs := []catalog.Pair{{ImagePath: "a.png", AnnotationPath: "a.json"}}

	if _, exists := cache.Get("root", "hi", "north"); exists {
		t.Error("Expected empty cache miss")
	}

	cache.Set("root", "hi", "north", pairs)

	got, exists := cache.Get("root", "hi", "north")
	if !exists {
		t.Fatal("Expected cache hit after Set")
	}
	if len(got) != 1 || got[0] != pairs[0] {
		t.Errorf("Expected cached pairs %v, got %v", pairs, got)
	}

	// Same selection under a different root is a distinct key.
	if _, exists := cache.Get("other-root", "hi", "north"); exists {
		t.Error("Expected miss for different root")
	}

	cache.Invalidate("root", "hi", "north")
	if _, exists := cache.Get("root", "hi", "north"); exists {
		t.Error("Expected miss after Invalidate")
	}

	cache.Set("root", "hi", "north", pairs)
	cache.Set("root", "hi", "south", nil)
	cache.Clear()
	if _, exists := cache.Get("root", "hi", "north"); exists {
		t.Error("Expected miss after Clear")
	}
}
