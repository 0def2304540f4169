package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Root != "vis-samples" {
		t.Errorf("Expected default root vis-samples, got %s", cfg.Root)
	}
	if cfg.Port != "8888" {
		t.Errorf("Expected default port 8888, got %s", cfg.Port)
	}
	if len(cfg.Extensions) == 0 {
		t.Error("Expected default extensions, got none")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snipview.yaml")
	content := `root: /data/vis-samples
port: "3000"
extensions:
  - png
  - ".JPG"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Root != "/data/vis-samples" {
		t.Errorf("Expected root /data/vis-samples, got %s", cfg.Root)
	}
	if cfg.Port != "3000" {
		t.Errorf("Expected port 3000, got %s", cfg.Port)
	}
	expected := []string{".png", ".jpg"}
	if !reflect.DeepEqual(cfg.Extensions, expected) {
		t.Errorf("Expected normalized extensions %v, got %v", expected, cfg.Extensions)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SNIPVIEW_ROOT", "/env/root")
	t.Setenv("SNIPVIEW_PORT", "9999")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Root != "/env/root" {
		t.Errorf("Expected env root override, got %s", cfg.Root)
	}
	if cfg.Port != "9999" {
		t.Errorf("Expected env port override, got %s", cfg.Port)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Expected error for explicitly named missing config file, got nil")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("root: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{Root: "r", Port: "8080", Extensions: []string{".png"}},
		},
		{
			name:    "empty root",
			cfg:     Config{Port: "8080", Extensions: []string{".png"}},
			wantErr: true,
		},
		{
			name:    "non-numeric port",
			cfg:     Config{Root: "r", Port: "http", Extensions: []string{".png"}},
			wantErr: true,
		},
		{
			name:    "port out of range",
			cfg:     Config{Root: "r", Port: "70000", Extensions: []string{".png"}},
			wantErr: true,
		},
		{
			name:    "no extensions",
			cfg:     Config{Root: "r", Port: "8080"},
			wantErr: true,
		},
		{
			name:    "blank extension",
			cfg:     Config{Root: "r", Port: "8080", Extensions: []string{"."}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
