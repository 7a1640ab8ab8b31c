package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig_Default(t *testing.T) {
	// Use temp directory
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	// Create a service with the temp path
	service := &Service{
		filePath: configPath,
		config:   getDefaultConfig(),
	}

	// Save default config
	if err := service.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load it back
	if err := service.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := service.Get()
	if cfg.Overlay.Width != 60 || cfg.Overlay.Height != 60 {
		t.Errorf("Default overlay size = %vx%v; want 60x60", cfg.Overlay.Width, cfg.Overlay.Height)
	}

	if cfg.Overlay.Placement != PlacementCenter {
		t.Errorf("Unexpected placement: %s", cfg.Overlay.Placement)
	}
}

func TestNew_CreatesDefaultFile(t *testing.T) {
	tmpDir := t.TempDir()

	service, err := New(tmpDir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if service.Path() != filepath.Join(tmpDir, "config.json") {
		t.Errorf("Path = %s; want config.json inside %s", service.Path(), tmpDir)
	}
	if service.Dir() != tmpDir {
		t.Errorf("Dir = %s; want %s", service.Dir(), tmpDir)
	}

	// Verify file exists
	if _, err := os.Stat(service.Path()); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestNew_LoadsExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	raw := `{"name": "Other Shell", "overlay": {"width": 120, "height": 40, "default_x": 50, "default_y": 50, "margin": 10, "placement": "corner"}}`
	if err := os.WriteFile(configPath, []byte(raw), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	service, err := New(tmpDir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	cfg := service.Get()
	if cfg.Name != "Other Shell" {
		t.Errorf("Expected name 'Other Shell', got %s", cfg.Name)
	}
	if cfg.Overlay.Width != 120 {
		t.Errorf("Expected overlay width 120, got %v", cfg.Overlay.Width)
	}
	if !cfg.Overlay.HasExplicitPosition() {
		t.Error("Expected explicit position to be detected")
	}
	// Fields missing from the file keep their defaults
	if cfg.Window.Width != 1200 {
		t.Errorf("Expected default window width 1200, got %d", cfg.Window.Width)
	}
}

func TestNew_RejectsInvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	raw := `{"overlay": {"width": 0, "height": 60, "placement": "sideways"}}`
	if err := os.WriteFile(configPath, []byte(raw), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := New(tmpDir)
	if err == nil {
		t.Fatal("Expected New to fail for invalid overlay settings")
	}
	if !strings.Contains(err.Error(), "overlay size") || !strings.Contains(err.Error(), "sideways") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestConfig_Save(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	service := &Service{
		filePath: configPath,
		config: &Config{
			Name:    "test-app",
			Overlay: OverlayConfig{Width: 80, Height: 80},
		},
	}

	err := service.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Verify we can load it back
	if err := service.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := service.Get()
	if cfg.Name != "test-app" {
		t.Errorf("Expected Name 'test-app', got %s", cfg.Name)
	}
	if cfg.Overlay.Width != 80 {
		t.Errorf("Expected overlay width 80, got %v", cfg.Overlay.Width)
	}
}

func TestConfig_Set(t *testing.T) {
	service := &Service{config: getDefaultConfig()}

	service.Set(&Config{Name: "replaced"})

	if got := service.Get().Name; got != "replaced" {
		t.Errorf("Expected Name 'replaced', got %s", got)
	}
}

func TestHasExplicitPosition(t *testing.T) {
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, false},
		{50, 50, true},
		{0, 10, true},
		{10, 0, true},
	}

	for _, tc := range tests {
		got := OverlayConfig{DefaultX: tc.x, DefaultY: tc.y}.HasExplicitPosition()
		if got != tc.want {
			t.Errorf("HasExplicitPosition(%v, %v) = %v; want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := getDefaultConfig()

	if err := Validate(cfg); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}

	if cfg.Overlay.Margin != 80 {
		t.Errorf("Expected default margin 80, got %v", cfg.Overlay.Margin)
	}

	if !cfg.Overlay.AlwaysOnTop {
		t.Error("Expected overlay to be always on top by default")
	}

	if cfg.Overlay.HasExplicitPosition() {
		t.Error("Expected default overlay position to be computed")
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("FLOATDOCK_CONFIG_DIR", "/tmp/floatdock-test")
	t.Setenv("FLOATDOCK_LOG_LEVEL", "debug")

	e, dotenv, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if dotenv {
		t.Error("Expected no .env file in an empty directory")
	}
	if e.ConfigDir != "/tmp/floatdock-test" {
		t.Errorf("ConfigDir = %s", e.ConfigDir)
	}
	if e.LogLevel != "debug" {
		t.Errorf("LogLevel = %s; want debug", e.LogLevel)
	}
	if e.LogFormat != "text" {
		t.Errorf("LogFormat = %s; want text", e.LogFormat)
	}
}
