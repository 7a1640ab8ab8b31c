package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Placement policies for an overlay without explicit coordinates
const (
	PlacementCenter = "center"
	PlacementCorner = "corner"
)

// Config holds all application configuration
type Config struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Homepage    string `json:"homepage,omitempty"`
	Repository  string `json:"repository,omitempty"`
	Copyright   string `json:"copyright,omitempty"`

	Window  WindowConfig  `json:"window"`
	Tray    TrayConfig    `json:"tray"`
	Overlay OverlayConfig `json:"overlay"`
	Dev     DevConfig     `json:"dev"`
}

// WindowConfig holds main window chrome settings
type WindowConfig struct {
	Width       int  `json:"width"`
	Height      int  `json:"height"`
	MinWidth    int  `json:"min_width,omitempty"`
	MinHeight   int  `json:"min_height,omitempty"`
	MaxWidth    int  `json:"max_width,omitempty"`
	MaxHeight   int  `json:"max_height,omitempty"`
	Resizable   bool `json:"resizable"`
	AlwaysOnTop bool `json:"always_on_top"`
	Center      bool `json:"center"`
	StartHidden bool `json:"start_hidden"`
}

// TrayMenuItem is one entry of a tray menu group
type TrayMenuItem struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Action string `json:"action"` // "about", "show", "quit", "custom"
}

// TrayMenuGroup is a labelled submenu of the tray menu
type TrayMenuGroup struct {
	Label string         `json:"label"`
	Items []TrayMenuItem `json:"items"`
}

// TrayConfig holds the tray menu model; rendering it is up to the host shell
type TrayConfig struct {
	Enabled bool            `json:"enabled"`
	Tooltip string          `json:"tooltip,omitempty"`
	Title   string          `json:"title,omitempty"`
	Menus   []TrayMenuGroup `json:"menus"`
}

// OverlayConfig holds floating overlay window settings.
// DefaultX == 0 && DefaultY == 0 means "compute the position automatically".
type OverlayConfig struct {
	Enabled     bool    `json:"enabled"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	DefaultX    float64 `json:"default_x"`
	DefaultY    float64 `json:"default_y"`
	AlwaysOnTop bool    `json:"always_on_top"`
	Margin      float64 `json:"margin"`
	Placement   string  `json:"placement"` // "center" or "corner"
}

// HasExplicitPosition reports whether the configured coordinates override placement
func (o OverlayConfig) HasExplicitPosition() bool {
	return o.DefaultX != 0 || o.DefaultY != 0
}

// DevConfig holds developer settings
type DevConfig struct {
	OpenDevTools bool `json:"open_dev_tools"`
}

// Service manages configuration persistence
type Service struct {
	mu       sync.RWMutex
	config   *Config
	filePath string
}

// New creates a new config service rooted at dir. An empty dir selects ~/.floatdock.
func New(dir string) (*Service, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(dir, "config.json")

	service := &Service{
		filePath: configPath,
		config:   getDefaultConfig(),
	}

	// Load existing config if it exists, otherwise create a default config file
	if _, err := os.Stat(configPath); err == nil {
		if err := service.Load(); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		if err := service.Save(); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := Validate(service.config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return service, nil
}

// DefaultDir returns the per-user configuration directory
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".floatdock"), nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Name:        "FloatDock",
		Version:     "1.0.0",
		Author:      "FloatDock Authors",
		Description: "Desktop shell with a floating overlay widget",
		Window: WindowConfig{
			Width:     1200,
			Height:    800,
			MinWidth:  800,
			MinHeight: 600,
			Resizable: true,
			Center:    true,
		},
		Tray: TrayConfig{
			Enabled: true,
			Tooltip: "FloatDock",
			Menus: []TrayMenuGroup{
				{
					Label: "App",
					Items: []TrayMenuItem{
						{ID: "about", Label: "About", Action: "about"},
					},
				},
				{
					Label: "Window",
					Items: []TrayMenuItem{
						{ID: "show", Label: "Show Window", Action: "show"},
						{ID: "quit", Label: "Quit", Action: "quit"},
					},
				},
			},
		},
		Overlay: OverlayConfig{
			Enabled:     true,
			Width:       60,
			Height:      60,
			AlwaysOnTop: true,
			Margin:      80,
			Placement:   PlacementCenter,
		},
	}
}

// Validate checks the settings the shell cannot run without
func Validate(cfg *Config) error {
	var errs []error
	if cfg.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if cfg.Overlay.Width <= 0 || cfg.Overlay.Height <= 0 {
		errs = append(errs, fmt.Errorf("overlay size must be positive, got %vx%v", cfg.Overlay.Width, cfg.Overlay.Height))
	}
	if cfg.Overlay.Margin < 0 {
		errs = append(errs, fmt.Errorf("overlay margin must not be negative, got %v", cfg.Overlay.Margin))
	}
	switch cfg.Overlay.Placement {
	case PlacementCenter, PlacementCorner, "":
	default:
		errs = append(errs, fmt.Errorf("unknown overlay placement %q", cfg.Overlay.Placement))
	}
	return errors.Join(errs...)
}

// Get returns a snapshot of the current configuration
func (s *Service) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.config
}

// Set updates the configuration
func (s *Service) Set(config *Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = config
}

// Load loads configuration from file
func (s *Service) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Unmarshal(data, s.config)
}

// Save saves configuration to file
func (s *Service) Save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.config, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0644)
}

// Path returns the full path to the configuration file
func (s *Service) Path() string {
	return s.filePath
}

// Dir returns the directory holding the configuration file
func (s *Service) Dir() string {
	return filepath.Dir(s.filePath)
}
