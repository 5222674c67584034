package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultFPS      = 60
	DefaultTitle    = "constellation"
	DefaultBackend  = BackendRaylib
	DefaultLogLevel = "info"
)

const (
	BackendRaylib   = "raylib"
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
)

var Backends = []string{BackendRaylib, BackendEbiten, BackendTerminal}

type Config struct {
	Backend  string       `yaml:"backend"`
	Seed     int64        `yaml:"seed"`
	LogLevel string       `yaml:"log_level"`
	Window   WindowConfig `yaml:"window"`
	Page     PageConfig   `yaml:"page"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

type PageConfig struct {
	Sections []Section `yaml:"sections"`
}

// Section is one revealable block of the page. Height is in page rows.
type Section struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	Height int    `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Backend:  DefaultBackend,
		LogLevel: DefaultLogLevel,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			FPS:    DefaultFPS,
		},
		Page: PageConfig{Sections: DefaultSections()},
	}
}

// DefaultSections lays out the service cards, process steps, about text and
// contact blocks of the landing page.
func DefaultSections() []Section {
	return []Section{
		{ID: "services", Title: "Services", Height: 3},
		{ID: "service-design", Title: "Design", Body: "interfaces with a point of view", Height: 5},
		{ID: "service-build", Title: "Build", Body: "fast, reliable software", Height: 5},
		{ID: "service-scale", Title: "Scale", Body: "infrastructure that grows with you", Height: 5},
		{ID: "process", Title: "Process", Height: 3},
		{ID: "step-discover", Title: "01 Discover", Body: "we learn what matters", Height: 4},
		{ID: "step-shape", Title: "02 Shape", Body: "we sketch and test", Height: 4},
		{ID: "step-ship", Title: "03 Ship", Body: "we release and iterate", Height: 4},
		{ID: "about", Title: "About", Height: 3},
		{ID: "about-text", Body: "a small studio building careful software", Height: 6},
		{ID: "contact", Title: "Contact", Body: "say hello", Height: 4},
		{ID: "contact-cta", Title: "[ get in touch ]", Height: 3},
	}
}

func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads path over cfg, so keys missing from the file keep the
// values already in cfg.
func LoadOnto(path string, cfg *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidWindow, c.Window.FPS)
	}
	if !validBackend(c.Backend) {
		return fmt.Errorf("%w: %q (available: %v)", ErrUnknownBackend, c.Backend, Backends)
	}
	seen := make(map[string]bool, len(c.Page.Sections))
	for _, s := range c.Page.Sections {
		if seen[s.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateSection, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// ApplyPreset copies the window settings of the named preset into c.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	c.Window.Width = p.Width
	c.Window.Height = p.Height
	if p.FPS > 0 {
		c.Window.FPS = p.FPS
	}
	return nil
}

func validBackend(b string) bool {
	for _, name := range Backends {
		if name == b {
			return true
		}
	}
	return false
}
