// Package config loads game settings from YAML, .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by Validate failures
var ErrInvalid = errors.New("config: invalid")

// Frontend names
const (
	FrontendEbiten = "ebiten"
	FrontendTUI    = "tui"
)

// Environment variable names
const (
	EnvFrontend    = "CVQUEST_FRONTEND"
	EnvLocale      = "CVQUEST_LOCALE"
	EnvLogLevel    = "CVQUEST_LOG_LEVEL"
	EnvContentDir  = "CVQUEST_CONTENT_DIR"
	EnvPhysics     = "CVQUEST_PHYSICS"
	EnvPlayerSpeed = "CVQUEST_PLAYER_SPEED"
)

// Window holds graphical frontend settings
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Log holds logger settings
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Config holds every tunable
type Config struct {
	TileSize          float64       `yaml:"tile_size"`
	PlayerSpeed       float64       `yaml:"player_speed"`
	ArrivalThreshold  float64       `yaml:"arrival_threshold"`
	TypewriterDelay   time.Duration `yaml:"typewriter_delay"`
	InteractionRadius float64       `yaml:"interaction_radius"`
	ClickRadius       float64       `yaml:"click_radius"`
	InteractRecheck   time.Duration `yaml:"interact_recheck"`
	NotificationTTL   time.Duration `yaml:"notification_ttl"`

	Window     Window `yaml:"window"`
	Locale     string `yaml:"locale"`
	Frontend   string `yaml:"frontend"`
	Physics    bool   `yaml:"physics"`
	ContentDir string `yaml:"content_dir"`
	Log        Log    `yaml:"log"`

	// Bindings rebinds actions by name to a single key code, e.g. "quest log": "j"
	Bindings map[string]string `yaml:"bindings"`
}

// Default returns the stock settings
func Default() Config {
	return Config{
		TileSize:          32,
		PlayerSpeed:       150,
		ArrivalThreshold:  4,
		TypewriterDelay:   33 * time.Millisecond,
		InteractionRadius: 64,
		ClickRadius:       32,
		InteractRecheck:   500 * time.Millisecond,
		NotificationTTL:   3 * time.Second,
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "Nihad.dev CV Adventure",
		},
		Locale:   "en",
		Frontend: FrontendEbiten,
		Log:      Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv loads .env files into the process environment, skipping missing ones,
// then applies CVQUEST_* overrides to cfg.
func (cfg *Config) LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load env %s: %w", f, err)
		}
	}
	return cfg.applyEnv(os.Getenv)
}

func (cfg *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvFrontend); v != "" {
		cfg.Frontend = v
	}
	if v := getenv(EnvLocale); v != "" {
		cfg.Locale = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv(EnvContentDir); v != "" {
		cfg.ContentDir = v
	}
	if v := getenv(EnvPhysics); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvPhysics, v, err)
		}
		cfg.Physics = b
	}
	if v := getenv(EnvPlayerSpeed); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvPlayerSpeed, v, err)
		}
		cfg.PlayerSpeed = f
	}
	return nil
}

// Validate rejects settings the game cannot run with
func (cfg Config) Validate() error {
	switch {
	case cfg.TileSize <= 0:
		return fmt.Errorf("%w: tile_size %v must be positive", ErrInvalid, cfg.TileSize)
	case cfg.PlayerSpeed <= 0:
		return fmt.Errorf("%w: player_speed %v must be positive", ErrInvalid, cfg.PlayerSpeed)
	case cfg.ArrivalThreshold <= 0:
		return fmt.Errorf("%w: arrival_threshold %v must be positive", ErrInvalid, cfg.ArrivalThreshold)
	case cfg.TypewriterDelay <= 0:
		return fmt.Errorf("%w: typewriter_delay %v must be positive", ErrInvalid, cfg.TypewriterDelay)
	case cfg.InteractionRadius <= 0:
		return fmt.Errorf("%w: interaction_radius %v must be positive", ErrInvalid, cfg.InteractionRadius)
	case cfg.Frontend != FrontendEbiten && cfg.Frontend != FrontendTUI:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalid, cfg.Frontend)
	}
	return nil
}
