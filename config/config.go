// Package config loads game settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v2"

	"github.com/lixenwraith/reversi/board"
	"github.com/lixenwraith/reversi/game"
	"github.com/lixenwraith/reversi/render"
)

// FilePermissions for created directories
const FilePermissions = 0755

var (
	// ConfigFile is the default settings location
	ConfigFile = filepath.Join(xdg.ConfigHome, "reversi", "config.yaml")

	// LogFile receives debug output while the screen owns the terminal
	LogFile = filepath.Join(xdg.StateHome, "reversi", "reversi.log")
)

// Config holds every user-tunable setting
type Config struct {
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Rule   string      `yaml:"rule"`
	First  string      `yaml:"first"`
	Hints  bool        `yaml:"hints"`
	Sound  SoundConfig `yaml:"sound"`
	Glyphs GlyphConfig `yaml:"glyphs"`
}

// SoundConfig controls audio cues
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0-1.0
}

// GlyphConfig holds one-character strings per cell state
type GlyphConfig struct {
	Empty string `yaml:"empty"`
	Black string `yaml:"black"`
	White string `yaml:"white"`
}

// Default returns the standard 8x8 setup with sound off
func Default() *Config {
	g := render.DefaultGlyphs()
	return &Config{
		Width:  8,
		Height: 8,
		Rule:   game.RulePass.String(),
		First:  game.Black.String(),
		Sound:  SoundConfig{Enabled: false, Volume: 0.5},
		Glyphs: GlyphConfig{
			Empty: string(g.Empty),
			Black: string(g.Black),
			White: string(g.White),
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.UnmarshalStrict(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from REVERSI_* environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("REVERSI_SOUND"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("REVERSI_SOUND: %w", err)
		}
		c.Sound.Enabled = enabled
	}

	// Volume is given as 0-100 and clamped
	if v := os.Getenv("REVERSI_VOLUME"); v != "" {
		pct, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REVERSI_VOLUME: %w", err)
		}
		c.Sound.Volume = float64(min(max(pct, 0), 100)) / 100.0
	}

	if v := os.Getenv("REVERSI_RULE"); v != "" {
		c.Rule = v
	}
	return nil
}

// Validate checks every field and reports the first problem found
func (c *Config) Validate() error {
	if c.Width < board.MinSize || c.Width > board.MaxSize ||
		c.Height < board.MinSize || c.Height > board.MaxSize {
		return fmt.Errorf("%w: %dx%d (allowed %d..%d)", board.ErrInvalidSize, c.Width, c.Height, board.MinSize, board.MaxSize)
	}
	if _, err := game.ParseEndRule(c.Rule); err != nil {
		return err
	}
	if _, err := game.ParsePlayer(c.First); err != nil {
		return err
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("sound volume %.2f outside 0..1", c.Sound.Volume)
	}
	if _, err := c.RenderGlyphs(); err != nil {
		return err
	}
	return nil
}

// GameOptions converts the settings for game.New
func (c *Config) GameOptions() (game.Options, error) {
	rule, err := game.ParseEndRule(c.Rule)
	if err != nil {
		return game.Options{}, err
	}
	first, err := game.ParsePlayer(c.First)
	if err != nil {
		return game.Options{}, err
	}
	return game.Options{
		Width:  c.Width,
		Height: c.Height,
		Rule:   rule,
		First:  first,
		Hints:  c.Hints,
	}, nil
}

// RenderGlyphs converts the glyph strings to runes
func (c *Config) RenderGlyphs() (render.Glyphs, error) {
	var g render.Glyphs
	var err error
	if g.Empty, err = render.ParseGlyph(c.Glyphs.Empty); err != nil {
		return g, fmt.Errorf("glyphs.empty: %w", err)
	}
	if g.Black, err = render.ParseGlyph(c.Glyphs.Black); err != nil {
		return g, fmt.Errorf("glyphs.black: %w", err)
	}
	if g.White, err = render.ParseGlyph(c.Glyphs.White); err != nil {
		return g, fmt.Errorf("glyphs.white: %w", err)
	}
	if g.Empty == g.Black || g.Empty == g.White || g.Black == g.White {
		return g, fmt.Errorf("glyphs must be distinct, got %q %q %q", g.Empty, g.Black, g.White)
	}
	return g, nil
}

// Save writes c to path, creating parent directories
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), FilePermissions); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
