package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// AudioConfig controls sound output
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0-1.0
	SampleRate   int     `yaml:"sample_rate"`
	BufferMs     int     `yaml:"buffer_ms"`
}

// GameConfig selects the constellation rule variant and pacing
type GameConfig struct {
	Sequence   bool    `yaml:"sequence"`    // Require the fixed category order
	Adjacency  bool    `yaml:"adjacency"`   // Forbid ring-neighbor links
	OrbitSpeed float64 `yaml:"orbit_speed"` // Radians per frame
	FPS        int     `yaml:"fps"`
}

// JournalConfig locates the session history database
type JournalConfig struct {
	Path string `yaml:"path"`
}

// LogConfig locates debug logs
type LogConfig struct {
	Dir string `yaml:"dir"`
}

// Config is the full application configuration
type Config struct {
	Audio   AudioConfig   `yaml:"audio"`
	Game    GameConfig    `yaml:"game"`
	Journal JournalConfig `yaml:"journal"`
	Log     LogConfig     `yaml:"log"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   48000,
			BufferMs:     100,
		},
		Game: GameConfig{
			Sequence:   false,
			Adjacency:  true,
			OrbitSpeed: 0.001,
			FPS:        60,
		},
		Journal: JournalConfig{
			Path: defaultJournalPath(),
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "ecoring.yaml"
	}
	return filepath.Join(dir, "ecoring", "config.yaml")
}

func defaultJournalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ecoring-journal.db"
	}
	return filepath.Join(home, ".local", "share", "ecoring", "journal.db")
}

// Load reads path over the defaults, applies environment overrides and validates.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from ECORING_* variables. Unparseable values are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if enabled := getenv("ECORING_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if volume := getenv("ECORING_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = clamp(float64(val)/100.0, 0, 1)
		}
	}

	if sampleRate := getenv("ECORING_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.Audio.SampleRate = val
		}
	}

	if path := getenv("ECORING_JOURNAL"); path != "" {
		c.Journal.Path = path
	}
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.master_volume %v not in [0,1]", ErrInvalidConfig, c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate must be positive", ErrInvalidConfig)
	}
	if c.Audio.BufferMs <= 0 {
		return fmt.Errorf("%w: audio.buffer_ms must be positive", ErrInvalidConfig)
	}
	if c.Game.FPS <= 0 || c.Game.FPS > 240 {
		return fmt.Errorf("%w: game.fps %d not in (0,240]", ErrInvalidConfig, c.Game.FPS)
	}
	if c.Journal.Path == "" {
		return fmt.Errorf("%w: journal.path is empty", ErrInvalidConfig)
	}
	return nil
}

// Save writes c as YAML, creating parent directories
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
