package profile

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/go-motion/motion/pkg/easing"
	"github.com/go-motion/motion/pkg/errs"
	"github.com/go-motion/motion/pkg/motion"
)

// Profile is a set of named animation configurations.
type Profile map[string]motion.Config

// Get returns the configuration registered under name.
func (p Profile) Get(name string) (motion.Config, bool) {
	cfg, ok := p[name]
	return cfg, ok
}

// Merge returns a copy of p with every entry of overrides applied on top.
func (p Profile) Merge(overrides Profile) Profile {
	out := make(Profile, len(p)+len(overrides))
	for name, cfg := range p {
		out[name] = cfg
	}
	for name, cfg := range overrides {
		out[name] = cfg
	}
	return out
}

// entry is the on-disk shape of one animation. Durations are seconds, the
// way designers write them, not Go duration strings.
type entry struct {
	Duration    float64 `yaml:"duration" toml:"duration"`
	Easing      string  `yaml:"easing" toml:"easing"`
	FrameRate   int     `yaml:"frame_rate" toml:"frame_rate"`
	AutoReverse bool    `yaml:"auto_reverse" toml:"auto_reverse"`
	Repeat      int     `yaml:"repeat" toml:"repeat"`
	Delay       float64 `yaml:"delay" toml:"delay"`
}

func (e entry) config(name string) (motion.Config, error) {
	cfg := motion.DefaultConfig()
	if e.Duration != 0 {
		cfg.Duration = seconds(e.Duration)
	}
	if e.Easing != "" {
		kind, err := easing.ParseKind(e.Easing)
		if err != nil {
			return motion.Config{}, fmt.Errorf("animation %q: %w", name, err)
		}
		cfg.Easing = kind
	}
	if e.FrameRate != 0 {
		cfg.FrameRate = e.FrameRate
	}
	cfg.AutoReverse = e.AutoReverse
	if e.Repeat != 0 {
		cfg.RepeatCount = e.Repeat
	}
	cfg.StartDelay = seconds(e.Delay)

	if err := cfg.Validate(); err != nil {
		return motion.Config{}, fmt.Errorf("animation %q: %w", name, err)
	}
	return cfg, nil
}

// seconds converts a fractional-seconds field to a Duration, rounding so
// that values like 0.15 land on exact millisecond boundaries.
func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// Load reads a profile file, chosen by extension: .yaml/.yml or .toml.
// Every entry is validated; the first invalid entry fails the whole load
// with a KindProfile error.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries map[string]entry
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, profileError(path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &entries); err != nil {
			return nil, profileError(path, err)
		}
	default:
		return nil, profileError(path, fmt.Errorf("unsupported profile format %q", ext))
	}

	p := make(Profile, len(entries))
	for name, e := range entries {
		cfg, err := e.config(name)
		if err != nil {
			return nil, profileError(path, err)
		}
		p[name] = cfg
	}
	return p, nil
}

// LoadOptional reads a profile file if present, returning the built-in
// presets overlaid with the file's entries. A missing file is not an error;
// the built-ins are returned unchanged.
func LoadOptional(path string) (Profile, error) {
	loaded, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Builtin(), nil
		}
		return nil, err
	}
	return Builtin().Merge(loaded), nil
}

func profileError(path string, err error) error {
	return &errs.EngineError{
		Op:   "profile.Load",
		Kind: errs.KindProfile,
		Err:  fmt.Errorf("%s: %w", path, err),
	}
}
