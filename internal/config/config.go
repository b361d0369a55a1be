// Package config loads run descriptions for the needle CLI from TOML.
//
// A run names a seed, an augmentation pipeline applied to a synthetic image,
// and a list of weight tensors to initialize:
//
//	seed = 42
//	output = "weights.safetensors"
//
//	[augment]
//	height = 32
//	width = 32
//	channels = 3
//	runs = 4
//
//	[[augment.transforms]]
//	type = "random_flip_horizontal"
//	p = 0.5
//
//	[[augment.transforms]]
//	type = "random_crop"
//	padding = 4
//
//	[[init]]
//	name = "fc1.weight"
//	scheme = "kaiming_uniform"
//	fan_in = 784
//	fan_out = 128
package config

import (
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/born-ml/needle/internal/errors"
	"github.com/born-ml/needle/internal/nn"
	"github.com/born-ml/needle/internal/serialization"
	"github.com/born-ml/needle/internal/tensor"
)

// Transform type names accepted in [[augment.transforms]].
const (
	TransformFlip = "random_flip_horizontal"
	TransformCrop = "random_crop"
)

// Config is a complete run description.
type Config struct {
	Seed    uint64        `toml:"seed"`
	Output  string        `toml:"output"` // SafeTensors file for the initialized weights; empty skips saving
	Augment AugmentConfig `toml:"augment"`
	Init    []InitConfig  `toml:"init"`
}

// AugmentConfig describes the synthetic image and the pipeline applied to it.
type AugmentConfig struct {
	Height     int               `toml:"height"`
	Width      int               `toml:"width"`
	Channels   int               `toml:"channels"`
	Runs       int               `toml:"runs"`
	Transforms []TransformConfig `toml:"transforms"`
}

// TransformConfig is one pipeline stage. Unset parameters take the library defaults.
type TransformConfig struct {
	Type    string   `toml:"type"`
	P       *float64 `toml:"p"`
	Padding *int     `toml:"padding"`
}

// InitConfig describes one weight tensor to initialize.
type InitConfig struct {
	Name         string   `toml:"name"`
	Scheme       string   `toml:"scheme"`
	FanIn        int      `toml:"fan_in"`
	FanOut       int      `toml:"fan_out"`
	DType        string   `toml:"dtype"`
	Gain         *float64 `toml:"gain"`         // Xavier only
	Nonlinearity string   `toml:"nonlinearity"` // Kaiming only
}

// Load reads and validates a TOML run description from path.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read config %s", path)
	}
	return finish(cfg, md)
}

// Parse decodes and validates a TOML run description held in memory.
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse config")
	}
	return finish(cfg, md)
}

// Default returns the configuration used when a field is absent.
func Default() *Config {
	return &Config{
		Augment: AugmentConfig{
			Height:   32,
			Width:    32,
			Channels: 3,
			Runs:     1,
		},
	}
}

func finish(cfg *Config, md toml.MetaData) (*Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.New(errs.ErrCodeInvalidInput, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	for i := range cfg.Init {
		if cfg.Init[i].DType == "" {
			cfg.Init[i].DType = tensor.Float32.String()
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field the builders rely on.
func (c *Config) Validate() error {
	a := c.Augment
	if a.Height <= 0 || a.Width <= 0 || a.Channels <= 0 {
		return errs.New(errs.ErrCodeInvalidInput, "augment image must have positive dimensions, got %dx%dx%d", a.Height, a.Width, a.Channels)
	}
	if a.Runs < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "augment runs must be >= 0, got %d", a.Runs)
	}
	for i, t := range a.Transforms {
		switch t.Type {
		case TransformFlip, TransformCrop:
		default:
			return errs.New(errs.ErrCodeInvalidInput, "augment.transforms[%d]: unknown type %q", i, t.Type)
		}
	}

	seen := make(map[string]bool, len(c.Init))
	for i, in := range c.Init {
		if c.Output != "" {
			if err := serialization.ValidateTensorName(in.Name); err != nil {
				return errs.Wrap(errs.ErrCodeInvalidInput, err, "init[%d]", i)
			}
			if seen[in.Name] {
				return errs.New(errs.ErrCodeInvalidInput, "init[%d]: duplicate name %q", i, in.Name)
			}
			seen[in.Name] = true
		}
		if !nn.IsRegistered(in.Scheme) {
			return errs.New(errs.ErrCodeInvalidInput, "init[%d] (%s): unknown scheme %q", i, in.Name, in.Scheme)
		}
		if in.Gain != nil && !nn.UsesGain(in.Scheme) {
			return errs.New(errs.ErrCodeInvalidInput, "init[%d] (%s): gain is not used by %s", i, in.Name, in.Scheme)
		}
		if in.Nonlinearity != "" && !nn.UsesNonlinearity(in.Scheme) {
			return errs.New(errs.ErrCodeInvalidInput, "init[%d] (%s): nonlinearity is not used by %s", i, in.Name, in.Scheme)
		}
		if in.FanIn <= 0 || in.FanOut <= 0 {
			return errs.New(errs.ErrCodeInvalidInput, "init[%d] (%s): fan_in and fan_out must be positive", i, in.Name)
		}
		if dt, ok := tensor.ParseDataType(in.DType); !ok || (dt != tensor.Float32 && dt != tensor.Float64) {
			return errs.New(errs.ErrCodeInvalidInput, "init[%d] (%s): dtype must be float32 or float64, got %q", i, in.Name, in.DType)
		}
	}
	return nil
}

// NNConfig converts the entry into initializer options.
func (in InitConfig) NNConfig() nn.Config {
	return nn.Config{
		Gain:         in.Gain,
		Nonlinearity: nn.Nonlinearity(in.Nonlinearity),
	}
}
