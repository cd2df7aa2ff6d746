package config

import (
	"errors"
	"fmt"
	"math/bits"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ndspace/internal/nd"
)

const (
	DefaultBackend  = "auto"
	DefaultMinChunk = 1024
)

var (
	ErrInvalidRank   = errors.New("config: range must have 1 to 3 extents")
	ErrOffsetRank    = errors.New("config: offset rank differs from range rank")
	ErrEmptyExtent   = errors.New("config: range extents must be positive")
	ErrNegativeValue = errors.New("config: workers and min_chunk must not be negative")
)

type Config struct {
	Range    []uint `yaml:"range"`
	Offset   []uint `yaml:"offset,omitempty"`
	Backend  string `yaml:"backend"`
	Workers  int    `yaml:"workers"`
	MinChunk int    `yaml:"min_chunk"`
	Verify   bool   `yaml:"verify"`
}

func DefaultConfig() *Config {
	return &Config{
		Range:    []uint{4, 5},
		Backend:  DefaultBackend,
		MinChunk: DefaultMinChunk,
		Verify:   true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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
	if len(c.Range) == 0 || len(c.Range) > nd.MaxDims {
		return fmt.Errorf("%w, got %d", ErrInvalidRank, len(c.Range))
	}
	for i, e := range c.Range {
		if e == 0 {
			return fmt.Errorf("%w: dimension %d is 0", ErrEmptyExtent, i)
		}
	}
	size := uint(1)
	for _, e := range c.Range {
		hi, lo := bits.Mul(size, e)
		if hi != 0 {
			return fmt.Errorf("%w: range %v has more items than a uint can count", nd.ErrOutOfRange, c.Range)
		}
		size = lo
	}
	if len(c.Offset) != 0 && len(c.Offset) != len(c.Range) {
		return fmt.Errorf("%w: %d vs %d", ErrOffsetRank, len(c.Offset), len(c.Range))
	}
	if c.Workers < 0 || c.MinChunk < 0 {
		return ErrNegativeValue
	}
	return nil
}

func (c *Config) Rank() int { return len(c.Range) }

// GetOffset returns the offset, padded with zeros to the range rank.
func (c *Config) GetOffset() []uint {
	off := make([]uint, len(c.Range))
	copy(off, c.Offset)
	return off
}
