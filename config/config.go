package config

import (
	"path/filepath"
	"runtime"
)

import (
	"github.com/BurntSushi/toml"
	"github.com/timtadh/data-structures/errors"
)

// Selection controls which ranks of each pattern pool become features.
type Selection struct {
	TopK      int `toml:"top_k"`
	BandStart int `toml:"band_start"`
	BandWidth int `toml:"band_width"`
}

func DefaultSelection() Selection {
	return Selection{
		TopK:      12,
		BandStart: 27,
		BandWidth: 13,
	}
}

func (s Selection) Validate() error {
	if s.TopK < 0 {
		return errors.Errorf("top_k must be >= 0, got %d", s.TopK)
	}
	if s.BandStart < 0 {
		return errors.Errorf("band_start must be >= 0, got %d", s.BandStart)
	}
	if s.BandWidth < 0 {
		return errors.Errorf("band_width must be >= 0, got %d", s.BandWidth)
	}
	return nil
}

type Config struct {
	Cache         string    `toml:"cache"`
	Output        string    `toml:"output"`
	Parallelism   int       `toml:"parallelism"`
	Total         int       `toml:"total"`
	HeaderMarkers []string  `toml:"header_markers"`
	Selection     Selection `toml:"selection"`
}

func Default() *Config {
	return &Config{
		HeaderMarkers: []string{"t #", "#"},
		Selection:     DefaultSelection(),
	}
}

// LoadToml overlays the settings in the file at path onto c. Keys absent
// from the file keep their current values.
func LoadToml(path string, c *Config) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return errors.Errorf("could not decode config %v: %v", path, err)
	}
	return c.Selection.Validate()
}

func (c *Config) Copy() *Config {
	markers := make([]string, len(c.HeaderMarkers))
	copy(markers, c.HeaderMarkers)
	return &Config{
		Cache:         c.Cache,
		Output:        c.Output,
		Parallelism:   c.Parallelism,
		Total:         c.Total,
		HeaderMarkers: markers,
		Selection:     c.Selection,
	}
}

func (c *Config) Markers() []string {
	if len(c.HeaderMarkers) == 0 {
		return Default().HeaderMarkers
	}
	return c.HeaderMarkers
}

func (c *Config) Workers() int {
	if c.Parallelism == 0 {
		return 1
	} else if c.Parallelism < 0 {
		return runtime.NumCPU()
	} else {
		return c.Parallelism
	}
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	if c.Output == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Output, name)
}
