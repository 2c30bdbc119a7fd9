// Package cliconfig is the process configuration layer (SPEC_FULL.md's
// ambient-layers table): cache size, registry selection, the optional
// filter expression, and the disk-cache toggle, loaded through Viper the
// way the teacher's config package reads YAML/TOML/env. Nothing here
// changes the core library's semantics; it only configures how the CLI
// constructs a convert.Facade.
package cliconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every knob the CLI exposes over the library default.
type Config struct {
	// CacheCapacity bounds the in-process result cache (spec.md §3
	// invariant iv default: 128).
	CacheCapacity int `mapstructure:"cache_capacity"`

	// Generators is decoded from the "generators" key, but the convert
	// command does not read it: every registered generator runs, in
	// registration order, whatever it holds.
	Generators []string `mapstructure:"generators"`

	// FilterExpr is the optional gomplate template class filter
	// (SPEC_FULL.md §4.F). Empty is a no-op pass-through.
	FilterExpr string `mapstructure:"filter_expr"`

	// DiskCache toggles the CLI-only on-disk parse cache (SPEC_FULL.md
	// §4.H); it never affects the library facade.
	DiskCache bool `mapstructure:"disk_cache"`

	// DiskCacheDir is where the disk cache's SQLite file lives when
	// DiskCache is enabled. Defaults to "~/.cache/javauml" if empty.
	DiskCacheDir string `mapstructure:"disk_cache_dir"`

	// RateLimitPerSecond bounds how many cache-miss conversions may start
	// per second (SPEC_FULL.md §4.G); 0 means unlimited.
	RateLimitPerSecond float64 `mapstructure:"rate_limit_per_second"`
}

// Default returns the configuration the CLI falls back to with no
// config file or flags present.
func Default() Config {
	return Config{
		CacheCapacity: 128,
	}
}

// Load reads configuration via the process-wide Viper instance
// (populated by cmd.initConfig's yaml/toml/env search), overlaying it
// onto Default().
func Load(v *viper.Viper) (Config, error) {
	cfg := Default()
	if v == nil {
		return cfg, nil
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("cliconfig: decode configuration: %w", err)
	}
	if cfg.CacheCapacity <= 0 {
		cfg.CacheCapacity = 128
	}
	return cfg, nil
}
