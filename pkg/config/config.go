/*
Package config manages TOML configuration for vocabulary building.
*/
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Build holds vocabulary builder options.
type Build struct {
	// ReplaceExisting controls whether re-adding a known word replaces
	// its score. The word keeps its id either way.
	ReplaceExisting bool `toml:"replace_existing"`

	// MinScore drops word-list entries scoring below it.
	MinScore float64 `toml:"min_score"`

	// DefaultScore is assigned to word-list lines without a score
	// column.
	DefaultScore float64 `toml:"default_score"`

	// SkipInvalid makes the word-list reader log and skip lines that
	// are not pure Hangul instead of failing.
	SkipInvalid bool `toml:"skip_invalid"`

	// TableCapacity is the initial score table capacity.
	TableCapacity int `toml:"table_capacity"`
}

// Config is the entire config structure.
type Config struct {
	Build Build `toml:"build"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Build: Build{
			ReplaceExisting: true,
			MinScore:        0,
			DefaultScore:    1,
			SkipInvalid:     true,
			TableCapacity:   4096,
		},
	}
}

// Load reads a TOML config file, falling back to built-in defaults when
// the file is missing or unparsable.
func Load(path string) *Config {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		log.Debugf("Config file %s not found, using built-in defaults", path)
		return cfg
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		log.Warnf("Failed to parse config file %s: %v. Using built-in defaults...", path, err)
		return Default()
	}
	log.Debugf("Loaded config from %s", path)
	return cfg
}
