// Package config loads the YAML configuration of the m3u8 command-line tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mogiioin/hls-tagline/m3u8"
)

// Config is the file configuration.
type Config struct {
	LogLevel string    `yaml:"log_level"`
	AdFilter *AdFilter `yaml:"ad_filter"`
}

// AdFilter mirrors m3u8.AdFilter. Omitted lists keep the Twitch defaults;
// empty lists clear them.
type AdFilter struct {
	TitlePrefixes     *[]string `yaml:"title_prefixes"`
	Classes           *[]string `yaml:"classes"`
	SourcePrefixes    *[]string `yaml:"source_prefixes"`
	DropTags          *[]string `yaml:"drop_tags"`
	DropDiscontinuity *bool     `yaml:"drop_discontinuity"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads the configuration at path. An empty path yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration. Unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("strict config parse error: %w", err)
	}
	return cfg, nil
}

// Filter builds the ad filter, starting from m3u8.TwitchAdFilter.
func (c Config) Filter() m3u8.AdFilter {
	f := m3u8.TwitchAdFilter()
	if c.AdFilter == nil {
		return f
	}
	if c.AdFilter.TitlePrefixes != nil {
		f.TitlePrefixes = *c.AdFilter.TitlePrefixes
	}
	if c.AdFilter.Classes != nil {
		f.Classes = *c.AdFilter.Classes
	}
	if c.AdFilter.SourcePrefixes != nil {
		f.SourcePrefixes = *c.AdFilter.SourcePrefixes
	}
	if c.AdFilter.DropTags != nil {
		f.DropTags = *c.AdFilter.DropTags
	}
	if c.AdFilter.DropDiscontinuity != nil {
		f.DropDiscontinuity = *c.AdFilter.DropDiscontinuity
	}
	return f
}
