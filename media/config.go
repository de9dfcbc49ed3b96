package media

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the declarative form of a Pipeline's options.
//
//	name: playlist-cleanup
//	excluded_artist: Rick Astley
type Config struct {
	Name           string `yaml:"name"`
	ExcludedArtist string `yaml:"excluded_artist"`
}

// ParseConfig decodes a YAML document. Unknown keys are rejected; an empty
// document yields the zero Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse media config: %w", err)
	}
	return cfg, nil
}

// FromConfig applies every option cfg sets.
func FromConfig(cfg Config) Option {
	return func(p *Pipeline) {
		if cfg.Name != "" {
			p.name = cfg.Name
		}
		p.excludedArtist = cfg.ExcludedArtist
	}
}
