// Package config loads the printer configuration.
package config

import (
	"os"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/fxprint"
	"github.com/calebcase/fxprint/fixed"
	"github.com/calebcase/fxprint/pattern"
	"github.com/calebcase/fxprint/rep"
)

// Error is the config error class.
var Error = errs.Class("config")

// Config holds the printer configuration.
type Config struct {
	// Field is the inner representation field followed by the decoder.
	Field string `yaml:"field"`

	// MaxDepth bounds the representation chain.
	MaxDepth int `yaml:"max_depth"`

	// Format is "exact" or "float".
	Format string `yaml:"format"`

	Families []Family `yaml:"families"`
}

// Family is a fixed point family recognized by its type name.
type Family struct {
	Name string `yaml:"name"`

	// Pattern is a regular expression with a single capture group holding
	// the exponent literal.
	Pattern string `yaml:"pattern"`
}

// Default returns the built in configuration.
func Default() *Config {
	return &Config{
		Field:    rep.DefaultField,
		MaxDepth: rep.DefaultMaxDepth,
		Format:   fixed.FormatExact.String(),
		Families: []Family{
			{Name: "elastic_integer", Pattern: pattern.ElasticInteger},
			{Name: "scaled_integer", Pattern: pattern.ScaledInteger},
		},
	}
}

// Load reads the configuration file at path. Unset values keep their
// defaults.
func Load(path string) (c *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Error.Wrap(oops.Trace(err))
	}

	return Parse(data)
}

// Parse decodes and validates a configuration. Unset values keep their
// defaults.
func Parse(data []byte) (c *Config, err error) {
	defer Error.WrapP(&err)

	c = Default()

	err = yaml.Unmarshal(data, c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Field == "" {
		return Error.New("field: must not be empty")
	}

	if c.MaxDepth <= 0 {
		return Error.New("max_depth: must be positive, got %d", c.MaxDepth)
	}

	if _, err := fixed.ParseFormat(c.Format); err != nil {
		return Error.Wrap(err)
	}

	if len(c.Families) == 0 {
		return Error.New("families: at least one is required")
	}

	for i, f := range c.Families {
		if f.Name == "" {
			return Error.New("families[%d]: missing name", i)
		}

		if _, err := pattern.Compile(f.Pattern); err != nil {
			return Error.New("families[%d] (%s): %v", i, f.Name, err)
		}
	}

	return nil
}

// Registry builds the registry described by the configuration.
func (c *Config) Registry(log *zap.Logger) (r *fxprint.Registry, err error) {
	defer Error.WrapP(&err)

	if log == nil {
		log = zap.NewNop()
	}

	format, err := fixed.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}

	entries := make([]fxprint.Entry, 0, len(c.Families))
	for _, f := range c.Families {
		p, err := pattern.Compile(f.Pattern)
		if err != nil {
			return nil, err
		}

		entries = append(entries, fxprint.Entry{
			Pattern: p,
			New:     fxprint.NewFixedPoint,
		})

		log.Debug("family", zap.String("name", f.Name), zap.String("pattern", f.Pattern))
	}

	return fxprint.NewRegistry(fxprint.Options{
		Field:    c.Field,
		MaxDepth: c.MaxDepth,
		Format:   format,
		Logger:   log,
	}, entries...)
}
