package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/dyluth/tailsum/pkg/sequence"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory when --config is not given
const DefaultPath = "tailsum.yml"

// DefaultAddr is the HTTP listen address used by `tailsum serve`
const DefaultAddr = ":8080"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their YAML names so errors match what users wrote
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Config represents the top-level tailsum.yml configuration
type Config struct {
	Version  string          `yaml:"version"`
	Alphabet *AlphabetConfig `yaml:"alphabet,omitempty"`
	Search   *SearchConfig   `yaml:"search,omitempty"`
	Server   *ServerConfig   `yaml:"server,omitempty"`
}

// AlphabetConfig lists the values sequences are built from
type AlphabetConfig struct {
	Numbers []int `yaml:"numbers" validate:"required,min=1,unique"`
	Hits    []int `yaml:"hits" validate:"unique"`
}

// SearchConfig tunes the body search window and depth (default [-300, 400], depth 50)
type SearchConfig struct {
	MinSum   *int `yaml:"min_sum,omitempty" validate:"omitempty,lte=0"`
	MaxSum   *int `yaml:"max_sum,omitempty" validate:"omitempty,gte=0"`
	MaxDepth *int `yaml:"max_depth,omitempty" validate:"omitempty,gte=0"`
}

// ServerConfig configures `tailsum serve`
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// Default returns the built-in configuration with all defaults applied
func Default() *Config {
	c := &Config{Version: "1.0"}
	c.applyDefaults()
	return c
}

// Validate performs strict validation on the configuration and fills in defaults
func (c *Config) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	c.applyDefaults()

	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	// Hits must be drawn from numbers
	if _, err := sequence.NewAlphabet(c.Alphabet.Numbers, c.Alphabet.Hits); err != nil {
		return fmt.Errorf("alphabet: %w", err)
	}

	if err := c.Bounds().Validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	return nil
}

// applyDefaults fills omitted sections and fields
func (c *Config) applyDefaults() {
	if c.Alphabet == nil {
		c.Alphabet = &AlphabetConfig{
			Numbers: sequence.DefaultNumbers(),
			Hits:    sequence.DefaultHits(),
		}
	}

	if c.Search == nil {
		c.Search = &SearchConfig{}
	}
	defaults := sequence.DefaultBounds()
	if c.Search.MinSum == nil {
		minSum := defaults.MinSum
		c.Search.MinSum = &minSum
	}
	if c.Search.MaxSum == nil {
		maxSum := defaults.MaxSum
		c.Search.MaxSum = &maxSum
	}
	if c.Search.MaxDepth == nil {
		maxDepth := defaults.MaxDepth
		c.Search.MaxDepth = &maxDepth
	}

	if c.Server == nil {
		c.Server = &ServerConfig{}
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
}

// formatValidationError turns validator field errors into a single readable error
func formatValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed '%s=%s' (got %v)", field, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed '%s' (got %v)", field, fe.Tag(), fe.Value()))
		}
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

// BuildAlphabet builds the alphabet described by the configuration.
// Call only after a successful Validate.
func (c *Config) BuildAlphabet() (*sequence.Alphabet, error) {
	return sequence.NewAlphabet(c.Alphabet.Numbers, c.Alphabet.Hits)
}

// Bounds returns the configured search bounds
func (c *Config) Bounds() sequence.Bounds {
	return sequence.Bounds{
		MinSum:   *c.Search.MinSum,
		MaxSum:   *c.Search.MaxSum,
		MaxDepth: *c.Search.MaxDepth,
	}
}

// Warnings reports settings that are valid but likely to make targets unreachable
func (c *Config) Warnings() []string {
	alphabet, err := c.BuildAlphabet()
	if err != nil {
		return nil
	}

	var warnings []string
	lo, hi := alphabet.Span()
	b := c.Bounds()
	if hi > 0 && b.MaxSum < hi {
		warnings = append(warnings, fmt.Sprintf(
			"search.max_sum (%d) is below the largest alphabet value (%d): positive targets may be reported unreachable", b.MaxSum, hi))
	}
	if lo < 0 && b.MinSum > lo {
		warnings = append(warnings, fmt.Sprintf(
			"search.min_sum (%d) is above the smallest alphabet value (%d): negative targets may be reported unreachable", b.MinSum, lo))
	}
	if b.MaxDepth == 0 {
		warnings = append(warnings, "search.max_depth is 0: bodies are limited to a single element")
	}

	return warnings
}

// Load reads and validates tailsum.yml from the specified path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOrDefault loads path if it exists and falls back to Default otherwise.
// The boolean reports whether a file was read.
func LoadOrDefault(path string) (*Config, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}

	config, err := Load(path)
	if err != nil {
		return nil, false, err
	}
	return config, true, nil
}
