// Package config loads navtree settings.
//
// Values are layered: built-in defaults, then an optional HCL file, then
// NAVTREE_* environment variables. Command-line flags are applied last by the
// caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/agentic-research/navtree/internal/icon"
	"github.com/agentic-research/navtree/internal/ingest"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// DefaultFile is read when present and no other file is named.
const DefaultFile = "navtree.hcl"

// Config holds every run setting.
type Config struct {
	// Layout selects the CSV variant: portal, basic or legacy.
	Layout string `env:"NAVTREE_LAYOUT" default:"portal"`

	// InputDir is searched for the newest *.csv when no file is given.
	InputDir string `env:"NAVTREE_INPUT_DIR" default:"csv_input"`

	// Output is the JSON document path.
	Output string `env:"NAVTREE_OUTPUT" default:"data.json"`

	// SQLite is an optional export database path.
	SQLite string `env:"NAVTREE_SQLITE"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `env:"NAVTREE_LOG_LEVEL" default:"info"`

	// LogFormat is text or json.
	LogFormat string `env:"NAVTREE_LOG_FORMAT" default:"text"`

	// Icons are placed ahead of the curated glyph table.
	Icons []icon.Entry
}

// file mirrors the HCL file layout.
type file struct {
	Layout    string      `hcl:"layout,optional"`
	InputDir  string      `hcl:"input_dir,optional"`
	Output    string      `hcl:"output,optional"`
	SQLite    string      `hcl:"sqlite,optional"`
	LogLevel  string      `hcl:"log_level,optional"`
	LogFormat string      `hcl:"log_format,optional"`
	Icons     []iconBlock `hcl:"icon,block"`
}

type iconBlock struct {
	Name  string `hcl:"name,label"`
	Glyph string `hcl:"glyph"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyTags(reflect.ValueOf(cfg).Elem(), func(f reflect.StructField) string {
		return f.Tag.Get("default")
	})
	return cfg
}

// Load builds the configuration from defaults, the HCL file at path and the
// environment. An empty path reads DefaultFile if it exists. The result is not
// validated; callers apply their flag overrides first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config load: %w", err)
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	var f file
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Layout, f.Layout)
	set(&c.InputDir, f.InputDir)
	set(&c.Output, f.Output)
	set(&c.SQLite, f.SQLite)
	set(&c.LogLevel, f.LogLevel)
	set(&c.LogFormat, f.LogFormat)
	for _, b := range f.Icons {
		c.Icons = append(c.Icons, icon.Entry{Name: b.Name, Glyph: b.Glyph})
	}
	return nil
}

func (c *Config) mergeEnv() error {
	return applyTags(reflect.ValueOf(c).Elem(), func(f reflect.StructField) string {
		name := f.Tag.Get("env")
		if name == "" {
			return ""
		}
		return os.Getenv(name)
	})
}

// applyTags sets every string, int or bool field for which lookup returns a
// non-empty value.
func applyTags(v reflect.Value, lookup func(reflect.StructField) string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)
		if !fieldVal.CanSet() {
			continue
		}

		value := lookup(field)
		if value == "" {
			continue
		}

		switch fieldVal.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Int:
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer for %s=%q: %w", field.Name, value, err)
			}
			fieldVal.SetInt(int64(n))
		case reflect.Bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean for %s=%q: %w", field.Name, value, err)
			}
			fieldVal.SetBool(b)
		default:
			// Slices and nested values only come from the file.
		}
	}
	return nil
}

// Validate checks every setting and reports all failures at once.
func (c *Config) Validate() error {
	var errs []string

	if _, err := ingest.LookupLayout(c.Layout); err != nil {
		errs = append(errs, err.Error())
	}
	if strings.TrimSpace(c.InputDir) == "" {
		errs = append(errs, "input_dir must not be empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		errs = append(errs, "output must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("log_level (%q) must be one of: debug, info, warn, error", c.LogLevel))
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.LogFormat)] {
		errs = append(errs, fmt.Sprintf("log_format (%q) must be one of: text, json", c.LogFormat))
	}

	for _, e := range c.Icons {
		if strings.TrimSpace(e.Name) == "" {
			errs = append(errs, "icon block needs a non-empty name")
		}
		if strings.TrimSpace(e.Glyph) == "" {
			errs = append(errs, fmt.Sprintf("icon %q needs a non-empty glyph", e.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
