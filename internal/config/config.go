// Package config loads the optional fmtcheck configuration file.
package config

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andyballingall/fmtcheck/internal/formatter"
	"github.com/andyballingall/fmtcheck/internal/validator"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".fmtcheck.yml"

// SchemaID identifies the embedded configuration schema.
const SchemaID = "https://fmtcheck.local/config.schema.json"

//go:embed config.schema.json
var schemaJSON []byte

// Output selects how diagnostics are written to stdout.
type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
)

type Config struct {
	// Style is passed to the formatter as -style=<Style>.
	Style string `yaml:"style"`
	// ExtraArgs are inserted before the replacement-listing flag.
	ExtraArgs []string `yaml:"extraArgs"`
	Output    Output   `yaml:"output"`
	// Colour enables colour on terminals. Nil means enabled.
	Colour *bool `yaml:"colour"`

	Path string `yaml:"-"` // set when loaded from a file
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Style:  formatter.DefaultStyle,
		Output: OutputText,
	}
}

// UseColour reports whether colour output is allowed.
func (c *Config) UseColour() bool {
	return c.Colour == nil || *c.Colour
}

// New reads and validates the configuration file at path.
func New(path string, compiler validator.Compiler) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &MissingConfigError{Path: path}
	}
	if err != nil {
		return nil, err
	}

	var doc any
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, &InvalidYAMLError{Path: path, Wrapped: err}
	}

	cfg := Default()
	cfg.Path = path
	if doc == nil {
		// empty file
		return cfg, nil
	}

	if err = validate(compiler, doc); err != nil {
		return nil, &InvalidConfigError{Path: path, Wrapped: err}
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, &InvalidYAMLError{Path: path, Wrapped: err}
	}
	return cfg, nil
}

func validate(compiler validator.Compiler, doc any) error {
	schema, err := validator.DecodeJSON(schemaJSON)
	if err != nil {
		return err
	}
	if err = compiler.AddSchema(SchemaID, schema); err != nil {
		return err
	}
	v, err := compiler.Compile(SchemaID)
	if err != nil {
		return err
	}
	normalised, err := validator.Normalise(doc)
	if err != nil {
		return err
	}
	return v.Validate(normalised)
}
