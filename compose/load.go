package compose

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// tableFile is the YAML layout of a custom keyword table:
//
//	fallback: ["✨", "💫"]
//	keywords:
//	  rain: ["🌧️", "☔"]
type tableFile struct {
	Fallback []string            `yaml:"fallback"`
	Keywords map[string][]string `yaml:"keywords"`
}

// Load reads a YAML keyword table from r and builds a Composer from it.
// Unknown fields are rejected. A missing fallback list falls back to the
// built-in one.
func Load(r io.Reader) (*Composer, error) {
	var f tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("compose: empty table file")
		}
		return nil, fmt.Errorf("compose: decode table: %w", err)
	}

	fallback := f.Fallback
	if fallback == nil {
		fallback = builtinFallback
	}
	return New(f.Keywords, fallback)
}

// LoadFile is Load on the named file.
func LoadFile(path string) (*Composer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Load(file)
}
