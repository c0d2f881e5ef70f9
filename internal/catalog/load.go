package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var seedYAML []byte

// def is the package-level catalog built from the embedded seed data.
var def *Catalog

func init() {
	c, err := Parse(seedYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded seed data is invalid: %v", err))
	}
	def = c
}

// Default returns the catalog shipped with the binary.
func Default() *Catalog {
	return def
}

// SeedYAML returns a copy of the embedded catalog document.
func SeedYAML() []byte {
	return bytes.Clone(seedYAML)
}

// document is the on-disk catalog layout.
type document struct {
	Questions  []Question      `yaml:"questions"`
	Scenarios  []Scenario      `yaml:"scenarios"`
	Exclusions []ExclusionRule `yaml:"exclusions"`
}

// LoadFile reads, parses, and validates a catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a single YAML catalog document and validates it. Unknown
// fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml: empty document")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return New(doc.Questions, doc.Scenarios, doc.Exclusions)
}
