package answers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/ctgdx/internal/catalog"
)

const draft = "https://json-schema.org/draft/2020-12/schema"

// schemaCache caches compiled schemas per catalog.
var schemaCache sync.Map // map[*catalog.Catalog]*jsonschema.Schema

// Schema returns the JSON Schema for an answer document over cat: an
// object with one required string property per question, restricted to
// that question's legal codes.
func Schema(cat *catalog.Catalog) map[string]any {
	props := make(map[string]any, cat.Total())
	required := make([]any, 0, cat.Total())
	for _, q := range cat.Questions() {
		enum := make([]any, 0, len(q.Options))
		for _, c := range q.Codes() {
			enum = append(enum, string(c))
		}
		props[string(q.ID)] = map[string]any{
			"description": q.Prompt,
			"type":        "string",
			"enum":        enum,
		}
		required = append(required, string(q.ID))
	}
	return map[string]any{
		"$schema":              draft,
		"title":                "CTG answer vector",
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

// SchemaJSON returns Schema(cat) as indented JSON.
func SchemaJSON(cat *catalog.Catalog) ([]byte, error) {
	return json.MarshalIndent(Schema(cat), "", "  ")
}

// compiled returns the cached compiled schema for cat, compiling it on
// first use.
func compiled(cat *catalog.Catalog) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(cat); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value, not Go maps of typed slices.
	raw, err := SchemaJSON(cat)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://answers.json"
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(cat, sch)
	return sch, nil
}
