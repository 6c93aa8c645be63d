package scs

import "sync"

// SchemaCompiler parses schema-description sources and caches
// the resulting JSONSchema trees, keyed by the exact source string.
type SchemaCompiler struct {
	mu      sync.RWMutex
	schemas map[string]JSONSchema
}

// NewSchemaCompiler returns a ready-to-use compiler with an empty cache.
func NewSchemaCompiler() *SchemaCompiler {
	return &SchemaCompiler{schemas: make(map[string]JSONSchema)}
}

// Compile parses source into a JSONSchema tree, returning a cached result
// when this exact source string has been compiled before.
func (c *SchemaCompiler) Compile(source string) (JSONSchema, error) {
	c.mu.RLock()
	if cached, ok := c.schemas[source]; ok {
		c.mu.RUnlock()
		return cached, nil
	}
	c.mu.RUnlock()

	schema, err := parseSchemaSource(source)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.schemas[source] = schema
	c.mu.Unlock()
	return schema, nil
}

// parseSchemaSource runs a fresh JSONSchemaParser over source to
// completion, treating the entire string (plus a trailing EOS) as one
// schema-description value.
func parseSchemaSource(source string) (JSONSchema, error) {
	p := NewJSONSchemaParser()
	if _, err := FeedAll(p, WithEOS(source)); err != nil {
		return nil, err
	}
	if p.Schema() == nil {
		return nil, NewParseFailure(ErrSchemaSyntax, "schema_empty_source", "schema source did not describe a value")
	}
	return p.Schema(), nil
}
