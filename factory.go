package scs

// ValidJSON builds a constraint that accepts any syntactically valid JSON
// value under opts, with no schema constraint on shape.
func ValidJSON(opts JSONOptions) *SyntaxConstraint {
	return NewSyntaxConstraint(NewJSONParser(opts))
}

// ForceJSONSchema parses a schema-description source and wraps
// a schema-constrained parser bound to the result.
// compiler may be nil, in which case source is parsed fresh every call.
func ForceJSONSchema(compiler *SchemaCompiler, source string) (*SyntaxConstraint, error) {
	var (
		schema JSONSchema
		err    error
	)
	if compiler != nil {
		schema, err = compiler.Compile(source)
	} else {
		schema, err = parseSchemaSource(source)
	}
	if err != nil {
		return nil, err
	}
	return NewSyntaxConstraint(NewConstrainedJSONParser(schema)), nil
}

// OneOf builds a constraint that accepts exactly one of the given literal
// strings, matched via a MultiStringMatchParser.
func OneOf(candidates []string) *SyntaxConstraint {
	return NewSyntaxConstraint(NewMultiStringMatchParser(candidates, false))
}
