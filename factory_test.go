package scs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidJSONAcceptsAnyShape(t *testing.T) {
	c := ValidJSON(JSONOptions{AllowWhitespaceFormatting: true, AllowOuterList: true})
	done, err := FeedAll(c.parser, WithEOS(`[1, 2, {"a": "b"}]`))
	require.NoError(t, err)
	assert.True(t, done)
}

func TestForceJSONSchemaWithoutCompilerParsesFresh(t *testing.T) {
	c, err := ForceJSONSchema(nil, "{name:string}")
	require.NoError(t, err)
	done, err := c.Advance(WithEOS(`{"name":"x"}`))
	require.NoError(t, err)
	assert.True(t, done)
}

func TestForceJSONSchemaWithCompilerReusesCache(t *testing.T) {
	compiler := NewSchemaCompiler()
	c1, err := ForceJSONSchema(compiler, "{name:string}")
	require.NoError(t, err)
	c2, err := ForceJSONSchema(compiler, "{name:string}")
	require.NoError(t, err)
	assert.NotSame(t, c1, c2, "each call builds its own constraint even when the schema is shared")
}

func TestForceJSONSchemaPropagatesBadSource(t *testing.T) {
	_, err := ForceJSONSchema(nil, "not a schema")
	require.Error(t, err)
}

func TestOneOfAcceptsOnlyDeclaredLiterals(t *testing.T) {
	c := OneOf([]string{"yes", "no"})
	assert.True(t, c.WouldAcceptString("yes"))
	assert.False(t, c.WouldAcceptString("maybe"))
}
