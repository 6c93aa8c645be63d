package scs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSchemaParserObjectWithRequiredAndOptional(t *testing.T) {
	p := NewJSONSchemaParser()
	done, err := FeedAll(p, WithEOS("{name:string,age:number,city?:string}"))
	require.NoError(t, err)
	assert.True(t, done)

	schema, ok := p.Schema().(*ObjectSchema)
	require.True(t, ok)
	assert.Equal(t, []string{"name", "age"}, schema.RequiredKeys())
	assert.Equal(t, []string{"city"}, schema.OptionalKeys())

	name := schema.ChildSchema("name").(*BaseTypeSchema)
	assert.Equal(t, StringType, name.Type)
	age := schema.ChildSchema("age").(*BaseTypeSchema)
	assert.Equal(t, NumberType, age.Type)
}

func TestJSONSchemaParserBareListSchema(t *testing.T) {
	p := NewJSONSchemaParser()
	done, err := FeedAll(p, WithEOS("[]{key2:string}"))
	require.NoError(t, err)
	assert.True(t, done)

	schema, ok := p.Schema().(*ObjectSchema)
	require.True(t, ok)
	assert.True(t, schema.IsList())
}

func TestJSONSchemaParserNestedObjectProperty(t *testing.T) {
	p := NewJSONSchemaParser()
	done, err := FeedAll(p, WithEOS("{inner:{a:number}}"))
	require.NoError(t, err)
	assert.True(t, done)

	outer := p.Schema().(*ObjectSchema)
	inner := outer.ChildSchema("inner").(*ObjectSchema)
	assert.Equal(t, []string{"a"}, inner.RequiredKeys())
}

func TestJSONSchemaParserCaseInsensitiveBaseType(t *testing.T) {
	p := NewJSONSchemaParser()
	done, err := FeedAll(p, WithEOS("{x:NUMBER}"))
	require.NoError(t, err)
	assert.True(t, done)
}

func TestJSONSchemaParserRejectsTrailingInput(t *testing.T) {
	p := NewJSONSchemaParser()
	_, err := FeedAll(p, Chars("{a:string}"))
	require.NoError(t, err)
	_, err = p.Feed(R('x'))
	require.ErrorIs(t, err, ErrTrailingInput)
}

func TestJSONSchemaParserRejectsUnknownTypeKeyword(t *testing.T) {
	p := NewJSONSchemaParser()
	_, err := FeedAll(p, Chars("{a:"))
	require.NoError(t, err)
	_, err = p.Feed(R('x'))
	require.ErrorIs(t, err, ErrUnexpectedChar)
}

func TestObjectSchemaEqualIsOrderSensitive(t *testing.T) {
	a := &ObjectSchema{Children: []ObjectSchemaEntry{
		{Key: Key{Name: "a"}, Value: Value{Definition: &BaseTypeSchema{Type: StringType}}},
		{Key: Key{Name: "b"}, Value: Value{Definition: &BaseTypeSchema{Type: NumberType}}},
	}}
	b := &ObjectSchema{Children: []ObjectSchemaEntry{
		{Key: Key{Name: "b"}, Value: Value{Definition: &BaseTypeSchema{Type: NumberType}}},
		{Key: Key{Name: "a"}, Value: Value{Definition: &BaseTypeSchema{Type: StringType}}},
	}}
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
}
