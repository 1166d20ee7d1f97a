// Copyright 2026 The Typeful API Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntrospect_String(t *testing.T) {
	t.Parallel()

	d := String().MinLen(2).MaxLen(10).Pattern("^[a-z]+$").Describe("a name").Introspect()

	assert.Equal(t, "string", d.Type)
	require.NotNil(t, d.MinLength)
	assert.Equal(t, 2, *d.MinLength)
	require.NotNil(t, d.MaxLength)
	assert.Equal(t, 10, *d.MaxLength)
	assert.Equal(t, "^[a-z]+$", d.Pattern)
	assert.Equal(t, "a name", d.Description)
}

func TestIntrospect_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		schema *Schema
		format string
	}{
		{"uuid", String().UUID(), "uuid"},
		{"email", String().Email(), "email"},
		{"date-time", String().DateTime(), "date-time"},
		{"uri", String().URI(), "uri"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.format, tt.schema.Introspect().Format)
		})
	}
}

func TestIntrospect_Numbers(t *testing.T) {
	t.Parallel()

	d := Int().Min(1).Max(100).Introspect()
	assert.Equal(t, "integer", d.Type)
	require.NotNil(t, d.Minimum)
	assert.Equal(t, 1.0, *d.Minimum)
	require.NotNil(t, d.Maximum)
	assert.Equal(t, 100.0, *d.Maximum)

	d = Float().Positive().Introspect()
	assert.Equal(t, "number", d.Type)
	require.NotNil(t, d.Minimum)
	assert.Equal(t, 0.0, *d.Minimum)
}

func TestIntrospect_ObjectRequired(t *testing.T) {
	t.Parallel()

	d := Object(
		F("id", String().UUID()),
		F("name", String()),
		F("note", Optional(String())),
		F("limit", Default(Int(), 20)),
		F("tag", Nullable(String())),
	).Introspect()

	assert.Equal(t, "object", d.Type)
	assert.Equal(t, []string{"id", "name", "note", "limit", "tag"}, d.PropertyNames())
	assert.Equal(t, []string{"id", "name", "tag"}, d.Required)
	assert.True(t, d.IsRequired("id"))
	assert.False(t, d.IsRequired("note"))
	assert.False(t, d.IsRequired("limit"))
}

func TestIntrospect_WrapperUnwrapping(t *testing.T) {
	t.Parallel()

	t.Run("optional unwraps to inner type", func(t *testing.T) {
		t.Parallel()
		d := Optional(String().Email()).Introspect()
		assert.Equal(t, "string", d.Type)
		assert.Equal(t, "email", d.Format)
	})

	t.Run("default keeps its value", func(t *testing.T) {
		t.Parallel()
		d := Default(Int(), 20).Introspect()
		assert.Equal(t, "integer", d.Type)
		assert.Equal(t, 20, d.Default)
	})

	t.Run("nullable marks the inner descriptor", func(t *testing.T) {
		t.Parallel()
		d := Nullable(String()).Introspect()
		assert.Equal(t, "string", d.Type)
		assert.True(t, d.Nullable)
	})

	t.Run("optional of nullable of default", func(t *testing.T) {
		t.Parallel()
		d := Optional(Nullable(Default(Int(), 5))).Introspect()
		assert.Equal(t, "integer", d.Type)
		assert.True(t, d.Nullable)
		assert.Equal(t, 5, d.Default)
	})
}

func TestIntrospect_DescriptionsRoundTripAtEveryDepth(t *testing.T) {
	t.Parallel()

	s := Object(
		F("items", Array(
			Object(
				F("sku", String().Describe("stock keeping unit")),
			).Describe("one line item"),
		).Describe("ordered items")),
	).Describe("an order")

	d := s.Introspect()
	assert.Equal(t, "an order", d.Description)
	items := d.Properties["items"]
	require.NotNil(t, items)
	assert.Equal(t, "ordered items", items.Description)
	require.NotNil(t, items.Items)
	assert.Equal(t, "one line item", items.Items.Description)
	assert.Equal(t, "stock keeping unit", items.Items.Properties["sku"].Description)
}

func TestIntrospect_EnumRecordOneOf(t *testing.T) {
	t.Parallel()

	d := Enum("draft", "published").Introspect()
	assert.Equal(t, "string", d.Type)
	assert.Equal(t, []string{"draft", "published"}, d.Enum)

	d = Record(Int()).Introspect()
	assert.Equal(t, "object", d.Type)
	require.NotNil(t, d.AdditionalProperties)
	assert.Equal(t, "integer", d.AdditionalProperties.Type)

	d = OneOf(String(), Int()).Introspect()
	assert.Empty(t, d.Type)
	require.Len(t, d.OneOf, 2)
	assert.Equal(t, "string", d.OneOf[0].Type)
	assert.Equal(t, "integer", d.OneOf[1].Type)
}

func TestIntrospect_UnsupportedDegradesToUnconstrained(t *testing.T) {
	t.Parallel()

	d := Any().Introspect()
	assert.Empty(t, d.Type)
	assert.Empty(t, d.Properties)

	var s *Schema
	assert.NotNil(t, s.Introspect())
}

func TestSchemaImmutability(t *testing.T) {
	t.Parallel()

	base := String()
	withMin := base.MinLen(3)
	withFormat := base.Email()

	assert.Nil(t, base.Introspect().MinLength)
	assert.Empty(t, base.Introspect().Format)
	require.NotNil(t, withMin.Introspect().MinLength)
	assert.Equal(t, 3, *withMin.Introspect().MinLength)
	assert.Empty(t, withMin.Introspect().Format)
	assert.Equal(t, "email", withFormat.Introspect().Format)
	assert.Nil(t, withFormat.Introspect().MinLength)
}
