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

// Package schema provides declarative value schemas for request and response
// shapes. A Schema can validate untyped input into a structured value or
// reject it with field-level errors, and can be introspected into a
// JSON-Schema-like Descriptor used for documentation generation.
//
// Schemas are immutable: every constraint method returns a new Schema value,
// so a shared base schema can be branched without interference.
//
// Example:
//
//	product := schema.Object(
//	    schema.F("id", schema.String().UUID()),
//	    schema.F("name", schema.String().MinLen(1).Describe("Product name")),
//	    schema.F("price", schema.Float().Min(0)),
//	    schema.F("note", schema.Optional(schema.String())),
//	)
package schema

import "sync"

// kind discriminates the schema variants.
type kind int

const (
	kindAny kind = iota
	kindString
	kindInteger
	kindNumber
	kindBoolean
	kindArray
	kindObject
	kindRecord
	kindEnum
	kindOneOf
	kindOptional
	kindDefault
	kindNullable
)

// Field is a named object property. Declaration order is preserved and
// flows through to generated documentation.
type Field struct {
	Name  string
	Value *Schema
}

// F constructs a Field. It exists so object declarations stay compact.
func F(name string, s *Schema) Field {
	return Field{Name: name, Value: s}
}

// Schema describes the shape of a value.
//
// The zero value is not usable; construct schemas through the package-level
// builders (String, Int, Object, ...).
type Schema struct {
	kind        kind
	description string
	format      string
	pattern     string
	minLen      *int
	maxLen      *int
	min         *float64
	max         *float64
	defaultVal  any
	enumVals    []string
	fields      []Field
	item        *Schema
	value       *Schema
	alts        []*Schema
	inner       *Schema

	compileOnce *sync.Once
	compiled    *compiledSchema
}

// clone returns a copy of s with its own compile cache and cloned slices.
// Nested schemas are shared; they are themselves immutable.
func (s *Schema) clone() *Schema {
	c := *s
	c.enumVals = append([]string(nil), s.enumVals...)
	c.fields = append([]Field(nil), s.fields...)
	c.alts = append([]*Schema(nil), s.alts...)
	c.compileOnce = new(sync.Once)
	c.compiled = nil
	return &c
}

func newSchema(k kind) *Schema {
	return &Schema{kind: k, compileOnce: new(sync.Once)}
}

// String declares a string schema.
func String() *Schema { return newSchema(kindString) }

// Int declares an integer schema.
func Int() *Schema { return newSchema(kindInteger) }

// Float declares a floating-point number schema.
func Float() *Schema { return newSchema(kindNumber) }

// Bool declares a boolean schema.
func Bool() *Schema { return newSchema(kindBoolean) }

// Any declares an unconstrained schema. It accepts every input and
// introspects to an empty descriptor.
func Any() *Schema { return newSchema(kindAny) }

// Object declares an object schema with the given fields. Field order is
// preserved.
func Object(fields ...Field) *Schema {
	s := newSchema(kindObject)
	s.fields = fields
	return s
}

// Array declares an array schema with the given item schema.
func Array(item *Schema) *Schema {
	s := newSchema(kindArray)
	s.item = item
	return s
}

// Record declares an object schema with arbitrary keys whose values all
// match the given schema.
func Record(value *Schema) *Schema {
	s := newSchema(kindRecord)
	s.value = value
	return s
}

// Enum declares a string schema restricted to the given values.
func Enum(values ...string) *Schema {
	s := newSchema(kindEnum)
	s.enumVals = values
	return s
}

// OneOf declares a schema matching exactly one of the given alternatives.
func OneOf(alts ...*Schema) *Schema {
	s := newSchema(kindOneOf)
	s.alts = alts
	return s
}

// Optional wraps a schema so that, as an object field, it is not required.
// The inner description and default are preserved by introspection.
func Optional(inner *Schema) *Schema {
	s := newSchema(kindOptional)
	s.inner = inner
	return s
}

// Default wraps a schema with a default value. A field with a default is
// not required; the default is filled in during validation when the key
// is absent.
func Default(inner *Schema, value any) *Schema {
	s := newSchema(kindDefault)
	s.inner = inner
	s.defaultVal = value
	return s
}

// Nullable wraps a schema so that null is also accepted.
func Nullable(inner *Schema) *Schema {
	s := newSchema(kindNullable)
	s.inner = inner
	return s
}

// Describe returns a copy of s carrying a human-readable description.
func (s *Schema) Describe(text string) *Schema {
	c := s.clone()
	c.description = text
	return c
}

// Min returns a copy of s with an inclusive minimum numeric value.
func (s *Schema) Min(v float64) *Schema {
	c := s.clone()
	c.min = &v
	return c
}

// Max returns a copy of s with an inclusive maximum numeric value.
func (s *Schema) Max(v float64) *Schema {
	c := s.clone()
	c.max = &v
	return c
}

// Positive constrains a numeric schema to values of at least zero.
func (s *Schema) Positive() *Schema {
	return s.Min(0)
}

// MinLen returns a copy of s with a minimum string length.
func (s *Schema) MinLen(n int) *Schema {
	c := s.clone()
	c.minLen = &n
	return c
}

// MaxLen returns a copy of s with a maximum string length.
func (s *Schema) MaxLen(n int) *Schema {
	c := s.clone()
	c.maxLen = &n
	return c
}

// Pattern returns a copy of s constrained by a regular expression.
func (s *Schema) Pattern(expr string) *Schema {
	c := s.clone()
	c.pattern = expr
	return c
}

// Format returns a copy of s with the given string format annotation.
func (s *Schema) Format(format string) *Schema {
	c := s.clone()
	c.format = format
	return c
}

// UUID constrains a string schema to RFC 4122 UUIDs.
func (s *Schema) UUID() *Schema { return s.Format("uuid") }

// Email constrains a string schema to email addresses.
func (s *Schema) Email() *Schema { return s.Format("email") }

// DateTime constrains a string schema to RFC 3339 timestamps.
func (s *Schema) DateTime() *Schema { return s.Format("date-time") }

// URI constrains a string schema to URIs.
func (s *Schema) URI() *Schema { return s.Format("uri") }

// isOmittable reports whether s, used as an object field, may be absent.
// Optional and defaulted fields are omittable through any wrapper nesting.
func (s *Schema) isOmittable() bool {
	switch s.kind {
	case kindOptional, kindDefault:
		return true
	case kindNullable:
		return s.inner.isOmittable()
	default:
		return false
	}
}
