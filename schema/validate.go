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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer localizes validation messages produced by the JSON Schema engine.
var printer = message.NewPrinter(language.English)

// uuidFormat asserts RFC 4122 UUID strings.
var uuidFormat = &jsonschema.Format{
	Name: "uuid",
	Validate: func(v any) error {
		s, ok := v.(string)
		if !ok {
			return nil
		}
		return uuid.Validate(s)
	},
}

// FieldError describes a single validation failure.
type FieldError struct {
	// Path locates the failing value, dot-separated from the input root.
	// Empty for failures of the input value itself.
	Path string `json:"path"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

// ValidationError reports that an input did not match a schema. It carries
// one FieldError per failing leaf.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "schema: validation failed"
	}
	var sb strings.Builder
	sb.WriteString("schema: validation failed: ")
	for i, f := range e.Fields {
		if i > 0 {
			sb.WriteString("; ")
		}
		if f.Path != "" {
			sb.WriteString(f.Path)
			sb.WriteString(": ")
		}
		sb.WriteString(f.Message)
	}
	return sb.String()
}

type compiledSchema struct {
	schema *jsonschema.Schema
	err    error
}

// compile builds and caches the JSON Schema validator for s.
func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.AssertFormat()
		c.RegisterFormat(uuidFormat)

		compiled := &compiledSchema{}
		doc, err := normalize(s.jsonValue())
		if err != nil {
			compiled.err = fmt.Errorf("schema: encode: %w", err)
			s.compiled = compiled
			return
		}
		if err := c.AddResource("schema.json", doc); err != nil {
			compiled.err = fmt.Errorf("schema: add resource: %w", err)
			s.compiled = compiled
			return
		}
		sch, err := c.Compile("schema.json")
		if err != nil {
			compiled.err = fmt.Errorf("schema: compile: %w", err)
			s.compiled = compiled
			return
		}
		compiled.schema = sch
		s.compiled = compiled
	})
	return s.compiled.schema, s.compiled.err
}

// jsonValue renders s as a decoded JSON Schema document (draft 2020-12).
func (s *Schema) jsonValue() map[string]any {
	switch s.kind {
	case kindString:
		doc := map[string]any{"type": "string"}
		if s.minLen != nil {
			doc["minLength"] = float64(*s.minLen)
		}
		if s.maxLen != nil {
			doc["maxLength"] = float64(*s.maxLen)
		}
		if s.pattern != "" {
			doc["pattern"] = s.pattern
		}
		if s.format != "" {
			doc["format"] = s.format
		}
		return doc

	case kindInteger, kindNumber:
		typ := "number"
		if s.kind == kindInteger {
			typ = "integer"
		}
		doc := map[string]any{"type": typ}
		if s.min != nil {
			doc["minimum"] = *s.min
		}
		if s.max != nil {
			doc["maximum"] = *s.max
		}
		return doc

	case kindBoolean:
		return map[string]any{"type": "boolean"}

	case kindEnum:
		vals := make([]any, len(s.enumVals))
		for i, v := range s.enumVals {
			vals[i] = v
		}
		return map[string]any{"type": "string", "enum": vals}

	case kindArray:
		return map[string]any{"type": "array", "items": s.item.jsonValue()}

	case kindObject:
		props := make(map[string]any, len(s.fields))
		var required []any
		for _, f := range s.fields {
			props[f.Name] = f.Value.jsonValue()
			if !f.Value.isOmittable() {
				required = append(required, f.Name)
			}
		}
		doc := map[string]any{"type": "object", "properties": props}
		if len(required) > 0 {
			doc["required"] = required
		}
		return doc

	case kindRecord:
		return map[string]any{
			"type":                 "object",
			"additionalProperties": s.value.jsonValue(),
		}

	case kindOneOf:
		alts := make([]any, len(s.alts))
		for i, alt := range s.alts {
			alts[i] = alt.jsonValue()
		}
		return map[string]any{"oneOf": alts}

	case kindOptional, kindDefault:
		return s.inner.jsonValue()

	case kindNullable:
		return map[string]any{
			"anyOf": []any{s.inner.jsonValue(), map[string]any{"type": "null"}},
		}

	default:
		return map[string]any{}
	}
}

// Validate checks input against the schema.
//
// On success it returns the validated value in decoded JSON form
// (map[string]any, []any, json.Number, string, bool, nil) with declared
// defaults filled in for absent object keys. On failure it returns a
// *ValidationError with one entry per failing field.
func (s *Schema) Validate(input any) (any, error) {
	sch, err := s.compile()
	if err != nil {
		return nil, err
	}

	v, err := normalize(input)
	if err != nil {
		return nil, fmt.Errorf("schema: invalid input: %w", err)
	}
	v = s.fillDefaults(v)

	if err := sch.Validate(v); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return nil, collectFieldErrors(verr)
		}
		return nil, err
	}
	return v, nil
}

// normalize round-trips input through JSON so validation always sees the
// decoded form the engine expects, regardless of the caller's Go types.
func normalize(input any) (any, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(raw))
}

// fillDefaults inserts declared defaults for absent object keys, walking the
// schema and value trees together.
func (s *Schema) fillDefaults(v any) any {
	switch s.kind {
	case kindOptional, kindNullable:
		if v == nil {
			return v
		}
		return s.inner.fillDefaults(v)

	case kindDefault:
		if v == nil {
			d, err := normalize(s.defaultVal)
			if err != nil {
				return v
			}
			return d
		}
		return s.inner.fillDefaults(v)

	case kindObject:
		m, ok := v.(map[string]any)
		if !ok {
			return v
		}
		for _, f := range s.fields {
			child, present := m[f.Name]
			if present {
				m[f.Name] = f.Value.fillDefaults(child)
				continue
			}
			if d, ok := f.Value.defaultValue(); ok {
				m[f.Name] = d
			}
		}
		return m

	case kindArray:
		items, ok := v.([]any)
		if !ok {
			return v
		}
		for i, item := range items {
			items[i] = s.item.fillDefaults(item)
		}
		return items

	case kindRecord:
		m, ok := v.(map[string]any)
		if !ok {
			return v
		}
		for k, child := range m {
			m[k] = s.value.fillDefaults(child)
		}
		return m

	default:
		return v
	}
}

// defaultValue returns the declared default through wrapper nesting.
func (s *Schema) defaultValue() (any, bool) {
	switch s.kind {
	case kindDefault:
		d, err := normalize(s.defaultVal)
		if err != nil {
			return nil, false
		}
		return d, true
	case kindOptional, kindNullable:
		return s.inner.defaultValue()
	default:
		return nil, false
	}
}

// collectFieldErrors flattens a validation error tree into leaf field errors.
func collectFieldErrors(verr *jsonschema.ValidationError) *ValidationError {
	out := &ValidationError{}
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out.Fields = append(out.Fields, FieldError{
				Path:    strings.Join(e.InstanceLocation, "."),
				Message: e.ErrorKind.LocalizedString(printer),
			})
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(verr)
	return out
}
