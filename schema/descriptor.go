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

// Descriptor is a JSON-Schema-like structural description of a Schema.
//
// Documentation generators consume descriptors instead of schemas directly,
// so they never depend on how schemas are declared.
type Descriptor struct {
	// Type is the JSON type: "string", "number", "integer", "boolean",
	// "array", "object". Empty for unconstrained or oneOf descriptors.
	Type string `json:"type,omitempty"`

	// Properties describes object properties.
	Properties map[string]*Descriptor `json:"properties,omitempty"`

	// Required lists property names that must be present.
	Required []string `json:"required,omitempty"`

	// Items describes array items.
	Items *Descriptor `json:"items,omitempty"`

	// Enum lists allowed string values.
	Enum []string `json:"enum,omitempty"`

	// Format is a string format annotation (e.g. "uuid", "date-time").
	Format string `json:"format,omitempty"`

	// Description is a human-readable description. It round-trips from the
	// schema for every node, not just the top level.
	Description string `json:"description,omitempty"`

	// Default is the declared default value, if any.
	Default any `json:"default,omitempty"`

	// Minimum is the inclusive minimum numeric value.
	Minimum *float64 `json:"minimum,omitempty"`

	// Maximum is the inclusive maximum numeric value.
	Maximum *float64 `json:"maximum,omitempty"`

	// MinLength is the minimum string length.
	MinLength *int `json:"minLength,omitempty"`

	// MaxLength is the maximum string length.
	MaxLength *int `json:"maxLength,omitempty"`

	// Pattern is a regular expression constraint.
	Pattern string `json:"pattern,omitempty"`

	// Nullable indicates null is also accepted.
	Nullable bool `json:"nullable,omitempty"`

	// OneOf lists alternative descriptors.
	OneOf []*Descriptor `json:"oneOf,omitempty"`

	// AdditionalProperties describes the value shape of record-like objects.
	AdditionalProperties *Descriptor `json:"additionalProperties,omitempty"`

	// propertyOrder preserves field declaration order for consumers that
	// need deterministic parameter ordering.
	propertyOrder []string
}

// PropertyNames returns the object property names in declaration order.
func (d *Descriptor) PropertyNames() []string {
	return append([]string(nil), d.propertyOrder...)
}

// IsRequired reports whether the named property is required.
func (d *Descriptor) IsRequired(name string) bool {
	for _, r := range d.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Introspect converts the schema into its structural description.
//
// Wrapper kinds unwrap to their inner type: Optional and Default disappear
// (Default keeps its value in the Default field), Nullable marks the inner
// descriptor nullable. Unsupported shapes degrade to an unconstrained
// descriptor rather than failing.
func (s *Schema) Introspect() *Descriptor {
	if s == nil {
		return &Descriptor{}
	}

	switch s.kind {
	case kindOptional:
		d := s.inner.Introspect()
		if s.description != "" {
			d.Description = s.description
		}
		return d

	case kindDefault:
		d := s.inner.Introspect()
		d.Default = s.defaultVal
		if s.description != "" {
			d.Description = s.description
		}
		return d

	case kindNullable:
		d := s.inner.Introspect()
		d.Nullable = true
		if s.description != "" {
			d.Description = s.description
		}
		return d

	case kindString:
		return &Descriptor{
			Type:        "string",
			Format:      s.format,
			Pattern:     s.pattern,
			MinLength:   s.minLen,
			MaxLength:   s.maxLen,
			Description: s.description,
		}

	case kindInteger:
		return &Descriptor{
			Type:        "integer",
			Minimum:     s.min,
			Maximum:     s.max,
			Description: s.description,
		}

	case kindNumber:
		return &Descriptor{
			Type:        "number",
			Minimum:     s.min,
			Maximum:     s.max,
			Description: s.description,
		}

	case kindBoolean:
		return &Descriptor{Type: "boolean", Description: s.description}

	case kindEnum:
		return &Descriptor{
			Type:        "string",
			Enum:        append([]string(nil), s.enumVals...),
			Description: s.description,
		}

	case kindArray:
		return &Descriptor{
			Type:        "array",
			Items:       s.item.Introspect(),
			Description: s.description,
		}

	case kindObject:
		d := &Descriptor{
			Type:        "object",
			Properties:  make(map[string]*Descriptor, len(s.fields)),
			Description: s.description,
		}
		for _, f := range s.fields {
			d.Properties[f.Name] = f.Value.Introspect()
			d.propertyOrder = append(d.propertyOrder, f.Name)
			if !f.Value.isOmittable() {
				d.Required = append(d.Required, f.Name)
			}
		}
		return d

	case kindRecord:
		return &Descriptor{
			Type:                 "object",
			AdditionalProperties: s.value.Introspect(),
			Description:          s.description,
		}

	case kindOneOf:
		d := &Descriptor{Description: s.description}
		for _, alt := range s.alts {
			d.OneOf = append(d.OneOf, alt.Introspect())
		}
		return d

	default:
		// kindAny and anything unrepresentable: unconstrained.
		return &Descriptor{Description: s.description}
	}
}
