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

package openapi

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Paths is an insertion-ordered map from rendered path to PathItem.
//
// Plain Go maps marshal with sorted keys, but document path order must
// follow contract flatten order: diff tooling and ordering-sensitive
// consumers rely on it. Paths therefore carries its own key order through
// both JSON and YAML marshaling.
type Paths struct {
	keys  []string
	items map[string]*PathItem
}

// NewPaths creates an empty ordered path map.
func NewPaths() *Paths {
	return &Paths{items: map[string]*PathItem{}}
}

// Set stores the item under path, keeping first-insertion order.
func (p *Paths) Set(path string, item *PathItem) {
	if _, ok := p.items[path]; !ok {
		p.keys = append(p.keys, path)
	}
	p.items[path] = item
}

// Get returns the item stored under path.
func (p *Paths) Get(path string) (*PathItem, bool) {
	item, ok := p.items[path]
	return item, ok
}

// Item returns the item stored under path, creating an empty one on first
// access.
func (p *Paths) Item(path string) *PathItem {
	if item, ok := p.items[path]; ok {
		return item
	}
	item := &PathItem{}
	p.Set(path, item)
	return item
}

// Len returns the number of paths.
func (p *Paths) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the paths in insertion order.
func (p *Paths) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// MarshalJSON writes the paths as a JSON object in insertion order. An
// empty (or nil) Paths marshals as {}, never null.
func (p *Paths) MarshalJSON() ([]byte, error) {
	if p == nil || len(p.keys) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(p.items[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the paths as a YAML mapping in insertion order.
func (p *Paths) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if p == nil {
		return node, nil
	}
	for _, key := range p.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(p.items[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
