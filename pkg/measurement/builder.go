// Copyright (c) 2025, Confscope Authors.  All rights reserved.
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

package measurement

// SubtypeBuilder provides a fluent API for building Subtype instances.
type SubtypeBuilder struct {
	name    string
	data    map[string]any
	context map[string]string
}

// NewSubtypeBuilder creates a new SubtypeBuilder with the given name.
func NewSubtypeBuilder(name string) *SubtypeBuilder {
	return &SubtypeBuilder{
		name: name,
		data: make(map[string]any),
	}
}

// Set adds or updates a reading, normalizing the value via ToValue.
func (b *SubtypeBuilder) Set(key string, value any) *SubtypeBuilder {
	b.data[key] = ToValue(value)
	return b
}

// SetNonEmpty adds the reading only when the value is a non-empty string.
func (b *SubtypeBuilder) SetNonEmpty(key, value string) *SubtypeBuilder {
	if value != "" {
		b.data[key] = value
	}
	return b
}

// Context adds a context entry describing where the readings came from.
func (b *SubtypeBuilder) Context(key, value string) *SubtypeBuilder {
	if b.context == nil {
		b.context = make(map[string]string)
	}
	b.context[key] = value
	return b
}

// Build returns the constructed Subtype.
func (b *SubtypeBuilder) Build() Subtype {
	return Subtype{
		Name:    b.name,
		Data:    b.data,
		Context: b.context,
	}
}
