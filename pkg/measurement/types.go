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

import (
	"fmt"
	"reflect"
)

// Common measurement keys exported for consistency across collectors.
const (
	// Web configuration measurement keys
	KeyConfigPath    = "config-path"
	KeyConfigStatus  = "status"
	KeyServerVersion = "server-version"

	// Process measurement keys
	KeyPID       = "pid"
	KeyUser      = "user"
	KeyCommand   = "command"
	KeyContainer = "container"

	// Host measurement keys
	KeyOSName   = "name"
	KeyKernel   = "kernel"
	KeyArch     = "architecture"
	KeyHostname = "hostname"
	KeyUptime   = "uptime-seconds"

	// SystemD measurement keys
	KeyServiceState = "state"
	KeyEnabled      = "enabled"
	KeyActive       = "active"
)

// Type identifies the source category of a measurement.
type Type string

// String returns the string representation of the measurement Type.
func (mt Type) String() string {
	return string(mt)
}

const (
	TypeWebConfig Type = "WebConfig"
	TypeProcess   Type = "Process"
	TypeSystemD   Type = "SystemD"
	TypeHost      Type = "Host"
)

// Types is the list of all supported measurement types.
var Types = []Type{
	TypeWebConfig,
	TypeProcess,
	TypeSystemD,
	TypeHost,
}

// ParseType parses a string into a measurement Type. It returns the Type and
// true on success, or an empty Type and false for an unrecognized string.
func ParseType(s string) (Type, bool) {
	for _, mt := range Types {
		if string(mt) == s {
			return mt, true
		}
	}
	return "", false
}

// Measurement is collected data of one type, split into named subtypes.
// A web configuration measurement carries one subtype per parsed config root;
// a process measurement one subtype per interesting process.
type Measurement struct {
	Type     Type      `json:"type" yaml:"type"`
	Subtypes []Subtype `json:"subtypes,omitempty" yaml:"subtypes,omitempty"`
}

// Subtype is a named collection of readings. Data values are JSON-compatible:
// scalars, nested maps and lists. Context carries metadata about where the
// readings came from (file path, unit name).
type Subtype struct {
	Name    string            `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Data    map[string]any    `json:"data" yaml:"data"`
	Context map[string]string `json:"context,omitempty" yaml:"context,omitempty"`
}

// Subtype returns the named subtype of the measurement, or nil when absent.
func (m *Measurement) Subtype(name string) *Subtype {
	for i := range m.Subtypes {
		if m.Subtypes[i].Name == name {
			return &m.Subtypes[i]
		}
	}
	return nil
}

// ToValue normalizes a collected value into a JSON-compatible reading.
// Scalars and structured values (structs, maps, slices, including parse
// trees from the webconfig collector) pass through for marshaling; only
// kinds the serializers cannot represent degrade to a string.
func ToValue(v any) any {
	switch val := v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return val
	case []string, []any, map[string]any, map[string]string:
		return val
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
