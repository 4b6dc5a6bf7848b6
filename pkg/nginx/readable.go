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

package nginx

import (
	"strconv"
	"strings"
)

// Readable renders the technical payload into the human-oriented projection:
// a single nested map mirroring the configuration's logical hierarchy.
// Includes are merged inline at the position of the include directive, so
// the result carries no trace of physical file boundaries. Line numbers and
// file paths are dropped; comments survive only when comment preservation
// was requested at parse time, as "#<n>" entries ordered within their block.
//
// Directives that repeat under the same parent collapse into an ordered
// list, preserving source order. "location" and "if" blocks are keyed by
// their arguments (e.g. "location /api") since the arguments identify the
// block. Simple directives map to nil (no arguments), a string (one
// argument), or a list of strings.
//
// The projection is deterministic: rendering the same payload twice yields
// an identical structure, and JSON encoding orders map keys consistently.
func Readable(payload *Payload) *ReadableConfig {
	rc := &ReadableConfig{
		Status: payload.Status,
		Errors: payload.Errors,
		Config: map[string]any{},
	}
	if len(payload.Config) == 0 {
		return rc
	}
	rc.Config = readableBlock(payload.Config[0].Parsed, payload.Config)
	return rc
}

func readableBlock(block []*Directive, files []*ParsedFile) map[string]any {
	out := map[string]any{}
	comments := 0

	for _, d := range block {
		if d.IsComment() {
			comments++
			out[commentName+strconv.Itoa(comments)] = d.Comment
			continue
		}

		if len(d.Includes) > 0 {
			// expand the included files inline at this position
			for _, idx := range d.Includes {
				if idx >= len(files) {
					continue
				}
				for key, val := range readableBlock(files[idx].Parsed, files) {
					insertValue(out, key, val)
				}
			}
			continue
		}

		insertValue(out, readableKey(d), readableValue(d, files))
	}

	return out
}

// readableKey derives the map key for a directive. Blocks identified by
// their arguments (location, if) embed them in the key so siblings stay
// distinguishable.
func readableKey(d *Directive) string {
	if (d.Directive == "location" || d.Directive == "if") && len(d.Args) > 0 {
		return d.Directive + " " + strings.Join(d.Args, " ")
	}
	return d.Directive
}

func readableValue(d *Directive, files []*ParsedFile) any {
	switch {
	case d.Block != nil:
		return readableBlock(d.Block, files)
	case len(d.Args) == 0:
		return nil
	case len(d.Args) == 1:
		return d.Args[0]
	default:
		return append([]string(nil), d.Args...)
	}
}

// insertValue adds a value under key, collapsing repeated keys into an
// ordered []any list. Multi-argument values stay []string, so they are
// never confused with a repetition list.
func insertValue(m map[string]any, key string, val any) {
	existing, ok := m[key]
	if !ok {
		m[key] = val
		return
	}

	list, isList := existing.([]any)
	if !isList {
		list = []any{existing}
	}

	if vals, ok := val.([]any); ok {
		m[key] = append(list, vals...)
		return
	}
	m[key] = append(list, val)
}
