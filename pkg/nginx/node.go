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

import "encoding/json"

// Status is the outcome of a parse, for one file or the whole invocation.
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// commentName is the directive name used for preserved comments.
const commentName = "#"

// includeName is the directive that triggers include expansion.
const includeName = "include"

// Directive is one parsed configuration statement: a name, its arguments,
// and optionally a nested block. A Directive owns its block exclusively;
// the only cross-reference is Includes, which holds indices into the
// Payload's file list rather than pointers, keeping the tree acyclic.
type Directive struct {
	// Directive is the statement name; "#" for preserved comments.
	Directive string
	// Line is the 1-based line the statement starts on.
	Line int
	// Args holds the whitespace-delimited, quote-aware arguments.
	Args []string
	// File is the originating file path; populated in combined payloads.
	File string
	// Comment is the comment text for "#" entries.
	Comment string
	// Includes holds indices of the ParsedFile entries this include
	// directive expanded into. Non-nil exactly for expanded includes.
	Includes []int
	// Block holds nested statements. A nil Block means the directive had
	// no block; an empty non-nil Block is a literal "{}".
	Block []*Directive
}

// IsComment reports whether the directive is a preserved comment entry.
func (d *Directive) IsComment() bool {
	return d.Directive == commentName
}

// IsInclude reports whether the directive is an include statement.
func (d *Directive) IsInclude() bool {
	return d.Directive == includeName
}

// MarshalJSON emits the crossplane wire shape. The block and includes keys
// appear only when present, but an empty block ("{}" in the source) and an
// include that matched nothing still serialize as empty lists, which
// omitempty cannot express.
func (d *Directive) MarshalJSON() ([]byte, error) {
	out := struct {
		Directive string          `json:"directive"`
		Line      int             `json:"line"`
		Args      []string        `json:"args"`
		File      string          `json:"file,omitempty"`
		Comment   *string         `json:"comment,omitempty"`
		Includes  json.RawMessage `json:"includes,omitempty"`
		Block     json.RawMessage `json:"block,omitempty"`
	}{
		Directive: d.Directive,
		Line:      d.Line,
		Args:      d.Args,
		File:      d.File,
	}

	if out.Args == nil {
		out.Args = []string{}
	}
	if d.IsComment() {
		comment := d.Comment
		out.Comment = &comment
	}

	var err error
	if d.Includes != nil {
		if out.Includes, err = json.Marshal(d.Includes); err != nil {
			return nil, err
		}
	}
	if d.Block != nil {
		if out.Block, err = json.Marshal(d.Block); err != nil {
			return nil, err
		}
	}

	return json.Marshal(out)
}

// ParsedFile is the outcome of parsing one physical file: its top-level
// directives plus any errors encountered in it.
type ParsedFile struct {
	File   string       `json:"file"`
	Status Status       `json:"status"`
	Errors []FileError  `json:"errors"`
	Parsed []*Directive `json:"parsed"`
}

// Payload is the technical (crossplane) projection: one entry per physical
// file, with parse errors aggregated across all of them. Status is failed
// if any contributing file failed; partial results are always retained.
type Payload struct {
	Status Status         `json:"status"`
	Errors []PayloadError `json:"errors"`
	Config []*ParsedFile  `json:"config"`
}

// ReadableConfig is the human-oriented projection: a single nested map
// mirroring the configuration's logical hierarchy, with includes expanded
// inline and parser metadata dropped.
type ReadableConfig struct {
	Status Status         `json:"status"`
	Errors []PayloadError `json:"errors"`
	Config map[string]any `json:"config"`
}
