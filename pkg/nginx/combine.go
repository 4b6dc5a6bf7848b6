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

// combinePayload splices every expanded include inline, collapsing the
// per-file entries into a single combined entry rooted at the main file.
// Per-file errors are concatenated in file order; directives keep their
// originating file in the File field.
func combinePayload(payload *Payload) *Payload {
	if len(payload.Config) == 0 {
		return payload
	}

	combined := &ParsedFile{
		File:   payload.Config[0].File,
		Status: StatusOK,
		Errors: []FileError{},
		Parsed: []*Directive{},
	}

	for _, pf := range payload.Config {
		combined.Errors = append(combined.Errors, pf.Errors...)
		if pf.Status == StatusFailed {
			combined.Status = StatusFailed
		}
	}

	combined.Parsed = spliceIncludes(payload.Config[0].Parsed, payload.Config)

	return &Payload{
		Status: payload.Status,
		Errors: payload.Errors,
		Config: []*ParsedFile{combined},
	}
}

// spliceIncludes replaces include directives with the content of the files
// they resolved to, recursively. Nodes are copied so the original per-file
// trees stay intact.
func spliceIncludes(block []*Directive, files []*ParsedFile) []*Directive {
	out := []*Directive{}
	for _, d := range block {
		if d.Includes != nil {
			for _, idx := range d.Includes {
				if idx < len(files) {
					out = append(out, spliceIncludes(files[idx].Parsed, files)...)
				}
			}
			continue
		}

		cp := *d
		if d.Block != nil {
			cp.Block = spliceIncludes(d.Block, files)
		}
		out = append(out, &cp)
	}
	return out
}
