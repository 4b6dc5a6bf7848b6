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

import "fmt"

// defaultIncludeDepth bounds how many times the same absolute path may be
// re-entered when re-inclusion is enabled, guaranteeing termination on
// cyclic include graphs.
const defaultIncludeDepth = 10

// Option configures a Parser.
type Option func(*Parser)

// WithComments controls whether comments are preserved in the parse tree.
// Default is false (comments are discarded).
func WithComments(include bool) Option {
	return func(p *Parser) {
		p.comments = include
	}
}

// WithSingleFile controls single-file mode: when enabled, include directives
// are left unexpanded and only the root file is parsed. Default is false.
func WithSingleFile(single bool) Option {
	return func(p *Parser) {
		p.single = single
	}
}

// WithIgnore adds directive names to the ignore set. Matching directives
// (and their entire blocks) are excluded from output at any nesting depth.
// Matching is exact and case-sensitive. Used to redact secrets such as TLS
// key paths.
func WithIgnore(names ...string) Option {
	return func(p *Parser) {
		for _, name := range names {
			p.ignore[name] = struct{}{}
		}
	}
}

// WithStrict enables strict mode: directive names outside the known-directive
// registry are reported as parse errors instead of passing through.
// Default is false.
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// WithCombine controls whether included files are spliced inline into a
// single combined file entry in the technical projection. Default is false
// (one entry per physical file).
func WithCombine(combine bool) Option {
	return func(p *Parser) {
		p.combine = combine
	}
}

// WithFileSystem replaces the filesystem implementation used to read and
// glob configuration files. Default is the host OS filesystem.
func WithFileSystem(fsys FileSystem) Option {
	return func(p *Parser) {
		p.fs = fsys
	}
}

// WithIncludeDepth sets how many times the same absolute path may be
// re-entered when re-inclusion is enabled. The default is 10.
func WithIncludeDepth(n int) Option {
	return func(p *Parser) {
		p.includeDepth = n
	}
}

// WithReinclusion allows a file to be parsed again when referenced by more
// than one include directive. Default is false: a file already parsed once
// is referenced, not re-parsed, which makes include cycles safe.
func WithReinclusion(allow bool) Option {
	return func(p *Parser) {
		p.reinclude = allow
	}
}

// WithDirectoryIncludes allows an include directive whose resolved path is a
// directory to expand to every regular file inside it, in lexicographic
// order. Default is false: directory includes are reported as errors.
func WithDirectoryIncludes(allow bool) Option {
	return func(p *Parser) {
		p.dirIncludes = allow
	}
}

// NewParser creates a Parser with the provided options. It returns an error
// only for invalid configuration (for example a negative include depth);
// malformed configuration input never causes an error, it is reported in
// the parse result instead.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{
		fs:           osFileSystem{},
		ignore:       make(map[string]struct{}),
		includeDepth: defaultIncludeDepth,
	}

	// Apply options
	for _, opt := range opts {
		opt(p)
	}

	if p.fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if p.includeDepth < 0 {
		return nil, fmt.Errorf("include depth cannot be negative: %d", p.includeDepth)
	}

	return p, nil
}
