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
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
)

// Parser parses nginx configuration files into structured payloads.
// A Parser is stateless between calls: each Parse invocation is independent
// and side-effect-free beyond filesystem reads, so a single Parser may be
// used from multiple goroutines.
type Parser struct {
	fs           FileSystem
	ignore       map[string]struct{}
	comments     bool
	single       bool
	strict       bool
	combine      bool
	reinclude    bool
	dirIncludes  bool
	includeDepth int
}

// Parse reads the configuration rooted at path, expands includes, and
// returns the technical payload. Malformed input never causes a failure at
// the call level: structural and IO errors are recorded in the payload with
// status set to failed, and everything that did parse is retained.
//
// Relative include paths and glob patterns are resolved against the root
// file's directory, matching nginx's prefix behavior for configs parsed in
// place.
func (p *Parser) Parse(path string) *Payload {
	payload := &Payload{
		Status: StatusOK,
		Errors: []PayloadError{},
		Config: []*ParsedFile{},
	}

	st := &parseState{
		parser:    p,
		payload:   payload,
		configDir: filepath.Dir(path),
		included:  map[string]int{path: 0},
		visits:    map[string]int{path: 1},
		queue:     []string{path},
	}

	// The queue grows as include directives are resolved mid-parse.
	for i := 0; i < len(st.queue); i++ {
		payload.Config = append(payload.Config, st.parseFile(st.queue[i]))
	}

	slog.Debug("parsed nginx configuration",
		slog.String("path", path),
		slog.Int("files", len(payload.Config)),
		slog.Int("errors", len(payload.Errors)),
		slog.String("status", string(payload.Status)))

	if p.combine {
		return combinePayload(payload)
	}
	return payload
}

// parseState carries the per-invocation bookkeeping: the include worklist,
// the visited-file map, and the payload being built. Nothing here outlives
// the Parse call.
type parseState struct {
	parser    *Parser
	payload   *Payload
	configDir string
	included  map[string]int // file -> first payload index
	visits    map[string]int // file -> parse count (re-inclusion bound)
	queue     []string
}

func (st *parseState) parseFile(fname string) *ParsedFile {
	pf := &ParsedFile{
		File:   fname,
		Status: StatusOK,
		Errors: []FileError{},
		Parsed: []*Directive{},
	}

	src, err := st.parser.fs.ReadFile(fname)
	if err != nil {
		st.addError(pf, classifyIOError(err), err.Error(), 0)
		return pf
	}

	tokens, lexErrs := Tokenize(src, fname)
	for _, le := range lexErrs {
		st.addError(pf, le.Kind, le.Message, le.Line)
	}

	c := &cursor{toks: tokens}
	pf.Parsed = st.parseBlock(pf, c, 0)
	return pf
}

// parseBlock consumes statements until the closing brace of the current
// block, or end of input. Structural errors are recorded and parsing
// resynchronizes at the next statement so one pass surfaces every problem.
func (st *parseState) parseBlock(pf *ParsedFile, c *cursor, depth int) []*Directive {
	parsed := []*Directive{}

	for {
		tok, ok := c.next()
		if !ok {
			if depth > 0 {
				st.addError(pf, ErrUnterminatedBlock,
					`unexpected end of file, expecting "}"`, c.lastLine())
			}
			return parsed
		}

		switch tok.Kind {
		case TokenBlockClose:
			if depth == 0 {
				st.addError(pf, ErrUnexpectedClosingBrace, `unexpected "}"`, tok.Line)
				continue
			}
			return parsed

		case TokenComment:
			if st.parser.comments {
				parsed = append(parsed, &Directive{
					Directive: commentName,
					Line:      tok.Line,
					Args:      []string{},
					Comment:   tok.Text,
				})
			}
			continue

		case TokenStatementEnd:
			// empty statement
			continue

		case TokenBlockOpen:
			// block with no directive name; discard its contents so the
			// brace accounting stays balanced
			st.consumeBlock(pf, c)
			continue
		}

		if d, trailing := st.parseDirective(pf, c, tok, depth); d != nil {
			parsed = append(parsed, d)
			parsed = append(parsed, trailing...)
		}
	}
}

// parseDirective reads one statement starting at its name token. It returns
// nil when the statement is filtered out (ignored, unknown in strict mode)
// along with any comments found among the arguments.
func (st *parseState) parseDirective(pf *ParsedFile, c *cursor, name Token, depth int) (*Directive, []*Directive) {
	d := &Directive{
		Directive: name.Text,
		Line:      name.Line,
		Args:      []string{},
	}

	var trailing []*Directive

	// arguments run until an unquoted "{", ";", "}" or end of input
	term := Token{Kind: TokenStatementEnd, Line: name.Line}
	for {
		tok, ok := c.next()
		if !ok {
			// missing terminator at EOF: keep the directive best-effort;
			// the enclosing block reports unterminated blocks
			break
		}
		if tok.Kind == TokenComment {
			if st.parser.comments {
				trailing = append(trailing, &Directive{
					Directive: commentName,
					Line:      tok.Line,
					Args:      []string{},
					Comment:   tok.Text,
				})
			}
			continue
		}
		if tok.isArg() {
			d.Args = append(d.Args, tok.Text)
			continue
		}
		term = tok
		break
	}

	if term.Kind == TokenBlockClose {
		// the statement ran into its parent's closing brace; treat it as a
		// simple directive and hand the brace back
		c.backup()
		term = Token{Kind: TokenStatementEnd, Line: term.Line}
	}

	if _, ignored := st.parser.ignore[d.Directive]; ignored {
		if term.Kind == TokenBlockOpen {
			st.consumeBlock(pf, c)
		}
		return nil, trailing
	}

	if st.parser.strict && !KnownDirective(d.Directive) {
		st.addError(pf, ErrUnknownDirective,
			fmt.Sprintf("unknown directive %q", d.Directive), d.Line)
		if term.Kind == TokenBlockOpen {
			st.consumeBlock(pf, c)
		}
		return nil, trailing
	}

	if d.Directive == "if" {
		prepareIfArgs(d)
	}

	if !st.parser.single && d.IsInclude() && len(d.Args) == 1 {
		st.resolveInclude(pf, d)
	}

	if term.Kind == TokenBlockOpen {
		d.Block = st.parseBlock(pf, c, depth+1)
	}
	if st.parser.combine {
		d.File = pf.File
	}

	return d, trailing
}

// consumeBlock discards a block (and any nested blocks) after its opening
// brace has been read, keeping brace accounting intact for filtered-out
// directives.
func (st *parseState) consumeBlock(pf *ParsedFile, c *cursor) {
	depth := 1
	for depth > 0 {
		tok, ok := c.next()
		if !ok {
			st.addError(pf, ErrUnterminatedBlock,
				`unexpected end of file, expecting "}"`, c.lastLine())
			return
		}
		switch tok.Kind {
		case TokenBlockOpen:
			depth++
		case TokenBlockClose:
			depth--
		}
	}
}

// resolveInclude expands an include directive's path argument against the
// base directory, globs deterministically, and schedules each resolved file
// for parsing. Failures are attached to the including file and never abort
// sibling includes or the parent parse.
func (st *parseState) resolveInclude(pf *ParsedFile, d *Directive) {
	pattern := d.Args[0]
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(st.configDir, pattern)
	}

	d.Includes = []int{}

	var names []string
	switch {
	case hasGlobMagic(pattern):
		matches, err := st.parser.fs.Glob(pattern)
		if err != nil {
			st.addError(pf, ErrGlobExpansionFailure,
				fmt.Sprintf("invalid include pattern %q: %v", d.Args[0], err), d.Line)
			return
		}
		sort.Strings(matches)
		for _, m := range matches {
			if st.isDir(m) {
				continue
			}
			names = append(names, m)
		}

	default:
		info, err := st.parser.fs.Stat(pattern)
		if err != nil {
			st.addError(pf, classifyIOError(err), err.Error(), d.Line)
			return
		}
		if info.IsDir() {
			if !st.parser.dirIncludes {
				st.addError(pf, ErrFileNotFound,
					fmt.Sprintf("include path %q is a directory", d.Args[0]), d.Line)
				return
			}
			matches, err := st.parser.fs.Glob(filepath.Join(pattern, "*"))
			if err != nil {
				st.addError(pf, ErrGlobExpansionFailure,
					fmt.Sprintf("cannot list include directory %q: %v", d.Args[0], err), d.Line)
				return
			}
			sort.Strings(matches)
			for _, m := range matches {
				if st.isDir(m) {
					continue
				}
				names = append(names, m)
			}
		} else {
			names = []string{pattern}
		}
	}

	for _, fname := range names {
		idx, seen := st.included[fname]
		if seen && !st.parser.reinclude {
			// already parsed once; reference the existing entry
			d.Includes = append(d.Includes, idx)
			continue
		}

		st.visits[fname]++
		if st.visits[fname] > st.parser.includeDepth {
			st.addError(pf, ErrIncludeDepthExceeded,
				fmt.Sprintf("include depth exceeded for %q", fname), d.Line)
			continue
		}

		idx = len(st.queue)
		st.queue = append(st.queue, fname)
		if !seen {
			st.included[fname] = idx
		}
		d.Includes = append(d.Includes, idx)
	}
}

func (st *parseState) isDir(path string) bool {
	info, err := st.parser.fs.Stat(path)
	return err == nil && info.IsDir()
}

// addError records an error on both the file record and the aggregate
// payload, marking both as failed.
func (st *parseState) addError(pf *ParsedFile, kind ErrorKind, msg string, line int) {
	pf.Status = StatusFailed
	pf.Errors = append(pf.Errors, FileError{Kind: kind, Message: msg, Line: line})

	st.payload.Status = StatusFailed
	st.payload.Errors = append(st.payload.Errors, PayloadError{
		Kind:    kind,
		Message: msg,
		File:    pf.File,
		Line:    line,
	})
}

// prepareIfArgs strips the surrounding parentheses from an "if" directive's
// argument list, matching nginx's own tokenization of conditions.
func prepareIfArgs(d *Directive) {
	args := d.Args
	if len(args) == 0 || !strings.HasPrefix(args[0], "(") || !strings.HasSuffix(args[len(args)-1], ")") {
		return
	}
	args[0] = strings.TrimLeft(strings.TrimPrefix(args[0], "("), " ")
	last := len(args) - 1
	args[last] = strings.TrimRight(strings.TrimSuffix(args[last], ")"), " ")

	out := args[:0]
	for _, a := range args {
		if a != "" {
			out = append(out, a)
		}
	}
	d.Args = out
}

// cursor is a simple token stream reader with one-token backup.
type cursor struct {
	toks []Token
	pos  int
}

func (c *cursor) next() (Token, bool) {
	if c.pos >= len(c.toks) {
		return Token{}, false
	}
	t := c.toks[c.pos]
	c.pos++
	return t, true
}

func (c *cursor) backup() {
	if c.pos > 0 {
		c.pos--
	}
}

// lastLine is the line of the final token, used for end-of-file errors.
func (c *cursor) lastLine() int {
	if len(c.toks) == 0 {
		return 1
	}
	return c.toks[len(c.toks)-1].Line
}
