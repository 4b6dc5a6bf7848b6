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
	"strings"
	"unicode"
)

// Tokenize converts configuration text into a flat token stream. It never
// fails: malformed input degrades to best-effort tokens, with lexical
// problems (currently only unterminated quoted strings) reported in the
// second return value so the parser can attach them to the file record.
//
// Whitespace separates tokens outside quotes. "#" at a token boundary starts
// a comment to end of line. Single and double quotes delimit string tokens;
// a backslash escapes the matching quote and itself. "{", "}", and ";" are
// always single-character tokens. Line numbers advance on every newline,
// including those inside quotes and comments.
func Tokenize(src []byte, filename string) ([]Token, []LexError) {
	l := &lexer{
		src:  []rune(string(src)),
		line: 1,
		file: filename,
	}
	l.run()
	return l.toks, l.errs
}

type lexer struct {
	src  []rune
	pos  int
	line int
	file string
	toks []Token
	errs []LexError
}

func (l *lexer) run() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.line++
			l.pos++
		case unicode.IsSpace(c):
			l.pos++
		case c == '#':
			l.scanComment()
		case c == '\'' || c == '"':
			l.scanQuoted(c)
		case c == '{':
			l.emit(TokenBlockOpen, "{", l.line)
			l.pos++
		case c == '}':
			l.emit(TokenBlockClose, "}", l.line)
			l.pos++
		case c == ';':
			l.emit(TokenStatementEnd, ";", l.line)
			l.pos++
		default:
			l.scanWord()
		}
	}
}

func (l *lexer) emit(kind TokenKind, text string, line int) {
	l.toks = append(l.toks, Token{Kind: kind, Text: text, Line: line})
}

// scanComment consumes "#" through end of line. The token text excludes the
// leading "#" and the newline.
func (l *lexer) scanComment() {
	start := l.line
	l.pos++ // skip '#'
	var sb strings.Builder
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		sb.WriteRune(l.src[l.pos])
		l.pos++
	}
	l.emit(TokenComment, sb.String(), start)
}

// scanQuoted consumes a quoted string. A backslash escapes the matching
// quote and the backslash itself; any other escape sequence is kept verbatim.
// An unterminated string yields the buffered text plus a LexError.
func (l *lexer) scanQuoted(quote rune) {
	start := l.line
	l.pos++ // skip opening quote
	var sb strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\\' && l.pos+1 < len(l.src):
			next := l.src[l.pos+1]
			if next == quote || next == '\\' {
				sb.WriteRune(next)
			} else {
				sb.WriteRune(c)
				sb.WriteRune(next)
			}
			if next == '\n' {
				l.line++
			}
			l.pos += 2
		case c == quote:
			l.pos++
			l.emit(TokenQuotedString, sb.String(), start)
			return
		default:
			if c == '\n' {
				l.line++
			}
			sb.WriteRune(c)
			l.pos++
		}
	}

	// EOF inside the string
	l.emit(TokenQuotedString, sb.String(), start)
	l.errs = append(l.errs, LexError{
		Kind:    ErrUnterminatedString,
		Message: "unexpected end of file, expecting closing quote",
		File:    l.file,
		Line:    start,
	})
}

// scanWord consumes a bare word. Quotes inside a word are ordinary
// characters, matching nginx behavior (e.g. foo"bar" is one token).
// Parameter expansion syntax "${...}" is kept inside the word even though
// it contains braces.
func (l *lexer) scanWord() {
	start := l.line
	var sb strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]

		if c == '\\' && l.pos+1 < len(l.src) {
			// keep the escape pair verbatim; escaped newlines still count
			next := l.src[l.pos+1]
			sb.WriteRune(c)
			sb.WriteRune(next)
			if next == '\n' {
				l.line++
			}
			l.pos += 2
			continue
		}

		if c == '{' && strings.HasSuffix(sb.String(), "$") {
			// parameter expansion, e.g. ${var}: consume through '}' or space
			for l.pos < len(l.src) && !unicode.IsSpace(l.src[l.pos]) {
				sb.WriteRune(l.src[l.pos])
				l.pos++
				if sb.String()[sb.Len()-1] == '}' {
					break
				}
			}
			continue
		}

		if unicode.IsSpace(c) || c == '{' || c == '}' || c == ';' {
			break
		}

		sb.WriteRune(c)
		l.pos++
	}
	l.emit(TokenWord, sb.String(), start)
}
