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

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	// TokenWord is a bare word: a directive name or unquoted argument.
	TokenWord TokenKind = iota
	// TokenQuotedString is a single- or double-quoted string with the
	// surrounding quotes removed and quote escapes resolved.
	TokenQuotedString
	// TokenBlockOpen is an unquoted "{".
	TokenBlockOpen
	// TokenBlockClose is an unquoted "}".
	TokenBlockClose
	// TokenStatementEnd is an unquoted ";".
	TokenStatementEnd
	// TokenComment is a "#" comment; Text holds the text after the "#"
	// up to the end of the line.
	TokenComment
)

// String returns a short name for the token kind, used in error messages
// and test output.
func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "word"
	case TokenQuotedString:
		return "quoted"
	case TokenBlockOpen:
		return "block-open"
	case TokenBlockClose:
		return "block-close"
	case TokenStatementEnd:
		return "statement-end"
	case TokenComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Token is one lexical unit of a configuration file. Tokens are produced by
// Tokenize and consumed by the block parser; they are not retained after
// parsing.
type Token struct {
	Kind TokenKind
	Text string
	Line int
}

// isArg reports whether the token can serve as a directive argument.
func (t Token) isArg() bool {
	return t.Kind == TokenWord || t.Kind == TokenQuotedString
}
