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
	"errors"
	"io/fs"
)

// ErrorKind classifies a parse error. Kinds are stable identifiers intended
// for programmatic consumption; the human-readable text lives in the error
// message itself.
type ErrorKind string

const (
	ErrFileNotFound           ErrorKind = "FileNotFound"
	ErrPermissionDenied       ErrorKind = "PermissionDenied"
	ErrUnterminatedString     ErrorKind = "UnterminatedString"
	ErrUnterminatedBlock      ErrorKind = "UnterminatedBlock"
	ErrUnexpectedClosingBrace ErrorKind = "UnexpectedClosingBrace"
	ErrUnknownDirective       ErrorKind = "UnknownDirective"
	ErrIncludeDepthExceeded   ErrorKind = "IncludeDepthExceeded"
	ErrGlobExpansionFailure   ErrorKind = "GlobExpansionFailure"
)

// FileError is an error record attached to the ParsedFile it occurred in.
// The wire shape carries only the message and line; Kind is for callers
// that need to branch on the error class.
type FileError struct {
	Kind    ErrorKind `json:"-"`
	Message string    `json:"error"`
	Line    int       `json:"line"`
}

// PayloadError is an aggregated error record carried by the Payload envelope,
// extending FileError with the originating file path.
type PayloadError struct {
	Kind    ErrorKind `json:"-"`
	Message string    `json:"error"`
	File    string    `json:"file"`
	Line    int       `json:"line"`
}

// LexError describes a lexical problem found while scanning a file.
// Lexing itself never fails; these are attached to the file's error list
// by the parser.
type LexError struct {
	Kind    ErrorKind
	Message string
	File    string
	Line    int
}

// classifyIOError maps a filesystem error to a parse error kind.
func classifyIOError(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return ErrFileNotFound
	}
}
