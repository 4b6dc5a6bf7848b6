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
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem abstracts the read-only filesystem operations the parser needs.
// The default implementation reads from the host OS; tests substitute an
// in-memory implementation. The parser never writes.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Glob(pattern string) ([]string, error)
	Stat(path string) (fs.FileInfo, error)
}

type osFileSystem struct{}

func (osFileSystem) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }
func (osFileSystem) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}
func (osFileSystem) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

// OSFileSystem returns the FileSystem backed by the host operating system.
func OSFileSystem() FileSystem { return osFileSystem{} }

// hasGlobMagic reports whether the pattern contains glob metacharacters.
func hasGlobMagic(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}
