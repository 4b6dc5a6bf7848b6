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

// Package version parses and compares semantic version strings as they show
// up in collected data: nginx banners ("1.24.0"), kernel releases
// ("6.8.0-45-generic"), package versions with distro suffixes.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures.
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// Version is a semantic version with flexible precision: "1", "1.24" and
// "1.24.0" all parse, with Precision recording how many components are
// significant for comparisons. Suffixes like "-45-generic" are preserved in
// Extras and ignored when comparing.
type Version struct {
	Major int `json:"major,omitempty" yaml:"major,omitempty"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`

	// Precision indicates how many components are significant (1, 2, or 3)
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Extras stores trailing metadata like "-45-generic" or "+build.7"
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// String returns the version respecting its precision. Extras are not
// included.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// Parse parses a version string. Supported forms: "1", "1.2", "1.2.3",
// "v1.2.3", "1.2.3-suffix", "1.2.3+metadata". A "v" prefix is stripped;
// anything after a '-' or '+' that follows a digit lands in Extras.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	s = strings.TrimPrefix(s, "v")
	var v Version

	// Split off extras before the dot-split so suffixes containing dots
	// ("-eks.3025e55") do not corrupt the numeric components.
	mainPart := s
	for i, ch := range s {
		if (ch == '-' || ch == '+') && i > 0 {
			if prev := s[i-1]; prev >= '0' && prev <= '9' {
				mainPart = s[:i]
				v.Extras = s[i:]
				break
			}
		}
	}

	parts := strings.Split(mainPart, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	for i, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}

		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}

	v.Precision = len(parts)
	return v, nil
}

// EqualsOrNewer reports whether v is equal to or newer than other, compared
// up to v's precision. Version{Major:1, Minor:24, Precision:2} matches any
// 1.24.x.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// Compare returns -1, 0 or 1 comparing v against other up to the lower of
// the two precisions. Extras are ignored.
func (v Version) Compare(other Version) int {
	precision := v.Precision
	if other.Precision != 0 && other.Precision < precision {
		precision = other.Precision
	}

	if c := cmp(v.Major, other.Major); c != 0 {
		return c
	}
	if precision == 1 {
		return 0
	}
	if c := cmp(v.Minor, other.Minor); c != 0 {
		return c
	}
	if precision == 2 {
		return 0
	}
	return cmp(v.Patch, other.Patch)
}

func cmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
