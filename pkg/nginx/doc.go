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

// Package nginx parses NGINX configuration files into structured, queryable
// documents.
//
// # Overview
//
// The parser reads a root configuration file plus any files it includes,
// tokenizes them, builds a tree of directives, and projects that tree into
// one of two output shapes:
//
//   - Technical (crossplane) projection: one entry per physical file with
//     line numbers, file provenance, and include references. Suited for
//     auditing and tools that need exact source locations.
//   - Readable projection: a single nested map mirroring the config's
//     logical hierarchy, with includes expanded inline and parser metadata
//     stripped. Suited for human consumption and dashboard queries.
//
// # Usage
//
//	p, err := nginx.NewParser(
//	    nginx.WithIgnore("ssl_certificate_key", "auth_basic_user_file"),
//	)
//	if err != nil {
//	    return err
//	}
//	payload := p.Parse("/etc/nginx/nginx.conf")
//	readable := nginx.Readable(payload)
//
// # Error handling
//
// Parse never fails for malformed input. IO and structural errors are
// recorded per file and aggregated on the envelope with status "failed";
// everything that did parse is still returned. The parser resynchronizes
// after structural errors so a single pass surfaces all of them. Only
// invalid parser configuration (NewParser) returns a Go error.
//
// # Safety
//
// The parser is read-only: it never writes to the filesystem. A Parser
// holds no mutable state between calls, so concurrent Parse invocations
// are safe.
package nginx
