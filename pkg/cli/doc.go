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

// Package cli implements the command-line interface for the confscope tool.
//
// # Commands
//
// parse - Parse an NGINX configuration:
//
//	confscope parse [--path FILE] [--format yaml|json|table] [--crossplane]
//
// Parses the configuration (following includes) into either a readable
// nested projection or, with --crossplane, the full parse tree with
// per-directive provenance.
//
// discover - Capture a host configuration snapshot:
//
//	confscope discover [--store DIR] [--output FILE]
//
// Runs all collectors concurrently: web server configuration, process
// inventory, systemd service states, and host information.
//
// serve - Serve the snapshot query API:
//
//	confscope serve [--store DIR] [--port 8080]
//
// # Global Flags
//
//	--output, -o     Output file path (default: stdout)
//	--format, -t     Output format: json, yaml, table (default: json)
//	--log-level      Logging verbosity (debug, info, warn, error)
//
// # Environment Variables
//
//	LOG_LEVEL            Logging verbosity
//	CONFSCOPE_CONFIG     Root configuration file path
//	CONFSCOPE_STORE      Snapshot store directory
//	CONFSCOPE_OUTPUT     Output file path
//	CONFSCOPE_FORMAT     Output format
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/confscope/confscope/pkg/cli.version=1.0.0'"
package cli
