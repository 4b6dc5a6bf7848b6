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

// Package webconfig collects the host's nginx configuration as a measurement.
package webconfig

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/confscope/confscope/pkg/measurement"
	"github.com/confscope/confscope/pkg/nginx"
	"github.com/confscope/confscope/pkg/version"
)

// DefaultConfigPath is the conventional nginx configuration root.
const DefaultConfigPath = "/etc/nginx/nginx.conf"

// ParserOption forwards configuration to the underlying nginx parser.
type ParserOption = nginx.Option

// Collector parses the host's nginx configuration into a measurement.
// A malformed configuration is not a collection error: the measurement
// carries the parse status and errors alongside whatever did parse.
type Collector struct {
	// ConfigPath is the configuration root; DefaultConfigPath when empty.
	ConfigPath string

	// ParserOptions configure the nginx parser (comments, strict mode, ...).
	ParserOptions []ParserOption

	// Technical switches the measurement payload to the crossplane-style
	// projection instead of the readable one.
	Technical bool
}

// Collect parses the configuration and returns a WebConfig measurement with
// one subtype per configuration root. The server version, when the nginx
// binary is on PATH, is recorded in the subtype context.
func (c *Collector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := c.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	slog.Info("collecting web server configuration", slog.String("path", path))

	p, err := nginx.NewParser(c.ParserOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create config parser: %w", err)
	}

	payload := p.Parse(path)

	b := measurement.NewSubtypeBuilder(path).
		Set(measurement.KeyConfigStatus, string(payload.Status)).
		Context(measurement.KeyConfigPath, path)

	if v, ok := serverVersion(ctx); ok {
		b.Context(measurement.KeyServerVersion, v.String())
	}

	if c.Technical {
		b.Set("config", payload)
	} else {
		b.Set("config", nginx.Readable(payload))
	}

	return &measurement.Measurement{
		Type:     measurement.TypeWebConfig,
		Subtypes: []measurement.Subtype{b.Build()},
	}, nil
}

// serverVersion asks the nginx binary for its version. Absence of the binary
// is not an error; the reading is simply omitted.
func serverVersion(ctx context.Context) (version.Version, bool) {
	out, err := exec.CommandContext(ctx, "nginx", "-v").CombinedOutput()
	if err != nil {
		slog.Debug("nginx binary not available", "error", err)
		return version.Version{}, false
	}
	return parseVersionBanner(string(out))
}

// parseVersionBanner extracts the version from an "nginx -v" banner, e.g.
// "nginx version: nginx/1.24.0 (Ubuntu)".
func parseVersionBanner(banner string) (version.Version, bool) {
	_, after, found := strings.Cut(banner, "nginx/")
	if !found {
		return version.Version{}, false
	}
	raw := strings.Fields(after)
	if len(raw) == 0 {
		return version.Version{}, false
	}
	v, err := version.Parse(strings.TrimSpace(raw[0]))
	if err != nil {
		slog.Debug("unparseable nginx version banner", "banner", banner, "error", err)
		return version.Version{}, false
	}
	return v, true
}
