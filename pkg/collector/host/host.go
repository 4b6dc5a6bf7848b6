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

// Package host collects OS release and kernel information for the node.
package host

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/confscope/confscope/pkg/collector/file"
	"github.com/confscope/confscope/pkg/measurement"
)

var (
	filePathReleasePrimary  = "/etc/os-release"
	filePathReleaseFallback = "/usr/lib/os-release"
)

// Collector gathers host-level information: os-release parameters plus
// kernel, architecture, hostname and uptime.
type Collector struct {
	// ReleasePath overrides the os-release location, used in tests.
	ReleasePath string
}

// Collect returns a Host measurement with "release" and "system" subtypes.
// A missing os-release file degrades to the system subtype alone.
func (c *Collector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	slog.Info("collecting host information")

	subs := make([]measurement.Subtype, 0, 2)

	if release, err := c.collectRelease(ctx); err != nil {
		slog.Warn("os release unavailable", "error", err)
	} else {
		subs = append(subs, *release)
	}

	system, err := collectSystem(ctx)
	if err != nil {
		return nil, err
	}
	subs = append(subs, *system)

	return &measurement.Measurement{
		Type:     measurement.TypeHost,
		Subtypes: subs,
	}, nil
}

// collectRelease parses os-release key-value pairs, e.g.
//
//	NAME="Ubuntu"
//	ID=ubuntu
//	VERSION_ID="22.04"
//
// Per the freedesktop.org spec, /usr/lib/os-release is the fallback when
// /etc/os-release does not exist.
func (c *Collector) collectRelease(ctx context.Context) (*measurement.Subtype, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := c.ReleasePath
	if root == "" {
		root = filePathReleasePrimary
		if _, err := os.Stat(root); os.IsNotExist(err) {
			root = filePathReleaseFallback
		}
	}

	parser := file.NewParser(
		// strip surrounding quotes per freedesktop.org spec
		file.WithVTrimChars(`"'`),
		file.WithSkipComments(true),
		file.WithSkipEmptyValues(true),
	)

	params, err := parser.GetMap(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read os release from %s: %w", root, err)
	}

	readings := make(map[string]any, len(params))
	for key, value := range params {
		readings[key] = value
	}

	return &measurement.Subtype{
		Name:    "release",
		Data:    readings,
		Context: map[string]string{"path": root},
	}, nil
}

// collectSystem gathers kernel and uptime readings.
func collectSystem(ctx context.Context) (*measurement.Subtype, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}

	st := measurement.NewSubtypeBuilder("system").
		Set(measurement.KeyHostname, info.Hostname).
		Set(measurement.KeyKernel, info.KernelVersion).
		Set(measurement.KeyArch, info.KernelArch).
		Set(measurement.KeyUptime, info.Uptime).
		SetNonEmpty(measurement.KeyOSName, info.Platform).
		Build()

	return &st, nil
}
