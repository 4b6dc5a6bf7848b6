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

// Package systemd collects service unit states over the systemd D-Bus API.
package systemd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/confscope/confscope/pkg/measurement"
)

// Keys filtered out of unit properties: credentials for privacy, the rest
// for noise reduction.
var filterOutKeys = []string{
	"AllowedCPUs",
	"AllowedMemoryNodes",
	"Asserts",
	"BPFProgram",
	"BusName",
	"Id",
	"*Credential*",
}

// Collector gathers configuration data from systemd service units.
type Collector struct {
	Services []string
}

// Collect returns a SystemD measurement with one subtype per configured
// service, carrying the unit's filtered property map.
func (s *Collector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	slog.Info("collecting systemd service configurations")

	services := s.Services
	if len(services) == 0 {
		services = []string{"nginx.service"}
	}
	subs := make([]measurement.Subtype, 0, len(services))

	conn, err := dbus.NewSystemdConnectionContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to systemd: %w", err)
	}
	defer conn.Close()

	for _, service := range services {
		props, err := conn.GetAllPropertiesContext(ctx, service)
		if err != nil {
			return nil, fmt.Errorf("failed to get unit properties for %s: %w", service, err)
		}

		readings := make(map[string]any, len(props))
		for k, v := range props {
			readings[k] = measurement.ToValue(v)
		}

		subs = append(subs, measurement.Subtype{
			Name: service,
			Data: measurement.FilterOut(readings, filterOutKeys),
		})
	}

	return &measurement.Measurement{
		Type:     measurement.TypeSystemD,
		Subtypes: subs,
	}, nil
}
