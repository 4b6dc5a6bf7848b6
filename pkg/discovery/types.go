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

package discovery

import (
	"context"

	"github.com/confscope/confscope/pkg/header"
	"github.com/confscope/confscope/pkg/measurement"
)

// APIVersion is the schema version of the snapshot document.
const APIVersion = "confscope.io/v1"

// Discoverer collects a configuration snapshot from the current host.
type Discoverer interface {
	Discover(ctx context.Context) error
}

// NewSnapshot creates a Snapshot with an initialized Measurements slice.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Measurements: make([]*measurement.Measurement, 0),
	}
}

// Snapshot is a collected configuration snapshot from one host: web server
// configuration, process inventory, service states and host information.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	// Measurements contains the collected measurements from all collectors.
	Measurements []*measurement.Measurement `json:"measurements" yaml:"measurements"`
}

// Measurement returns the snapshot's measurement of the given type, or nil.
func (s *Snapshot) Measurement(mt measurement.Type) *measurement.Measurement {
	for _, m := range s.Measurements {
		if m.Type == mt {
			return m
		}
	}
	return nil
}
