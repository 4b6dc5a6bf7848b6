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

// Package process collects a running-process inventory.
package process

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/confscope/confscope/pkg/measurement"
)

// Collector gathers an inventory of running processes.
type Collector struct {
	// Names restricts the inventory to processes with these executable
	// names. Empty means every process.
	Names []string
}

// Collect returns a Process measurement with one subtype per matching
// process. Processes that disappear mid-scan are skipped, not errors.
func (c *Collector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	slog.Info("collecting process inventory", slog.Any("names", c.Names))

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate processes: %w", err)
	}

	subs := make([]measurement.Subtype, 0, len(c.Names))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			// racing a process exit
			continue
		}
		if !c.wanted(name) {
			continue
		}

		b := measurement.NewSubtypeBuilder(fmt.Sprintf("%s[%d]", name, p.Pid)).
			Set(measurement.KeyPID, int(p.Pid)).
			Set(measurement.KeyContainer, inContainer(p.Pid))

		if user, err := p.UsernameWithContext(ctx); err == nil {
			b.Set(measurement.KeyUser, user)
		}
		if cmd, err := p.CmdlineWithContext(ctx); err == nil {
			b.SetNonEmpty(measurement.KeyCommand, cmd)
		}

		subs = append(subs, b.Build())
	}

	return &measurement.Measurement{
		Type:     measurement.TypeProcess,
		Subtypes: subs,
	}, nil
}

func (c *Collector) wanted(name string) bool {
	if len(c.Names) == 0 {
		return true
	}
	for _, n := range c.Names {
		if name == n {
			return true
		}
	}
	return false
}

// inContainer reports whether the process runs inside a container, judged by
// its cgroup membership. Unreadable cgroup info means no.
func inContainer(pid int32) bool {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/cgroup", pid))
	if err != nil {
		return false
	}
	s := string(data)
	return strings.Contains(s, "docker") ||
		strings.Contains(s, "containerd") ||
		strings.Contains(s, "kubepods")
}
