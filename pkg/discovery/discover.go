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
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/confscope/confscope/pkg/collector"
	"github.com/confscope/confscope/pkg/header"
	"github.com/confscope/confscope/pkg/measurement"
	"github.com/confscope/confscope/pkg/serializer"
)

// Saver persists a collected snapshot and returns its storage key.
type Saver interface {
	Save(ctx context.Context, snap *Snapshot) (string, error)
}

// HostDiscoverer collects configuration measurements from the current host.
// It runs the web config, process, systemd and host collectors in parallel
// and serializes the assembled snapshot.
type HostDiscoverer struct {
	// Version is the tool version recorded in the snapshot header.
	Version string

	// Factory is the collector factory. If nil, the default factory is used.
	Factory collector.Factory

	// Serializer receives the snapshot. If nil, JSON on stdout.
	Serializer serializer.Serializer

	// Store, when set, persists the snapshot in addition to serializing it.
	Store Saver
}

// Discover collects measurements from all collectors in parallel. Any
// collector failure fails the whole run; the snapshot is serialized (and
// stored, when a store is configured) only on success.
func (d *HostDiscoverer) Discover(ctx context.Context) error {
	if d.Factory == nil {
		d.Factory = collector.NewDefaultFactory()
	}

	slog.Debug("starting host discovery")

	start := time.Now()
	defer func() {
		discoveryDuration.Observe(time.Since(start).Seconds())
	}()

	var mu sync.Mutex

	// The errgroup context feeds the collectors; the original ctx is kept
	// for serialization after the group completes.
	g, gctx := errgroup.WithContext(ctx)

	snap := NewSnapshot()
	snap.Measurements = make([]*measurement.Measurement, 0, 4)

	g.Go(func() error {
		defer observe("metadata", time.Now())
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		mu.Lock()
		snap.Init(header.KindSnapshot, APIVersion, d.Version)
		snap.Metadata["source-host"] = hostname
		mu.Unlock()
		slog.Debug("obtained host metadata",
			slog.String("host", hostname), slog.String("version", d.Version))
		return nil
	})

	for _, col := range []struct {
		name   string
		create func() collector.Collector
	}{
		{"webconfig", d.Factory.CreateWebConfigCollector},
		{"process", d.Factory.CreateProcessCollector},
		{"systemd", d.Factory.CreateSystemDCollector},
		{"host", d.Factory.CreateHostCollector},
	} {
		g.Go(func() error {
			defer observe(col.name, time.Now())
			slog.Debug("collecting", slog.String("collector", col.name))
			m, err := col.create().Collect(gctx)
			if err != nil {
				slog.Error("collection failed",
					slog.String("collector", col.name), slog.String("error", err.Error()))
				return fmt.Errorf("failed to collect %s: %w", col.name, err)
			}
			mu.Lock()
			snap.Measurements = append(snap.Measurements, m)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		discoveryTotal.WithLabelValues("error").Inc()
		return err
	}

	discoveryTotal.WithLabelValues("success").Inc()
	measurementCount.Set(float64(len(snap.Measurements)))

	slog.Debug("discovery complete", slog.Int("measurements", len(snap.Measurements)))

	if d.Store != nil {
		key, err := d.Store.Save(ctx, snap)
		if err != nil {
			return fmt.Errorf("failed to store snapshot: %w", err)
		}
		slog.Info("snapshot stored", slog.String("key", key))
	}

	if d.Serializer == nil {
		d.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}
	if err := d.Serializer.Serialize(ctx, snap); err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	return nil
}

func observe(name string, start time.Time) {
	collectorDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}
