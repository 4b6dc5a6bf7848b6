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

// Package store persists discovery snapshots as JSON documents on the
// filesystem, one directory per host, and answers the queries the HTTP
// layer needs: list, latest per host, fetch by ID.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/confscope/confscope/pkg/discovery"
)

// ErrNotFound is returned when no document matches a query.
var ErrNotFound = errors.New("snapshot not found")

// hostUnknown is the directory used when a snapshot carries no source host.
const hostUnknown = "unknown"

// Entry summarizes one stored snapshot.
type Entry struct {
	ID        string    `json:"id"`
	Host      string    `json:"host"`
	Timestamp time.Time `json:"timestamp"`
}

// Store is a filesystem-backed snapshot store. Documents are written
// atomically (temp file + rename), so concurrent readers never observe a
// partial document.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("store directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save persists the snapshot and returns its storage key ("host/file").
func (s *Store) Save(ctx context.Context, snap *discovery.Snapshot) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if snap == nil {
		return "", fmt.Errorf("snapshot cannot be nil")
	}

	host := snap.Metadata["source-host"]
	if host == "" {
		host = hostUnknown
	}

	hostDir := filepath.Join(s.dir, host)
	if err := os.MkdirAll(hostDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create host directory: %w", err)
	}

	ts := time.Now().UTC()
	if raw, ok := snap.Metadata["timestamp"]; ok {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			ts = parsed
		}
	}

	name := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), snap.ID)
	path := filepath.Join(hostDir, name)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("failed to finalize snapshot: %w", err)
	}

	return filepath.Join(host, name), nil
}

// List returns summaries of all stored snapshots, newest first. A host
// filter narrows the result; empty means all hosts.
func (s *Store) List(ctx context.Context, host string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hosts, err := s.hosts(host)
	if err != nil {
		return nil, err
	}

	entries := []Entry{}
	for _, h := range hosts {
		files, err := os.ReadDir(filepath.Join(s.dir, h))
		if err != nil {
			return nil, fmt.Errorf("failed to list snapshots for %q: %w", h, err)
		}
		for _, f := range files {
			e, ok := parseEntryName(h, f.Name())
			if !ok {
				continue
			}
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// Latest returns the most recent snapshot for the host.
func (s *Store) Latest(ctx context.Context, host string) (*discovery.Snapshot, error) {
	entries, err := s.List(ctx, host)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: host %q", ErrNotFound, host)
	}
	return s.Get(ctx, entries[0].ID)
}

// Get returns the snapshot with the given document ID.
func (s *Store) Get(ctx context.Context, id string) (*discovery.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hosts, err := s.hosts("")
	if err != nil {
		return nil, err
	}

	for _, h := range hosts {
		files, err := os.ReadDir(filepath.Join(s.dir, h))
		if err != nil {
			continue
		}
		for _, f := range files {
			e, ok := parseEntryName(h, f.Name())
			if !ok || e.ID != id {
				continue
			}
			return s.read(filepath.Join(s.dir, h, f.Name()))
		}
	}
	return nil, fmt.Errorf("%w: id %q", ErrNotFound, id)
}

// Hosts returns the hosts with at least one stored snapshot, sorted.
func (s *Store) Hosts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.hosts("")
}

func (s *Store) hosts(filter string) ([]string, error) {
	if filter != "" {
		if _, err := os.Stat(filepath.Join(s.dir, filter)); err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to read store: %w", err)
		}
		return []string{filter}, nil
	}

	dirs, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read store directory: %w", err)
	}

	hosts := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if d.IsDir() {
			hosts = append(hosts, d.Name())
		}
	}
	sort.Strings(hosts)
	return hosts, nil
}

func (s *Store) read(path string) (*discovery.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %q: %w", path, err)
	}
	var snap discovery.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %q: %w", path, err)
	}
	return &snap, nil
}

// parseEntryName decodes a "<timestamp>_<id>.json" document name.
func parseEntryName(host, name string) (Entry, bool) {
	base, found := strings.CutSuffix(name, ".json")
	if !found {
		return Entry{}, false
	}
	tsPart, id, found := strings.Cut(base, "_")
	if !found || id == "" {
		return Entry{}, false
	}
	ts, err := time.Parse("20060102T150405Z", tsPart)
	if err != nil {
		return Entry{}, false
	}
	return Entry{ID: id, Host: host, Timestamp: ts}, true
}
