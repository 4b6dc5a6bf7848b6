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

package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/confscope/confscope/pkg/serializer"
	"github.com/confscope/confscope/pkg/store"
)

// HostsResponse lists hosts with at least one stored snapshot.
type HostsResponse struct {
	Hosts []string `json:"hosts"`
	Count int      `json:"count"`
}

// SnapshotsResponse lists stored snapshot summaries, newest first.
type SnapshotsResponse struct {
	Snapshots []store.Entry `json:"snapshots"`
	Count     int           `json:"count"`
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := struct {
		Name      string   `json:"name"`
		Version   string   `json:"version"`
		Ready     bool     `json:"ready"`
		Timestamp string   `json:"timestamp"`
		Routes    []string `json:"routes"`
	}{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes: []string{
			"GET /v1/hosts",
			"GET /v1/snapshots",
			"GET /v1/snapshots/latest",
			"GET /v1/snapshots/{id}",
			"GET /health",
			"GET /ready",
			"GET /metrics",
		},
	}

	s.mu.RLock()
	resp.Ready = s.ready
	s.mu.RUnlock()

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// handleHosts handles GET /v1/hosts
func (s *Server) handleHosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	hosts, err := s.store.Hosts(r.Context())
	if err != nil {
		slog.Error("failed to list hosts", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
			"Failed to list hosts", true, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HostsResponse{Hosts: hosts, Count: len(hosts)})
}

// handleSnapshots handles GET /v1/snapshots with an optional host filter.
func (s *Server) handleSnapshots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	host := r.URL.Query().Get("host")
	entries, err := s.store.List(r.Context(), host)
	if err != nil {
		slog.Error("failed to list snapshots", "host", host, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
			"Failed to list snapshots", true, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, SnapshotsResponse{Snapshots: entries, Count: len(entries)})
}

// handleSnapshot handles GET /v1/snapshots/latest and GET /v1/snapshots/{id}.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/v1/snapshots/")
	if rest == "" || strings.Contains(rest, "/") {
		s.writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"Invalid snapshot path", false, nil)
		return
	}

	var (
		snap any
		err  error
	)
	if rest == "latest" {
		snap, err = s.store.Latest(r.Context(), r.URL.Query().Get("host"))
	} else {
		snap, err = s.store.Get(r.Context(), rest)
	}

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, r, http.StatusNotFound, ErrCodeNotFound,
				"Snapshot not found", false, nil)
			return
		}
		slog.Error("failed to read snapshot", "path", r.URL.Path, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
			"Failed to read snapshot", true, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, snap)
}
