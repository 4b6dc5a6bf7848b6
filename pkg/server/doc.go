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

// Package server implements the read-only HTTP query API over stored
// discovery snapshots.
//
// The server is stateless: every request reads from the snapshot store
// on disk, so multiple replicas can share a store directory.
//
// # Usage
//
// Basic server startup:
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	cfg.StoreDir = "/var/lib/confscope/snapshots"
//
//	if err := server.Run(cfg); err != nil {
//	    panic(err)
//	}
//
// # API Endpoints
//
// GET /v1/hosts - List hosts with at least one stored snapshot
//
// GET /v1/snapshots - List stored snapshot summaries, newest first
//
//	Query parameters:
//	  - host: only snapshots for this host (default: all hosts)
//
// GET /v1/snapshots/latest - Most recent snapshot document
//
//	Query parameters:
//	  - host: only consider this host (default: all hosts)
//
// GET /v1/snapshots/{id} - Snapshot document by ID
//
// GET /health - Health check (for liveness probe)
//
// GET /ready - Readiness check (for readiness probe)
//
// GET /metrics - Prometheus metrics
//
// # Observability
//
// All API requests accept an optional X-Request-Id header (UUID format).
// If not provided, the server generates one automatically. The request ID
// is returned in the X-Request-Id response header and included in all
// error responses for tracing.
//
// Rate limit response headers:
//
//	X-RateLimit-Limit: Total requests allowed per window
//	X-RateLimit-Remaining: Requests remaining in current window
//	X-RateLimit-Reset: Unix timestamp when window resets
//
// When rate limited, returns 429 with Retry-After header.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "Snapshot not found",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-08-29T12:00:00Z",
//	  "retryable": false
//	}
package server
