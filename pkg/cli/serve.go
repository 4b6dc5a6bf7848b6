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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/confscope/confscope/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Serve the snapshot query API",
		Description: `Serve a read-only HTTP API over a snapshot store directory.

Endpoints:
  GET /v1/hosts             - hosts with stored snapshots
  GET /v1/snapshots         - snapshot summaries, newest first
  GET /v1/snapshots/latest  - most recent snapshot document
  GET /v1/snapshots/{id}    - snapshot document by ID
  GET /health, /ready       - probes
  GET /metrics              - Prometheus metrics

# Examples

Serve the default store on port 8080:
  confscope serve

Custom store and port:
  confscope serve --store /data/snapshots --port 9090`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Usage:   "Address to listen on",
				Sources: cli.EnvVars("CONFSCOPE_ADDRESS"),
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "Port to listen on",
				Value:   8080,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "store",
				Usage:   "Snapshot store directory to serve",
				Value:   server.DefaultStoreDir,
				Sources: cli.EnvVars("CONFSCOPE_STORE"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.NewConfig()
			cfg.Version = version
			cfg.Address = cmd.String("address")
			cfg.Port = int(cmd.Int("port"))
			cfg.StoreDir = cmd.String("store")

			return server.Run(cfg)
		},
	}
}
