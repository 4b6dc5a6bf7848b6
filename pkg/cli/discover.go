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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/confscope/confscope/pkg/collector"
	"github.com/confscope/confscope/pkg/collector/webconfig"
	"github.com/confscope/confscope/pkg/discovery"
	"github.com/confscope/confscope/pkg/nginx"
	"github.com/confscope/confscope/pkg/serializer"
	"github.com/confscope/confscope/pkg/store"
)

func discoverCmd() *cli.Command {
	return &cli.Command{
		Name:                  "discover",
		EnableShellCompletion: true,
		Usage:                 "Capture a host configuration snapshot",
		Description: `Capture a configuration snapshot of the current host including:
  - Web server configuration (parsed NGINX tree)
  - Process inventory with container detection
  - SystemD service states
  - Operating system release and kernel information

Collectors run concurrently; the snapshot can be output in JSON, YAML,
or table format, and optionally saved to a snapshot store directory for
later querying via the serve command.

# Examples

Snapshot to stdout:
  confscope discover

Snapshot a non-default configuration, tracking extra services:
  confscope discover --path /opt/nginx/nginx.conf \
    --service nginx.service --service php-fpm.service

Save into a store directory:
  confscope discover --store /var/lib/confscope/snapshots`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "Path to the root web server configuration file",
				Value:   webconfig.DefaultConfigPath,
				Sources: cli.EnvVars("CONFSCOPE_CONFIG"),
			},
			&cli.StringSliceFlag{
				Name:    "service",
				Usage:   "SystemD service to inspect (can be repeated)",
				Sources: cli.EnvVars("CONFSCOPE_SERVICES"),
			},
			&cli.StringSliceFlag{
				Name:    "process",
				Usage:   "Process name to include in the inventory (can be repeated)",
				Sources: cli.EnvVars("CONFSCOPE_PROCESSES"),
			},
			&cli.BoolFlag{
				Name:  "include-comments",
				Usage: "Include configuration comments in the snapshot",
			},
			&cli.StringFlag{
				Name:    "store",
				Usage:   "Snapshot store directory to save into",
				Sources: cli.EnvVars("CONFSCOPE_STORE"),
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// Parse output format
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			opts := []collector.FactoryOption{
				collector.WithConfigPath(cmd.String("path")),
				collector.WithParserOptions(nginx.WithComments(cmd.Bool("include-comments"))),
			}
			if services := cmd.StringSlice("service"); len(services) > 0 {
				opts = append(opts, collector.WithSystemDServices(services))
			}
			if names := cmd.StringSlice("process"); len(names) > 0 {
				opts = append(opts, collector.WithProcessNames(names))
			}

			d := discovery.HostDiscoverer{
				Version:    version,
				Factory:    collector.NewDefaultFactory(opts...),
				Serializer: serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")),
			}

			if dir := cmd.String("store"); dir != "" {
				snapshots, err := store.New(dir)
				if err != nil {
					return fmt.Errorf("failed to open snapshot store: %w", err)
				}
				d.Store = snapshots
			}

			defer func() {
				if closer, ok := d.Serializer.(serializer.Closer); ok {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close output", "error", err)
					}
				}
			}()

			return d.Discover(ctx)
		},
	}
}
