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

	"github.com/confscope/confscope/pkg/collector/webconfig"
	"github.com/confscope/confscope/pkg/discovery"
	"github.com/confscope/confscope/pkg/header"
	"github.com/confscope/confscope/pkg/nginx"
	"github.com/confscope/confscope/pkg/serializer"
)

// ParseDocument is the serialized result of the parse command. Result holds
// the readable projection, Payload the full parse tree when --crossplane
// is set.
type ParseDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Result  *nginx.ReadableConfig `json:"result,omitempty" yaml:"result,omitempty"`
	Payload *nginx.Payload        `json:"payload,omitempty" yaml:"payload,omitempty"`
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse an NGINX configuration file",
		Description: `Parse an NGINX configuration into a structured document.

The parser follows include directives (with glob expansion), records
errors per file without aborting, and never touches the network.

By default the output is a readable projection: one nested map mirroring
the configuration hierarchy, with includes expanded inline. Use
--crossplane for the full parse tree with per-directive file and line
provenance.

# Examples

Parse the default configuration:
  confscope parse

Parse a specific file to YAML:
  confscope parse --path /etc/nginx/nginx.conf --format yaml

Full parse tree with comments, written to a file:
  confscope parse --crossplane --include-comments --output nginx.json

Fail on unknown directives, skipping noisy ones:
  confscope parse --strict --ignore log_format --ignore map`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "Path to the root configuration file",
				Value:   webconfig.DefaultConfigPath,
				Sources: cli.EnvVars("CONFSCOPE_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "include-comments",
				Usage: "Include comments in the parse result",
			},
			&cli.BoolFlag{
				Name:  "single-file",
				Usage: "Parse only the root file, do not follow includes",
			},
			&cli.BoolFlag{
				Name:  "combine",
				Usage: "Splice all included files into a single configuration",
			},
			&cli.BoolFlag{
				Name:  "crossplane",
				Usage: "Emit the full parse tree instead of the readable projection",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Report unknown directives as errors",
			},
			&cli.StringSliceFlag{
				Name:  "ignore",
				Usage: "Directive name to skip during parsing (can be repeated)",
			},
			&cli.BoolFlag{
				Name:  "dir-includes",
				Usage: "Allow include directives that point at directories",
			},
			&cli.IntFlag{
				Name:  "depth",
				Usage: "Maximum include nesting depth",
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

			opts := []nginx.Option{
				nginx.WithComments(cmd.Bool("include-comments")),
				nginx.WithSingleFile(cmd.Bool("single-file")),
				nginx.WithCombine(cmd.Bool("combine")),
				nginx.WithStrict(cmd.Bool("strict")),
				nginx.WithDirectoryIncludes(cmd.Bool("dir-includes")),
			}
			if names := cmd.StringSlice("ignore"); len(names) > 0 {
				opts = append(opts, nginx.WithIgnore(names...))
			}
			if depth := int(cmd.Int("depth")); depth > 0 {
				opts = append(opts, nginx.WithIncludeDepth(depth))
			}

			parser, err := nginx.NewParser(opts...)
			if err != nil {
				return fmt.Errorf("failed to create parser: %w", err)
			}

			payload := parser.Parse(cmd.String("path"))

			doc := &ParseDocument{}
			doc.Init(header.KindParseResult, discovery.APIVersion, version)
			if cmd.Bool("crossplane") {
				doc.Payload = payload
			} else {
				doc.Result = nginx.Readable(payload)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if closer, ok := ser.(serializer.Closer); ok {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close output", "error", err)
					}
				}
			}()

			return ser.Serialize(ctx, doc)
		},
	}
}
