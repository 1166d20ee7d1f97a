// Copyright 2026 The Typeful API Authors
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

// Package cli builds a command-line application around a compiled-in
// contract, with commands to render the OpenAPI document, invoke an
// external client generator, and serve the API.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dobosmarton/typeful-api/contract"
	"github.com/dobosmarton/typeful-api/openapi"
	"github.com/dobosmarton/typeful-api/stdhttp"
)

const (
	outputFlag     = "output"
	prettyFlag     = "pretty"
	formatFlag     = "format"
	titleFlag      = "title"
	apiVersionFlag = "api-version"
	descFlag       = "description"
	serverFlag     = "server"
	basePathFlag   = "base-path"
	watchFlag      = "watch"
	intervalFlag   = "interval"
	specFlag       = "spec"
	generatorFlag  = "generator"
	addrFlag       = "addr"
	docsPathFlag   = "docs-path"
	uiPathFlag     = "ui-path"
	quietFlag      = "quiet"
)

var infoFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     titleFlag,
		Aliases:  []string{"t"},
		Usage:    "API title for the info section",
		Required: true,
	},
	&cli.StringFlag{
		Name:     apiVersionFlag,
		Usage:    "API version for the info section",
		Required: true,
	},
	&cli.StringFlag{
		Name:  descFlag,
		Usage: "API description for the info section",
	},
	&cli.StringSliceFlag{
		Name:  serverFlag,
		Usage: "Server URL, optionally with a description as 'url|description'. Repeatable.",
	},
	&cli.StringFlag{
		Name:  basePathFlag,
		Usage: "Path prefix prepended to every route",
	},
}

// New builds the application for the given contract. Handlers back the
// serve command and may be nil when the binary only generates documents.
func New(c *contract.Contract, handlers stdhttp.Handlers) *cli.App {
	return &cli.App{
		Name:  "typeful-api",
		Usage: "Render OpenAPI documents and serve APIs from a typed contract.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    quietFlag,
				Aliases: []string{"q"},
				Usage:   "Only log warnings and errors",
			},
		},
		Before: func(ctx *cli.Context) error {
			level := slog.LevelInfo
			if ctx.Bool(quietFlag) {
				level = slog.LevelWarn
			}
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
		Commands: []*cli.Command{
			generateSpecCommand(c),
			generateClientCommand(c),
			serveCommand(c, handlers),
		},
	}
}

// newGenerator assembles an openapi.Generator from the shared info flags.
func newGenerator(ctx *cli.Context) (*openapi.Generator, error) {
	opts := []openapi.Option{
		openapi.WithTitle(ctx.String(titleFlag), ctx.String(apiVersionFlag)),
	}
	if desc := ctx.String(descFlag); desc != "" {
		opts = append(opts, openapi.WithDescription(desc))
	}
	for _, s := range ctx.StringSlice(serverFlag) {
		url, desc, _ := strings.Cut(s, "|")
		opts = append(opts, openapi.WithServer(url, desc))
	}
	if bp := ctx.String(basePathFlag); bp != "" {
		opts = append(opts, openapi.WithBasePath(bp))
	}
	return openapi.New(opts...)
}

func render(c *contract.Contract, gen *openapi.Generator, format string, pretty bool) ([]byte, error) {
	switch format {
	case "json":
		return gen.GenerateJSON(c, pretty)
	case "yaml":
		return gen.GenerateYAML(c)
	default:
		return nil, fmt.Errorf("unsupported output format %q, expected json or yaml", format)
	}
}

// writeIfChanged writes the document unless the file already holds the
// same bytes, so watch loops do not touch mtimes needlessly.
func writeIfChanged(path string, doc []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && string(existing) == string(doc) {
		return false, nil
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

func generateSpecCommand(c *contract.Contract) *cli.Command {
	flags := append([]cli.Flag{
		&cli.StringFlag{
			Name:    outputFlag,
			Aliases: []string{"o"},
			Usage:   "Output file. Writes to stdout when omitted.",
		},
		&cli.BoolFlag{
			Name:  prettyFlag,
			Value: true,
			Usage: "Indent JSON output",
		},
		&cli.StringFlag{
			Name:    formatFlag,
			Aliases: []string{"f"},
			Value:   "json",
			Usage:   "Output format, json or yaml",
		},
		&cli.BoolFlag{
			Name:    watchFlag,
			Aliases: []string{"w"},
			Usage:   "Keep running and rewrite the output when the document changes",
		},
		&cli.DurationFlag{
			Name:  intervalFlag,
			Value: 2 * time.Second,
			Usage: "Re-render interval in watch mode",
		},
	}, infoFlags...)

	return &cli.Command{
		Name:    "generate-spec",
		Aliases: []string{"gen"},
		Usage:   "Render the OpenAPI document for the contract",
		Flags:   flags,
		Action: func(ctx *cli.Context) error {
			gen, err := newGenerator(ctx)
			if err != nil {
				return err
			}
			format := ctx.String(formatFlag)
			doc, err := render(c, gen, format, ctx.Bool(prettyFlag))
			if err != nil {
				return err
			}

			output := ctx.String(outputFlag)
			if output == "" {
				if ctx.Bool(watchFlag) {
					return fmt.Errorf("--%s requires --%s", watchFlag, outputFlag)
				}
				_, err := os.Stdout.Write(doc)
				return err
			}

			if _, err := writeIfChanged(output, doc); err != nil {
				return err
			}
			slog.Info("wrote OpenAPI document", "path", output, "format", format, "bytes", len(doc))

			if !ctx.Bool(watchFlag) {
				return nil
			}
			ticker := time.NewTicker(ctx.Duration(intervalFlag))
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Context.Done():
					return nil
				case <-ticker.C:
					doc, err := render(c, gen, format, ctx.Bool(prettyFlag))
					if err != nil {
						return err
					}
					changed, err := writeIfChanged(output, doc)
					if err != nil {
						return err
					}
					if changed {
						slog.Info("document changed, rewrote output", "path", output)
					}
				}
			}
		},
	}
}
