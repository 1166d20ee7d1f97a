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

package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/dobosmarton/typeful-api/contract"
)

const defaultClientGenerator = "openapi-typescript"

func generateClientCommand(c *contract.Contract) *cli.Command {
	flags := append([]cli.Flag{
		&cli.StringFlag{
			Name:  specFlag,
			Usage: "Existing OpenAPI document to generate from. Rendered from the contract when omitted.",
		},
		&cli.StringFlag{
			Name:     outputFlag,
			Aliases:  []string{"o"},
			Usage:    "Output path passed to the client generator",
			Required: true,
		},
		&cli.StringFlag{
			Name:  generatorFlag,
			Value: defaultClientGenerator,
			Usage: "Client generator executable to invoke as '<generator> <spec> --output <path>'",
		},
	}, infoFlags...)

	return &cli.Command{
		Name:  "generate-client",
		Usage: "Invoke an external client generator against the OpenAPI document",
		Flags: flags,
		Action: func(ctx *cli.Context) error {
			specPath := ctx.String(specFlag)
			if specPath == "" {
				gen, err := newGenerator(ctx)
				if err != nil {
					return err
				}
				doc, err := gen.GenerateJSON(c, true)
				if err != nil {
					return err
				}
				tmp, err := os.CreateTemp("", "openapi-*.json")
				if err != nil {
					return fmt.Errorf("creating temporary document: %w", err)
				}
				defer os.Remove(tmp.Name())
				if _, err := tmp.Write(doc); err != nil {
					tmp.Close()
					return fmt.Errorf("writing temporary document: %w", err)
				}
				if err := tmp.Close(); err != nil {
					return err
				}
				specPath = tmp.Name()
			}

			tool := ctx.String(generatorFlag)
			output := ctx.String(outputFlag)
			if dir := filepath.Dir(output); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("creating output directory: %w", err)
				}
			}

			cmd := exec.CommandContext(ctx.Context, tool, specPath, "--output", output)
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			slog.Info("invoking client generator", "generator", tool, "spec", specPath, "output", output)
			if err := cmd.Run(); err != nil {
				return fmt.Errorf("client generator %s failed: %w", tool, err)
			}
			return nil
		},
	}
}
