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
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dobosmarton/typeful-api/contract"
	"github.com/dobosmarton/typeful-api/stdhttp"
)

const shutdownTimeout = 10 * time.Second

func serveCommand(c *contract.Contract, handlers stdhttp.Handlers) *cli.Command {
	flags := append([]cli.Flag{
		&cli.StringFlag{
			Name:    addrFlag,
			Aliases: []string{"a"},
			Value:   ":8080",
			Usage:   "Listen address",
		},
		&cli.StringFlag{
			Name:  docsPathFlag,
			Value: "/api-doc",
			Usage: "Path the OpenAPI document is served at",
		},
		&cli.StringFlag{
			Name:  uiPathFlag,
			Usage: "Serve a Swagger UI page at this path. Disabled when empty.",
		},
	}, infoFlags...)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the contract's routes with validation and documentation",
		Flags: flags,
		Action: func(ctx *cli.Context) error {
			gen, err := newGenerator(ctx)
			if err != nil {
				return err
			}

			opts := []stdhttp.Option{
				stdhttp.WithDocsPath(ctx.String(docsPathFlag)),
				stdhttp.WithMiddleware(stdhttp.RequestID(stdhttp.RequestIDConfig{TrustIncoming: true})),
			}
			if ui := ctx.String(uiPathFlag); ui != "" {
				opts = append(opts, stdhttp.WithUI(ui))
			}
			handler, err := stdhttp.NewHandler(c, gen, handlers, opts...)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              ctx.String(addrFlag),
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("serving API", "addr", srv.Addr, "docs", ctx.String(docsPathFlag))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Context.Done():
			}

			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
