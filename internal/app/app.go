// Package app implements the application layer for credctl.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/credkit/internal/adapters/encoding"
	"go.trai.ch/credkit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ErrNoManifests is returned when no manifest paths are specified.
var ErrNoManifests = zerr.New("no manifests specified")

// App represents the main application logic.
type App struct {
	loader ports.ManifestLoader
	logger ports.Logger
}

// New creates a new App instance.
func New(loader ports.ManifestLoader, logger ports.Logger) *App {
	return &App{
		loader: loader,
		logger: logger,
	}
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	Indent     bool
	OutputPath string
	Out        io.Writer // defaults to os.Stdout
}

// Render loads every manifest, encodes each built request, and hands the
// payloads to the output sink in manifest order.
func (a *App) Render(ctx context.Context, manifestPaths []string, opts RenderOptions) error {
	// Pick the encoder and sink based on the options.
	var encoder ports.Encoder
	if opts.Indent {
		encoder = encoding.NewIndentedJSONEncoder()
	} else {
		encoder = encoding.NewJSONEncoder()
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	if opts.OutputPath != "" {
		f, err := os.Create(opts.OutputPath)
		if err != nil {
			return zerr.Wrap(err, "failed to create output file")
		}
		defer func() {
			_ = f.Close()
		}()
		out = f
	}

	return a.render(ctx, manifestPaths, encoder, NewWriterSink(out))
}

func (a *App) render(ctx context.Context, manifestPaths []string, encoder ports.Encoder, sink ports.Sink) error {
	results, err := a.loadAll(ctx, manifestPaths)
	if err != nil {
		return err
	}

	total := 0
	for _, requests := range results {
		for _, req := range requests {
			payload, encodeErr := encoder.Encode(req)
			if encodeErr != nil {
				return encodeErr
			}
			if writeErr := sink.Write(payload); writeErr != nil {
				return zerr.Wrap(writeErr, "failed to write encoded request")
			}
			total++
		}
	}

	a.logger.Info(fmt.Sprintf("rendered %d write requests from %d manifests", total, len(manifestPaths)))
	return nil
}

// Summary describes one request for human inspection without exposing
// secret material.
type Summary struct {
	Name        string
	Type        string
	Overwrite   bool
	Permissions int
}

// Inspect loads the manifests and returns one summary per request, in
// manifest order.
func (a *App) Inspect(ctx context.Context, manifestPaths []string) ([]Summary, error) {
	results, err := a.loadAll(ctx, manifestPaths)
	if err != nil {
		return nil, err
	}

	var summaries []Summary
	for _, requests := range results {
		for _, req := range requests {
			summaries = append(summaries, Summary{
				Name:        req.Name(),
				Type:        req.Type(),
				Overwrite:   req.Overwrite(),
				Permissions: len(req.AdditionalPermissions()),
			})
		}
	}
	return summaries, nil
}

// loadAll loads the given manifests concurrently. The result slice keeps
// manifest order regardless of load completion order.
func (a *App) loadAll(ctx context.Context, manifestPaths []string) ([][]ports.Request, error) {
	if len(manifestPaths) == 0 {
		return nil, ErrNoManifests
	}

	results := make([][]ports.Request, len(manifestPaths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range manifestPaths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			requests, err := a.loader.Load(path)
			if err != nil {
				return err
			}
			results[i] = requests
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
