package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/credkit/cmd/credctl/commands"
	"go.trai.ch/credkit/internal/app"
	"go.trai.ch/credkit/internal/build"
)

type mockApp struct {
	renderFunc  func(ctx context.Context, manifestPaths []string, opts app.RenderOptions) error
	inspectFunc func(ctx context.Context, manifestPaths []string) ([]app.Summary, error)
}

func (m *mockApp) Render(ctx context.Context, manifestPaths []string, opts app.RenderOptions) error {
	if m.renderFunc != nil {
		return m.renderFunc(ctx, manifestPaths, opts)
	}
	return nil
}

func (m *mockApp) Inspect(ctx context.Context, manifestPaths []string) ([]app.Summary, error) {
	if m.inspectFunc != nil {
		return m.inspectFunc(ctx, manifestPaths)
	}
	return nil, nil
}

func TestCommands_Render(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RenderOptions
		var capturedPaths []string
		called := false

		mock := &mockApp{
			renderFunc: func(_ context.Context, manifestPaths []string, opts app.RenderOptions) error {
				capturedOpts = opts
				capturedPaths = manifestPaths
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"render", "creds.yml", "--indent", "--out", "requests.json"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.True(t, capturedOpts.Indent)
		assert.Equal(t, "requests.json", capturedOpts.OutputPath)
		assert.Equal(t, []string{"creds.yml"}, capturedPaths)
	})

	t.Run("returns error on render failure", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(_ context.Context, _ []string, _ app.RenderOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"render", "creds.yml"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no manifests provided", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(_ context.Context, _ []string, _ app.RenderOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"render"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Inspect(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("prints one summary line per request", func(t *testing.T) {
		mock := &mockApp{
			inspectFunc: func(_ context.Context, _ []string) ([]app.Summary, error) {
				return []app.Summary{
					{Name: "/example/secret1", Type: "value", Overwrite: true, Permissions: 2},
					{Name: "/example/json", Type: "json", Overwrite: false, Permissions: 0},
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"inspect", "creds.yml"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "2 write requests")
		assert.Contains(t, out, "/example/secret1")
		assert.Contains(t, out, "type=value permissions=2")
		assert.Contains(t, out, "/example/json")
		assert.NotContains(t, out, "hunter2")
	})

	t.Run("returns error on inspect failure", func(t *testing.T) {
		mock := &mockApp{
			inspectFunc: func(_ context.Context, _ []string) ([]app.Summary, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"inspect", "creds.yml"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
