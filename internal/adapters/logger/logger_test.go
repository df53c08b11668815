package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgraph/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		verbose    bool
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("loaded 3 packages") },
			goldenName: "info_basic",
		},
		{
			name:       "multiline info",
			log:        func(l *logger.Logger) { l.Info("line1\nline2") },
			goldenName: "info_multiline",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("channel has no manifests") },
			goldenName: "warn_basic",
		},
		{
			name:       "debug filtered",
			log:        func(l *logger.Logger) { l.Debug("linking") },
			goldenName: "debug_filtered",
		},
		{
			name:       "debug verbose",
			log:        func(l *logger.Logger) { l.Debug("linking") },
			verbose:    true,
			goldenName: "debug_verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.SetVerbose(tt.verbose)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "three level chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("database connection failed"),
					"failed to load user data",
				),
				"failed to process request",
			),
			goldenName: "error_chain_zerr_three",
		},
		{
			name: "metadata on main error",
			err: func() error {
				outer := zerr.Wrap(errors.New("connection refused"), "service unavailable")
				outer = zerr.With(outer, "service", "auth-api")
				return zerr.With(outer, "retry_count", 3)
			}(),
			goldenName: "error_metadata_main",
		},
		{
			name: "metadata on a standard error",
			err:  zerr.With(errors.New("no such file"), "path", "main.yaml"),
			goldenName: "error_metadata_stdlib",
		},
		{
			name: "loader failure",
			err: func() error {
				sentinel := zerr.New("malformed descriptor")
				err := zerr.With(zerr.Wrap(sentinel, "package"), "reason", "missing version")
				return zerr.With(zerr.Wrap(err, "loader failed"), "loader", "main")
			}(),
			goldenName: "error_loader",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	inner := errors.New("connection refused")
	middle := fmt.Errorf("failed to connect: %w", inner)
	outer := fmt.Errorf("failed to initialize: %w", middle)

	lg, buf := newTestLogger(t)
	lg.Error(outer)

	assert.Equal(t, "✗ Error: failed to initialize: failed to connect: connection refused\n", buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("error in pretty mode"))
	pretty := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(zerr.With(zerr.Wrap(errors.New("boom"), "load failed"), "loader", "main"))
	jsonOut := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("error back in pretty mode"))
	back := buf.String()

	assert.Contains(t, pretty, "✗")
	assert.NotContains(t, pretty, `"error"`)

	assert.Contains(t, jsonOut, `"level":"ERROR"`)
	assert.Contains(t, jsonOut, `"error"`)
	assert.Contains(t, jsonOut, "load failed")
	assert.NotContains(t, jsonOut, "✗")

	assert.Contains(t, back, "✗")
}

func TestLogger_SetJSON_KeepsVerbosity(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetVerbose(true)
	lg.SetJSON(true)

	lg.Debug("linking")
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lg.Info("concurrent info")
			lg.Warn("concurrent warn")
			lg.Error(errors.New("concurrent error"))
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		lg.SetJSON(true)
		lg.SetOutput(&bytes.Buffer{})
	}()
	wg.Wait()
}
