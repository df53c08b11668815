package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"go.trai.ch/pkgraph/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	tests := []struct {
		name       string
		build      func(h slog.Handler) slog.Handler
		goldenName string
	}{
		{
			name: "handler attrs",
			build: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.String("loader", "main"), slog.Int("packages", 2)})
			},
			goldenName: "handler_attrs",
		},
		{
			name: "grouped attrs",
			build: func(h slog.Handler) slog.Handler {
				return h.WithGroup("cache").WithAttrs([]slog.Attr{slog.Int("links", 7)})
			},
			goldenName: "handler_group",
		},
		{
			name: "nested groups and quoted values",
			build: func(h slog.Handler) slog.Handler {
				return h.WithGroup("cache").WithGroup("loader").WithAttrs([]slog.Attr{
					slog.String("manifest", "repo/my apps.yaml"),
					slog.String("alias", ""),
					slog.Group("stats", slog.Int("packages", 3)),
				})
			},
			goldenName: "handler_nested",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			h := tt.build(logger.NewPrettyHandler(buf, nil))
			slog.New(h).Info("graph loaded")

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}
