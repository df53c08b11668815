package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pkgraph/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle"), "outer"),
			wantMessages: []string{"outer", "middle", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name: "metadata stays with its level",
			err: func() error {
				inner := zerr.With(zerr.New("inner"), "inner_key", "inner_val")
				return zerr.With(zerr.Wrap(inner, "outer"), "outer_key", "outer_val")
			}(),
			wantMessages: []string{"outer", "inner"},
			wantMetadata: []map[string]any{
				{"outer_key": "outer_val"},
				{"inner_key": "inner_val"},
			},
		},
		{
			name:         "metadata-only wrapper folds into the next level",
			err:          zerr.With(errors.New("no such file"), "path", "a.yaml"),
			wantMessages: []string{"no such file"},
			wantMetadata: []map[string]any{{"path": "a.yaml"}},
		},
		{
			name:         "nil",
			err:          nil,
			wantMessages: nil,
			wantMetadata: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			var messages []string
			var metadata []map[string]any
			for _, e := range entries {
				messages = append(messages, e.Message)
				metadata = append(metadata, e.Metadata)
			}
			assert.Equal(t, tt.wantMessages, messages)
			assert.Equal(t, tt.wantMetadata, metadata)
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	entries := []logger.ErrorEntry{
		{Message: "loader failed", Metadata: map[string]any{"loader": "main", "attempt": 1}},
		{Message: "yaml: line 2\nmapping values are not allowed"},
	}

	want := "Error: loader failed (attempt=1, loader=main)\n" +
		"\n" +
		"  Caused by:\n" +
		"    → yaml: line 2\n" +
		"      mapping values are not allowed"

	assert.Equal(t, want, logger.FormatErrorEntries(entries))
	assert.Empty(t, logger.FormatErrorEntries(nil))
}
