package progress_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgraph/internal/adapters/loader"
	"go.trai.ch/pkgraph/internal/adapters/progress"
	"go.trai.ch/pkgraph/internal/core/domain"
	"go.trai.ch/pkgraph/internal/engine/cache"
)

func TestRecorder_Lines(t *testing.T) {
	var buf bytes.Buffer
	r := progress.New()
	r.SetMirror(&buf)

	r.Start()
	r.SetTopic("Building cache...")
	r.Set(0, 3)
	r.Show()
	r.Show()
	r.Add(2)
	r.Show()
	r.Stop()

	assert.Equal(t, "[0/3] Building cache...\n[2/3] Building cache...\n", buf.String())
	require.NoError(t, r.Close())
}

func TestRecorder_StartResets(t *testing.T) {
	var buf bytes.Buffer
	r := progress.New()
	r.SetMirror(&buf)

	r.Start()
	r.Set(1, 1)
	r.Show()
	r.Stop()

	r.Start()
	r.Show()
	r.Stop()
	r.Stop()

	assert.Equal(t, "[1/1] \n[0/0] \n", buf.String())
}

func TestRecorder_ShowWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	r := progress.New()
	r.SetMirror(&buf)

	assert.NotPanics(t, func() {
		r.SetTopic("idle")
		r.Show()
		r.Stop()
	})
	assert.Equal(t, "[0/0] idle\n", buf.String())
}

func TestRecorder_DrivenByCache(t *testing.T) {
	var buf bytes.Buffer
	r := progress.New()
	r.SetMirror(&buf)

	c := cache.New(cache.WithProgress(r))
	l := loader.NewStatic("main", domain.ChannelConfig{ChannelAlias: "main"}, false,
		loader.Entry{Package: domain.PackageDescriptor{Name: "foo", Version: "1"}})
	require.NoError(t, c.AddLoader(l))
	require.NoError(t, c.Load(context.Background()))

	want := "[0/1] Building cache...\n" +
		"[0/2] Building cache...\n" +
		"[1/2] Building cache...\n" +
		"[2/2] Building cache...\n"
	assert.Equal(t, want, buf.String())
}
