package cache

import (
	"context"
	"time"

	"go.trai.ch/pkgraph/internal/core/domain"
	"go.trai.ch/pkgraph/internal/core/ports"
)

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

type nopProgress struct{}

func (nopProgress) Start() {}
func (nopProgress) SetTopic(string) {}
func (nopProgress) Set(int, int) {}
func (nopProgress) Add(int) {}
func (nopProgress) Show() {}
func (nopProgress) Stop() {}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End() {}
func (nopSpan) RecordError(error) {}
func (nopSpan) SetAttribute(string, any) {}

type nopObserver struct{}

func (nopObserver) LoaderFinished(string, int, time.Duration, error) {}
func (nopObserver) LoadFinished(domain.Stats, time.Duration, error) {}
