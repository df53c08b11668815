package metrics_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgraph/internal/adapters/metrics"
	"go.trai.ch/pkgraph/internal/core/domain"
)

func TestObserver_LoaderFinished(t *testing.T) {
	o := metrics.NewObserver()

	o.LoaderFinished("main", 12, 20*time.Millisecond, nil)
	o.LoaderFinished("system", 0, time.Millisecond, errors.New("boom"))

	expected := `
# HELP pkgraph_loader_packages Number of packages built by a loader in the last load cycle.
# TYPE pkgraph_loader_packages gauge
pkgraph_loader_packages{loader="main"} 12
pkgraph_loader_packages{loader="system"} 0
# HELP pkgraph_loader_errors_total Number of failed loader runs.
# TYPE pkgraph_loader_errors_total counter
pkgraph_loader_errors_total{loader="system"} 1
`
	require.NoError(t, testutil.GatherAndCompare(o.Registry(), strings.NewReader(expected),
		"pkgraph_loader_packages", "pkgraph_loader_errors_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(o.Registry(), "pkgraph_loader_duration_seconds"))
}

func TestObserver_LoadFinished(t *testing.T) {
	o := metrics.NewObserver()

	o.LoadFinished(domain.Stats{Packages: 3, Provides: 4, Requires: 2, Links: 5}, time.Second, nil)
	o.LoadFinished(domain.Stats{}, time.Second, errors.New("loader failed"))
	o.LoadFinished(domain.Stats{Packages: 3, Provides: 4, Requires: 2, Conflicts: 1, Links: 6}, time.Second, nil)

	expected := `
# HELP pkgraph_load_total Number of load cycles by result.
# TYPE pkgraph_load_total counter
pkgraph_load_total{result="failure"} 1
pkgraph_load_total{result="success"} 2
# HELP pkgraph_graph_records Number of records in the graph after the last load cycle.
# TYPE pkgraph_graph_records gauge
pkgraph_graph_records{kind="conflicts"} 1
pkgraph_graph_records{kind="links"} 6
pkgraph_graph_records{kind="packages"} 3
pkgraph_graph_records{kind="provides"} 4
pkgraph_graph_records{kind="requires"} 2
pkgraph_graph_records{kind="upgrades"} 0
`
	require.NoError(t, testutil.GatherAndCompare(o.Registry(), strings.NewReader(expected),
		"pkgraph_load_total", "pkgraph_graph_records"))
}

func TestObserver_WriteText(t *testing.T) {
	o := metrics.NewObserver()
	o.LoadFinished(domain.Stats{Packages: 1}, time.Millisecond, nil)

	var buf bytes.Buffer
	require.NoError(t, o.WriteText(&buf))
	assert.Contains(t, buf.String(), `pkgraph_graph_records{kind="packages"} 1`)
	assert.Contains(t, buf.String(), "# TYPE pkgraph_load_duration_seconds histogram")
}
