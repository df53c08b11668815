package app

import (
	"fmt"
	"io"
	"strings"

	"go.trai.ch/zerr"
)

// StatOptions controls the output of Stat.
type StatOptions struct {
	// Metrics appends the load metrics in the Prometheus text format.
	Metrics bool
}

// Stat writes the record counts and fingerprint of the loaded graph to w.
func (a *App) Stat(w io.Writer, opts StatOptions) error {
	stats := a.cache.Stats()

	installed := 0
	for _, pkg := range a.cache.Packages() {
		if pkg.Installed {
			installed++
		}
	}

	fp, err := a.hasher.Fingerprint(a.cache)
	if err != nil {
		return zerr.Wrap(err, "failed to fingerprint graph")
	}

	var sb strings.Builder
	rows := []struct {
		label string
		value int
	}{
		{"Packages", stats.Packages},
		{"Installed", installed},
		{"Provides", stats.Provides},
		{"Requires", stats.Requires},
		{"Upgrades", stats.Upgrades},
		{"Conflicts", stats.Conflicts},
		{"Links", stats.Links},
	}
	for _, r := range rows {
		fmt.Fprintf(&sb, "%-12s %d\n", r.label+":", r.value)
	}
	fmt.Fprintf(&sb, "%-12s %s\n", "Fingerprint:", fp)

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return zerr.Wrap(err, "failed to write stats")
	}

	if opts.Metrics {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return zerr.Wrap(err, "failed to write stats")
		}
		return a.metrics.WriteText(w)
	}
	return nil
}
