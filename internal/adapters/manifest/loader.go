// Package manifest loads packages from YAML manifests selected by glob patterns.
package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/pkgraph/internal/adapters/lexical"
	"go.trai.ch/pkgraph/internal/adapters/loader"
	"go.trai.ch/pkgraph/internal/core/domain"
	"go.trai.ch/pkgraph/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Loader builds the packages listed in the manifests of one channel.
type Loader struct {
	*loader.Static
	root     string
	patterns []string
	logger   ports.Logger
}

var _ ports.Loader = (*Loader)(nil)

// Factory creates manifest loaders for configured channels.
type Factory struct {
	logger ports.Logger
}

var _ ports.LoaderFactory = (*Factory)(nil)

// NewFactory creates a Factory logging through logger.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// NewLoader creates the loader for ch. Manifest patterns are resolved against root.
func (f *Factory) NewLoader(root string, ch domain.ChannelConfig) (ports.Loader, error) {
	for _, pattern := range ch.Manifests {
		if !doublestar.ValidatePattern(pattern) {
			err := zerr.With(zerr.Wrap(domain.ErrManifestGlobFailed, "invalid pattern"), "pattern", pattern)
			return nil, zerr.With(err, "channel", ch.ChannelAlias)
		}
	}
	return &Loader{
		Static:   loader.NewStatic(ch.ChannelAlias, ch, ch.Installed),
		root:     root,
		patterns: ch.Manifests,
		logger:   f.logger,
	}, nil
}

// Load parses the channel's manifests and builds their packages in path order.
func (l *Loader) Load(ctx context.Context, b ports.Builder) error {
	paths, err := l.discover()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		l.logger.Warn(fmt.Sprintf("channel %q matched no manifests", l.SourceID()))
	}

	files := make([]*Manifestfile, len(paths))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			mf, err := readManifest(filepath.Join(l.root, filepath.FromSlash(path)))
			if err != nil {
				return zerr.With(err, "manifest", path)
			}
			files[i] = mf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var entries []loader.Entry
	for i, mf := range files {
		built, err := toEntries(mf)
		if err != nil {
			return zerr.With(err, "manifest", paths[i])
		}
		entries = append(entries, built...)
	}
	l.logger.Debug(fmt.Sprintf("channel %q: %d manifests, %d packages", l.SourceID(), len(paths), len(entries)))

	l.SetEntries(entries)
	return l.Static.Load(ctx, b)
}

// discover expands the manifest patterns into a sorted, duplicate-free list of slash paths
// relative to the workspace root.
func (l *Loader) discover() ([]string, error) {
	fsys := os.DirFS(l.root)
	seen := make(map[string]struct{})
	var paths []string

	for _, pattern := range l.patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrManifestGlobFailed.Error()), "pattern", pattern)
			return nil, zerr.With(err, "channel", l.SourceID())
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}

	slices.Sort(paths)
	return paths, nil
}

func readManifest(path string) (*Manifestfile, error) {
	// #nosec G304 -- path comes from the channel's configured patterns
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	var mf Manifestfile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}
	return &mf, nil
}

func toEntries(mf *Manifestfile) ([]loader.Entry, error) {
	format := mf.Format
	if format == "" {
		format = lexical.Format
	}

	entries := make([]loader.Entry, 0, len(mf.Packages))
	for _, dto := range mf.Packages {
		if dto == nil {
			continue
		}
		entry, err := toEntry(format, dto)
		if err != nil {
			return nil, zerr.With(err, "package", dto.Name)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func toEntry(format string, dto *PackageDTO) (loader.Entry, error) {
	entry := loader.Entry{
		Package:      domain.PackageDescriptor{Format: format, Name: dto.Name, Version: dto.Version},
		Files:        dto.Files,
		Essential:    dto.Essential,
		PriorityBias: dto.Priority,
		Info:         dto.Info,
	}

	for _, s := range dto.Provides {
		name, rel, version, err := parseRelation(s)
		if err != nil {
			return loader.Entry{}, err
		}
		if rel != "" && rel != "=" {
			return loader.Entry{}, zerr.With(zerr.Wrap(domain.ErrUnknownRelation, "provides must use ="), "relation", s)
		}
		entry.Relations.Provides = append(entry.Relations.Provides,
			domain.ProvidesDescriptor{Format: format, Name: name, Version: version})
	}

	lists := [...]struct {
		src []string
		dst *[]domain.DependsDescriptor
	}{
		{dto.Requires, &entry.Relations.Requires},
		{dto.Upgrades, &entry.Relations.Upgrades},
		{dto.Conflicts, &entry.Relations.Conflicts},
	}
	for _, list := range lists {
		for _, s := range list.src {
			name, rel, version, err := parseRelation(s)
			if err != nil {
				return loader.Entry{}, err
			}
			*list.dst = append(*list.dst,
				domain.DependsDescriptor{Format: format, Name: name, Relation: rel, Version: version})
		}
	}

	return entry, nil
}

// parseRelation splits "name" or "name <relation> version".
func parseRelation(s string) (name, relation, version string, err error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		return fields[0], "", "", nil
	case 3:
		if !lexical.ValidRelation(fields[1]) {
			return "", "", "", zerr.With(zerr.Wrap(domain.ErrUnknownRelation, "parse relation"), "relation", s)
		}
		return fields[0], fields[1], fields[2], nil
	default:
		err := zerr.With(zerr.Wrap(domain.ErrManifestParseFailed, "expected \"name\" or \"name <op> version\""), "relation", s)
		return "", "", "", err
	}
}
