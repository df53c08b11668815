// Package config provides the configuration loader for pkgraph.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/pkgraph/internal/core/domain"
	"go.trai.ch/pkgraph/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ManifestChannelType is the channel type read from YAML package manifests. It is the
// default when a channel omits its type.
const ManifestChannelType = "manifest"

var validAliasRegex = regexp.MustCompile("^[a-zA-Z0-9_.-]+$")

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds pkgraph.yaml in cwd or one of its parents and returns the workspace it describes.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var configfile Configfile
	if err := readAndUnmarshalYAML(configPath, &configfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	ws := &domain.Workspace{
		Root:         filepath.Dir(configPath),
		Priorities:   domain.PriorityTable(configfile.PackagePriorities),
		FileProvides: configfile.FileProvides == nil || *configfile.FileProvides,
	}

	aliases := make([]string, 0, len(configfile.Channels))
	for alias := range configfile.Channels {
		aliases = append(aliases, alias)
	}
	slices.Sort(aliases)

	for _, alias := range aliases {
		ch, err := l.buildChannel(alias, configfile.Channels[alias])
		if err != nil {
			return nil, zerr.With(err, "path", configPath)
		}
		ws.Channels = append(ws.Channels, ch)
	}

	if len(ws.Channels) == 0 {
		l.Logger.Warn(fmt.Sprintf("%s defines no channels", configPath))
	}

	return ws, nil
}

func (l *Loader) buildChannel(alias string, dto *ChannelDTO) (domain.ChannelConfig, error) {
	if !validAliasRegex.MatchString(alias) {
		return domain.ChannelConfig{}, zerr.With(zerr.Wrap(domain.ErrInvalidChannel, "invalid alias"), "channel", alias)
	}
	if dto == nil {
		dto = &ChannelDTO{}
	}

	kind := dto.Type
	if kind == "" {
		kind = ManifestChannelType
	}
	if kind != ManifestChannelType {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidChannel, "unsupported type"), "channel", alias)
		return domain.ChannelConfig{}, zerr.With(err, "type", kind)
	}

	manifests := make([]string, 0, len(dto.Manifests))
	for _, pattern := range dto.Manifests {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if filepath.IsAbs(pattern) {
			err := zerr.With(zerr.Wrap(domain.ErrInvalidChannel, "manifest pattern must be relative"), "channel", alias)
			return domain.ChannelConfig{}, zerr.With(err, "pattern", pattern)
		}
		pattern = filepath.ToSlash(pattern)
		if !doublestar.ValidatePattern(pattern) {
			err := zerr.With(zerr.Wrap(domain.ErrInvalidChannel, "malformed manifest pattern"), "channel", alias)
			return domain.ChannelConfig{}, zerr.With(err, "pattern", pattern)
		}
		manifests = append(manifests, pattern)
	}
	if len(manifests) == 0 {
		l.Logger.Warn(fmt.Sprintf("channel %q has no manifests", alias))
	}

	name := dto.Name
	if name == "" {
		name = alias
	}

	return domain.ChannelConfig{
		ChannelAlias:    alias,
		Name:            name,
		Type:            kind,
		ChannelPriority: dto.Priority,
		Manifests:       manifests,
		Installed:       dto.Installed,
	}, nil
}

func findConfiguration(cwd string) (string, error) {
	currentDir := cwd

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "find configuration"), "cwd", cwd)
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
