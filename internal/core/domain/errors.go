package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedDescriptor is returned when construction arguments have the wrong shape.
	ErrMalformedDescriptor = zerr.New("malformed descriptor")

	// ErrTypeMismatch is returned when an object that does not belong to the graph is passed
	// where one of its records was required.
	ErrTypeMismatch = zerr.New("object does not belong to this graph")

	// ErrNotAttached is returned when a loader drives the construction protocol without being
	// registered with the graph that is loading.
	ErrNotAttached = zerr.New("loader is not attached to the graph")

	// ErrSessionClosed is returned when a builder is used after its load session has ended.
	ErrSessionClosed = zerr.New("load session is closed")

	// ErrLoaderAttached is returned when registering a loader that already belongs to another graph.
	ErrLoaderAttached = zerr.New("loader is already attached to another graph")

	// ErrStaleReference is returned when an ID from a previous load cycle is resolved.
	ErrStaleReference = zerr.New("stale reference")

	// ErrUnknownReference is returned when an ID does not name any record in the arena.
	ErrUnknownReference = zerr.New("unknown reference")

	// ErrUnknownFormat is returned when a descriptor names a format without a registered backend.
	ErrUnknownFormat = zerr.New("unknown package format")

	// ErrDuplicateFormat is returned when a backend is registered twice for one format.
	ErrDuplicateFormat = zerr.New("package format already registered")

	// ErrLoaderFailed is returned when a loader aborts the load cycle.
	ErrLoaderFailed = zerr.New("loader failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find pkgraph.yaml")

	// ErrInvalidChannel is returned when a channel definition is incomplete.
	ErrInvalidChannel = zerr.New("invalid channel definition")

	// ErrManifestReadFailed is returned when a package manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when a package manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrManifestGlobFailed is returned when a manifest pattern cannot be expanded.
	ErrManifestGlobFailed = zerr.New("failed to expand manifest pattern")

	// ErrUnknownRelation is returned when a constraint uses an unsupported relational operator.
	ErrUnknownRelation = zerr.New("unknown relation operator")

	// ErrInvalidPattern is returned when a query name or filter is not a valid glob pattern.
	ErrInvalidPattern = zerr.New("invalid name pattern")

	// ErrNoPackagesMatched is returned when a query names packages that are not in the graph.
	ErrNoPackagesMatched = zerr.New("no packages matched")
)
