package domain

// Channel describes the repository a loader reads from.
type Channel interface {
	// Alias is the configured short name of the channel.
	Alias() string
	// Priority is the preference of packages coming from this channel.
	Priority() int
}

// Source identifies a loader that contributed packages to the graph.
type Source interface {
	SourceID() string
	Channel() Channel
	// Installed reports whether the source describes packages present on the system.
	Installed() bool
}

// PriorityPolicy is an externally configured package priority lookup.
type PriorityPolicy interface {
	// PackagePriority returns the configured priority for pkg, if any.
	PackagePriority(pkg *Package) (int, bool)
}

// Stats summarizes the size of a loaded graph.
type Stats struct {
	Packages  int
	Provides  int
	Requires  int
	Upgrades  int
	Conflicts int
	// Links counts capability/constraint pairs joined by the linker.
	Links int
}
