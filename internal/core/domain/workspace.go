package domain

const (
	// ConfigFileName is the name of the workspace configuration file.
	ConfigFileName = "pkgraph.yaml"

	// AnyChannel keys the package priority used when no channel-specific entry applies.
	AnyChannel = "*"
)

// Workspace is the loaded configuration of a pkgraph workspace.
type Workspace struct {
	// Root is the directory holding the configuration file. Manifest patterns are relative to it.
	Root       string
	Channels   []ChannelConfig
	Priorities PriorityTable
	// FileProvides enables lazy resolution of file capabilities.
	FileProvides bool
}

// ChannelConfig is a configured package channel.
type ChannelConfig struct {
	ChannelAlias    string
	Name            string
	Type            string
	ChannelPriority int
	Manifests       []string
	// Installed marks the channel as describing packages present on the system.
	Installed bool
}

var _ Channel = ChannelConfig{}

// Alias returns the channel alias.
func (c ChannelConfig) Alias() string { return c.ChannelAlias }

// Priority returns the channel priority.
func (c ChannelConfig) Priority() int { return c.ChannelPriority }

// PriorityTable maps package names to per-channel priorities. The AnyChannel key applies
// when none of the package's channels has an entry.
type PriorityTable map[string]map[string]int

var _ PriorityPolicy = PriorityTable(nil)

// PackagePriority returns the highest priority configured for any channel of pkg, falling back
// to the AnyChannel entry.
func (t PriorityTable) PackagePriority(pkg *Package) (int, bool) {
	entries, ok := t[pkg.Name]
	if !ok || len(entries) == 0 {
		return 0, false
	}

	best, found := 0, false
	for _, l := range pkg.Loaders() {
		ch := l.Channel()
		if ch == nil {
			continue
		}
		if prio, ok := entries[ch.Alias()]; ok && (!found || prio > best) {
			best, found = prio, true
		}
	}
	if found {
		return best, true
	}

	prio, ok := entries[AnyChannel]
	return prio, ok
}
