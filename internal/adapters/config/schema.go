package config

// Configfile represents the structure of the pkgraph.yaml configuration file.
type Configfile struct {
	Version           string                    `yaml:"version"`
	Channels          map[string]*ChannelDTO    `yaml:"channels"`
	PackagePriorities map[string]map[string]int `yaml:"package-priorities"`
	FileProvides      *bool                     `yaml:"file-provides"`
}

// ChannelDTO represents a channel definition in the configuration.
type ChannelDTO struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	Priority  int      `yaml:"priority"`
	Installed bool     `yaml:"installed"`
	Manifests []string `yaml:"manifests"`
}
