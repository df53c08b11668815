package manifest

// Manifestfile represents the structure of a package manifest.
type Manifestfile struct {
	Format   string        `yaml:"format"`
	Packages []*PackageDTO `yaml:"packages"`
}

// PackageDTO represents one package in a manifest. Relations are written as "name" or
// "name <relation> version".
type PackageDTO struct {
	Name      string            `yaml:"name"`
	Version   string            `yaml:"version"`
	Provides  []string          `yaml:"provides"`
	Requires  []string          `yaml:"requires"`
	Upgrades  []string          `yaml:"upgrades"`
	Conflicts []string          `yaml:"conflicts"`
	Files     []string          `yaml:"files"`
	Essential bool              `yaml:"essential"`
	Priority  int               `yaml:"priority"`
	Info      map[string]string `yaml:"info"`
}
