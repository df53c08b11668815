package domain

import "go.trai.ch/zerr"

// PackageDescriptor is the structural key of a package: its format and identity pair.
type PackageDescriptor struct {
	Format  string
	Name    string
	Version string
}

// Validate checks that the descriptor carries a full identity.
func (d PackageDescriptor) Validate() error {
	if d.Name == "" {
		return malformed("package", "missing name", d.Name)
	}
	if d.Version == "" {
		return malformed("package", "missing version", d.Name)
	}
	return nil
}

// ProvidesDescriptor is the structural key of a capability. An empty Version means unversioned.
type ProvidesDescriptor struct {
	Format  string
	Name    string
	Version string
}

// Validate checks that the descriptor names a capability.
func (d ProvidesDescriptor) Validate() error {
	if d.Name == "" {
		return malformed("provides", "missing name", d.Name)
	}
	return nil
}

// DependsDescriptor is the structural key of a constraint. Relation and Version are
// either both set or both empty.
type DependsDescriptor struct {
	Format   string
	Name     string
	Relation string
	Version  string
}

// Validate checks that the descriptor names a constraint with a complete relation.
func (d DependsDescriptor) Validate() error {
	if d.Name == "" {
		return malformed("depends", "missing name", d.Name)
	}
	if (d.Relation == "") != (d.Version == "") {
		return malformed("depends", "relation and version must be given together", d.Name)
	}
	return nil
}

// Relations lists the capability and constraint descriptors declared by one package.
type Relations struct {
	Provides  []ProvidesDescriptor
	Requires  []DependsDescriptor
	Upgrades  []DependsDescriptor
	Conflicts []DependsDescriptor
}

// Validate checks every descriptor in r.
func (r Relations) Validate() error {
	for _, p := range r.Provides {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	for _, group := range [][]DependsDescriptor{r.Requires, r.Upgrades, r.Conflicts} {
		for _, d := range group {
			if err := d.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Formats returns every format tag referenced by r.
func (r Relations) Formats() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(f string) {
		if _, ok := seen[f]; ok {
			return
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	for _, p := range r.Provides {
		add(p.Format)
	}
	for _, group := range [][]DependsDescriptor{r.Requires, r.Upgrades, r.Conflicts} {
		for _, d := range group {
			add(d.Format)
		}
	}
	return out
}

func malformed(record, reason, name string) error {
	err := zerr.With(zerr.Wrap(ErrMalformedDescriptor, record), "reason", reason)
	return zerr.With(err, "name", name)
}
