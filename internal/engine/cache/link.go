package cache

import "go.trai.ch/pkgraph/internal/core/domain"

// LinkDeps joins every constraint with every capability it matches, filling
// Depends.ProvidedBy and the matching Provides relation. Pairs are discovered in capability
// order, then constraint order.
//
// Candidates are found by hashing constraints under each of their match names, so only
// capabilities sharing a name with a constraint are ever passed to Matches.
func (c *Cache) LinkDeps() {
	byName := [...]map[string][]*domain.Depends{
		domain.KindRequires:  indexByMatchName(c.requires),
		domain.KindUpgrades:  indexByMatchName(c.upgrades),
		domain.KindConflicts: indexByMatchName(c.conflicts),
	}

	links := 0
	for _, prv := range c.provides {
		for _, kind := range domain.Kinds {
			for _, dep := range byName[kind][prv.Name] {
				if !dep.Matches(prv) {
					continue
				}
				dep.ProvidedBy.Append(prv.ID())
				prv.By(kind).Append(dep.ID())
				links++
			}
		}
	}
	c.links = links
}

func indexByMatchName(deps []*domain.Depends) map[string][]*domain.Depends {
	index := make(map[string][]*domain.Depends, len(deps))
	for _, dep := range deps {
		seen := make(map[string]struct{})
		for _, name := range dep.MatchNames() {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			index[name] = append(index[name], dep)
		}
	}
	return index
}
