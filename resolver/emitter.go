package resolver

import "github.com/LegacyCodeHQ/solresolve/remap"

// npmIdentity is the synthetic remapping emitted whenever the dependency map
// has at least one entry, keeping the compiler's own npm-prefixed paths
// self-consistent.
var npmIdentity = remap.Triple{Context: "npm/", Prefix: "npm/", Target: "npm/"}

// GetRemappings implements getRemappings: user remappings first, verbatim,
// then the npm identity (if anything was discovered through node-style
// lookup), then one triple per dependency-map entry, in the map's stable
// order.
func (r *Resolver) GetRemappings() []remap.Triple {
	triples := make([]remap.Triple, 0, len(r.remappings)+1+r.depMap.Len())

	for _, m := range r.remappings {
		triples = append(triples, m.ToTriple())
	}

	if r.depMap.Len() > 0 {
		triples = append(triples, npmIdentity)
	}

	for _, entry := range r.depMap.Entries() {
		context := entry.Origin
		target := ""
		if !entry.Dependency.IsProject {
			target = entry.Dependency.Package.RootSourceName
		}

		triples = append(triples, remap.Triple{
			Context: context,
			Prefix:  entry.ImportedPkg + "/",
			Target:  target,
		})
	}

	return triples
}
