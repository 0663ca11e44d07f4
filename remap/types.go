// Package remap implements the user-remapping surface grammar (spec §4.B),
// the best-match selector (§4.C), and the triple format the resolver emits
// to an external compiler (§4.J).
package remap

import "github.com/LegacyCodeHQ/solresolve/nodepkg"

// UserRemapping is a parsed and validated "context:prefix=target" entry.
// TargetPackage is non-nil iff Target begins with "npm/" and names an
// installed package.
type UserRemapping struct {
	RawText       string
	Context       string
	Prefix        string
	Target        string
	TargetPackage *nodepkg.Package
}

// Triple is the (context, prefix, target) the external compiler consumes.
type Triple struct {
	Context string
	Prefix  string
	Target  string
}

// ToTriple formats a UserRemapping for emission (spec §4.J: "user remappings
// are emitted first, verbatim").
func (r UserRemapping) ToTriple() Triple {
	return Triple{Context: r.Context, Prefix: r.Prefix, Target: r.Target}
}
