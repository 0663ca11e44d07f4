package remap

import (
	"strings"

	"github.com/LegacyCodeHQ/solresolve/nodepkg"
	"github.com/LegacyCodeHQ/solresolve/rerr"
)

// ParseAndValidate parses one raw "context:prefix=target" remapping string
// and, if its target is an npm/ target, resolves and validates the package
// it points at (spec §4.B).
func ParseAndValidate(raw, projectRoot string, locator *nodepkg.Locator) (UserRemapping, error) {
	context, prefix, target, ok := parseSurface(raw)
	if !ok {
		return UserRemapping{}, &rerr.InvalidUserRemapping{Raw: raw}
	}

	if strings.HasPrefix(context, "npm/") {
		return UserRemapping{}, &rerr.InvalidUserRemapping{Raw: raw}
	}

	result := UserRemapping{RawText: raw, Context: context, Prefix: prefix, Target: target}

	if !strings.HasPrefix(target, "npm/") {
		return result, nil
	}

	name, version, _, ok := splitNpmTarget(target)
	if !ok {
		return UserRemapping{}, &rerr.InvalidNpmTarget{Raw: raw, Target: target}
	}

	absManifestPath, manifest, found, err := locator.Locate(name, projectRoot)
	if err != nil {
		return UserRemapping{}, err
	}
	if !found {
		return UserRemapping{}, &rerr.PackageNotInstalled{Raw: raw, Package: name}
	}

	kind := nodepkg.Classify(absManifestPath, projectRoot)

	switch kind {
	case nodepkg.KindProject:
		return UserRemapping{}, &rerr.RemapIntoProject{Raw: raw}
	case nodepkg.KindMonorepoSibling:
		if version != "local" {
			return UserRemapping{}, &rerr.MonorepoVersionMismatch{Raw: raw, DeclaredVersion: version}
		}
	case nodepkg.KindInstalled:
		if version != manifest.Version {
			return UserRemapping{}, &rerr.PackageVersionMismatch{
				Raw:             raw,
				DeclaredVersion: version,
				ActualVersion:   manifest.Version,
			}
		}
	}

	pkg := nodepkg.BuildPackage(absManifestPath, kind, manifest)
	result.TargetPackage = &pkg

	return result, nil
}

// ParseAndValidateAll validates every raw remapping string in order,
// returning on the first failure (construction fails fast, per spec §3
// "Lifecycle").
func ParseAndValidateAll(raws []string, projectRoot string, locator *nodepkg.Locator) ([]UserRemapping, error) {
	remappings := make([]UserRemapping, 0, len(raws))
	for _, raw := range raws {
		r, err := ParseAndValidate(raw, projectRoot, locator)
		if err != nil {
			return nil, err
		}
		remappings = append(remappings, r)
	}
	return remappings, nil
}
