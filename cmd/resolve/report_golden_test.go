package resolve

import (
	"testing"

	"github.com/LegacyCodeHQ/solresolve/nodepkg"
	"github.com/LegacyCodeHQ/solresolve/remap"
	"github.com/LegacyCodeHQ/solresolve/resolver"

	"github.com/sebdah/goldie/v2"
)

func reportGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithNameSuffix(".gold.txt"))
}

func TestReportToText_Golden(t *testing.T) {
	r := report{
		Files: []resolver.ResolvedFile{
			resolver.ProjectFile{SourceName: "contracts/File.sol", AbsolutePath: "/P/contracts/File.sol"},
			resolver.PackageFile{
				SourceName:   "npm/dep@1.2.3/X.sol",
				AbsolutePath: "/P/node_modules/dep/X.sol",
				Package:      nodepkg.Package{Name: "dep", Version: "1.2.3", RootSourceName: "npm/dep@1.2.3/"},
			},
		},
		Remappings: []remap.Triple{
			{Context: "", Prefix: "dep/", Target: "npm/dep@1.2.3/"},
			{Context: "npm/", Prefix: "npm/", Target: "npm/"},
		},
	}

	reportGoldie(t).Assert(t, t.Name(), []byte(r.toText()))
}
