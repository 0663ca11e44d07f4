package resolve

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/solresolve/pathutil"
	"github.com/LegacyCodeHQ/solresolve/remap"
	"github.com/LegacyCodeHQ/solresolve/resolver"
)

// report is the driver's summary of a resolution run: every resolved file,
// the final remapping table, and any import cycle discovered while
// traversing imports. WorkingDirectory drives the user-friendly path
// formatter applied to every file's absolute path.
type report struct {
	Files            []resolver.ResolvedFile
	Remappings       []remap.Triple
	Cycles           [][]string
	WorkingDirectory string
}

func (r report) toText() string {
	var b strings.Builder

	fmt.Fprintln(&b, "Resolved files:")
	for _, f := range r.Files {
		abs := pathutil.Shorten(r.WorkingDirectory, f.Abs())
		switch rf := f.(type) {
		case resolver.ProjectFile:
			fmt.Fprintf(&b, "  %s  [%s]\n", rf.Source(), abs)
		case resolver.PackageFile:
			fmt.Fprintf(&b, "  %s  (package %s)  [%s]\n", rf.Source(), rf.Package.Name, abs)
		}
	}

	fmt.Fprintln(&b, "\nRemappings:")
	for _, t := range r.Remappings {
		fmt.Fprintf(&b, "  %s:%s=%s\n", t.Context, t.Prefix, t.Target)
	}

	if len(r.Cycles) > 0 {
		fmt.Fprintln(&b, "\nImport cycles:")
		for _, cycle := range r.Cycles {
			fmt.Fprintf(&b, "  %s\n", strings.Join(cycle, " -> "))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

type jsonReport struct {
	Files      []jsonFile     `json:"files"`
	Remappings []remap.Triple `json:"remappings"`
	Cycles     [][]string     `json:"cycles,omitempty"`
}

type jsonFile struct {
	SourceName string `json:"sourceName"`
	AbsPath    string `json:"absolutePath"`
	Package    string `json:"package,omitempty"`
}

func (r report) toJSON() jsonReport {
	files := make([]jsonFile, 0, len(r.Files))
	for _, f := range r.Files {
		jf := jsonFile{SourceName: f.Source(), AbsPath: pathutil.Shorten(r.WorkingDirectory, f.Abs())}
		if pkgFile, ok := f.(resolver.PackageFile); ok {
			jf.Package = pkgFile.Package.Name
		}
		files = append(files, jf)
	}
	return jsonReport{Files: files, Remappings: r.Remappings, Cycles: r.Cycles}
}
