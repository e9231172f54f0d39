package recipe

import (
	"fmt"
	"slices"

	"github.com/jaskij/cargo-bitbake/pkg/cargo"
	"github.com/jaskij/cargo-bitbake/pkg/gitutil"
)

// SourceEntry is the translation of one resolved dependency: a single
// formatted SRC_URI line and zero or more ordered side-variable lines.
type SourceEntry struct {
	Line   string
	Extras []string
}

// sourceEntry translates one dependency by exhaustive dispatch on its
// source kind. A nil entry with a nil error means the dependency
// contributes nothing: path sources live inside the packaged tree
// already.
func sourceEntry(pkg cargo.ResolvedPackage, snap *cargo.Snapshot, opts Options) (*SourceEntry, error) {
	switch pkg.Source.Kind {
	case cargo.SourcePath:
		return nil, nil

	case cargo.SourceRegistry:
		uri := fmt.Sprintf("crate://%s/%s/%s", pkg.Source.Host, pkg.Name, pkg.Version)
		if !opts.NoChecksums {
			uri += checksumSuffix(snap, pkg.Name, pkg.Version)
		}
		return &SourceEntry{Line: uriLine(uri)}, nil

	case cargo.SourceGit:
		return gitEntry(pkg, opts)

	default:
		return &SourceEntry{Line: uriLine(pkg.Source.Raw)}, nil
	}
}

// sourceURIs folds every dependency into the sorted, deduplicated URI
// block and the encounter-ordered side-variable block. The package being
// packaged is excluded by name.
func sourceURIs(snap *cargo.Snapshot, opts Options) (uris, extras []string, err error) {
	for _, pkg := range snap.Packages {
		if pkg.Name == snap.Package.Name {
			continue
		}
		entry, err := sourceEntry(pkg, snap, opts)
		if err != nil {
			return nil, nil, err
		}
		if entry == nil {
			continue
		}
		uris = append(uris, entry.Line)
		extras = append(extras, entry.Extras...)
	}

	slices.Sort(uris)
	uris = slices.Compact(uris)
	return uris, extras, nil
}

// gitEntry translates a git dependency: rewritten fetch URL plus the
// three side variables. The three lines are all-or-nothing; a revision
// failure yields no partial output.
func gitEntry(pkg cargo.ResolvedPackage, opts Options) (*SourceEntry, error) {
	rev, err := resolveRevision(pkg, opts.Reproducible)
	if err != nil {
		return nil, err
	}

	url := gitutil.YoctoURL(pkg.Source.Remote, pkg.Name, opts.GitPrefix)

	return &SourceEntry{
		Line: uriLine(url),
		Extras: []string{
			fmt.Sprintf("SRCREV_FORMAT .= \"_%s\"", pkg.Name),
			fmt.Sprintf("SRCREV_%s = \"%s\"", pkg.Name, rev),
			fmt.Sprintf("EXTRA_OECARGO_PATHS += \"${WORKDIR}/%s\"", pkg.Name),
		},
	}, nil
}

// uriLine wraps a URI in the multi-line continuation form used inside
// the SRC_URI assignment.
func uriLine(uri string) string {
	return fmt.Sprintf("    %s \\\n", uri)
}
