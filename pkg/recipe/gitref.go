package recipe

import (
	"github.com/jaskij/cargo-bitbake/pkg/cargo"
	"github.com/jaskij/cargo-bitbake/pkg/errors"
)

// AutoRev is the placeholder instructing the fetcher to resolve the
// branch tip at fetch time instead of pinning a commit.
const AutoRev = "${AUTOREV}"

// defaultBranchName is the historical default branch name; a dependency
// requested on it floats with the branch tip.
const defaultBranchName = "master"

// fullCommitLen is the length of an unabbreviated hex commit id.
const fullCommitLen = 40

// resolveRevision picks the one revision string for a git dependency.
//
// Reproducible mode takes the resolver-pinned commit when one exists,
// making regenerated recipes byte-identical against the same lockfile.
// Otherwise the requested reference decides: tags are used literally,
// full-length revisions are used as-is, and abbreviated revisions fall
// back to the pinned commit. An abbreviated revision with no pinned
// commit is fatal; it is never an acceptable fetch target.
//
// Branches other than the default are pinned literally even though a
// branch is a moving target. That reproducibility gap is deliberate-ish:
// it mirrors the fetcher's branch handling and changing it silently
// would alter existing recipes (see DESIGN.md).
func resolveRevision(pkg cargo.ResolvedPackage, reproducible bool) (string, error) {
	src := pkg.Source
	if reproducible && src.Precise != "" {
		return src.Precise, nil
	}

	switch src.Ref.Kind {
	case cargo.RefTag:
		return src.Ref.Value, nil

	case cargo.RefRev:
		if isFullCommit(src.Ref.Value) {
			return src.Ref.Value, nil
		}
		if src.Precise != "" {
			return src.Precise, nil
		}
		return "", errors.New(errors.ErrCodeUnresolvedRevision,
			"dependency %s: abbreviated revision %q has no resolver-pinned commit to fall back on",
			pkg.Name, src.Ref.Value)

	case cargo.RefBranch:
		if src.Ref.Value == defaultBranchName {
			return AutoRev, nil
		}
		return src.Ref.Value, nil

	default:
		return AutoRev, nil
	}
}

// isFullCommit reports whether s is an unabbreviated hex commit id.
func isFullCommit(s string) bool {
	if len(s) != fullCommitLen {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
