package cargo

import (
	"net/url"
	"strings"
)

// CratesIOHost is the canonical host name used for crates.io registry
// entries regardless of which index URL the lockfile recorded.
const CratesIOHost = "crates.io"

// SourceKind labels the origin of a resolved package.
type SourceKind int

const (
	// SourcePath is a dependency living inside the packaged source tree.
	SourcePath SourceKind = iota

	// SourceRegistry is a crate registry archive.
	SourceRegistry

	// SourceGit is a version-control checkout.
	SourceGit

	// SourceOther is an opaque locator passed through verbatim.
	SourceOther
)

// String returns a human-readable name for the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourcePath:
		return "path"
	case SourceRegistry:
		return "registry"
	case SourceGit:
		return "git"
	case SourceOther:
		return "other"
	default:
		return "invalid"
	}
}

// RefKind labels the git reference a dependency was requested at.
type RefKind int

const (
	// RefDefaultBranch means no tag, revision, or branch was requested.
	RefDefaultBranch RefKind = iota

	// RefTag is an explicit tag name.
	RefTag

	// RefRev is an explicit revision, possibly abbreviated.
	RefRev

	// RefBranch is an explicit branch name.
	RefBranch
)

// GitRef is the version-control reference recorded for a git dependency.
// The zero value means the repository's default branch.
type GitRef struct {
	Kind  RefKind
	Value string // tag, revision, or branch name; empty for RefDefaultBranch
}

// Source is the classified origin of a resolved package. Classification
// happens once, in [ParseSource], and consumers match on Kind
// exhaustively afterwards.
type Source struct {
	Kind    SourceKind
	Host    string // registry host (e.g. "crates.io"), SourceRegistry only
	Remote  string // git remote URL without query or fragment, SourceGit only
	Ref     GitRef // requested git reference, SourceGit only
	Precise string // resolver-pinned commit from the locator fragment, SourceGit only
	Raw     string // verbatim locator, SourceOther only
}

// ParseSource classifies a lockfile source locator.
//
// Cargo records locators as "<kind>+<url>". Registry locators carry the
// index URL, git locators carry the remote URL with the requested
// reference in the query string and the resolver-pinned commit in the
// fragment. Path dependencies have no source field at all, so the empty
// string classifies as [SourcePath]. Anything unrecognized becomes
// [SourceOther] with the locator preserved verbatim.
func ParseSource(locator string) Source {
	switch {
	case locator == "":
		return Source{Kind: SourcePath}

	case strings.HasPrefix(locator, "path+"):
		return Source{Kind: SourcePath}

	case strings.HasPrefix(locator, "registry+"), strings.HasPrefix(locator, "sparse+"):
		return Source{Kind: SourceRegistry, Host: registryHost(locator)}

	case strings.HasPrefix(locator, "git+"):
		return parseGitSource(locator)

	default:
		return Source{Kind: SourceOther, Raw: locator}
	}
}

// registryHost extracts a display host from a registry index locator.
// Both index forms cargo has used for crates.io normalize to
// [CratesIOHost].
func registryHost(locator string) string {
	raw := strings.TrimPrefix(locator, "registry+")
	raw = strings.TrimPrefix(raw, "sparse+")

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return CratesIOHost
	}
	if u.Host == "index.crates.io" || strings.HasSuffix(u.Path, "/crates.io-index") {
		return CratesIOHost
	}
	return u.Host
}

// parseGitSource splits a git locator into remote URL, requested
// reference, and pinned commit.
func parseGitSource(locator string) Source {
	raw := strings.TrimPrefix(locator, "git+")

	u, err := url.Parse(raw)
	if err != nil {
		// unparseable git locator, pass it through untouched
		return Source{Kind: SourceOther, Raw: locator}
	}

	src := Source{Kind: SourceGit, Precise: u.Fragment}

	q := u.Query()
	switch {
	case q.Get("tag") != "":
		src.Ref = GitRef{Kind: RefTag, Value: q.Get("tag")}
	case q.Get("rev") != "":
		src.Ref = GitRef{Kind: RefRev, Value: q.Get("rev")}
	case q.Get("branch") != "":
		src.Ref = GitRef{Kind: RefBranch, Value: q.Get("branch")}
	default:
		src.Ref = GitRef{Kind: RefDefaultBranch}
	}

	u.RawQuery = ""
	u.Fragment = ""
	src.Remote = u.String()

	return src
}
