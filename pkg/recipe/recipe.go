package recipe

import (
	"strings"

	"github.com/jaskij/cargo-bitbake/pkg/buildinfo"
	"github.com/jaskij/cargo-bitbake/pkg/cargo"
	"github.com/jaskij/cargo-bitbake/pkg/errors"
	"github.com/jaskij/cargo-bitbake/pkg/gitutil"
	"github.com/jaskij/cargo-bitbake/pkg/license"
)

// Options configure recipe generation. The zero value generates with
// checksums enabled, floating git references, and modern override
// syntax.
type Options struct {
	Reproducible    bool           // pin git dependencies to resolver-recorded commits
	NoChecksums     bool           // omit inline sha256 annotations
	LegacyOverrides bool           // use the pre-colon PV_append spelling
	GitPrefix       gitutil.Prefix // fetcher prefix for rewritten git URLs

	// Warn receives advisory messages. Warnings never affect the
	// generated output or the exit status.
	Warn func(format string, args ...any)
}

// withDefaults returns a copy of Options with a usable warning sink.
func (o Options) withDefaults() Options {
	opts := o
	if opts.Warn == nil {
		opts.Warn = func(string, ...any) {}
	}
	return opts
}

// Recipe holds every field substituted into the recipe template. All
// fields are fully rendered strings; a Recipe is immutable output state.
type Recipe struct {
	Name          string
	Version       string
	Summary       string
	Homepage      string
	License       string
	LicFiles      string // joined LIC_FILES_CHKSUM entries
	SrcURI        string // sorted, deduplicated source URI block
	SrcURIExtras  string // side variables, dependency-encounter order
	ProjectRelDir string
	ProjectSrcURI string
	ProjectSrcRev string
	GitSrcPV      string // version-stability directive, possibly empty
	ToolVersion   string
}

// Generate runs the translation pass over a resolver snapshot.
//
// The snapshot is read-only for the whole pass. Recoverable metadata
// gaps (missing description, missing license) degrade with a warning;
// a package with neither homepage nor repository, or a git dependency
// with no usable revision, is fatal and nothing is produced.
func Generate(snap *cargo.Snapshot, repo gitutil.ProjectRepo, opts Options) (*Recipe, error) {
	opts = opts.withDefaults()
	pkg := snap.Package

	if strings.Contains(pkg.Name, "_") {
		opts.Warn("package name %q contains an underscore", pkg.Name)
	}

	uris, extras, err := sourceURIs(snap, opts)
	if err != nil {
		return nil, err
	}

	summary := strings.TrimSpace(pkg.Description)
	if summary == "" {
		opts.Warn("no package.description set in Cargo.toml, using package.name")
		summary = pkg.Name
	} else {
		// long descriptions span lines; keep them one recipe value
		summary = strings.ReplaceAll(summary, "\n", " \\\n")
	}

	homepage := strings.TrimSpace(pkg.Homepage)
	if homepage == "" {
		opts.Warn("no package.homepage set in Cargo.toml, trying package.repository")
		homepage = strings.TrimSpace(pkg.Repository)
		if homepage == "" {
			return nil, errors.New(errors.ErrCodeMissingHomepage, "no package.repository set in Cargo.toml")
		}
	}

	licenseID, licFiles := licenseFields(snap, opts)

	return &Recipe{
		Name:          pkg.Name,
		Version:       pkg.Version,
		Summary:       summary,
		Homepage:      homepage,
		License:       licenseID,
		LicFiles:      strings.Join(licFiles, ""),
		SrcURI:        strings.Join(uris, ""),
		SrcURIExtras:  strings.Join(extras, "\n"),
		ProjectRelDir: snap.RelDir,
		ProjectSrcURI: repo.URI,
		ProjectSrcRev: repo.Rev,
		GitSrcPV:      AutoIncAppend(repo, opts.LegacyOverrides),
		ToolVersion:   buildinfo.Version,
	}, nil
}

// licenseFields resolves the license identifier and its per-license
// LIC_FILES_CHKSUM entries. Both metadata gaps here are recoverable: a
// missing license falls back to the license file name, then to the
// closed-license marker.
func licenseFields(snap *cargo.Snapshot, opts Options) (id string, licFiles []string) {
	raw := strings.TrimSpace(snap.Package.License)
	if raw == "" {
		opts.Warn("no package.license set in Cargo.toml, trying package.license-file")
		raw = strings.TrimSpace(snap.Package.LicenseFile)
		if raw == "" {
			opts.Warn("no package.license-file set in Cargo.toml, assuming %s license", license.Closed)
			raw = license.Closed
		}
	}

	parts := strings.Split(raw, "/")
	single := len(parts) == 1
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		lic := strings.TrimSpace(part)
		ids = append(ids, lic)
		licFiles = append(licFiles, "    "+license.File(snap.RootDir, snap.RelDir, lic, single)+" \\\n")
	}

	return strings.Join(ids, " | "), licFiles
}
