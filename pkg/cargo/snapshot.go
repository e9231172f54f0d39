package cargo

import (
	"os"
	"path/filepath"

	"github.com/jaskij/cargo-bitbake/pkg/errors"
)

// ResolvedPackage is one dependency descriptor from the resolver
// snapshot, with its source already classified.
type ResolvedPackage struct {
	Name     string
	Version  string
	Source   Source
	Checksum string // content digest when the lockfile records one
}

// Snapshot is the immutable per-run view of a resolved Cargo workspace.
// It is constructed once by [Load] and read-only afterwards.
type Snapshot struct {
	// Package is the package a recipe is being generated for.
	Package ManifestPackage

	// RootDir is the directory holding the package's Cargo.toml.
	RootDir string

	// RelDir is the package directory relative to the workspace root,
	// empty when the package is the workspace root itself.
	RelDir string

	// Packages lists every resolved package from the lockfile, the
	// current package included.
	Packages []ResolvedPackage

	lock *Lockfile
}

// Checksum looks up the content digest for a package by identity.
// Missing digests report ok=false, never an error.
func (s *Snapshot) Checksum(name, version string) (string, bool) {
	return s.lock.Checksum(name, version)
}

// Load builds a snapshot from the Cargo workspace on disk.
//
// manifestPath may name a Cargo.toml, a directory containing one, or be
// empty to search upward from the working directory. The lockfile is
// searched upward from the package directory, since workspaces keep a
// single Cargo.lock at the root. A missing lockfile is fatal: generation
// consumes cargo's recorded resolution and never computes its own.
func Load(manifestPath string) (*Snapshot, error) {
	path, err := locateManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	manifest, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}
	if manifest.Package == nil {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "%s has no [package] table (virtual workspace manifests cannot be packaged)", path)
	}
	if err := errors.ValidateCrateName(manifest.Package.Name); err != nil {
		return nil, err
	}

	pkgDir := filepath.Dir(path)
	lockPath, ok := findUp(pkgDir, lockfileName)
	if !ok {
		return nil, errors.New(errors.ErrCodeMissingLockfile,
			"no %s found for %s (run `cargo generate-lockfile` first)", lockfileName, path)
	}
	lock, err := LoadLockfile(lockPath)
	if err != nil {
		return nil, err
	}

	root := workspaceRoot(pkgDir)

	snap := &Snapshot{
		Package: *manifest.Package,
		RootDir: pkgDir,
		RelDir:  relDir(root, pkgDir),
		lock:    lock,
	}
	for _, p := range lock.Packages {
		snap.Packages = append(snap.Packages, ResolvedPackage{
			Name:     p.Name,
			Version:  p.Version,
			Source:   ParseSource(p.Source),
			Checksum: p.Checksum,
		})
	}
	return snap, nil
}

// locateManifest resolves the manifest path argument into a concrete
// Cargo.toml file path.
func locateManifest(manifestPath string) (string, error) {
	if manifestPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeMissingManifest, err, "unable to determine working directory")
		}
		return FindRootManifest(wd)
	}

	info, err := os.Stat(manifestPath)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeMissingManifest, err, "unable to access %s", manifestPath)
	}
	if info.IsDir() {
		return FindRootManifest(manifestPath)
	}
	return manifestPath, nil
}
