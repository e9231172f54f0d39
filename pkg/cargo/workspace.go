package cargo

import (
	"os"
	"path/filepath"

	"github.com/jaskij/cargo-bitbake/pkg/errors"
)

const (
	manifestName = "Cargo.toml"
	lockfileName = "Cargo.lock"
)

// FindRootManifest walks upward from dir to the nearest Cargo.toml.
func FindRootManifest(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeMissingManifest, err, "unable to resolve %s", dir)
	}

	if path, ok := findUp(abs, manifestName); ok {
		return path, nil
	}
	return "", errors.New(errors.ErrCodeMissingManifest, "no %s found in %s or any parent directory", manifestName, abs)
}

// findUp searches dir and every parent for a file called name.
func findUp(dir, name string) (string, bool) {
	for {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// workspaceRoot finds the directory of the enclosing workspace manifest,
// starting at the package directory. A package outside any workspace is
// its own root.
func workspaceRoot(pkgDir string) string {
	dir := pkgDir
	for {
		path := filepath.Join(dir, manifestName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			if m, err := LoadManifest(path); err == nil && m.IsWorkspaceRoot() {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return pkgDir
		}
		dir = parent
	}
}

// relDir computes the package directory relative to the workspace root.
// Packages at the root yield the empty string.
func relDir(root, pkgDir string) string {
	rel, err := filepath.Rel(root, pkgDir)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}
