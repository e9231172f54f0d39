package cargo

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jaskij/cargo-bitbake/pkg/errors"
)

// Lockfile is the decoded form of Cargo.lock. It covers the modern
// format (inline per-package checksums, lock versions 2 and later) and
// the legacy version 1 format that kept digests in a [metadata] table.
type Lockfile struct {
	Version  int             `toml:"version"`
	Packages []LockedPackage `toml:"package"`

	// Metadata holds legacy "checksum <name> <version> (<source>)"
	// entries from lock format v1.
	Metadata map[string]string `toml:"metadata"`
}

// LockedPackage is one [[package]] entry from Cargo.lock.
type LockedPackage struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Source       string   `toml:"source"`
	Checksum     string   `toml:"checksum"`
	Dependencies []string `toml:"dependencies"`
}

// LoadLockfile reads and decodes a Cargo.lock file.
func LoadLockfile(path string) (*Lockfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMissingLockfile, err,
			"unable to read lockfile %s (run `cargo generate-lockfile` first)", path)
	}

	var lf Lockfile
	if err := toml.Unmarshal(data, &lf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, err, "unable to decode lockfile %s", path)
	}
	return &lf, nil
}

// Checksum returns the content digest recorded for a package, trying the
// inline field first and the legacy [metadata] table second. A missing
// digest reports ok=false and is never an error; registries other than
// crates.io may simply not record one.
func (lf *Lockfile) Checksum(name, version string) (digest string, ok bool) {
	for _, p := range lf.Packages {
		if p.Name == name && p.Version == version {
			if p.Checksum != "" {
				return p.Checksum, true
			}
			break
		}
	}

	prefix := "checksum " + name + " " + version + " "
	for key, digest := range lf.Metadata {
		if strings.HasPrefix(key, prefix) && digest != "" {
			return digest, true
		}
	}
	return "", false
}
