package cargo

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jaskij/cargo-bitbake/pkg/errors"
)

// Manifest is the subset of Cargo.toml consumed for recipe generation.
type Manifest struct {
	Package   *ManifestPackage `toml:"package"`
	Workspace *workspaceTable  `toml:"workspace"`
}

// ManifestPackage holds the [package] metadata fields the recipe needs.
type ManifestPackage struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Description string `toml:"description"`
	Homepage    string `toml:"homepage"`
	Repository  string `toml:"repository"`
	License     string `toml:"license"`
	LicenseFile string `toml:"license-file"`
}

// workspaceTable marks a manifest as a workspace root. Only presence
// matters; members are never enumerated here.
type workspaceTable struct {
	Members []string `toml:"members"`
}

// IsWorkspaceRoot reports whether this manifest declares a [workspace]
// table.
func (m *Manifest) IsWorkspaceRoot() bool {
	return m.Workspace != nil
}

// LoadManifest reads and decodes a Cargo.toml file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMissingManifest, err, "unable to read manifest %s", path)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "unable to decode manifest %s", path)
	}
	return &m, nil
}
