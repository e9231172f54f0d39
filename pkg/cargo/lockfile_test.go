package cargo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaskij/cargo-bitbake/pkg/errors"
)

const modernLock = `version = 3

[[package]]
name = "demo"
version = "0.1.0"

[[package]]
name = "libc"
version = "0.2.150"
source = "registry+https://github.com/rust-lang/crates.io-index"
checksum = "89d92a4743f9a61002fae18374ed11e7973f530cb3a3255fb354818118b2203c"

[[package]]
name = "local-helper"
version = "0.1.0"
`

const legacyLock = `[[package]]
name = "libc"
version = "0.2.150"
source = "registry+https://github.com/rust-lang/crates.io-index"

[metadata]
"checksum libc 0.2.150 (registry+https://github.com/rust-lang/crates.io-index)" = "89d92a4743f9a61002fae18374ed11e7973f530cb3a3255fb354818118b2203c"
`

func writeLock(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Cargo.lock")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadLockfile(t *testing.T) {
	lf, err := LoadLockfile(writeLock(t, modernLock))
	require.NoError(t, err)

	assert.Equal(t, 3, lf.Version)
	require.Len(t, lf.Packages, 3)
	assert.Equal(t, "libc", lf.Packages[1].Name)
	assert.Equal(t, "0.2.150", lf.Packages[1].Version)
}

func TestLoadLockfileMissing(t *testing.T) {
	_, err := LoadLockfile(filepath.Join(t.TempDir(), "Cargo.lock"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeMissingLockfile))
}

func TestLoadLockfileInvalid(t *testing.T) {
	_, err := LoadLockfile(writeLock(t, "[[package]\nbroken"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidLockfile))
}

func TestChecksum(t *testing.T) {
	t.Run("inline checksum", func(t *testing.T) {
		lf, err := LoadLockfile(writeLock(t, modernLock))
		require.NoError(t, err)

		digest, ok := lf.Checksum("libc", "0.2.150")
		assert.True(t, ok)
		assert.Equal(t, "89d92a4743f9a61002fae18374ed11e7973f530cb3a3255fb354818118b2203c", digest)
	})

	t.Run("legacy metadata table", func(t *testing.T) {
		lf, err := LoadLockfile(writeLock(t, legacyLock))
		require.NoError(t, err)

		digest, ok := lf.Checksum("libc", "0.2.150")
		assert.True(t, ok)
		assert.Equal(t, "89d92a4743f9a61002fae18374ed11e7973f530cb3a3255fb354818118b2203c", digest)
	})

	t.Run("missing digest is not an error", func(t *testing.T) {
		lf, err := LoadLockfile(writeLock(t, modernLock))
		require.NoError(t, err)

		digest, ok := lf.Checksum("local-helper", "0.1.0")
		assert.False(t, ok)
		assert.Empty(t, digest)
	})

	t.Run("unknown package", func(t *testing.T) {
		lf, err := LoadLockfile(writeLock(t, modernLock))
		require.NoError(t, err)

		_, ok := lf.Checksum("nope", "1.0.0")
		assert.False(t, ok)
	})
}
