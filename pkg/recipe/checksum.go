package recipe

import (
	"fmt"

	"github.com/jaskij/cargo-bitbake/pkg/cargo"
)

// checksumSuffix renders the inline checksum annotation for a registry
// dependency. The digest appears under two keys, satisfying both the
// archive-level and the per-artifact checksum convention of the fetcher.
// A missing digest yields an empty suffix; this is a silent fallback,
// never an error.
func checksumSuffix(snap *cargo.Snapshot, name, version string) string {
	digest, ok := snap.Checksum(name, version)
	if !ok || digest == "" {
		return ""
	}
	return fmt.Sprintf(";sha256sum=%s;%s-%s.sha256sum=%s", digest, name, version, digest)
}
