package recipe

import (
	"fmt"

	"github.com/jaskij/cargo-bitbake/pkg/gitutil"
)

// revPrefixLen is how much of the project revision is folded into PV.
// Ten hex characters are short enough to read and collision-resistant
// enough for cache invalidation.
const revPrefixLen = 10

// AutoIncAppend computes the version-append directive from the project's
// own checkout state.
//
// A tagged checkout already encodes version uniqueness and gets nothing.
// An untagged checkout must still invalidate downstream build caches
// whenever the underlying commit changes, so a commit prefix is folded
// into PV. The legacy flag selects the pre-colon override spelling.
func AutoIncAppend(repo gitutil.ProjectRepo, legacy bool) string {
	if repo.IsTag || len(repo.Rev) <= revPrefixLen {
		return ""
	}

	key := "PV:append"
	if legacy {
		key = "PV_append"
	}
	return fmt.Sprintf("%s = \".AUTOINC+%s\"", key, repo.Rev[:revPrefixLen])
}
