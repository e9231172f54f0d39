// Package gitutil rewrites git remote URLs into the BitBake fetcher form
// and inspects the checkout state of the project being packaged.
package gitutil

import "strings"

// Prefix selects the BitBake fetcher used for rewritten git URLs.
type Prefix string

const (
	// PrefixGit is the plain git fetcher.
	PrefixGit Prefix = "git"

	// PrefixGitSM is the submodule-aware fetcher.
	PrefixGitSM Prefix = "gitsm"
)

// YoctoURL rewrites a git remote URL into the form the BitBake fetcher
// expects: the scheme becomes the fetcher prefix and the transport moves
// into a protocol parameter. When name is non-empty the URL is tagged
// with name and destsuffix parameters so multiple git fetches within one
// recipe stay distinguishable.
//
//	YoctoURL("https://github.com/foo/bar", "bar", PrefixGit)
//	// git://github.com/foo/bar;protocol=https;name=bar;destsuffix=bar
func YoctoURL(remote, name string, prefix Prefix) string {
	if prefix == "" {
		prefix = PrefixGit
	}

	url := strings.TrimPrefix(remote, "git+")
	switch {
	case strings.HasPrefix(url, "git@"):
		// scp-style remote: git@host:user/repo
		url = strings.Replace(url, ":", "/", 1)
		url = strings.Replace(url, "git@", string(prefix)+"://git@", 1)
		url += ";protocol=ssh"

	case strings.HasPrefix(url, "ssh://"):
		url = string(prefix) + "://" + strings.TrimPrefix(url, "ssh://") + ";protocol=ssh"

	case strings.HasPrefix(url, "https://"):
		url = string(prefix) + "://" + strings.TrimPrefix(url, "https://") + ";protocol=https"

	case strings.HasPrefix(url, "http://"):
		url = string(prefix) + "://" + strings.TrimPrefix(url, "http://") + ";protocol=http"

	case strings.HasPrefix(url, "git://"):
		if prefix != PrefixGit {
			url = string(prefix) + "://" + strings.TrimPrefix(url, "git://")
		}
	}

	if name != "" {
		url += ";name=" + name + ";destsuffix=" + name
	}
	return url
}
