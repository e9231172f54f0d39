package gitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYoctoURL(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		pkg    string
		prefix Prefix
		want   string
	}{
		{
			name:   "https remote",
			remote: "https://github.com/foo/bar",
			pkg:    "bar",
			want:   "git://github.com/foo/bar;protocol=https;name=bar;destsuffix=bar",
		},
		{
			name:   "http remote",
			remote: "http://example.com/foo/bar",
			pkg:    "bar",
			want:   "git://example.com/foo/bar;protocol=http;name=bar;destsuffix=bar",
		},
		{
			name:   "scp-style ssh remote",
			remote: "git@github.com:foo/bar.git",
			pkg:    "bar",
			want:   "git://git@github.com/foo/bar.git;protocol=ssh;name=bar;destsuffix=bar",
		},
		{
			name:   "ssh scheme remote",
			remote: "ssh://git@github.com/foo/bar.git",
			pkg:    "bar",
			want:   "git://git@github.com/foo/bar.git;protocol=ssh;name=bar;destsuffix=bar",
		},
		{
			name:   "git scheme kept as-is",
			remote: "git://example.com/foo/bar",
			pkg:    "bar",
			want:   "git://example.com/foo/bar;name=bar;destsuffix=bar",
		},
		{
			name:   "cargo git+ prefix stripped",
			remote: "git+https://github.com/foo/bar",
			pkg:    "bar",
			want:   "git://github.com/foo/bar;protocol=https;name=bar;destsuffix=bar",
		},
		{
			name:   "no name leaves URL untagged",
			remote: "https://github.com/foo/bar",
			want:   "git://github.com/foo/bar;protocol=https",
		},
		{
			name:   "submodule fetcher prefix",
			remote: "https://github.com/foo/bar",
			pkg:    "bar",
			prefix: PrefixGitSM,
			want:   "gitsm://github.com/foo/bar;protocol=https;name=bar;destsuffix=bar",
		},
		{
			name:   "submodule fetcher rewrites git scheme",
			remote: "git://example.com/foo/bar",
			pkg:    "bar",
			prefix: PrefixGitSM,
			want:   "gitsm://example.com/foo/bar;name=bar;destsuffix=bar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YoctoURL(tt.remote, tt.pkg, tt.prefix))
		})
	}
}
