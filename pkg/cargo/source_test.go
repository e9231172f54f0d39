package cargo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name    string
		locator string
		want    Source
	}{
		{
			name:    "absent source is a path dependency",
			locator: "",
			want:    Source{Kind: SourcePath},
		},
		{
			name:    "explicit path locator",
			locator: "path+file:///home/dev/mylib",
			want:    Source{Kind: SourcePath},
		},
		{
			name:    "crates.io git index",
			locator: "registry+https://github.com/rust-lang/crates.io-index",
			want:    Source{Kind: SourceRegistry, Host: "crates.io"},
		},
		{
			name:    "crates.io sparse index",
			locator: "sparse+https://index.crates.io/",
			want:    Source{Kind: SourceRegistry, Host: "crates.io"},
		},
		{
			name:    "alternative registry keeps its host",
			locator: "registry+https://crates.example.com/index",
			want:    Source{Kind: SourceRegistry, Host: "crates.example.com"},
		},
		{
			name:    "git with tag",
			locator: "git+https://github.com/foo/bar?tag=v1.0.0#aaaabbbbccccddddeeeeffff0000111122223333",
			want: Source{
				Kind:    SourceGit,
				Remote:  "https://github.com/foo/bar",
				Ref:     GitRef{Kind: RefTag, Value: "v1.0.0"},
				Precise: "aaaabbbbccccddddeeeeffff0000111122223333",
			},
		},
		{
			name:    "git with branch",
			locator: "git+https://github.com/foo/bar?branch=next",
			want: Source{
				Kind:   SourceGit,
				Remote: "https://github.com/foo/bar",
				Ref:    GitRef{Kind: RefBranch, Value: "next"},
			},
		},
		{
			name:    "git with abbreviated rev",
			locator: "git+https://github.com/foo/bar?rev=deadbeef",
			want: Source{
				Kind:   SourceGit,
				Remote: "https://github.com/foo/bar",
				Ref:    GitRef{Kind: RefRev, Value: "deadbeef"},
			},
		},
		{
			name:    "git without reference is the default branch",
			locator: "git+https://github.com/foo/bar#0123456789012345678901234567890123456789",
			want: Source{
				Kind:    SourceGit,
				Remote:  "https://github.com/foo/bar",
				Ref:     GitRef{Kind: RefDefaultBranch},
				Precise: "0123456789012345678901234567890123456789",
			},
		},
		{
			name:    "unrecognized locator passes through",
			locator: "https://example.com/foo-1.0.tar.gz",
			want:    Source{Kind: SourceOther, Raw: "https://example.com/foo-1.0.tar.gz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSource(tt.locator))
		})
	}
}

func TestSourceKindString(t *testing.T) {
	assert.Equal(t, "path", SourcePath.String())
	assert.Equal(t, "registry", SourceRegistry.String())
	assert.Equal(t, "git", SourceGit.String())
	assert.Equal(t, "other", SourceOther.String())
}
