package gitutil

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/jaskij/cargo-bitbake/pkg/errors"
)

// ProjectRepo describes the checkout state of the project being
// packaged. The zero value stands in when introspection fails: empty
// URI, empty revision, not at a tag.
type ProjectRepo struct {
	URI    string // rewritten fetch URL for the project itself
	Branch string // checked-out branch, empty on a detached HEAD
	Rev    string // HEAD commit
	IsTag  bool   // HEAD is exactly at a tag
}

// Introspect inspects the git checkout enclosing dir.
//
// It shells out to git rather than linking a git implementation; the
// tool already assumes a developer checkout with git available. Failures
// are reported so the caller can warn and continue with the zero value,
// recoverable per the error taxonomy.
func Introspect(ctx context.Context, dir string, prefix Prefix) (ProjectRepo, error) {
	remote, err := gitOutput(ctx, dir, "remote", "get-url", "origin")
	if err != nil {
		return ProjectRepo{}, errors.Wrap(errors.ErrCodeGitIntrospection, err, "unable to determine origin remote for %s", dir)
	}

	rev, err := gitOutput(ctx, dir, "rev-parse", "HEAD")
	if err != nil {
		return ProjectRepo{}, errors.Wrap(errors.ErrCodeGitIntrospection, err, "unable to determine HEAD revision for %s", dir)
	}

	// both probes fail legitimately: detached HEAD, untagged commit
	branch, _ := gitOutput(ctx, dir, "symbolic-ref", "--short", "HEAD")
	_, tagErr := gitOutput(ctx, dir, "describe", "--exact-match", "--tags", "HEAD")

	uri := YoctoURL(remote, "", prefix)
	if branch != "" {
		uri += ";branch=" + branch
	}

	return ProjectRepo{
		URI:    uri,
		Branch: branch,
		Rev:    rev,
		IsTag:  tagErr == nil,
	}, nil
}

// gitOutput runs a git command in dir and returns its trimmed stdout.
func gitOutput(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(out.String()), nil
}
