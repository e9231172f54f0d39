package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeMissingLockfile, "no Cargo.lock found"),
			want: "MISSING_LOCKFILE: no Cargo.lock found",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeOutputOpen, stderrors.New("permission denied"), "unable to open foo_1.0.0.bb"),
			want: "OUTPUT_OPEN: unable to open foo_1.0.0.bb: permission denied",
		},
		{
			name: "formatted message",
			err:  New(ErrCodeUnresolvedRevision, "dependency %s: revision %q", "serde", "dead"),
			want: `UNRESOLVED_REVISION: dependency serde: revision "dead"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeUnresolvedRevision, "no usable revision")

	if !Is(err, ErrCodeUnresolvedRevision) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeMissingLockfile) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeUnresolvedRevision) {
		t.Error("Is() should not match a plain error")
	}
}

func TestIsWrapped(t *testing.T) {
	inner := New(ErrCodeMissingHomepage, "no homepage")
	outer := fmt.Errorf("generate: %w", inner)

	if !Is(outer, ErrCodeMissingHomepage) {
		t.Error("Is() should unwrap through fmt.Errorf chains")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeOutputWrite, cause, "unable to write recipe")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidManifest, "bad toml")); got != ErrCodeInvalidManifest {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidManifest)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q for plain error, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeMissingManifest, "no Cargo.toml found in /src")
	if got := UserMessage(err); got != "no Cargo.toml found in /src" {
		t.Errorf("UserMessage() = %q, want message without code prefix", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain failure")
	}
}
