package recipe

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/jaskij/cargo-bitbake/pkg/errors"
)

// recipeTemplate is the fixed recipe skeleton. Every placeholder is a
// fully rendered string from [Recipe]; the template itself carries no
// logic.
const recipeTemplate = `# Auto-Generated by cargo-bitbake {{.ToolVersion}}
#
inherit cargo

# If this is git based prefer versioned ones if they exist
# DEFAULT_PREFERENCE = "-1"

# how to get {{.Name}} you can also use the github archive or ipk file
SRC_URI += "{{.ProjectSrcURI}}"
SRCREV = "{{.ProjectSrcRev}}"
S = "${WORKDIR}/git"
CARGO_SRC_DIR = "{{.ProjectRelDir}}"
{{.GitSrcPV}}

# please note if you have entries that do not begin with crate://
# you must change them to how that package can be fetched
SRC_URI += " \
{{.SrcURI}}"

{{.SrcURIExtras}}

LIC_FILES_CHKSUM = " \
{{.LicFiles}}"

SUMMARY = "{{.Summary}}"
HOMEPAGE = "{{.Homepage}}"
LICENSE = "{{.License}}"

# includes this file if it exists but does not fail
# this is useful for anything you may want to override from
# what cargo-bitbake generates.
include {{.Name}}-${PV}.inc
include {{.Name}}_${PV}.inc
`

var recipeTmpl = template.Must(template.New("recipe").Parse(recipeTemplate))

// Render writes the recipe text to w.
func (r *Recipe) Render(w io.Writer) error {
	return recipeTmpl.Execute(w, r)
}

// FileName returns the recipe file name, <name>_<version>.bb.
func (r *Recipe) FileName() string {
	return fmt.Sprintf("%s_%s.bb", r.Name, r.Version)
}

// WriteFile writes the recipe into dir (the working directory when dir
// is empty) and returns the written path. The file is opened exactly
// once, truncating any previous recipe; a render failure after that
// point can leave a truncated file behind, which is an accepted gap.
func (r *Recipe) WriteFile(dir string) (string, error) {
	path := filepath.Join(dir, r.FileName())

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeOutputOpen, err, "unable to open recipe file %s", path)
	}
	defer f.Close()

	if err := r.Render(f); err != nil {
		return "", errors.Wrap(errors.ErrCodeOutputWrite, err, "unable to write recipe file %s", path)
	}
	return path, nil
}
