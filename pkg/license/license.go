// Package license locates license files for the LIC_FILES_CHKSUM recipe
// field.
package license

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Closed is the license marker emitted when a manifest declares neither
// a license identifier nor a license file.
const Closed = "CLOSED"

// commonLicenses maps license identifiers to the md5 digest of the
// matching file in the build system's common-licenses directory. Used
// when the crate does not ship a license file of its own.
var commonLicenses = map[string]string{
	"MIT":          "0835ade698e0bcf8506ecda2f7b4f302",
	"Apache-2.0":   "89aea4e17d99a7cacdbeed46a0096b10",
	"GPL-2.0":      "b234ee4d69f5fce4486a80fdaf4a4263",
	"GPL-3.0":      "c79ff39f19dfec6d293b95dea7b07891",
	"LGPL-2.1":     "1a6d268fd218675ffea8be556788b780",
	"BSD-3-Clause": "550794465ba0ec5312d6919e203a55f9",
	"MPL-2.0":      "815ca599c9df247a0c7f619bab123dad",
	"Unlicense":    "7246f848faa4e9c9fc0ea91122d6e680",
}

// File returns one LIC_FILES_CHKSUM entry for a license.
//
// root is the directory holding the package manifest, relDir the package
// directory relative to the workspace root (LIC_FILES_CHKSUM paths are
// relative to the unpacked source tree, which is the workspace root).
// When the package carries a single license, conventional file names in
// the package root are tried first and the first hit is checksummed.
// Multi-license packages, and packages shipping no license file, fall
// back to the common-licenses directory.
func File(root, relDir, id string, single bool) string {
	id = strings.TrimSpace(id)

	if single {
		for _, name := range candidates(id) {
			full := filepath.Join(root, name)
			sum, err := fileMD5(full)
			if err != nil {
				continue
			}
			return fmt.Sprintf("file://%s;md5=%s", path.Join(relDir, name), sum)
		}
	}

	if sum, ok := commonLicenses[id]; ok {
		return fmt.Sprintf("file://${COMMON_LICENSE_DIR}/%s;md5=%s", id, sum)
	}
	// unknown identifier, leave a marker the user has to resolve
	return fmt.Sprintf("file://${COMMON_LICENSE_DIR}/%s;md5=", id)
}

// candidates lists conventional license file names in lookup order, most
// specific first.
func candidates(id string) []string {
	names := []string{}
	if id != "" {
		names = append(names,
			"LICENSE-"+id,
			"LICENSE-"+strings.ToUpper(id),
		)
	}
	return append(names,
		"LICENSE",
		"LICENSE.md",
		"LICENSE.txt",
		"LICENCE",
		"UNLICENSE",
		"COPYING",
		"COPYRIGHT",
	)
}

// fileMD5 returns the hex md5 digest of a file's contents.
func fileMD5(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:]), nil
}
