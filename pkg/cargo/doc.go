// Package cargo reads a Cargo workspace from disk and exposes it as an
// immutable resolved-dependency snapshot.
//
// # Overview
//
// The package plays the role of the dependency resolver for recipe
// generation: it never computes version resolution itself, it consumes
// the resolution cargo already recorded in Cargo.lock. A [Snapshot]
// bundles the current package's manifest metadata, the classified list
// of resolved dependencies, and a content-checksum lookup.
//
// # Source classification
//
// Lockfile source locators are parsed exactly once, into the closed
// [Source] variant, so downstream consumers can switch over [SourceKind]
// exhaustively instead of probing locator strings:
//
//	src := cargo.ParseSource("git+https://github.com/foo/bar?tag=v1.0#abcd...")
//	// src.Kind == cargo.SourceGit, src.Ref.Kind == cargo.RefTag
//
// # Loading
//
//	snap, err := cargo.Load("")
//	if err != nil {
//	    // no Cargo.toml or Cargo.lock reachable from the working directory
//	}
//	for _, dep := range snap.Packages {
//	    // one entry per resolved package, current package included
//	}
package cargo
