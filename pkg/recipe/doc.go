// Package recipe translates a resolved Cargo snapshot into a BitBake
// recipe.
//
// # Overview
//
// The translation is a single pass over the resolver snapshot. Each
// resolved dependency is dispatched on its classified source kind and
// folded into one formatted SRC_URI line plus, for git dependencies,
// three ordered side-variable lines (revision format, revision pin, and
// checkout path registration). The project's own checkout state
// contributes an independent version-stability directive.
//
// # Ordering
//
// The SRC_URI block is sorted and deduplicated so output is independent
// of lockfile iteration order. Side variables are directive sequences,
// not a set: they stay in dependency-encounter order and are never
// sorted.
//
// # Failure
//
// The only fatal condition inside the pass is a git dependency pinned to
// an abbreviated revision with no resolver-recorded commit to fall back
// on. Generation aborts before any output exists; a recipe with an
// unfetchable pin is never written.
//
// # Usage
//
//	snap, _ := cargo.Load("")
//	repo, _ := gitutil.Introspect(ctx, snap.RootDir, gitutil.PrefixGit)
//	rec, err := recipe.Generate(snap, repo, recipe.Options{Reproducible: true})
//	if err != nil {
//	    return err
//	}
//	path, err := rec.WriteFile(".")
package recipe
