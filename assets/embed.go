// Package assets bundles the knowledge-base resources shipped with the
// binary, so the engine is useful without any external file on disk.
package assets

import _ "embed"

// ListsLibrary is the source of the bundled list-predicate library
// (Append, Member, Reverse, Last, Nth), loaded automatically at REPL
// startup unless disabled.
//
//go:embed lists.gic
var ListsLibrary string
