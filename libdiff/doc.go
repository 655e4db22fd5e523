// Package libdiff computes differences between Pod documents.
//
// # Usage
//
//	// Line diff of canonical text
//	lines, err := libdiff.Nodes(oldRoot, newRoot)
//	if libdiff.Changed(lines) {
//	    libdiff.Render(os.Stdout, lines, true)
//	}
//
//	// Structural diff, aligning block children by type and name
//	changes := libdiff.Tree(oldRoot, newRoot)
//
// # Related Packages
//
//   - github.com/signadot/pod-format/ir - tree representation
//   - github.com/signadot/pod-format/encode - text of changed nodes
package libdiff
