// Package parse parses Pod text into [ir.Node] trees.
//
// # Usage
//
//	// Parse Pod text
//	root, err := parse.Parse([]byte(`group "g1" { x = 1; y = 2.5; };`))
//	if err != nil {
//	    return err
//	}
//	x, err := root.Lookup("g1.x").AsInt()
//
//	// Parse a file; the path labels positions and nodes
//	root, err := parse.ParseFile("scene.pod")
//
//	// Import the process environment, inferring numbers
//	env, err := parse.ParseEnviron(os.Environ(), true)
//
// # Statements
//
// A statement is up to three words followed by '=' and a value, a literal,
// a block or nothing, and is terminated by ';'.  Words are identifiers,
// possibly dotted, or quoted strings.  With '=', the words before it are
// `[type] name`.  Without it, a block is introduced by `[type [name]
// [scope]]` and a literal by `[type [name]]`, while one or two words alone
// declare `[type] name`.  A quoted string standing where the name of a
// valueless statement would be is its value instead.
//
// Errors are reported as *[Error] with a position, or *[IOError] when the
// input cannot be read.
//
// # Related Packages
//
//   - github.com/signadot/pod-format/ir - tree representation
//   - github.com/signadot/pod-format/encode - writes trees as Pod, YAML or JSON
//   - github.com/signadot/pod-format/token - tokenization
package parse
