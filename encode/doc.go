// Package encode writes Pod trees as text.
//
// # Usage
//
//	// Canonical Pod text
//	err := encode.Encode(root, os.Stdout)
//
//	// Colored, for terminals
//	err = encode.Encode(root, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
//	// YAML or JSON export
//	err = encode.Encode(root, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// YAML and JSON output describe each node as a mapping of its name, type,
// value kind and value, so that no information of the tree is lost; see
// [ToData].
//
// # Related Packages
//
//   - github.com/signadot/pod-format/ir - tree representation
//   - github.com/signadot/pod-format/parse - Parse text to trees
package encode
