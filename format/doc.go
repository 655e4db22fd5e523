// Package format names the output formats of Pod trees.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	err = encode.Encode(root, os.Stdout, encode.EncodeFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/pod-format/encode - Encode trees to text
package format
