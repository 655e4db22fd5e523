// Package gomap maps Pod trees to and from plain Go values.
//
// The plain form of a block is an ordered mapping (yaml.MapSlice) keyed by
// each statement's name, or by its semantic type when it has no name.  A
// block whose statements are all anonymous becomes a sequence instead.
// Strings, identifiers and embeds all map to Go strings, so the plain form
// does not round trip to the same tree; use the encode package for a
// lossless export.
//
// Go values are decoded through YAML using the field tags understood by
// github.com/goccy/go-yaml:
//
//	var cfg struct {
//		Port int    `yaml:"port"`
//		Host string `yaml:"host"`
//	}
//	err := gomap.Load([]byte(`port = 80; host = "h";`), &cfg)
package gomap
