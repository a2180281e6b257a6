// Package yaml provides the default YAML parser for the config package.
//
// It parses with github.com/goccy/go-yaml and converts the resulting AST into
// node trees, one per document in the stream:
//
//	documents, err := yaml.NewParser().Parse(data)
//
// Conversion rules:
//   - null and "~" -> null; true/false -> bool
//   - integers -> int; integers beyond int64 -> float
//   - floats, .inf and .nan -> float
//   - plain, quoted and block scalars -> string
//   - anchors and aliases are resolved; "<<" merge keys never override explicit keys
//   - !!str forces a string; !!int, !!float and !!bool parse the scalar text
//   - unknown aliases and unsupported nodes -> bad
package yaml
