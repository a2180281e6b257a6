// Package node defines the read-only document tree produced by the YAML parsers.
//
// A Node is a tagged union over the YAML value kinds: null, bool, int, float,
// string, sequence and mapping, plus a bad marker for values that could not be
// represented. Extraction methods (AsBool, AsInt64, ...) only succeed for their
// own kind. Navigation methods (Get, Index, Lookup) return nil when the target
// does not exist, and every method accepts a nil receiver, so lookups chain:
//
//	port := root.Get("server").Get("port")
//	host := root.Lookup("database:replicas:0:host")
package node
