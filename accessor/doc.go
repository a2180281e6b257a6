// Package accessor extracts typed values from document nodes.
//
// Every accessor is total: it takes an optional node (nil means the value is
// absent) and a default, and always returns a value. A missing node or a node
// of the wrong kind yields the default. Integers and float32 are clamped into
// the range of the target type instead of wrapping:
//
//	size := accessor.Uint32(root.Get("size"), 1024)   // -1 in the file gives 0
//	ratio := accessor.Float32(root.Get("ratio"), 0.5) // 1e300 gives math.MaxFloat32
//
// Scalar accessors never log. Strings logs a warning through the logger it is
// given when the node is not a sequence at all; non-string elements of a
// sequence are dropped silently.
package accessor
