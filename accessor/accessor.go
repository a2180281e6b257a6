package accessor

import (
	"log/slog"
	"math"

	"github.com/0xalexb/hjarta-conf/logging"
	"github.com/0xalexb/hjarta-conf/node"
)

// StringsOperation names the string sequence extraction in diagnostics.
const StringsOperation = "accessor.Strings"

// Bool returns the boolean held by n, or def when n is nil or not a boolean.
func Bool(n *node.Node, def bool) bool {
	value, ok := n.AsBool()
	if !ok {
		return def
	}

	return value
}

// Uint32 returns the integer held by n clamped to [0, math.MaxUint32].
// When n is nil or not an integer the default is clamped instead.
func Uint32(n *node.Node, def uint32) uint32 {
	return clampUnsigned(int64Or(n, int64(def)), uint32(math.MaxUint32))
}

// Uint returns the integer held by n clamped to [0, math.MaxUint].
// The default is widened to int64 before clamping, so a default above
// math.MaxInt64 resolves to 0.
func Uint(n *node.Node, def uint) uint {
	return clampUnsigned(int64Or(n, int64(def)), uint(math.MaxUint)) //nolint:gosec // wrap on widening is intended
}

// Int32 returns the integer held by n clamped to [math.MinInt32, math.MaxInt32],
// or def when n is nil or not an integer.
func Int32(n *node.Node, def int32) int32 {
	value := int64Or(n, int64(def))

	switch {
	case value > math.MaxInt32:
		return math.MaxInt32
	case value < math.MinInt32:
		return math.MinInt32
	default:
		return int32(value)
	}
}

// Float64 returns the float held by n, or def when n is nil or not a float.
func Float64(n *node.Node, def float64) float64 {
	return float64Or(n, def)
}

// Float32 returns the float held by n clamped to [-math.MaxFloat32, math.MaxFloat32],
// or def when n is nil or not a float.
func Float32(n *node.Node, def float32) float32 {
	value := float64Or(n, float64(def))

	switch {
	case value > math.MaxFloat32:
		return math.MaxFloat32
	case value < -math.MaxFloat32:
		return -math.MaxFloat32
	default:
		return float32(value)
	}
}

// String returns the string held by n, or def when n is nil or not a string.
func String(n *node.Node, def string) string {
	value, ok := n.AsString()
	if !ok {
		return def
	}

	return value
}

// Strings returns the string elements of the sequence n in document order.
// Elements of other kinds are skipped. When n is not a sequence a warning is
// logged and an empty slice is returned.
func Strings(logger *slog.Logger, n *node.Node) []string {
	if n.Kind() != node.KindSequence {
		logging.Warn(logger, StringsOperation, "value is not a sequence, returning empty list",
			slog.String("kind", n.Kind().String()))

		return []string{}
	}

	items := n.Items()
	values := make([]string, 0, len(items))

	for _, item := range items {
		if value, ok := item.AsString(); ok {
			values = append(values, value)
		}
	}

	return values
}

func int64Or(n *node.Node, def int64) int64 {
	value, ok := n.AsInt64()
	if !ok {
		return def
	}

	return value
}

func float64Or(n *node.Node, def float64) float64 {
	value, ok := n.AsFloat64()
	if !ok {
		return def
	}

	return value
}

func clampUnsigned[T uint32 | uint](value int64, upper T) T {
	if value < 0 {
		return 0
	}

	if uint64(value) > uint64(upper) {
		return upper
	}

	return T(value)
}
