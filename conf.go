// Package conf loads YAML configuration from a file chosen by an environment
// variable, or from a string, and reads typed values out of it.
//
// Loading can fail and returns an error wrapping ErrLoad. Reading never fails:
// missing or mistyped values resolve to the caller's default and out-of-range
// integers are clamped. See the accessor package for the exact rules.
package conf

import (
	"log/slog"

	"github.com/0xalexb/hjarta-conf/accessor"
	"github.com/0xalexb/hjarta-conf/node"
)

// Config reads typed values from a loaded document by colon separated path.
type Config struct {
	root   *node.Node
	logger *slog.Logger
}

// New returns a Config over root. The logger receives the warnings emitted by Strings;
// nil means slog.Default.
func New(root *node.Node, logger *slog.Logger) *Config {
	return &Config{
		root:   root,
		logger: logger,
	}
}

// Root returns the document the Config reads from.
func (c *Config) Root() *node.Node {
	return c.root
}

// Node returns the node at path, or nil when the path does not exist.
func (c *Config) Node(path string) *node.Node {
	return c.root.Lookup(path)
}

// Bool returns the boolean at path, or def when it is missing or not a boolean.
func (c *Config) Bool(path string, def bool) bool {
	return accessor.Bool(c.Node(path), def)
}

// Uint32 returns the integer at path clamped to the uint32 range, or def when it is missing or not an integer.
func (c *Config) Uint32(path string, def uint32) uint32 {
	return accessor.Uint32(c.Node(path), def)
}

// Int32 returns the integer at path clamped to the int32 range, or def when it is missing or not an integer.
func (c *Config) Int32(path string, def int32) int32 {
	return accessor.Int32(c.Node(path), def)
}

// Uint returns the integer at path clamped to the uint range, or def when it is missing or not an integer.
func (c *Config) Uint(path string, def uint) uint {
	return accessor.Uint(c.Node(path), def)
}

// Float64 returns the float at path, or def when it is missing or not a float.
func (c *Config) Float64(path string, def float64) float64 {
	return accessor.Float64(c.Node(path), def)
}

// Float32 returns the float at path clamped to the float32 range, or def when it is missing or not a float.
func (c *Config) Float32(path string, def float32) float32 {
	return accessor.Float32(c.Node(path), def)
}

// String returns the string at path, or def when it is missing or not a string.
func (c *Config) String(path string, def string) string {
	return accessor.String(c.Node(path), def)
}

// Strings returns the string elements of the sequence at path.
// A missing path is reported like any other non-sequence value.
func (c *Config) Strings(path string) []string {
	return accessor.Strings(c.logger, c.Node(path))
}
