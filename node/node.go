package node

import (
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Node.
type Kind int

const (
	// KindNull is an explicit YAML null or an absent value.
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
	// KindBad marks a value that could not be represented, such as an unresolved alias.
	KindBad
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindBad:
		return "bad"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// PathSeparator separates keys in paths passed to Lookup.
const PathSeparator = ":"

// Node is one position in a parsed YAML document.
// A Node is never modified after construction, so it can be shared between goroutines.
type Node struct {
	kind    Kind
	boolean bool
	integer int64
	float   float64
	str     string
	items   []*Node
	keys    []string
	fields  map[string]*Node
}

// Entry is a single key/value pair of a mapping.
type Entry struct {
	Key   string
	Value *Node
}

// Null returns a null node.
func Null() *Node {
	return &Node{kind: KindNull}
}

// Bool returns a boolean node.
func Bool(v bool) *Node {
	return &Node{kind: KindBool, boolean: v}
}

// Int returns an integer node.
func Int(v int64) *Node {
	return &Node{kind: KindInt, integer: v}
}

// Float returns a floating point node.
func Float(v float64) *Node {
	return &Node{kind: KindFloat, float: v}
}

// String returns a string node.
func String(v string) *Node {
	return &Node{kind: KindString, str: v}
}

// Bad returns a node marking a value that could not be represented.
// The reason is kept for diagnostics only.
func Bad(reason string) *Node {
	return &Node{kind: KindBad, str: reason}
}

// Sequence returns a sequence node holding items in order.
func Sequence(items ...*Node) *Node {
	copied := make([]*Node, len(items))
	copy(copied, items)

	return &Node{kind: KindSequence, items: copied}
}

// Mapping returns a mapping node. Keys keep the order of their first appearance;
// a repeated key takes the value of its last entry.
func Mapping(entries ...Entry) *Node {
	mapping := &Node{
		kind:   KindMapping,
		keys:   make([]string, 0, len(entries)),
		fields: make(map[string]*Node, len(entries)),
	}

	for _, entry := range entries {
		if _, exists := mapping.fields[entry.Key]; !exists {
			mapping.keys = append(mapping.keys, entry.Key)
		}

		mapping.fields[entry.Key] = entry.Value
	}

	return mapping
}

// Kind returns the variant of the node. A nil node reports KindNull.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}

	return n.kind
}

// IsNull reports whether the node is nil or an explicit null.
func (n *Node) IsNull() bool {
	return n.Kind() == KindNull
}

// AsBool returns the boolean value and true when the node is a KindBool.
func (n *Node) AsBool() (bool, bool) {
	if n.Kind() != KindBool {
		return false, false
	}

	return n.boolean, true
}

// AsInt64 returns the integer value and true when the node is a KindInt.
// Floats are not converted.
func (n *Node) AsInt64() (int64, bool) {
	if n.Kind() != KindInt {
		return 0, false
	}

	return n.integer, true
}

// AsFloat64 returns the float value and true when the node is a KindFloat.
// Integers are not converted.
func (n *Node) AsFloat64() (float64, bool) {
	if n.Kind() != KindFloat {
		return 0, false
	}

	return n.float, true
}

// AsString returns the string value and true when the node is a KindString.
func (n *Node) AsString() (string, bool) {
	if n.Kind() != KindString {
		return "", false
	}

	return n.str, true
}

// Reason returns the diagnostic text of a KindBad node.
func (n *Node) Reason() string {
	if n.Kind() != KindBad {
		return ""
	}

	return n.str
}

// Items returns a copy of the elements of a sequence, or nil for any other kind.
func (n *Node) Items() []*Node {
	if n.Kind() != KindSequence {
		return nil
	}

	items := make([]*Node, len(n.items))
	copy(items, n.items)

	return items
}

// Len returns the number of elements of a sequence or entries of a mapping.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindSequence:
		return len(n.items)
	case KindMapping:
		return len(n.keys)
	default:
		return 0
	}
}

// Keys returns the keys of a mapping in document order, or nil for any other kind.
func (n *Node) Keys() []string {
	if n.Kind() != KindMapping {
		return nil
	}

	keys := make([]string, len(n.keys))
	copy(keys, n.keys)

	return keys
}

// Entries returns the key/value pairs of a mapping in document order.
func (n *Node) Entries() []Entry {
	if n.Kind() != KindMapping {
		return nil
	}

	entries := make([]Entry, 0, len(n.keys))
	for _, key := range n.keys {
		entries = append(entries, Entry{Key: key, Value: n.fields[key]})
	}

	return entries
}

// Get returns the value stored under key, or nil when the node is not a mapping
// or the key is missing.
func (n *Node) Get(key string) *Node {
	if n.Kind() != KindMapping {
		return nil
	}

	return n.fields[key]
}

// Index returns the i-th element of a sequence, or nil when out of range
// or when the node is not a sequence.
func (n *Node) Index(i int) *Node {
	if n.Kind() != KindSequence || i < 0 || i >= len(n.items) {
		return nil
	}

	return n.items[i]
}

// Lookup navigates a colon separated path such as "database:replicas:0:host".
// Numeric segments index sequences. An empty path returns the node itself.
// Nil is returned as soon as a segment cannot be resolved.
func (n *Node) Lookup(path string) *Node {
	if path == "" {
		return n
	}

	current := n

	for _, segment := range strings.Split(path, PathSeparator) {
		switch current.Kind() {
		case KindMapping:
			current = current.Get(segment)
		case KindSequence:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil
			}

			current = current.Index(index)
		default:
			return nil
		}

		if current == nil {
			return nil
		}
	}

	return current
}
