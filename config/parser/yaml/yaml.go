package yaml

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"github.com/0xalexb/hjarta-conf/node"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements config.Parser interface for YAML data using goccy/go-yaml.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a YAML stream and returns one node tree per document.
func (p *Parser) Parse(data []byte) ([]*node.Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("syntax error: %w", err)
	}

	documents := make([]*node.Node, 0, len(file.Docs))

	for _, doc := range file.Docs {
		if doc == nil {
			continue
		}

		conv := newConverter()
		documents = append(documents, conv.convert(doc.Body))
	}

	return documents, nil
}

// converter turns a goccy AST into node trees. Anchors are scoped to one document.
type converter struct {
	anchors map[string]*node.Node
}

func newConverter() *converter {
	return &converter{anchors: make(map[string]*node.Node)}
}

//nolint:cyclop // one case per AST node type.
func (c *converter) convert(n ast.Node) *node.Node {
	if n == nil {
		return node.Null()
	}

	switch typed := n.(type) {
	case *ast.NullNode:
		return node.Null()
	case *ast.BoolNode:
		return node.Bool(typed.Value)
	case *ast.IntegerNode:
		return convertInteger(typed)
	case *ast.FloatNode:
		return node.Float(typed.Value)
	case *ast.InfinityNode:
		return node.Float(typed.Value)
	case *ast.NanNode:
		return node.Float(math.NaN())
	case *ast.StringNode:
		return convertString(typed)
	case *ast.LiteralNode:
		if typed.Value == nil {
			return node.String("")
		}

		return node.String(typed.Value.Value)
	case *ast.SequenceNode:
		items := make([]*node.Node, 0, len(typed.Values))
		for _, value := range typed.Values {
			items = append(items, c.convert(value))
		}

		return node.Sequence(items...)
	case *ast.MappingNode:
		return c.convertMapping(typed.Values)
	case *ast.MappingValueNode:
		return c.convertMapping([]*ast.MappingValueNode{typed})
	case *ast.AnchorNode:
		value := c.convert(typed.Value)
		if typed.Name != nil {
			c.anchors[tokenText(typed.Name)] = value
		}

		return value
	case *ast.AliasNode:
		name := tokenText(typed.Value)

		value, ok := c.anchors[name]
		if !ok {
			return node.Bad("unknown anchor " + strconv.Quote(name))
		}

		return value
	case *ast.TagNode:
		return c.convertTagged(typed)
	default:
		return node.Bad(fmt.Sprintf("unsupported node type %v", n.Type()))
	}
}

func convertInteger(n *ast.IntegerNode) *node.Node {
	switch value := n.Value.(type) {
	case int64:
		return node.Int(value)
	case uint64:
		if value > math.MaxInt64 {
			return node.Float(float64(value))
		}

		return node.Int(int64(value))
	}

	return node.Bad("invalid integer " + strconv.Quote(n.String()))
}

var plainNumber = regexp.MustCompile(`^[-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)([eE][-+]?[0-9]+)?$`)

// convertString reads plain scalars that look numeric but are outside the int64/uint64 and float64
// ranges (99999999999999999999, 1e400) as floats. Overflow keeps the sign as an infinity.
func convertString(n *ast.StringNode) *node.Node {
	if n.Token == nil || n.Token.Type != token.StringType || !plainNumber.MatchString(n.Value) {
		return node.String(n.Value)
	}

	value, err := strconv.ParseFloat(n.Value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return node.String(n.Value)
	}

	return node.Float(value)
}

func (c *converter) convertMapping(values []*ast.MappingValueNode) *node.Node {
	explicit := make(map[string]bool, len(values))

	for _, value := range values {
		if value.Key != nil && !value.Key.IsMergeKey() {
			explicit[keyText(value.Key)] = true
		}
	}

	entries := make([]node.Entry, 0, len(values))
	merged := make(map[string]bool)

	for _, value := range values {
		if value.Key != nil && value.Key.IsMergeKey() {
			for _, entry := range mergeSources(c.convert(value.Value)) {
				if explicit[entry.Key] || merged[entry.Key] {
					continue
				}

				merged[entry.Key] = true
				entries = append(entries, entry)
			}

			continue
		}

		entries = append(entries, node.Entry{
			Key:   keyText(value.Key),
			Value: c.convert(value.Value),
		})
	}

	return node.Mapping(entries...)
}

// mergeSources returns the entries contributed by a "<<" value: a mapping or a sequence of mappings.
func mergeSources(source *node.Node) []node.Entry {
	switch source.Kind() {
	case node.KindMapping:
		return source.Entries()
	case node.KindSequence:
		var entries []node.Entry
		for _, item := range source.Items() {
			entries = append(entries, item.Entries()...)
		}

		return entries
	default:
		return nil
	}
}

func (c *converter) convertTagged(n *ast.TagNode) *node.Node {
	tag := ""
	if n.Start != nil {
		tag = n.Start.Value
	}

	value := c.convert(n.Value)

	if _, isScalar := n.Value.(ast.ScalarNode); !isScalar {
		return value
	}

	text := tokenText(n.Value)

	switch token.ReservedTagKeyword(tag) {
	case token.StringTag:
		if value.Kind() == node.KindString {
			return value
		}

		return node.String(text)
	case token.IntegerTag:
		if parsed, err := strconv.ParseInt(text, 0, 64); err == nil {
			return node.Int(parsed)
		}
	case token.FloatTag:
		if parsed, err := strconv.ParseFloat(text, 64); err == nil {
			return node.Float(parsed)
		}
	case token.BooleanTag:
		if parsed, err := strconv.ParseBool(text); err == nil {
			return node.Bool(parsed)
		}
	case token.NullTag:
		return node.Null()
	}

	return value
}

func keyText(key ast.Node) string {
	switch typed := key.(type) {
	case nil:
		return ""
	case *ast.MappingKeyNode:
		return keyText(typed.Value)
	case *ast.TagNode:
		return keyText(typed.Value)
	case *ast.AnchorNode:
		return keyText(typed.Value)
	case *ast.StringNode:
		return typed.Value
	}

	return tokenText(key)
}

func tokenText(n ast.Node) string {
	if n == nil {
		return ""
	}

	if str, ok := n.(*ast.StringNode); ok {
		return str.Value
	}

	if tk := n.GetToken(); tk != nil {
		return tk.Value
	}

	return n.String()
}
