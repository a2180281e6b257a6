package yamlv3

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/0xalexb/hjarta-conf/node"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

const mergeTag = "!!merge"

// Parser implements config.Parser interface on top of gopkg.in/yaml.v3.
type Parser struct{}

// NewParser creates a new yaml.v3 backed parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes every document of the YAML stream into a node tree.
func (p *Parser) Parse(data []byte) ([]*node.Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))

	var documents []*node.Node

	for {
		var document yaml.Node

		err := decoder.Decode(&document)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("syntax error: %w", err)
		}

		documents = append(documents, newConverter().convert(&document))
	}

	return documents, nil
}

// converter turns yaml.v3 node trees into node trees. Anchored subtrees are converted once
// and shared by every alias that references them.
type converter struct {
	anchors  map[*yaml.Node]*node.Node
	visiting map[*yaml.Node]bool
}

func newConverter() *converter {
	return &converter{
		anchors:  make(map[*yaml.Node]*node.Node),
		visiting: make(map[*yaml.Node]bool),
	}
}

func (c *converter) convert(value *yaml.Node) *node.Node {
	if value == nil {
		return node.Null()
	}

	switch value.Kind {
	case yaml.DocumentNode:
		if len(value.Content) == 0 {
			return node.Null()
		}

		return c.convert(value.Content[0])
	case yaml.SequenceNode:
		items := make([]*node.Node, 0, len(value.Content))
		for _, item := range value.Content {
			items = append(items, c.convert(item))
		}

		return node.Sequence(items...)
	case yaml.MappingNode:
		return c.convertMapping(value)
	case yaml.AliasNode:
		return c.resolveAlias(value)
	case yaml.ScalarNode:
		return convertScalar(value)
	default:
		return node.Bad(fmt.Sprintf("unsupported node kind %d", value.Kind))
	}
}

func (c *converter) resolveAlias(alias *yaml.Node) *node.Node {
	target := alias.Alias
	if target == nil {
		return node.Bad("unresolved alias " + strconv.Quote(alias.Value))
	}

	if converted, ok := c.anchors[target]; ok {
		return converted
	}

	if c.visiting[target] {
		return node.Bad("recursive alias " + strconv.Quote(alias.Value))
	}

	c.visiting[target] = true
	converted := c.convert(target)
	delete(c.visiting, target)

	c.anchors[target] = converted

	return converted
}

func convertScalar(value *yaml.Node) *node.Node {
	switch value.ShortTag() {
	case "!!null":
		return node.Null()
	case "!!bool":
		var parsed bool
		if err := value.Decode(&parsed); err == nil {
			return node.Bool(parsed)
		}
	case "!!int":
		var parsed int64
		if err := value.Decode(&parsed); err == nil {
			return node.Int(parsed)
		}

		// Integers outside the int64 range keep their magnitude as a float.
		var fallback float64
		if err := value.Decode(&fallback); err == nil {
			return node.Float(fallback)
		}
	case "!!str":
		if value.Style == 0 {
			if overflowed, ok := outOfRangeNumber(value.Value); ok {
				return node.Float(overflowed)
			}
		}

		return node.String(value.Value)
	case "!!float":
		var parsed float64
		if err := value.Decode(&parsed); err == nil {
			return node.Float(parsed)
		}
	default:
		return node.String(value.Value)
	}

	return node.Bad("invalid " + value.ShortTag() + " value " + strconv.Quote(value.Value))
}

func (c *converter) convertMapping(value *yaml.Node) *node.Node {
	explicit := make(map[string]bool, len(value.Content)/2)

	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].ShortTag() != mergeTag {
			explicit[value.Content[i].Value] = true
		}
	}

	entries := make([]node.Entry, 0, len(value.Content)/2)
	merged := make(map[string]bool)

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]

		if key.ShortTag() == mergeTag {
			for _, entry := range mergeSources(c.convert(val)) {
				if explicit[entry.Key] || merged[entry.Key] {
					continue
				}

				merged[entry.Key] = true
				entries = append(entries, entry)
			}

			continue
		}

		entries = append(entries, node.Entry{Key: key.Value, Value: c.convert(val)})
	}

	return node.Mapping(entries...)
}

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

var plainNumber = regexp.MustCompile(`^[-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)([eE][-+]?[0-9]+)?$`)

// outOfRangeNumber reads a plain scalar that looks numeric but did not resolve as one because it
// overflows float64, e.g. 1e400. Overflow keeps the sign as an infinity.
func outOfRangeNumber(text string) (float64, bool) {
	if !plainNumber.MatchString(text) {
		return 0, false
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return value, true
}
