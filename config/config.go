package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-conf/node"
)

// ErrNoDocuments is returned when the configuration source holds no YAML document.
var ErrNoDocuments = errors.New("no documents")

// Parser defines an interface for parsing raw configuration data into document trees.
// Implementations return one node per YAML document in the stream.
// See config/parser/yaml and config/parser/yamlv3.
type Parser interface {
	Parse(data []byte) ([]*node.Node, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Load reads data from the fetcher, parses it and returns the first document.
func Load(fetcher DataFetcher, parser Parser) (*node.Node, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	return firstDocument(parser, data)
}

// LoadBytes parses in-memory data and returns the first document.
func LoadBytes(data []byte, parser Parser) (*node.Node, error) {
	return firstDocument(parser, data)
}

// Provider is an Fx-friendly constructor returning the root node of the configuration document.
func Provider(parser Parser, fetcher DataFetcher) (*node.Node, error) {
	root, err := Load(fetcher, parser)
	if err != nil {
		return nil, err
	}

	slog.Debug("configuration loaded", slog.String("kind", root.Kind().String()), slog.Int("entries", root.Len()))

	return root, nil
}

func firstDocument(parser Parser, data []byte) (*node.Node, error) {
	documents, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	if len(documents) == 0 {
		return nil, ErrNoDocuments
	}

	return documents[0], nil
}
