package conf

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-conf/config"
	filefetcher "github.com/0xalexb/hjarta-conf/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-conf/config/parser/yaml"
	"github.com/0xalexb/hjarta-conf/node"
)

// ErrLoad marks every error returned by the loading functions.
var ErrLoad = errors.New("loading configuration")

// GetYAML reads the file named by the environment variable envVariable, or fallbackPath
// when the variable is unset or empty, and returns its first YAML document.
func GetYAML(envVariable, fallbackPath string) (*node.Node, error) {
	fetcher, err := filefetcher.NewEnvFetcher(envVariable, fallbackPath)()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	root, err := config.Load(fetcher, yamlparser.NewParser())
	if err != nil {
		return nil, fmt.Errorf("%w: file %q: %w", ErrLoad, fetcher.Path(), err)
	}

	return root, nil
}

// GetYAMLFromString parses text and returns its first YAML document.
func GetYAMLFromString(text string) (*node.Node, error) {
	root, err := config.LoadBytes([]byte(text), yamlparser.NewParser())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return root, nil
}

// Load is GetYAML returning a Config bound to logger.
func Load(envVariable, fallbackPath string, logger *slog.Logger) (*Config, error) {
	root, err := GetYAML(envVariable, fallbackPath)
	if err != nil {
		return nil, err
	}

	return New(root, logger), nil
}
