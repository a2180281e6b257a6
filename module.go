package conf

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-conf/config"
	filefetcher "github.com/0xalexb/hjarta-conf/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-conf/config/parser/yaml"
	yamlv3parser "github.com/0xalexb/hjarta-conf/config/parser/yamlv3"
	"github.com/0xalexb/hjarta-conf/logging"
	"github.com/0xalexb/hjarta-conf/node"

	"go.uber.org/fx"
)

// ErrUnknownParser is returned when WithParser names an unsupported backend.
var ErrUnknownParser = errors.New("unknown parser")

// NewModule creates an Fx module providing config.Parser, config.DataFetcher,
// the root *node.Node of the configuration document and a *Config reading from it.
// The Config uses the *slog.Logger from the container when there is one.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	parserOption, err := provideParser(options.Parser)
	if err != nil {
		return fx.Error(err)
	}

	return fx.Module("conf",
		parserOption,
		fx.Provide(
			fx.Annotate(
				filefetcher.NewEnvFetcher(options.EnvVariable, options.FallbackPath,
					filefetcher.WithDotEnv(options.DotEnvFiles...)),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Provide(config.Provider),
		fx.Provide(provideConfig(options.LogLevel)),
	)
}

//nolint:ireturn // fx.Option is the standard return type for Fx modules
func provideParser(name string) (fx.Option, error) {
	switch name {
	case "", ParserGoccy:
		return fx.Provide(fx.Annotate(yamlparser.NewParser, fx.As(new(config.Parser)))), nil
	case ParserYAMLv3:
		return fx.Provide(fx.Annotate(yamlv3parser.NewParser, fx.As(new(config.Parser)))), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, name)
	}
}

type configParams struct {
	fx.In

	Root   *node.Node
	Logger *slog.Logger `optional:"true"`
}

func provideConfig(level string) func(configParams) *Config {
	return func(params configParams) *Config {
		logger := params.Logger
		if logger == nil {
			logger = logging.NewLogger(logging.LoggerConfig{Level: level}, os.Stderr)
		}

		return New(params.Root, logger)
	}
}
