package conf

// Parser backends selectable with WithParser.
const (
	ParserGoccy  = "goccy"
	ParserYAMLv3 = "yamlv3"
)

// Options holds configuration settings for the Fx module.
type Options struct {
	EnvVariable  string
	FallbackPath string
	DotEnvFiles  []string
	LogLevel     string
	Parser       string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithEnvVariable names the environment variable holding the configuration file path.
func WithEnvVariable(name string) Option {
	return func(opts *Options) {
		opts.EnvVariable = name
	}
}

// WithFallbackPath sets the file used when the environment variable is unset or empty.
func WithFallbackPath(path string) Option {
	return func(opts *Options) {
		opts.FallbackPath = path
	}
}

// WithDotEnv adds .env files consulted for the environment variable when it is not
// set in the process environment.
func WithDotEnv(files ...string) Option {
	return func(opts *Options) {
		opts.DotEnvFiles = append(opts.DotEnvFiles, files...)
	}
}

// WithLogLevel sets the level of the logger built when the container has no *slog.Logger.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithParser selects the YAML backend: ParserGoccy (default) or ParserYAMLv3.
func WithParser(name string) Option {
	return func(opts *Options) {
		opts.Parser = name
	}
}
