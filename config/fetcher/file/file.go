package file

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrEmptyPath is returned when neither the environment variable nor the fallback yields a path.
var ErrEmptyPath = errors.New("empty path")

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	filepath string
	data     []byte
}

// EnvOption customizes how NewEnvFetcher and ResolvePath resolve the file path.
type EnvOption func(*envOptions)

type envOptions struct {
	dotEnvFiles []string
}

// WithDotEnv makes path resolution consult the given .env files when the variable
// is not set in the process environment. Files are read in order and the first
// non-empty value wins; missing files are skipped. The process environment is not modified.
func WithDotEnv(files ...string) EnvOption {
	return func(opts *envOptions) {
		opts.dotEnvFiles = append(opts.dotEnvFiles, files...)
	}
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the file cannot be read or if the path points to a directory.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		return readFile(fpath)
	}
}

// NewEnvFetcher returns a constructor function for a Fetcher whose path is taken from
// the environment variable envVariable when it is set and non-empty, and from
// fallbackPath otherwise. The path is resolved when the constructor runs.
func NewEnvFetcher(envVariable, fallbackPath string, opts ...EnvOption) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		return readFile(ResolvePath(envVariable, fallbackPath, opts...))
	}
}

// ResolvePath returns the value of envVariable when it is set and non-empty, otherwise fallbackPath.
func ResolvePath(envVariable, fallbackPath string, opts ...EnvOption) string {
	var options envOptions

	for _, apply := range opts {
		apply(&options)
	}

	if envVariable == "" {
		return fallbackPath
	}

	if value := os.Getenv(envVariable); value != "" {
		return value
	}

	if value := lookupDotEnv(envVariable, options.dotEnvFiles); value != "" {
		return value
	}

	return fallbackPath
}

func lookupDotEnv(key string, files []string) string {
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			slog.Debug("skipping env file", slog.String("file", file), slog.String("error", err.Error()))

			continue
		}

		if value := values[key]; value != "" {
			return value
		}
	}

	return ""
}

func readFile(fpath string) (*Fetcher, error) {
	if fpath == "" {
		return nil, ErrEmptyPath
	}

	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return &Fetcher{
		filepath: cleanPath,
		data:     data,
	}, nil
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
// A copy is returned to prevent callers from mutating the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
