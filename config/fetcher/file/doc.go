// Package file provides a file-based DataFetcher implementation for the config package.
//
// This package reads configuration data from files on the filesystem.
// It implements the config.DataFetcher interface, returning raw bytes
// for subsequent parsing.
//
// The file is read at construction time and cached, meaning subsequent calls
// to Fetch() return the same data without re-reading the filesystem.
//
// The path is either fixed (NewFetcher) or selected by an environment variable
// with a fallback (NewEnvFetcher). A set, non-empty variable always wins over
// the fallback; WithDotEnv adds .env files as a second place to look for it:
//
//	fetcher, err := file.NewEnvFetcher("APP_CONFIG", "config.yaml", file.WithDotEnv(".env"))()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
//   - Use errors.Is(err, fs.ErrNotExist) to check for missing files
package file
