// Package config loads configuration documents through two extension points:
//   - DataFetcher: retrieves raw config data (file, env-selected file, etc.)
//   - Parser: turns raw data into node trees, one per YAML document
//
// Load combines them and returns the first document of the stream. Values are
// then read with the accessor package, which never fails:
//
//	root, err := config.Load(fetcher, yamlparser.NewParser())
//	if err != nil {
//	    // file missing, unreadable or not valid YAML
//	}
//	size := accessor.Uint32(root.Lookup("buffers:size"), 4096)
//
// Provider has the same behavior with an Fx-friendly signature.
package config
