package conf_test

import (
	"os"
	"testing"

	yamlv3parser "github.com/0xalexb/hjarta-conf/config/parser/yamlv3"

	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
}

func readTestFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return data
}

func newYAMLv3Parser() *yamlv3parser.Parser {
	return yamlv3parser.NewParser()
}
