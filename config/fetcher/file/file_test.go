package file

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := "app_name: test-app\nsize: 4000\n"
	configPath := writeFile(t, t.TempDir(), "config.yaml", content)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, []byte(content), data)
	assert.Equal(t, configPath, fetcher.Path())
}

func TestFetcher_Fetch_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("/nonexistent/path/config.yaml")()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "stat file")
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestFetcher_Fetch_DirectoryPath(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(t.TempDir())()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestFetcher_Fetch_EmptyPath(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("")()

	require.ErrorIs(t, err, ErrEmptyPath)
	assert.Nil(t, fetcher)
}

func TestFetcher_Fetch_CleansPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yaml", "a: 1")

	fetcher, err := NewFetcher(filepath.Join(dir, "nested", "..", "config.yaml"))()
	require.NoError(t, err)

	assert.Equal(t, configPath, fetcher.Path())
}

func TestFetcher_Fetch_FileModifiedAfterConstruction_ReturnsCachedData(t *testing.T) {
	t.Parallel()

	configPath := writeFile(t, t.TempDir(), "config.yaml", `version: "1.0"`)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	err = os.WriteFile(configPath, []byte(`version: "2.0"`), 0o600)
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, []byte(`version: "1.0"`), data, "Fetch should return cached data, not current file content")
}

func TestFetcher_Fetch_ReturnsCopy_MutationSafe(t *testing.T) {
	t.Parallel()

	configPath := writeFile(t, t.TempDir(), "config.yaml", "original: value")

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	data1, err := fetcher.Fetch()
	require.NoError(t, err)

	for i := range data1 {
		data1[i] = 'X'
	}

	data2, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, []byte("original: value"), data2)
}

//nolint:paralleltest // t.Setenv cannot be used with t.Parallel.
func TestNewEnvFetcher_EnvVariableWins(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, "test-config.yml", "source: env")
	fallbackPath := writeFile(t, dir, "other.yml", "source: fallback")

	t.Setenv("HJARTA_TEST_FILE_LOC", envPath)

	fetcher, err := NewEnvFetcher("HJARTA_TEST_FILE_LOC", fallbackPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, "source: env", string(data))
	assert.Equal(t, envPath, fetcher.Path())
}

//nolint:paralleltest // t.Setenv cannot be used with t.Parallel.
func TestNewEnvFetcher_EmptyVariableUsesFallback(t *testing.T) {
	dir := t.TempDir()
	fallbackPath := writeFile(t, dir, "config.yml", "source: fallback")

	t.Setenv("HJARTA_TEST_FILE_LOC", "")

	fetcher, err := NewEnvFetcher("HJARTA_TEST_FILE_LOC", fallbackPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, "source: fallback", string(data))
}

func TestNewEnvFetcher_UnsetVariableUsesFallback(t *testing.T) {
	t.Parallel()

	fallbackPath := writeFile(t, t.TempDir(), "config.yml", "source: fallback")

	fetcher, err := NewEnvFetcher("HJARTA_TEST_NEVER_SET_VARIABLE", fallbackPath)()
	require.NoError(t, err)
	assert.Equal(t, fallbackPath, fetcher.Path())
}

//nolint:paralleltest // t.Setenv cannot be used with t.Parallel.
func TestNewEnvFetcher_VariablePointsNowhere(t *testing.T) {
	dir := t.TempDir()
	fallbackPath := writeFile(t, dir, "config.yml", "source: fallback")

	t.Setenv("HJARTA_TEST_FILE_LOC", filepath.Join(dir, "missing.yml"))

	fetcher, err := NewEnvFetcher("HJARTA_TEST_FILE_LOC", fallbackPath)()

	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, fetcher)
}

func TestNewEnvFetcher_UnreadableFallback(t *testing.T) {
	t.Parallel()

	fetcher, err := NewEnvFetcher("HJARTA_TEST_NEVER_SET_VARIABLE", "fake_location/test-config_file.yml")()

	require.Error(t, err)
	assert.Nil(t, fetcher)
}

func TestResolvePath_EmptyVariableName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fallback.yml", ResolvePath("", "fallback.yml"))
}

func TestResolvePath_DotEnv(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeFile(t, dir, "first.env", "OTHER=value\n")
	second := writeFile(t, dir, "second.env", "HJARTA_TEST_DOTENV_ONLY=from-dotenv.yml\n")
	third := writeFile(t, dir, "third.env", "HJARTA_TEST_DOTENV_ONLY=shadowed.yml\n")

	testCases := []struct {
		name     string
		files    []string
		expected string
	}{
		{
			name:     "first file defining the key wins",
			files:    []string{first, second, third},
			expected: "from-dotenv.yml",
		},
		{
			name:     "missing files are skipped",
			files:    []string{filepath.Join(dir, "absent.env"), second},
			expected: "from-dotenv.yml",
		},
		{
			name:     "key not defined falls back",
			files:    []string{first},
			expected: "fallback.yml",
		},
		{
			name:     "no files falls back",
			files:    nil,
			expected: "fallback.yml",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			resolved := ResolvePath("HJARTA_TEST_DOTENV_ONLY", "fallback.yml", WithDotEnv(testCase.files...))

			assert.Equal(t, testCase.expected, resolved)
		})
	}

	_, isSet := os.LookupEnv("HJARTA_TEST_DOTENV_ONLY")
	assert.False(t, isSet, "process environment must not be modified")
}

//nolint:paralleltest // t.Setenv cannot be used with t.Parallel.
func TestResolvePath_ProcessEnvironmentBeatsDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "HJARTA_TEST_FILE_LOC=dotenv.yml\n")

	t.Setenv("HJARTA_TEST_FILE_LOC", "process.yml")

	assert.Equal(t, "process.yml", ResolvePath("HJARTA_TEST_FILE_LOC", "fallback.yml", WithDotEnv(envFile)))
}
