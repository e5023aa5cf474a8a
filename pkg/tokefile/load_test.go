package tokefile

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/toke/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}

// captureLog routes the global logger into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func TestLoadLogsUnknownTargetKeys(t *testing.T) {
	buf := captureLog(t)
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/project/tokefile", `
[targets.greet]
cmd = "echo hi"
colour = "red"
`)

	doc, err := Load(fs, "/project/tokefile")
	require.NoError(t, err)
	assert.Equal(t, []string{"greet"}, doc.Names())
	assert.Contains(t, buf.String(), "Ignoring unknown target keys")
	assert.Contains(t, buf.String(), `"colour"`)
	assert.Contains(t, buf.String(), `"component":"tokefile"`)
}

func TestDiscoverLogsFoundPath(t *testing.T) {
	buf := captureLog(t)
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/dir/tokefile", "")

	path, err := Discover(fs, "/dir", nil)
	require.NoError(t, err)
	assert.Equal(t, "/dir/tokefile", path)
	assert.Contains(t, buf.String(), "Found tokefile")
	assert.Contains(t, buf.String(), `"path":"/dir/tokefile"`)
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/project/tokefile", `
[vars]
name = "world"
port = 8080
debug = true
ratio = 1.5

[targets.greet]
cmd = "echo hello ${name}"
desc = "Say hello"

[targets.build]
cmd = "go build -o @@ @@"
deps = ["greet", "lint"]
vars = { name = "local" }
wildcards = [["bin/a", "bin/b"], "!ls cmd"]

[targets.lint]
`)

	doc, err := Load(fs, "/project/tokefile")
	require.NoError(t, err)

	assert.Equal(t, "/project/tokefile", doc.Path)
	assert.Equal(t, map[string]string{
		"name":  "world",
		"port":  "8080",
		"debug": "true",
		"ratio": "1.5",
	}, doc.Vars)
	assert.Equal(t, []string{"build", "greet", "lint"}, doc.Names())

	greet, ok := doc.Target("greet")
	require.True(t, ok)
	assert.Equal(t, "echo hello ${name}", greet.Cmd)
	assert.Equal(t, "Say hello", greet.Desc)
	assert.Empty(t, greet.Deps)
	assert.False(t, greet.HasWildcards())

	build, ok := doc.Target("build")
	require.True(t, ok)
	assert.Equal(t, []string{"greet", "lint"}, build.Deps)
	assert.Equal(t, map[string]string{"name": "local"}, build.Vars)
	require.Len(t, build.Wildcards, 2)
	assert.Equal(t, Wildcard{Values: []string{"bin/a", "bin/b"}, IsList: true}, build.Wildcards[0])
	assert.Equal(t, Wildcard{Command: "!ls cmd"}, build.Wildcards[1])
	assert.True(t, build.Wildcards[1].IsCommand())

	lint, ok := doc.Target("lint")
	require.True(t, ok)
	assert.Equal(t, "", lint.Cmd)
}

func TestLoadYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/p/toke.yaml", `
vars:
  name: world
targets:
  greet:
    cmd: echo hello ${name}
    deps: [prepare]
    wildcards:
      - [a, b]
  prepare:
    cmd: "true"
`)

	doc, err := Load(fs, "/p/toke.yaml")
	require.NoError(t, err)

	greet, ok := doc.Target("greet")
	require.True(t, ok)
	assert.Equal(t, "echo hello ${name}", greet.Cmd)
	assert.Equal(t, []string{"prepare"}, greet.Deps)
	assert.Equal(t, []Wildcard{{Values: []string{"a", "b"}, IsList: true}}, greet.Wildcards)
	assert.Equal(t, "world", doc.Vars["name"])
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode errors.ErrorCode
		wantMsg  string
	}{
		{
			name:     "parse_error",
			content:  "[targets\ncmd = ",
			wantCode: errors.ErrConfigParse,
			wantMsg:  "error parsing tokefile",
		},
		{
			name:     "missing_targets",
			content:  "[vars]\nname = \"x\"\n",
			wantCode: errors.ErrConfigInvalid,
			wantMsg:  "no targets found in tokefile",
		},
		{
			name:     "targets_not_a_table",
			content:  "targets = 3\n",
			wantCode: errors.ErrConfigInvalid,
			wantMsg:  "targets must be a table",
		},
		{
			name:     "cmd_not_a_string",
			content:  "[targets.a]\ncmd = 5\n",
			wantCode: errors.ErrConfigInvalid,
			wantMsg:  "invalid target 'a'",
		},
		{
			name:     "dep_not_a_string",
			content:  "[targets.a]\ndeps = [1]\n",
			wantCode: errors.ErrConfigInvalid,
			wantMsg:  "invalid target 'a'",
		},
		{
			name:     "wildcard_wrong_type",
			content:  "[targets.a]\ncmd = \"echo @@\"\nwildcards = [3]\n",
			wantCode: errors.ErrConfigInvalid,
			wantMsg:  "wildcard 0",
		},
		{
			name:     "wildcard_list_with_non_string",
			content:  "[targets.a]\ncmd = \"echo @@\"\nwildcards = [[\"x\", 2]]\n",
			wantCode: errors.ErrConfigInvalid,
			wantMsg:  "element 1 must be a string",
		},
		{
			name:     "non_scalar_var",
			content:  "[vars]\nlist = [1, 2]\n[targets.a]\n",
			wantCode: errors.ErrConfigInvalid,
			wantMsg:  "invalid global vars",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeFile(t, fs, "/tokefile", tt.content)

			_, err := Load(fs, "/tokefile")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	t.Run("unreadable_file", func(t *testing.T) {
		_, err := Load(afero.NewMemMapFs(), "/missing")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestDiscover(t *testing.T) {
	t.Run("first_existing_name_wins", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/dir/tokefile.toml", "")
		writeFile(t, fs, "/dir/Tokefile", "")

		path, err := Discover(fs, "/dir", nil)
		require.NoError(t, err)
		assert.Equal(t, "/dir/Tokefile", path)
	})

	t.Run("lowercase_preferred", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/dir/tokefile", "")
		writeFile(t, fs, "/dir/Tokefile.toml", "")

		path, err := Discover(fs, "/dir", DefaultNames)
		require.NoError(t, err)
		assert.Equal(t, "/dir/tokefile", path)
	})

	t.Run("directories_are_skipped", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/dir/tokefile", 0755))
		writeFile(t, fs, "/dir/Tokefile.toml", "")

		path, err := Discover(fs, "/dir", nil)
		require.NoError(t, err)
		assert.Equal(t, "/dir/Tokefile.toml", path)
	})

	t.Run("none_found", func(t *testing.T) {
		_, err := Discover(afero.NewMemMapFs(), "/empty", nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))
		assert.Contains(t, err.Error(), "tokefile, Tokefile, tokefile.toml, Tokefile.toml")
	})
}
