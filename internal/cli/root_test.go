package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mincut/trial"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd := createRootCommand(context.Background(), &Input{}, "test")
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// writeGraph stores body in a temp file and returns its path.
func writeGraph(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_TextOutput(t *testing.T) {
	path := writeGraph(t, "1 2 3\n2 1\n3 1\n")

	out, err := execute(t, "run", path, "--seed", "5")
	require.NoError(t, err)

	want := "Printing graph\n0: 1 2\n1: 0\n2: 0\n" +
		"9\n8\n7\n6\n5\n4\n3\n2\n1\n" +
		"Min: 1 stat: 100%\n"
	assert.Equal(t, want, out)
}

func TestRun_QuietWithExact(t *testing.T) {
	path := writeGraph(t, "1 2 4\n2 1 3\n3 2 4\n4 3 1\n")

	out, err := execute(t, "run", path, "-q", "--seed", "1", "--exact", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "Min: 2 stat: 100%\nExact: 2\n", out)
}

func TestRun_YAMLOutput(t *testing.T) {
	path := writeGraph(t, "1 2 3\n2 1 3\n3 1 2 4\n4 3\n")

	out, err := execute(t, "run", path, "-o", "yaml", "--seed", "3", "--trials", "40")
	require.NoError(t, err)

	var got summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, path, got.File)
	assert.Equal(t, int64(3), got.Seed)
	assert.Equal(t, 40, got.Trials)
	assert.Equal(t, 4, got.Vertices)
	assert.Equal(t, 4, got.Edges)
	assert.Equal(t, 1, got.Components)
	assert.Equal(t, 1, got.Min)
	assert.Equal(t, 40, sumCounts(got.Histogram))
	assert.Nil(t, got.Exact)
	assert.Equal(t, 4, len(got.Sides[0])+len(got.Sides[1]))
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "mincut version test\n", out)
}

func TestRun_RejectsBadCounts(t *testing.T) {
	path := writeGraph(t, "1 2\n2 1\n")

	out, err := execute(t, "run", path, "-q", "--trials", "-5")
	require.ErrorIs(t, err, trial.ErrOptionViolation)
	assert.Empty(t, out)

	_, err = execute(t, "run", path, "-q", "--workers", "0")
	require.ErrorIs(t, err, trial.ErrOptionViolation)
}

func sumCounts(h map[int]int) int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

func TestRun_ConfigFile(t *testing.T) {
	path := writeGraph(t, "1 2\n2 1\n")
	cfgPath := filepath.Join(t.TempDir(), "mincut.yaml")
	cfg := "file: " + path + "\ntrials: 4\nseed: 9\noutput: yaml\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	out, err := execute(t, "run", "--config", cfgPath)
	require.NoError(t, err)
	var got summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 4, got.Trials)
	assert.Equal(t, int64(9), got.Seed)

	// flags win over the file
	out, err = execute(t, "run", "--config", cfgPath, "--trials", "2", "--output", "text", "-q")
	require.NoError(t, err)
	assert.Equal(t, "Min: 1 stat: 100%\n", out)
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "absent.txt"), "--seed", "1")
	require.ErrorIs(t, err, os.ErrNotExist)

	path := writeGraph(t, "1 2\n2 1\n")
	_, err = execute(t, "run", path, "--output", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json")

	bad := writeGraph(t, "1 1\n")
	_, err = execute(t, "run", bad, "--seed", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lists itself")
}

func TestReadConfig(t *testing.T) {
	cfg, err := readConfig(strings.NewReader("trials: 7\nworkers: 3\nexact: true\n"))
	require.NoError(t, err)
	assert.Equal(t, &Config{Trials: 7, Workers: 3, Exact: true}, cfg)

	cfg, err = readConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	_, err = readConfig(strings.NewReader("trails: 7\n"))
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {
	out, err := execute(t, "generate", "cycle", "4")
	require.NoError(t, err)
	assert.Equal(t, "1 2 4\n2 1 3\n3 2 4\n4 3 1\n", out)

	out, err = execute(t, "generate", "random", "6", "1")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6)

	_, err = execute(t, "generate", "hexagon", "4")
	require.Error(t, err)
	_, err = execute(t, "generate", "grid", "4")
	require.Error(t, err)
	_, err = execute(t, "generate", "cycle", "four")
	require.Error(t, err)
	_, err = execute(t, "generate", "cycle", "2")
	require.Error(t, err)
}

func TestGenerateThenRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barbell.txt")
	_, err := execute(t, "generate", "barbell", "5", "2", "--out", path)
	require.NoError(t, err)

	out, err := execute(t, "run", path, "-q", "--seed", "4", "--exact", "--trials", "300")
	require.NoError(t, err)
	assert.Contains(t, out, "Min: 2 stat: ")
	assert.Contains(t, out, "Exact: 2\n")
}
