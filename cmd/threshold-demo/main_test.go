package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	out := bytes.NewBuffer(nil)

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(bytes.NewBuffer(nil))

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd(t *testing.T) {

	out, err := execute(t, "", "--loglevel", "error", "4", "5", "6", "5")
	require.NoError(t, err)
	require.Equal(t, "values: 4, threshold: 5, events: 2, observer failures: 0\n", out)
}

func TestRootCmdStdin(t *testing.T) {

	out, err := execute(t, "1 2 3\n3 3\n", "--loglevel=error", "--threshold", "3")
	require.NoError(t, err)
	require.Equal(t, "values: 5, threshold: 3, events: 3, observer failures: 0\n", out)
}

func TestRootCmdEnvironmentAndFile(t *testing.T) {

	t.Setenv("THRESHOLD_THRESHOLD", "7")

	{
		out, err := execute(t, "", "--loglevel=error", "7", "5")
		require.NoError(t, err)
		require.Equal(t, "values: 2, threshold: 7, events: 1, observer failures: 0\n", out)
	}

	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 2\n"), 0o600))

	{
		// test: the file overrides the environment
		out, err := execute(t, "", "--loglevel=error", "--config", path, "2", "7")
		require.NoError(t, err)
		require.Equal(t, "values: 2, threshold: 2, events: 1, observer failures: 0\n", out)
	}

	{
		// test: flags override everything
		out, err := execute(t, "", "--loglevel=error", "--config", path, "--threshold=9", "2", "9", "9")
		require.NoError(t, err)
		require.Equal(t, "values: 3, threshold: 9, events: 2, observer failures: 0\n", out)
	}
}

func TestRootCmdErrors(t *testing.T) {

	_, err := execute(t, "", "--loglevel=error", "--failure-policy=retry", "5")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown failure policy "retry"`)

	_, err = execute(t, "", "--loglevel=error", "five")
	require.Error(t, err)
	require.Contains(t, err.Error(), `invalid value "five"`)

	_, err = execute(t, "", "--loglevel=verbose", "5")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unrecognized level")

	_, err = execute(t, "", "--loglevel=error", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "5")
	require.Error(t, err)
}

func TestLoggerArgs(t *testing.T) {

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--threshold=3", "--loglevel", "warn", "--logdevelop"}))
	require.Equal(t, []string{"--logdevelop=true", "--loglevel=warn"}, loggerArgs(cmd))
}
