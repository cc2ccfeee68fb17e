// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pca/scatter"
)

func TestParseDelimiter(t *testing.T) {
	for in, want := range map[string]rune{"tab": '\t', `\t`: '\t', "comma": ',', ";": ';'} {
		got, err := parseDelimiter(in)
		require.NoError(t, err)
		require.Equal(t, want, got, in)
	}
	_, err := parseDelimiter("::")
	require.Error(t, err)
}

func TestRun_WritesScatter(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(input, []byte("1,0,0\n0,1,0\n0,0,1\n1,1,1\n"), 0o600))
	out := filepath.Join(dir, "plot.json")

	logger, hook := logtest.NewNullLogger()
	logger.SetOutput(io.Discard)

	stdout := os.Stdout
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	os.Stdout = devnull
	defer func() {
		os.Stdout = stdout
		devnull.Close()
	}()

	err = run(options{
		Input:      input,
		Delimiter:  "comma",
		Dimensions: 2,
		Solver:     "svd",
		Scatter:    out,
	}, logger)
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var plot scatter.Plot
	require.NoError(t, json.Unmarshal(raw, &plot))
	require.Len(t, plot.Original, 4)
	require.Len(t, plot.Projected, 4)

	// loaded dataset + two components + scatter path
	require.Len(t, hook.AllEntries(), 4)
}

func TestRun_BadInput(t *testing.T) {
	logger, _ := logtest.NewNullLogger()

	err := run(options{Input: filepath.Join(t.TempDir(), "none"), Delimiter: "tab", Solver: "svd"}, logger)
	require.Error(t, err)

	err = run(options{Input: "x", Delimiter: "tab", Solver: "lanczos"}, logger)
	require.Error(t, err)
}
