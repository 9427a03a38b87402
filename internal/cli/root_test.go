package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	cfgFile = ""
	licenseID = ""
	outputPath = ""
	noInput = false
	listOnly = false
	verbose = false
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := &cobra.Command{Use: "relicense"}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetContext(context.Background())
	return cmd, &out, &errOut
}

func TestRun_ListPrintsSortedIdentifiers(t *testing.T) {
	resetFlags()
	listOnly = true

	cmd, out, _ := newTestCmd(t)
	require.NoError(t, run(cmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Contains(t, lines, "MIT")
	assert.Contains(t, lines, "Apache-2.0")
	assert.True(t, sortedStrings(lines), "identifier list must be sorted: %v", lines)
}

func TestRun_LicenseFlagRequired(t *testing.T) {
	resetFlags()

	cmd, _, _ := newTestCmd(t)
	err := run(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--license is required")
}

func TestRun_InvalidIdentifierNamesValidSet(t *testing.T) {
	resetFlags()
	licenseID = "Not-A-License"

	cmd, _, _ := newTestCmd(t)
	err := run(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not-A-License")
	assert.Contains(t, err.Error(), "MIT")
}

func TestRun_NoInputWithPresetsWritesFile(t *testing.T) {
	resetFlags()
	dir := t.TempDir()

	presets := filepath.Join(dir, "presets.yaml")
	require.NoError(t, os.WriteFile(presets, []byte("variables:\n  YEAR: \"2025\"\n  AUTHOR: Jane Doe\n"), 0o644))

	licenseID = "MIT"
	noInput = true
	cfgFile = presets
	outputPath = filepath.Join(dir, "LICENSE")

	cmd, _, _ := newTestCmd(t)
	require.NoError(t, run(cmd, nil))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Copyright (c) 2025 Jane Doe")
	assert.NotContains(t, text, "%%")
	assert.False(t, strings.HasSuffix(text, "\n"), "output is written verbatim, without a trailing newline")
}

func TestRun_NoInputWithoutPresetsKeepsMarkers(t *testing.T) {
	resetFlags()
	dir := t.TempDir()

	licenseID = "MIT"
	noInput = true
	outputPath = filepath.Join(dir, "LICENSE")

	cmd, _, errOut := newTestCmd(t)
	require.NoError(t, run(cmd, nil))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "%%YEAR%%")
	assert.Contains(t, errOut.String(), "Skipping")
}

func TestRun_ConfigOutputFallback(t *testing.T) {
	resetFlags()
	dir := t.TempDir()

	dest := filepath.Join(dir, "COPYING")
	presets := filepath.Join(dir, "presets.yaml")
	require.NoError(t, os.WriteFile(presets, []byte("output: "+dest+"\n"), 0o644))

	licenseID = "Unlicense"
	noInput = true
	cfgFile = presets

	cmd, _, _ := newTestCmd(t)
	require.NoError(t, run(cmd, nil))

	_, err := os.Stat(dest)
	require.NoError(t, err)
}

func TestCompleteLicense_PrefixFilter(t *testing.T) {
	resetFlags()
	cmd, _, _ := newTestCmd(t)

	matches, directive := completeLicense(cmd, nil, "BSD")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Contains(t, matches, "BSD-2-Clause")
	assert.Contains(t, matches, "BSD-3-Clause")
	for _, m := range matches {
		assert.True(t, strings.HasPrefix(m, "BSD"), "unexpected completion %q", m)
	}
}

func sortedStrings(values []string) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}
