package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCommand_ParseOnly(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"),
		[]byte("INSURED\nJohn Doe\n123 Main St\nCOMMERCIAL GENERAL LIABILITY\n$1,000,000"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"),
		[]byte("Policy Number: WC-8876543\nWORKERS COMPENSATION"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"batch", filepath.Join(dir, "*.txt"), "--no-match"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var lines []batchResult
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var r batchResult
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		lines = append(lines, r)
	}
	require.Len(t, lines, 2)

	byFile := map[string]batchResult{}
	for _, l := range lines {
		byFile[filepath.Base(l.File)] = l
	}
	require.NotNil(t, byFile["a.txt"].Certificate)
	assert.Equal(t, "John Doe", byFile["a.txt"].Certificate.InsuredName)
	require.NotNil(t, byFile["b.txt"].Certificate)
	assert.Equal(t, "WC-8876543", byFile["b.txt"].Certificate.PolicyNumber)
	assert.Nil(t, byFile["a.txt"].Match)
}
