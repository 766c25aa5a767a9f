package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		_ = catalogValidateCmd.Flags().Set("file", "")
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCatalogValidate_Embedded(t *testing.T) {
	out, err := executeCommand(t, "catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog embedded is valid: 3 tournaments, 3 testimonials")
}

func TestCatalogValidate_File(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(valid, []byte(`
tournaments:
  - id: winter-open
    title: Winter Open
    date: January 10, 2026
    location: Pine Hills
    city: Lexington, KY
    price: 120
    status: open
    spots_remaining: 10
    total_spots: 40
`), 0o644))

	out, err := executeCommand(t, "catalog", "validate", "--file", valid)
	require.NoError(t, err)
	assert.Contains(t, out, "1 tournaments, 0 testimonials")

	invalid := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte(`
tournaments:
  - id: winter-open
    title: Winter Open
    date: January 10, 2026
    status: open
    spots_remaining: 50
    total_spots: 40
`), 0o644))

	_, err = executeCommand(t, "catalog", "validate", "--file", invalid)
	assert.Error(t, err)
}
