package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs employeectl with args against the given SQLite file and returns stdout
func execute(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--driver", "sqlite", "--database", dbPath, "--log-level", "error"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestImportListExport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "employee.db")
	csvPath := writeFile(t, dir, "employees.csv",
		"name,email,salary\nAlice,alice@example.com,50000\nBob,bob@example.com,60000\nEve,eve@example.com,lots\n")

	out, err := execute(t, dbPath, "import", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully added 2 employees from the CSV!")
	assert.Contains(t, out, "Skipped line 4: salary: Not a valid decimal value.")

	out, err = execute(t, dbPath, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "Alice")
	assert.Contains(t, lines[2], "Bob")

	out, err = execute(t, dbPath, "list", "--salary", "55000")
	require.NoError(t, err)
	assert.NotContains(t, out, "Alice")
	assert.Contains(t, out, "Bob")

	out, err = execute(t, dbPath, "export")
	require.NoError(t, err)
	assert.Equal(t, "id,name,email,salary\n1,Alice,alice@example.com,50000\n2,Bob,bob@example.com,60000\n", out)

	exportPath := filepath.Join(dir, "out.csv")
	_, err = execute(t, dbPath, "export", "-o", exportPath)
	require.NoError(t, err)
	written, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Equal(t, out, string(written))
}

func TestImportRejectsNonCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "employees.txt", "name,email,salary\nAlice,alice@example.com,50000\n")

	_, err := execute(t, filepath.Join(dir, "employee.db"), "import", path)

	assert.Error(t, err)
}

func TestImportMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, filepath.Join(dir, "employee.db"), "import", filepath.Join(dir, "missing.csv"))

	assert.ErrorContains(t, err, "failed to open")
}

func TestListRejectsInvalidSalary(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, filepath.Join(dir, "employee.db"), "list", "--salary", "abc")

	assert.ErrorContains(t, err, "salary")
}

func TestImportRequiresOneArgument(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "employee.db"), "import")

	assert.Error(t, err)
}
