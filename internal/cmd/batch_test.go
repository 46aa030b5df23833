package cmd

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/telegram-analyzer/internal/behavior"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCommand(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeTemp(t, dir, "export/result.json", chatJSON)
	filePath := writeTemp(t, dir, "export/photos/cat.jpg", "jpg")
	folder := filepath.Join(dir, "export")

	stdout, stderr, err := execute(t, "all", "--json", jsonPath, "--folder", folder, "--file", filePath)
	require.NoError(t, err)

	markers := []string{
		"Extracted 1 URLs",
		"Found 1 unique URLs",
		"13:00-13:30\t1",
		"2023-01-01\t2",
		"Found 2 distinct extensions",
		"name\tcat.jpg",
		"user-interactions is not implemented yet",
		"messages\t3",
		"diffusion is not implemented yet",
		"shares is not implemented yet",
		"text-stats is not implemented yet",
	}
	last := -1
	for _, marker := range markers {
		idx := strings.Index(stdout, marker)
		require.NotEqual(t, -1, idx, "missing %q in output:\n%s", marker, stdout)
		assert.Greater(t, idx, last, "%q is out of order", marker)
		last = idx
	}

	assert.Contains(t, stderr, "Starting all run")
	assert.Contains(t, stderr, "Total behaviors: 11")
	assert.Contains(t, stderr, "Completed: 11")
}

func TestAllCommand_StopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeTemp(t, dir, "result.json", chatJSON)

	stdout, stderr, err := execute(t, "all", "--json", jsonPath, "--folder", filepath.Join(dir, "missing"), "--file", jsonPath)
	require.Error(t, err)

	var batchErr *behavior.BatchError
	require.True(t, errors.As(err, &batchErr))
	assert.Equal(t, 5, batchErr.Index)
	assert.Equal(t, "list-extensions", batchErr.Name)
	assert.True(t, errors.Is(err, behavior.ErrInputNotFound))

	assert.Contains(t, stdout, "2023-01-01\t2")
	assert.NotContains(t, stdout, "name\tresult.json")
	assert.Contains(t, stderr, "Skipped: 6")
	assert.Contains(t, stderr, "Stopped at behavior 5 (list-extensions)")
}

func TestAllCommand_RequiresEveryPath(t *testing.T) {
	_, _, err := execute(t, "all", "--json", "result.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestGroupCommand(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeTemp(t, dir, "result.json", chatJSON)

	stdout, stderr, err := execute(t, "group", "time-slot", "--json", jsonPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	assert.Len(t, lines, 49, "only count-time-slots should run")
	assert.Equal(t, "Analyzed 2 messages", lines[48])
	assert.Contains(t, stderr, "Starting group time-slot run")
	assert.Contains(t, stderr, "Total behaviors: 1")
}

func TestGroupCommand_CaseInsensitiveType(t *testing.T) {
	dir := t.TempDir()
	filePath := writeTemp(t, dir, "notes.txt", "hello\n")

	stdout, _, err := execute(t, "group", "FILE-METADATA", "--file", filePath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "name\tnotes.txt")
}

func TestGroupCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown type", args: []string{"group", "emoji", "--json", "x.json"}, wantErr: "invalid behavior type 'emoji'"},
		{name: "missing type", args: []string{"group"}, wantErr: "accepts 1 arg"},
		{name: "missing json path", args: []string{"group", "url-count", "--folder", "export"}, wantErr: "group url-count requires --json"},
		{name: "missing folder path", args: []string{"group", "extensions", "--json", "x.json"}, wantErr: "group extensions requires --folder"},
		{name: "missing file path", args: []string{"group", "file-metadata"}, wantErr: "group file-metadata requires --file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, stdout)
		})
	}
}

func TestGroupCommand_Failure(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "group", "url-count", "--json", filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, behavior.ErrInputNotFound))
	assert.Contains(t, err.Error(), "stopped at behavior 1 (count-urls)")
}
