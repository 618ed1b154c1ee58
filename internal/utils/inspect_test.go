package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectBytes(t *testing.T) {
	content := "-- Users Migration\n" +
		"INSERT INTO usuarios (id)\nVALUES ('a')\nON CONFLICT (id) DO NOTHING;\n" +
		"INSERT INTO usuarios (id)\nVALUES ('b')\nON CONFLICT (id) DO NOTHING;\n"

	report := InspectBytes([]byte(content), 10)

	assert.Equal(t, len(content), report.Bytes)
	assert.Equal(t, len(content), report.Chars)
	assert.Equal(t, 8, report.Lines)
	assert.Equal(t, 2, report.Statements)
	assert.Equal(t, "-- Users M", report.Head)
	assert.Equal(t, " NOTHING;\n", report.Tail)
}

func TestInspectBytesMultibyte(t *testing.T) {
	report := InspectBytes([]byte("ação"), 3)

	assert.Equal(t, 6, report.Bytes)
	assert.Equal(t, 4, report.Chars)
	assert.Equal(t, 1, report.Lines)
	assert.Equal(t, "açã", report.Head)
	assert.Equal(t, "ção", report.Tail)
}

func TestInspectBytesShortContent(t *testing.T) {
	report := InspectBytes([]byte("ab"), 500)

	assert.Equal(t, "ab", report.Head)
	assert.Equal(t, "ab", report.Tail)
	assert.Equal(t, 0, report.Statements)
}

func TestInspectBytesNegativePreview(t *testing.T) {
	var report *Report
	assert.NotPanics(t, func() {
		report = InspectBytes([]byte("-- Users Migration\n"), -1)
	})

	require.NotNil(t, report)
	assert.Empty(t, report.Head)
	assert.Empty(t, report.Tail)
	assert.Equal(t, 2, report.Lines)
}

func TestInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migration_users.sql")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 20)), 0o644))

	report, err := Inspect(path, 5)
	require.NoError(t, err)
	assert.Equal(t, path, report.Path)
	assert.Equal(t, 20, report.Bytes)
	assert.Equal(t, "xxxxx", report.Head)

	_, err = Inspect(filepath.Join(t.TempDir(), "missing.sql"), 5)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
