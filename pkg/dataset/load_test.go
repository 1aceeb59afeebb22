package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MergesAllFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "jan.csv", "Date,Name,MRSI\n2024-01-01,A,35.2\n2024-01-02,A,36.0\n")
	writeFile(t, dir, "feb.csv", "Date,Name,MRSI\n2024-02-01,B,30.1\n")

	frames, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, frames, 2)

	total := 0
	for _, f := range frames {
		total += len(f.Records)
	}
	require.Equal(t, 3, total)
}

func TestLoad_StripsUTF8Signature(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bom.csv", "\ufeffDate,Name\n2024-01-01,A\n")

	frames, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "Date", frames[0].Columns[0])
}

func TestLoad_SkipsEmptyAndBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.csv", "Date,Name\n2024-01-01,A\n")
	writeFile(t, dir, "headeronly.csv", "Date,Name\n")
	writeFile(t, dir, "empty.csv", "")
	writeFile(t, dir, "bad.csv", "Date,Name\n\"unterminated,A\n")

	frames, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	require.Equal(t, filepath.Join(dir, "good.csv"), frames[0].Path)
}

func TestLoad_NoFiles(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
}

func TestLoad_AllFilesFail(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.csv", "")

	_, err := Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no valid data")
}

func TestLoad_PadsShortRecords(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ragged.csv", "Date,Name,MRSI\n2024-01-01,A\n")

	frames, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, frames[0].Records[0], 3)
	require.Equal(t, "", frames[0].Records[0][2])
}
