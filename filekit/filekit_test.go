package filekit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileContents(t *testing.T) {

	filePath := filepath.Join(t.TempDir(), "notes.txt")
	err := os.WriteFile(filePath, []byte("Go is awesome!"), 0644)
	require.NoError(t, err)

	contents, err := ReadFileContents(filePath)
	require.NoError(t, err)
	assert.Equal(t, "Go is awesome!", contents)
}

func TestReadFileContentsMissingFile(t *testing.T) {

	filePath := filepath.Join(t.TempDir(), "does-not-exist.txt")

	_, err := ReadFileContents(filePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), filePath, "the wrapped error should name the file")
}

func TestReadFileWithFallback(t *testing.T) {

	filePath := filepath.Join(t.TempDir(), "notes.txt")
	err := os.WriteFile(filePath, []byte("Check out the Go web site!"), 0644)
	require.NoError(t, err)

	assert.Equal(t, "Check out the Go web site!", ReadFileWithFallback(filePath))
}

func TestReadFileWithFallbackMissingFile(t *testing.T) {

	assert.Equal(t, FallbackMessage, ReadFileWithFallback("no-such-file.txt"))
}
