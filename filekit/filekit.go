// Package filekit provides small helpers for reading text files.
package filekit

import (
	"os"

	"github.com/pkg/errors"
)

// FallbackMessage is the fixed string returned by ReadFileWithFallback when
// the file cannot be read for any reason.
const FallbackMessage = "File not present!"

// ReadFileContents reads the entire file at filePath and returns its contents
// as a string.
func ReadFileContents(filePath string) (string, error) {

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read the file, %s", filePath)
	}

	return string(data), nil
}

// ReadFileWithFallback returns the contents of the file at filePath, or the
// fallback message if the file cannot be read. There is no error for the
// caller to check; every input produces a printable answer.
func ReadFileWithFallback(filePath string) string {

	contents, err := ReadFileContents(filePath)
	if err != nil {
		return FallbackMessage
	}

	return contents
}
