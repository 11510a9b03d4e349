package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/alienwaresec/gobasics/filekit"
)

func main() {

	filePath := pflag.String("file", "notes.txt", "path of the text file to read")
	pflag.Parse()

	// ReadFileWithFallback never fails; if the file can't be read we simply
	// print the fallback message instead.
	fmt.Println(filekit.ReadFileWithFallback(*filePath))

}
