package main

import (
	"fmt"

	"seqgen/cmd"

	"github.com/spf13/cobra/doc"
)

// makeDocs writes Markdown documentation for each command to ./docs
func makeDocs() {
	if err := doc.GenMarkdownTree(cmd.RootCmd, "./docs"); err != nil {
		fmt.Println(err.Error())
	}
}
