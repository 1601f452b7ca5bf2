package main

import (
	"seqgen/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
