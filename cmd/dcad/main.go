package main

import (
	"github.com/draftlab/draftcad/cmd/dcad/cmd"
)

func main() {
	cmd.Execute()
}
