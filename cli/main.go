package main

import (
	"os"

	"docvault/cli/commands"
	"docvault/cli/globals"
)

func main() {
	globals.Init()
	commands.Entrypoint(os.Args)
}
