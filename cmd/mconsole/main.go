package main

import (
	"os"

	"github.com/msto63/mConsole/cmd/mconsole/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
