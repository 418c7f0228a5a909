package main

import (
	"os"

	"github.com/youdotcom-oss/web-search-agent-evals/cmd/analyzer/commands"
)

func main() {
	root := commands.NewRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
