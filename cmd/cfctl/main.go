package main

import (
	"os"

	cfctlcmd "github.com/telekom/cfctl/pkg/cfctl/cmd"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := cfctlcmd.NewRootCommand(cfctlcmd.DefaultConfig())
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
