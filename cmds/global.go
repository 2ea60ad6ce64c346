package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = func() *Executor {
	executor := NewExecutor()
	executor.Define("help", Func(func() {
		executor.PrintUsage(os.Stdout)
		os.Exit(0)
	}).Desc("print this usage").Alias("-h", "-help", "--help"))
	return executor
}()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args on the global executor and exits the process on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
