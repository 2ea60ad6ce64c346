package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (e *Executor) PrintUsage(w io.Writer) {
	printCommands(w, e.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if slices.Contains(command.Aliases, name) {
			continue
		}

		names := name
		if len(command.Aliases) > 0 {
			names += ", " + strings.Join(command.Aliases, ", ")
		}
		if command.Func.IsValid() {
			for i := range command.Func.Type().NumIn() {
				names += " <" + command.Func.Type().In(i).String() + ">"
			}
		}
		if command.Description != "" {
			fmt.Fprintf(w, "%s%s\t%s\n", indent, names, command.Description)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, names)
		}

		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
