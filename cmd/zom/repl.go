package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/zom/runs"
	"github.com/reusee/zom/zomlang"
)

// runREPL evaluates one line at a time. Bindings persist until the session ends.
func runREPL(ctx context.Context, env *zomlang.Env, exec runs.Exec) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".zom_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "zom> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()
	for n := 1; ; n++ {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if line == "" {
			continue
		}
		res, err := exec(ctx, env, fmt.Sprintf("<repl:%d>", n), line)
		if err != nil {
			var runErr *runs.Error
			if errors.As(err, &runErr) {
				fmt.Fprint(os.Stderr, runErr.Annotated())
			} else {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		} else if res.Value != nil {
			fmt.Println(res.Value)
		}
	}
}
