package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/zom/cmds"
	"github.com/reusee/zom/debugs"
	"github.com/reusee/zom/logs"
	"github.com/reusee/zom/modes"
	"github.com/reusee/zom/runs"
	"github.com/reusee/zom/zomlang"
)

var runPaths []string

func init() {
	cmds.Define("run", cmds.Func(func(path string) {
		runPaths = append(runPaths, path)
	}).Desc("run a program file, - for stdin; repeat to run several"))
}

var (
	evalSource  = cmds.Var[string]("eval")
	tokensPath  = cmds.Var[string]("tokens")
	astPath     = cmds.Var[string]("ast")
	checkPath   = cmds.Var[string]("check")
	inspectExpr = cmds.Var[string]("inspect")
	doRepl      = cmds.Switch("repl")
	printEnv    = cmds.Switch("env")
	doTap       = cmds.Switch("tap")
)

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		setup runs.Setup,
		readSource runs.ReadSource,
		run runs.Run,
		runAll runs.RunAll,
		newEnv runs.NewEnv,
		exec runs.Exec,
		tap debugs.Tap,
		inspect debugs.Inspect,
		logger logs.Logger,
	) {
		ctx := context.Background()

		read := func(path string) *zomlang.Source {
			src, err := readSource(path)
			if err != nil {
				exit(err)
			}
			return zomlang.NewSource(path, src)
		}

		switch {

		case *tokensPath != "":
			source := read(*tokensPath)
			tokens, err := zomlang.Tokenize(source.Content)
			if err != nil {
				exit(&runs.Error{Source: source, Err: err})
			}
			for _, token := range tokens {
				fmt.Printf("%s\t%s\n", token.Pos, token)
			}
			return

		case *astPath != "":
			source := read(*astPath)
			program, err := zomlang.Parse(source.Content)
			if err != nil {
				exit(&runs.Error{Source: source, Err: err})
			}
			out, err := zomlang.Dump(program)
			if err != nil {
				exit(err)
			}
			os.Stdout.Write(out)
			return

		case *checkPath != "":
			source := read(*checkPath)
			program, err := zomlang.Parse(source.Content)
			if err == nil {
				err = zomlang.Check(program)
			}
			if err != nil {
				exit(&runs.Error{Source: source, Err: err})
			}
			logger.Info("ok", "path", *checkPath, "statements", len(program))
			return

		case *doRepl:
			if _, err := setup(ctx); err != nil {
				exit(err)
			}
			env, err := newEnv(ctx)
			if err != nil {
				exit(err)
			}
			runREPL(ctx, env, exec)
			return

		}

		if *evalSource == "" && len(runPaths) == 0 {
			cmds.GlobalExecutor.PrintUsage(os.Stderr)
			os.Exit(2)
		}

		if _, err := setup(ctx); err != nil {
			exit(err)
		}

		var results []*runs.Result
		if *evalSource != "" {
			result, err := run(ctx, "<eval>", *evalSource)
			if err != nil {
				exit(err)
			}
			results = append(results, result)
		}
		if len(runPaths) > 0 {
			rs, err := runAll(ctx, runPaths)
			if err != nil {
				exit(err)
			}
			results = append(results, rs...)
		}

		for _, result := range results {
			if len(results) > 1 {
				fmt.Printf("# %s\n", result.Source.Name)
			}
			if result.Value != nil {
				fmt.Println(result.Value)
			}
			if *printEnv {
				for _, name := range result.Env.Names() {
					value, _ := result.Env.Get(name)
					fmt.Printf("%s = %s\n", name, value)
				}
			}
			if *inspectExpr != "" {
				value, err := inspect(ctx, result.Env, *inspectExpr)
				if err != nil {
					exit(err)
				}
				fmt.Println(value)
			}
			if *doTap {
				tap(ctx, result.Source.Name, result.Env)
			}
		}
	})

}

func exit(err error) {
	report(err)
	os.Exit(1)
}

func report(err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, err := range joined.Unwrap() {
			report(err)
		}
		return
	}
	var runErr *runs.Error
	if errors.As(err, &runErr) {
		fmt.Fprint(os.Stderr, runErr.Annotated())
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
