package debugs

import (
	"context"
	"fmt"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/zom/logs"
	"github.com/reusee/zom/zomlang"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Globals converts the bindings of env to starlark values.
// describe(name) returns the zom rendering of a binding.
func Globals(env *zomlang.Env) starlark.StringDict {
	globals := make(starlark.StringDict)
	for _, name := range env.Names() {
		value, _ := env.Get(name)
		globals[name] = toStarlarkValue(value)
	}
	globals["describe"] = starlarkutil.MakeFunc("describe", func(name string) string {
		value, ok := env.Get(name)
		if !ok {
			return fmt.Sprintf("%s: undefined", name)
		}
		return fmt.Sprintf("%s: %s %s", name, value.Kind(), value)
	})
	return globals
}

// Tap opens an interactive starlark session over the bindings of env.
type Tap func(ctx context.Context, what string, env *zomlang.Env)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, env *zomlang.Env) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", env.Names(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, Globals(env))
	}
}

// Inspect evaluates one starlark expression over the bindings of env.
type Inspect func(ctx context.Context, env *zomlang.Env, expr string) (starlark.Value, error)

func (Module) Inspect(
	logger logs.Logger,
) Inspect {
	return func(ctx context.Context, env *zomlang.Env, expr string) (starlark.Value, error) {
		logger.DebugContext(ctx, "inspect", "expr", expr)
		thread := &starlark.Thread{
			Name: "inspect",
		}
		value, err := starlark.EvalOptions(fileOptions, thread, "<inspect>", expr, Globals(env))
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		return value, nil
	}
}
