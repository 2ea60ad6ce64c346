package runs

import (
	"context"
	"fmt"

	"github.com/reusee/zom/configs"
	"github.com/reusee/zom/logs"
	"github.com/reusee/zom/zomlang"
)

type Result struct {
	Source  *zomlang.Source
	Program zomlang.Program
	// Value is the value of the last statement, nil for an empty program
	Value zomlang.Value
	Env   *zomlang.Env
}

// Exec parses and evaluates src against env. Bindings made before a failure are kept in env.
type Exec func(ctx context.Context, env *zomlang.Env, name string, src string) (*Result, error)

func (Module) Exec(
	logger logs.Logger,
	maxBytes configs.MaxSourceBytes,
) Exec {
	return func(ctx context.Context, env *zomlang.Env, name string, src string) (*Result, error) {
		source := zomlang.NewSource(name, src)
		fail := func(err error) (*Result, error) {
			logger.DebugContext(ctx, "exec failed", "name", name, "error", err)
			return nil, &Error{
				Source: source,
				Err:    err,
			}
		}

		if len(src) > int(maxBytes) {
			return fail(fmt.Errorf("%w: %d bytes, limit %d", ErrSourceTooLarge, len(src), maxBytes))
		}

		program, err := zomlang.Parse(src)
		if err != nil {
			return fail(err)
		}

		value, err := env.Evaluate(program)
		if err != nil {
			return fail(err)
		}

		logger.DebugContext(ctx, "exec",
			"name", name,
			"statements", len(program),
			"bindings", env.Len(),
		)
		return &Result{
			Source:  source,
			Program: program,
			Value:   value,
			Env:     env,
		}, nil
	}
}
