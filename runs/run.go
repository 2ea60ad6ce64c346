package runs

import (
	"context"

	"github.com/reusee/zom/configs"
	"github.com/reusee/zom/logs"
	"github.com/reusee/zom/zomlang"
)

// NewEnv returns an environment with every prelude file evaluated into it.
type NewEnv func(ctx context.Context) (*zomlang.Env, error)

func (Module) NewEnv(
	prelude configs.Prelude,
	readSource ReadSource,
	exec Exec,
	logger logs.Logger,
) NewEnv {
	return func(ctx context.Context) (*zomlang.Env, error) {
		env := zomlang.NewEnv()
		for _, path := range prelude {
			src, err := readSource(path)
			if err != nil {
				return nil, err
			}
			if _, err := exec(ctx, env, path, src); err != nil {
				return nil, err
			}
			logger.DebugContext(ctx, "prelude loaded", "path", path)
		}
		return env, nil
	}
}

// Run evaluates src in a fresh environment, under its own span.
type Run func(ctx context.Context, name string, src string) (*Result, error)

func (Module) Run(
	newSpan logs.NewSpan,
	newEnv NewEnv,
	exec Exec,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, name string, src string) (*Result, error) {
		ctx, _ = newSpan(ctx, "")
		logger.DebugContext(ctx, "run", "name", name, "bytes", len(src))

		env, err := newEnv(ctx)
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		result, err := exec(ctx, env, name, src)
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		return result, nil
	}
}
