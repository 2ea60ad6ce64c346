package logs

import (
	"log/slog"

	"github.com/reusee/zom/cmds"
	"github.com/reusee/zom/modes"
)

var levelFlag *slog.Level

func init() {
	for name, level := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(name, cmds.Func(func() {
			levelFlag = &level
		}).Desc("set log level to "+level.String()))
	}
}

type Level = *slog.LevelVar

// Level defaults to debug in development mode and info otherwise. Flags take precedence.
func (Module) Level(
	mode modes.Mode,
) Level {
	level := new(slog.LevelVar)
	switch {
	case levelFlag != nil:
		level.Set(*levelFlag)
	case mode == modes.ModeDevelopment:
		level.Set(slog.LevelDebug)
	default:
		level.Set(slog.LevelInfo)
	}
	return level
}
