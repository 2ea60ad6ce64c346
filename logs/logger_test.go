package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/zom/modes"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
		level Level,
	) {
		if level.Level() != slog.LevelDebug {
			t.Fatalf("got %v", level.Level())
		}
		logger.Debug("test", "hello", "world!")
		if !strings.Contains(buf.String(), "hello=world!") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestProductionLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForProduction()).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Debug("hidden")
		logger.Info("shown")
		if strings.Contains(buf.String(), "hidden") {
			t.Fatalf("got %q", buf.String())
		}
		if !strings.Contains(buf.String(), "shown") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestNewSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
		logger Logger,
	) {
		ctx := context.Background()
		ctx1, span1 := newSpan(ctx, "")
		ctx11, span11 := newSpan(ctx1, "")
		ctx12, span12 := newSpan(ctx11, span1)
		logger.With("foo", "bar").InfoContext(ctx12, "with attrs")

		var lines []string
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.Contains(line, "zom.span=") {
				lines = append(lines, line)
			}
		}
		if len(lines) != 4 {
			t.Fatalf("got %q", buf.String())
		}
		if !strings.Contains(lines[0], "zom.span="+string(span1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "zom.span="+string(span11)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "zom.span="+string(span12)) {
			t.Fatalf("got %v", lines[2])
		}
		if !strings.Contains(lines[2], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[2])
		}
		if !strings.Contains(lines[2], "creator="+string(span11)) {
			t.Fatalf("got %v", lines[2])
		}
		if !strings.Contains(lines[3], "zom.span="+string(span12)) ||
			!strings.Contains(lines[3], "foo=bar") {
			t.Fatalf("got %v", lines[3])
		}

		err := WrapSpan(ctx12, errors.New("boom"))
		if !strings.Contains(err.Error(), "span: "+string(span12)) {
			t.Fatalf("got %v", err)
		}
		if WrapSpan(ctx, errors.New("boom")).Error() != "boom" {
			t.Fatal("should not wrap without span")
		}
	})
}
