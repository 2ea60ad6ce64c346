package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	executor := NewExecutor()
	var got []string
	executor.Define("run", Func(func(path string) {
		got = append(got, "run "+path)
	}))
	executor.Define("max", Func(func(n int, f float64, b bool) {
		if n != 3 || f != 1.5 || !b {
			t.Fatalf("got %v %v %v", n, f, b)
		}
		got = append(got, "max")
	}))
	if err := executor.Execute([]string{"run", "a.zom", "max", "3", "1.5", "yes", "run", "b.zom"}); err != nil {
		t.Fatal(err)
	}
	if strings.Join(got, ",") != "run a.zom,max,run b.zom" {
		t.Fatalf("got %v", got)
	}
}

func TestExecuteErrors(t *testing.T) {
	executor := NewExecutor()
	executor.Define("n", Func(func(n int) {}))
	executor.Define("fail", Func(func() error {
		return errors.New("failed")
	}))

	if err := executor.Execute([]string{"foo"}); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("got %v", err)
	}
	if err := executor.Execute([]string{"n", "x"}); err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}
	if err := executor.Execute([]string{"n"}); err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
	if err := executor.Execute([]string{"fail"}); err == nil || err.Error() != "failed" {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArg(t *testing.T) {
	executor := NewExecutor()
	var got *string
	executor.Define("opt", Func(func(s *string) {
		got = s
	}))
	executor.MustExecute([]string{"opt"})
	if got != nil {
		t.Fatalf("got %v", *got)
	}
	executor.MustExecute([]string{"opt", "foo"})
	if got == nil || *got != "foo" {
		t.Fatalf("got %v", got)
	}
}

func TestSub(t *testing.T) {
	executor := NewExecutor()
	var got string
	executor.Define("tensor", Sub(map[string]*Command{
		"shape": Func(func(s string) {
			got = s
		}),
	}))
	executor.MustExecute([]string{"tensor", "shape", "2x2"})
	if got != "2x2" {
		t.Fatalf("got %v", got)
	}
	if err := executor.Execute([]string{"shape", "2x2"}); err == nil {
		t.Fatal("sub command should not be visible at top level")
	}
}

func TestDuplicated(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Func(func() {}).Alias("bar"))
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		executor.Define("bar", Func(func() {}))
	}()
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func(n int) {}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO").Alias("f"))
	buf := new(bytes.Buffer)
	executor.PrintUsage(buf)
	expected := "foo, f\tFOO\n" +
		"  bar <int>\tBAR\n" +
		"  baz\tBAZ\n" +
		"    qux\tQUX\n"
	if buf.String() != expected {
		t.Fatalf("got %q", buf.String())
	}
}
