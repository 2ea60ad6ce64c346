package debugs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/zom/logs"
	"github.com/reusee/zom/modes"
	"github.com/reusee/zom/zomlang"
	"go.starlark.net/starlark"
)

func testEnv(t *testing.T) *zomlang.Env {
	env := zomlang.NewEnv()
	program, err := zomlang.Parse(`
var x = 3;
var t = Tensor([1, 2, 3, 4], [2, 2]);
`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.Evaluate(program); err != nil {
		t.Fatal(err)
	}
	return env
}

func TestInspect(t *testing.T) {
	env := testEnv(t)
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		inspect Inspect,
	) {

		value, err := inspect(t.Context(), env, "x * 2")
		if err != nil {
			t.Fatal(err)
		}
		if value != starlark.Float(6) {
			t.Fatalf("got %v", value)
		}

		value, err = inspect(t.Context(), env, `t["shape"]`)
		if err != nil {
			t.Fatal(err)
		}
		if value.String() != "[2, 2]" {
			t.Fatalf("got %v", value)
		}

		value, err = inspect(t.Context(), env, `t["data"][3]`)
		if err != nil {
			t.Fatal(err)
		}
		if value != starlark.Float(4) {
			t.Fatalf("got %v", value)
		}

		value, err = inspect(t.Context(), env, `describe("x")`)
		if err != nil {
			t.Fatal(err)
		}
		if s, _ := starlark.AsString(value); s != "x: scalar 3.0" {
			t.Fatalf("got %v", value)
		}

		value, err = inspect(t.Context(), env, `describe("y")`)
		if err != nil {
			t.Fatal(err)
		}
		if s, _ := starlark.AsString(value); s != "y: undefined" {
			t.Fatalf("got %v", value)
		}

		_, err = inspect(t.Context(), env, "nope + 1")
		if err == nil {
			t.Fatal("should fail")
		}
		if !strings.Contains(err.Error(), "nope") {
			t.Fatalf("got %v", err)
		}

	})
}

func TestGlobals(t *testing.T) {
	globals := Globals(testEnv(t))
	for _, name := range []string{"x", "t", "describe"} {
		if _, ok := globals[name]; !ok {
			t.Fatalf("missing %s", name)
		}
	}
	if len(globals) != 3 {
		t.Fatalf("got %v", globals.Keys())
	}
}
