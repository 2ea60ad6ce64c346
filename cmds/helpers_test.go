package cmds

import (
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("TestVar.int")
	b := Var[string]("TestVar.string")
	GlobalExecutor.MustExecute([]string{
		"TestVar.int", "42",
		"TestVar.string", "bar",
	})
	if *a != 42 {
		t.Fatalf("got %v", *a)
	}
	if *b != "bar" {
		t.Fatalf("got %v", *b)
	}
	GlobalExecutor.MustExecute([]string{
		"TestVar.int.",
	})
	if *a != 0 {
		t.Fatalf("got %v", *a)
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*foo {
		t.Fatal("should be on")
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo {
		t.Fatal("should be off")
	}
}

func TestTypedVar(t *testing.T) {
	type Foo string
	v := Var[Foo]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "bar",
	})
	if *v != "bar" {
		t.Fatalf("got %v", *v)
	}
}
