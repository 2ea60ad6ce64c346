package zomlang

import (
	"maps"
	"slices"
)

// Env holds the variable bindings of one evaluation run.
type Env struct {
	vars map[string]Value
}

func NewEnv() *Env {
	return &Env{
		vars: make(map[string]Value),
	}
}

func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Env) Set(name string, value Value) {
	e.vars[name] = value
}

func (e *Env) Len() int {
	return len(e.vars)
}

func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.vars))
}
