package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/zom/debugs"
	"github.com/reusee/zom/runs"
)

type Module struct {
	dscope.Module
	Runs   runs.Module
	Debugs debugs.Module
}
