package runs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/zom/configs"
	"github.com/reusee/zom/logs"
	"github.com/reusee/zom/manifests"
)

type Module struct {
	dscope.Module
	Configs   configs.Module
	Logs      logs.Module
	Manifests manifests.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
