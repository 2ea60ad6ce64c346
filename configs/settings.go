package configs

import (
	"cmp"
	"runtime"
	"slices"

	"github.com/reusee/zom/cmds"
)

const defaultMaxSourceBytes = 1 << 20

type MaxSourceBytes int

var maxSourceBytesFlag = cmds.Var[int]("-max-source-bytes")

func (Module) MaxSourceBytes(
	loader Loader,
) MaxSourceBytes {
	return MaxSourceBytes(cmp.Or(
		*maxSourceBytesFlag,
		First[int](loader, "max_source_bytes"),
		defaultMaxSourceBytes,
	))
}

type ManifestPath string

var manifestFlag = cmds.Var[string]("-manifest")

func (Module) ManifestPath(
	loader Loader,
) ManifestPath {
	return ManifestPath(cmp.Or(
		*manifestFlag,
		First[string](loader, "manifest"),
		"project.zom",
	))
}

// Prelude lists prelude files from every config file, system-wide ones first.
type Prelude []string

func (Module) Prelude(
	loader Loader,
) Prelude {
	var lists [][]string
	for list := range All[[]string](loader, "prelude") {
		lists = append(lists, list)
	}
	slices.Reverse(lists)
	return Prelude(slices.Concat(lists...))
}

// Parallel bounds how many programs run at the same time.
type Parallel int

var parallelFlag = cmds.Var[int]("-parallel")

func (Module) Parallel(
	loader Loader,
) Parallel {
	return Parallel(cmp.Or(
		*parallelFlag,
		First[int](loader, "parallel"),
		runtime.NumCPU(),
	))
}
