package build

import (
	"cloudscribe/ir"
	"cloudscribe/resolve"
	"fmt"
)

// intrinsic describes a function every program can call without declaring it
type intrinsic struct {
	name       string
	paramTypes []ir.Type
	returnType ir.Type

	// external is the name the intrinsic is lowered to in the output
	external string
}

// preludeIntrinsics is the table of intrinsics placed in the universe
var preludeIntrinsics = []intrinsic{
	{name: "print", paramTypes: []ir.Type{ir.Any}, returnType: ir.Void, external: "console.log"},
}

// NewUniverse creates the root scope for a compilation run.  Every run must
// have its own universe: the intrinsic bindings it holds are named by the
// generator of that run.
func NewUniverse() *resolve.Scope {
	bindings := make([]ir.Binding, len(preludeIntrinsics))

	for i, intr := range preludeIntrinsics {
		fn := &ir.Function{
			Name:     intr.name,
			T:        &ir.FunctionType{ParamTypes: intr.paramTypes, ReturnType: intr.returnType},
			External: intr.external,
		}

		for j, pt := range intr.paramTypes {
			fn.Params = append(fn.Params, &ir.Parameter{Name: fmt.Sprintf("arg%d", j), T: pt})
		}

		bindings[i] = fn
	}

	return resolve.NewUniverse(bindings...)
}
