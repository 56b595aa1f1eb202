package walk

import (
	"cloudscribe/ir"
	"cloudscribe/syntax"
)

// walkTypeLabel converts a type label into a data type
func (w *Walker) walkTypeLabel(node syntax.ASTNode) ir.Type {
	switch v := node.(type) {
	case *syntax.ASTLeaf:
		if pt, ok := ir.PrimitiveByName(v.Value); ok {
			return pt
		}

		raise(v, typeKind, "Unknown type %s", v.Value)
	case *syntax.ASTBranch:
		switch v.Name {
		case "optional_type":
			return &ir.OptionalType{BaseType: w.walkTypeLabel(v.Content[0])}
		case "array_type":
			return &ir.ArrayType{ElemType: w.walkTypeLabel(v.Content[1])}
		case "func_type":
			// `(` {type `,`} `)` `->` type
			ft := &ir.FunctionType{ReturnType: w.walkTypeLabel(v.Last())}
			for _, item := range v.Elements(1, -3) {
				ft.ParamTypes = append(ft.ParamTypes, w.walkTypeLabel(item))
			}

			return ft
		}
	}

	return nil
}
