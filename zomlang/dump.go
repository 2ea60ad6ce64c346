package zomlang

import (
	"gopkg.in/yaml.v3"
)

// Dump renders program as a YAML document, one list item per statement.
func Dump(program Program) ([]byte, error) {
	items := make([]any, 0, len(program))
	for _, stmt := range program {
		items = append(items, dumpNode(stmt))
	}
	return yaml.Marshal(items)
}

func dumpNode(node Node) map[string]any {
	switch node := node.(type) {
	case *NumberLiteral:
		return map[string]any{
			"number": node.Value,
		}
	case *Identifier:
		return map[string]any{
			"identifier": node.Name,
		}
	case *BinaryOp:
		return map[string]any{
			"binary": map[string]any{
				"op":    node.Op.String(),
				"left":  dumpNode(node.Left),
				"right": dumpNode(node.Right),
			},
		}
	case *Assignment:
		return map[string]any{
			"assign": map[string]any{
				"name":  node.Name,
				"value": dumpNode(node.Value),
			},
		}
	case *TensorLiteral:
		return map[string]any{
			"tensor": map[string]any{
				"data":  node.Data,
				"shape": node.Shape,
			},
		}
	case *Zeros:
		return map[string]any{
			"zeros": map[string]any{
				"shape": node.Shape,
			},
		}
	case *TensorOp:
		return map[string]any{
			"tensor_op": map[string]any{
				"op":    node.Op.String(),
				"left":  dumpNode(node.Left),
				"right": dumpNode(node.Right),
			},
		}
	case *TensorFunc:
		return map[string]any{
			"tensor_func": map[string]any{
				"func": node.Func.String(),
				"arg":  dumpNode(node.Arg),
			},
		}
	}
	return nil
}
