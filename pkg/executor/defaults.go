package executor

import (
	"math"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"
)

// defaultListLength is how many items a synthesized list carries when no
// resolver supplies one.
const defaultListLength = 2

// defaultLeafValue is the fallback mock policy for fields without a bound
// generator: an arbitrary but well-typed placeholder per leaf type.
func defaultLeafValue(def *ast.Definition) any {
	if def.Kind == ast.Enum {
		if len(def.EnumValues) == 0 {
			return nil
		}
		return def.EnumValues[gofakeit.Number(0, len(def.EnumValues)-1)].Name
	}

	switch def.Name {
	case "ID":
		return uuid.NewString()
	case "Int":
		return gofakeit.Number(0, 1000)
	case "Float":
		return math.Round(gofakeit.Float64Range(0, 1000)*100) / 100
	case "Boolean":
		return gofakeit.Bool()
	default:
		// String and custom scalars
		return gofakeit.Word()
	}
}
