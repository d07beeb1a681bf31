package pipe

import (
	"reflect"

	"github.com/binaryshapes/mixor/pkg/mixor"
)

// Operator labels the provenance of a step function.
type Operator string

const (
	OpMap      Operator = "map"
	OpFrom     Operator = "from"
	OpTap      Operator = "tap"
	OpBind     Operator = "bind"
	OpStep     Operator = "step"
	OpParallel Operator = "parallel"
	OpAll      Operator = "all"
	OpFlow     Operator = "flow"
)

// Kind is the structural classification of a produced value.
type Kind string

const (
	KindPrimitive Kind = "primitive"
	KindObject    Kind = "object"
	KindArray     Kind = "array"
	KindResult    Kind = "result"
	KindOption    Kind = "option"
)

// Value is the tagged envelope an operator returns: the produced value plus
// its provenance. The execution engine strips it between steps, so user code
// never sees one.
type Value struct {
	Operator Operator
	Kind     Kind
	Val      any
}

func wrap(op Operator, v any) Value {
	return Value{Operator: op, Kind: kindOf(v), Val: v}
}

// unwrap strips the envelope; any other value passes through unchanged.
func unwrap(v any) any {
	if pv, ok := v.(Value); ok {
		return pv.Val
	}
	return v
}

func kindOf(v any) Kind {
	switch v.(type) {
	case mixor.Outcome:
		return KindResult
	case mixor.Maybe:
		return KindOption
	}

	if v == nil {
		return KindPrimitive
	}

	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map, reflect.Struct:
		return KindObject
	case reflect.Ptr:
		if t.Elem().Kind() == reflect.Struct {
			return KindObject
		}
	}
	return KindPrimitive
}
