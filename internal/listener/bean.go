package listener

import (
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// beanType wraps arbitrary Go objects so expressions can pass them around.
var beanType = cty.Capsule("bean", reflect.TypeOf((*any)(nil)).Elem())

// BeanVal wraps a Go object as a cty value usable as an expression variable.
func BeanVal(v any) cty.Value {
	return cty.CapsuleVal(beanType, &v)
}

// BeanFromVal unwraps an object previously wrapped by BeanVal.
func BeanFromVal(val cty.Value) (any, bool) {
	if val.IsNull() || !val.IsKnown() || !val.Type().Equals(beanType) {
		return nil, false
	}
	ptr, ok := val.EncapsulatedValue().(*any)
	if !ok || ptr == nil {
		return nil, false
	}
	return *ptr, true
}
