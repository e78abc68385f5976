package listener

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/specialistvlad/casegrid/internal/expr"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// FieldDeclaration is a named value injected into a delegate object.
type FieldDeclaration struct {
	Name  string
	Value expr.Evaluable
}

// FixedValue is an Evaluable that always yields its literal text.
type FixedValue struct {
	Value string
}

// Text implements expr.Evaluable.
func (f FixedValue) Text() string { return f.Value }

// Evaluate implements expr.Evaluable.
func (f FixedValue) Evaluate(map[string]cty.Value) (cty.Value, error) {
	return cty.StringVal(f.Value), nil
}

var evaluableType = reflect.TypeOf((*expr.Evaluable)(nil)).Elem()

// injectFields sets every declared field on target, which must be a pointer
// to a struct. A struct field matches when its `field` tag equals the
// declaration name, or when its name equals it ignoring case. Fields of type
// expr.Evaluable receive the declaration value itself; every other field
// receives the evaluated value converted with gocty.
func injectFields(target any, fields []*FieldDeclaration, vars map[string]cty.Value) error {
	if len(fields) == 0 {
		return nil
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("cannot inject fields into %T: not a pointer to a struct", target)
	}
	sv := rv.Elem()

	for _, decl := range fields {
		fv, ok := findField(sv, decl.Name)
		if !ok {
			return fmt.Errorf("%T has no settable field %q", target, decl.Name)
		}
		if fv.Type() == evaluableType {
			fv.Set(reflect.ValueOf(decl.Value))
			continue
		}
		val, err := decl.Value.Evaluate(vars)
		if err != nil {
			return fmt.Errorf("field %q: %w", decl.Name, err)
		}
		if err := gocty.FromCtyValue(val, fv.Addr().Interface()); err != nil {
			return fmt.Errorf("field %q: %w", decl.Name, err)
		}
	}
	return nil
}

func findField(sv reflect.Value, name string) (reflect.Value, bool) {
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		if !sf.IsExported() {
			continue
		}
		if tag, ok := sf.Tag.Lookup("field"); ok {
			if tag == name {
				return sv.Field(i), true
			}
			continue
		}
		if strings.EqualFold(sf.Name, name) {
			return sv.Field(i), true
		}
	}
	return reflect.Value{}, false
}
