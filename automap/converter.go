package automap

import (
	"errors"
	"reflect"
)

var (
	ErrConverterNotFunction = errors.New("converter is not a function")
	ErrConverterSignature   = errors.New("converter must be func(Src) Dst or func(Src) (Dst, error)")
)

// Converter describes a parsed custom conversion function.
type Converter struct {
	Src, Dst reflect.Type
	HasErr   bool

	fn reflect.Value
}

// ParseConverter inspects the provided function and returns a Converter if
// it has a supported shape.
//
// Supported signatures:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, error)
func ParseConverter(fn any) (*Converter, error) {
	if fn == nil {
		return nil, ErrConverterNotFunction
	}

	v := reflect.ValueOf(fn)
	t := v.Type()

	if t.Kind() != reflect.Func {
		return nil, ErrConverterNotFunction
	}

	if t.NumIn() != 1 || t.NumOut() < 1 || t.NumOut() > 2 {
		return nil, ErrConverterSignature
	}

	conv := &Converter{
		Src: t.In(0),
		Dst: t.Out(0),
		fn:  v,
	}

	if t.NumOut() == 2 {
		if !isErrorType(t.Out(1)) {
			return nil, ErrConverterSignature
		}

		conv.HasErr = true
	}

	return conv, nil
}

// Call runs the converter on src and stores the result in dst.
func (c *Converter) Call(dst, src reflect.Value) error {
	out := c.fn.Call([]reflect.Value{src})

	if c.HasErr && !out[1].IsNil() {
		return out[1].Interface().(error)
	}

	dst.Set(out[0])

	return nil
}

func isErrorType(t reflect.Type) bool {
	if t == nil {
		return false
	}

	return t.Implements(reflect.TypeOf((*error)(nil)).Elem())
}
