package enumset

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// probeLimit bounds the member scan. Stringer-backed enums in this codebase
// are small iota runs; 256 leaves generous headroom.
const probeLimit = 256

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

var ErrNotAnEnum = errors.New("type is not a stringer-backed integer enum")

// Set holds the discovered members of one enumeration type.
type Set struct {
	Type reflect.Type

	names   []string // in ascending value order
	byName  map[string]int64
	byValue map[int64]string
}

// IsEnum reports whether t is a named integer type with a String method,
// which is the only enum shape the prober understands.
func IsEnum(t reflect.Type) bool {
	if t == nil || t.Name() == "" || t.PkgPath() == "" {
		return false
	}

	switch t.Kind() {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return t.Implements(stringerType)
	}
}

// Probe discovers the member set of t by scanning underlying values and
// keeping those whose String() does not collapse to the "Type(n)" fallback
// that stringer emits for values without a declared constant.
func Probe(t reflect.Type) (*Set, error) {
	if !IsEnum(t) {
		return nil, fmt.Errorf("%w: %v", ErrNotAnEnum, t)
	}

	s := &Set{
		Type:    t,
		byName:  map[string]int64{},
		byValue: map[int64]string{},
	}

	for v := int64(0); v < probeLimit; v++ {
		rv := reflect.New(t).Elem()
		if rv.OverflowInt(v) {
			break
		}
		rv.SetInt(v)

		name := rv.Interface().(fmt.Stringer).String()
		if name == t.Name()+"("+strconv.FormatInt(v, 10)+")" {
			continue // no constant declared for this value
		}

		s.names = append(s.names, name)
		s.byName[name] = v
		s.byValue[v] = name
	}

	return s, nil
}

// Names returns member names in ascending value order.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Value returns the underlying value of the named member.
func (s *Set) Value(name string) (int64, bool) {
	v, ok := s.byName[name]
	return v, ok
}

// Name returns the member name declared for the given underlying value.
func (s *Set) Name(value int64) (string, bool) {
	n, ok := s.byValue[value]
	return n, ok
}

// Len returns the number of discovered members.
func (s *Set) Len() int { return len(s.names) }
