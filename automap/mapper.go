package automap

import (
	"errors"
	"fmt"
	"reflect"

	"enum-pitfall/internal/enumset"
)

var (
	ErrDstNotPointer  = errors.New("destination must be a non-nil pointer")
	ErrNoConversion   = errors.New("no conversion between types")
	ErrUnmappedMember = errors.New("source member has no destination member")
)

// Mapper executes a configuration. It is cheap to create and safe for
// concurrent use once the configuration stops changing.
type Mapper struct {
	cfg *Config
}

// Map copies src into the value pointed to by dst, applying the configured
// type maps along the way.
func (m *Mapper) Map(dst, src any) error {
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Ptr || dv.IsNil() {
		return ErrDstNotPointer
	}

	sv := reflect.ValueOf(src)
	if !sv.IsValid() {
		return fmt.Errorf("%w: source is nil", ErrNoConversion)
	}

	return m.mapValue(dv.Elem(), sv)
}

// MapTo is a convenience wrapper that allocates the destination value.
func MapTo[Dst any](m *Mapper, src any) (Dst, error) {
	var dst Dst
	err := m.Map(&dst, src)

	return dst, err
}

func (m *Mapper) mapValue(dst, src reflect.Value) error {
	st, dt := src.Type(), dst.Type()

	if tm := m.cfg.TypeMapFor(st, dt); tm != nil {
		if tm.ConvertFn != nil {
			return m.callConverter(tm, dst, src)
		}

		if tm.IsEnumPair() && tm.Mode == ModeByName {
			return m.mapEnumByName(tm, dst, src)
		}
	}

	switch {
	case st == dt:
		dst.Set(src)
		return nil

	case enumset.IsEnum(st) && enumset.IsEnum(dt):
		// Default enum-to-enum conversion: carry the underlying value over,
		// whatever it happens to mean on the other side.
		dst.SetInt(src.Int())
		return nil

	case st.Kind() == reflect.Struct && dt.Kind() == reflect.Struct:
		return m.mapStruct(dst, src)

	case st.Kind() == reflect.Slice && dt.Kind() == reflect.Slice:
		return m.mapSlice(dst, src)

	case st.AssignableTo(dt):
		dst.Set(src)
		return nil

	case st.ConvertibleTo(dt):
		dst.Set(src.Convert(dt))
		return nil

	default:
		return fmt.Errorf("%w: %s -> %s", ErrNoConversion, st, dt)
	}
}

// mapStruct copies matching destination fields by name. Fields without a
// source counterpart stay zero; Config.Validate polices those, mapping
// itself is permissive.
func (m *Mapper) mapStruct(dst, src reflect.Value) error {
	dt := dst.Type()

	for i := 0; i < dt.NumField(); i++ {
		df := dt.Field(i)
		if df.PkgPath != "" {
			continue
		}

		sv := src.FieldByName(df.Name)
		if !sv.IsValid() {
			continue
		}

		if err := m.mapValue(dst.Field(i), sv); err != nil {
			return fmt.Errorf("field %s: %w", df.Name, err)
		}
	}

	return nil
}

func (m *Mapper) mapSlice(dst, src reflect.Value) error {
	if src.IsNil() {
		return nil
	}

	out := reflect.MakeSlice(dst.Type(), src.Len(), src.Len())

	for i := 0; i < src.Len(); i++ {
		if err := m.mapValue(out.Index(i), src.Index(i)); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}

	dst.Set(out)

	return nil
}

func (m *Mapper) mapEnumByName(tm *TypeMap, dst, src reflect.Value) error {
	if err := tm.ensureMemberTable(); err != nil {
		return err
	}

	dv, ok := tm.memberTable[src.Int()]
	if !ok {
		return fmt.Errorf("%w: %v in %s", ErrUnmappedMember, src.Interface(), tm.Pair())
	}

	dst.SetInt(dv)

	return nil
}

func (m *Mapper) callConverter(tm *TypeMap, dst, src reflect.Value) error {
	if tm.converter == nil {
		conv, err := ParseConverter(tm.ConvertFn)
		if err != nil {
			return err
		}

		tm.converter = conv
	}

	return tm.converter.Call(dst, src)
}
