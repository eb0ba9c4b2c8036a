package automap

import "strconv"

// ModeEnum selects how an enum-to-enum type map converts members.
type ModeEnum int

const (
	// ModeByValue converts through the underlying integer value. This is the
	// default. It never fails, even when the member sets diverge.
	ModeByValue ModeEnum = iota
	// ModeByName matches members by their declared constant name. Unmapped
	// source members are reported by Config.Validate.
	ModeByName
)

// String returns a human-readable mode name.
func (m ModeEnum) String() string {
	switch m {
	case ModeByValue:
		return "by_value"
	case ModeByName:
		return "by_name"
	default:
		return "ModeEnum(" + strconv.Itoa(int(m)) + ")"
	}
}

// MapOption configures a single type map at creation time.
type MapOption func(*TypeMap)

// ByName switches an enum-to-enum map to name-based member matching.
func ByName() MapOption {
	return func(tm *TypeMap) { tm.Mode = ModeByName }
}

// WithMemberOverride pins a source member to a destination member by name.
// Overrides take precedence over the automatic same-name match and only
// apply in by-name mode.
func WithMemberOverride(src, dst string) MapOption {
	return func(tm *TypeMap) {
		if tm.Overrides == nil {
			tm.Overrides = map[string]string{}
		}
		tm.Overrides[src] = dst
	}
}

// ConvertUsing installs a custom conversion function for the pair. The
// function must be func(Src) Dst or func(Src) (Dst, error); anything else is
// rejected by Config.Validate.
func ConvertUsing(fn any) MapOption {
	return func(tm *TypeMap) { tm.ConvertFn = fn }
}
