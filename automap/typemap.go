package automap

import (
	"reflect"

	"enum-pitfall/internal/enumset"
)

// TypePair identifies a source/destination type pairing.
type TypePair struct{ Src, Dst reflect.Type }

// String returns the "pkg.Src->pkg.Dst" spelling of the pair.
func (p TypePair) String() string {
	return p.Src.String() + "->" + p.Dst.String()
}

// TypeMap is one explicit, developer-authored conversion entry. Everything
// the mapper does for the pair follows from what is recorded here;
// conversions without a TypeMap run on defaults.
type TypeMap struct {
	Src, Dst reflect.Type
	// Mode selects the enum member matching strategy for enum pairs.
	Mode ModeEnum
	// Overrides pins source member names to destination member names.
	Overrides map[string]string
	// ConvertFn is an optional custom conversion function for the pair.
	ConvertFn any

	// memberTable caches the resolved source value -> destination value
	// pairing for by-name enum maps.
	memberTable map[int64]int64
	converter   *Converter
}

// Pair returns the pairing this map was declared for.
func (tm *TypeMap) Pair() TypePair {
	return TypePair{Src: tm.Src, Dst: tm.Dst}
}

// IsEnumPair reports whether both sides are probeable enum types.
func (tm *TypeMap) IsEnumPair() bool {
	return enumset.IsEnum(tm.Src) && enumset.IsEnum(tm.Dst)
}

// memberMiss records one source member that found no destination member.
type memberMiss struct {
	// Source is the source member name.
	Source string
	// Target is the destination name that was looked up (the override, if
	// one was declared, otherwise Source itself).
	Target string
}

// resolveMemberTable probes both member sets and pairs them by name,
// honoring overrides. Misses are returned rather than treated as errors so
// validation can report all of them at once.
func (tm *TypeMap) resolveMemberTable() (map[int64]int64, []memberMiss, error) {
	srcSet, err := enumset.Probe(tm.Src)
	if err != nil {
		return nil, nil, err
	}

	dstSet, err := enumset.Probe(tm.Dst)
	if err != nil {
		return nil, nil, err
	}

	table := make(map[int64]int64, srcSet.Len())

	var misses []memberMiss

	for _, name := range srcSet.Names() {
		target := name
		if o, ok := tm.Overrides[name]; ok {
			target = o
		}

		dv, ok := dstSet.Value(target)
		if !ok {
			misses = append(misses, memberMiss{Source: name, Target: target})
			continue
		}

		sv, _ := srcSet.Value(name)
		table[sv] = dv
	}

	return table, misses, nil
}

// ensureMemberTable fills the cached member table, resolving it on first
// use. Misses are tolerated here; the mapper reports them per value.
func (tm *TypeMap) ensureMemberTable() error {
	if tm.memberTable != nil {
		return nil
	}

	table, _, err := tm.resolveMemberTable()
	if err != nil {
		return err
	}

	tm.memberTable = table

	return nil
}
