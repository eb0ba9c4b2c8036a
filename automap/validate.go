package automap

import (
	"fmt"
	"reflect"

	"enum-pitfall/internal/diagnostic"
	"enum-pitfall/internal/enumset"
)

// Context is handed to custom validators for every type pairing visited
// during Validate. TypeMap is nil when the pairing was inferred from a
// struct field rather than declared with CreateMap.
type Context struct {
	Src, Dst reflect.Type
	TypeMap  *TypeMap
}

// Validator inspects one type pairing and may reject it. The returned error
// becomes a validation failure attributed to the pair.
type Validator func(ctx Context) error

// RequireExplicitEnumMaps rejects any enum-to-enum pairing that has no
// explicit type map. The error carries a paste-ready CreateMap call, so the
// fix is one copy away:
//
//	cfg.AddValidator(automap.RequireExplicitEnumMaps)
func RequireExplicitEnumMaps(ctx Context) error {
	if ctx.TypeMap != nil {
		return nil
	}

	if !enumset.IsEnum(ctx.Src) || !enumset.IsEnum(ctx.Dst) {
		return nil
	}

	return fmt.Errorf(
		"no explicit enum map for %s -> %s; add:\n\tcfg.CreateMap(%s(0), %s(0), automap.ByName())",
		ctx.Src, ctx.Dst, ctx.Src, ctx.Dst)
}

// Validate checks the configured type graph and returns one error covering
// every finding, or nil.
//
// The walk is deterministic: pairs are visited in sorted pair-string order.
// It covers, in this order:
//   - pairs inferred from struct fields (including slice elements), with
//     unmatched destination fields reported;
//   - explicit type maps: converter signatures, by-name enum maps with every
//     unmapped source member listed;
//   - custom validators, invoked once per visited pairing.
func (c *Config) Validate() error {
	diags := &diagnostic.Diagnostics{}

	visited := make(map[TypePair]*TypeMap, len(c.maps))
	for pair, tm := range c.maps {
		visited[pair] = tm
	}

	explicit := sortedPairs(c.maps)

	for _, pair := range explicit {
		tm := c.maps[pair]
		if tm.ConvertFn == nil && tm.Src.Kind() == reflect.Struct && tm.Dst.Kind() == reflect.Struct {
			c.inferStruct(tm.Src, tm.Dst, visited, diags)
		}
	}

	for _, pair := range explicit {
		c.validateTypeMap(c.maps[pair], diags)
	}

	for _, pair := range sortedPairs(visited) {
		ctx := Context{Src: pair.Src, Dst: pair.Dst, TypeMap: visited[pair]}

		for _, v := range c.validators {
			if err := v(ctx); err != nil {
				diags.AddError("validator_rejected", err.Error(), pair.String(), "")
			}
		}
	}

	return diags.Error()
}

// inferStruct walks a struct pairing field by field, records every distinct
// nested pairing it discovers, and recurses into nested structs. Pairs
// already visited (explicitly declared or seen before) are left alone, which
// also keeps cyclic types from recursing forever.
func (c *Config) inferStruct(
	src, dst reflect.Type,
	visited map[TypePair]*TypeMap,
	diags *diagnostic.Diagnostics,
) {
	pairStr := src.String() + "->" + dst.String()

	for i := 0; i < dst.NumField(); i++ {
		df := dst.Field(i)
		if df.PkgPath != "" {
			continue // unexported
		}

		sf, ok := src.FieldByName(df.Name)
		if !ok {
			diags.AddError("unmapped_target_field",
				fmt.Sprintf("destination field %s has no source counterpart", df.Name),
				pairStr, df.Name)

			continue
		}

		c.visitFieldPair(sf.Type, df.Type, visited, diags)
	}
}

func (c *Config) visitFieldPair(
	st, dt reflect.Type,
	visited map[TypePair]*TypeMap,
	diags *diagnostic.Diagnostics,
) {
	if st == dt {
		return
	}

	if st.Kind() == reflect.Slice && dt.Kind() == reflect.Slice {
		c.visitFieldPair(st.Elem(), dt.Elem(), visited, diags)
		return
	}

	pair := TypePair{Src: st, Dst: dt}
	if _, seen := visited[pair]; seen {
		return
	}

	switch {
	case enumset.IsEnum(st) && enumset.IsEnum(dt):
		visited[pair] = nil
	case st.Kind() == reflect.Struct && dt.Kind() == reflect.Struct:
		visited[pair] = nil
		c.inferStruct(st, dt, visited, diags)
	case st.ConvertibleTo(dt):
		// plain Go conversion at mapping time, nothing to validate
	default:
		diags.AddError("no_conversion",
			fmt.Sprintf("no conversion from %s to %s", st, dt),
			pair.String(), "")
	}
}

// validateTypeMap checks one explicit entry.
func (c *Config) validateTypeMap(tm *TypeMap, diags *diagnostic.Diagnostics) {
	pairStr := tm.Pair().String()

	if tm.ConvertFn != nil {
		conv, err := ParseConverter(tm.ConvertFn)
		if err != nil {
			diags.AddError("bad_converter", err.Error(), pairStr, "")
			return
		}

		if conv.Src != tm.Src || conv.Dst != tm.Dst {
			diags.AddError("converter_type_mismatch",
				fmt.Sprintf("converter is %s -> %s, map is declared for %s", conv.Src, conv.Dst, pairStr),
				pairStr, "")

			return
		}

		tm.converter = conv

		return
	}

	if tm.IsEnumPair() {
		c.validateEnumMap(tm, pairStr, diags)
		return
	}

	structPair := tm.Src.Kind() == reflect.Struct && tm.Dst.Kind() == reflect.Struct
	if !structPair && !tm.Src.ConvertibleTo(tm.Dst) {
		diags.AddError("unconvertible_pair",
			fmt.Sprintf("no conversion from %s to %s", tm.Src, tm.Dst),
			pairStr, "")
	}
}

func (c *Config) validateEnumMap(tm *TypeMap, pairStr string, diags *diagnostic.Diagnostics) {
	if tm.Mode != ModeByName {
		// Value mode validates nothing. That permissiveness is exactly the
		// pitfall the README walks through.
		if len(tm.Overrides) > 0 {
			diags.AddWarning("overrides_ignored",
				"member overrides only apply in by-name mode", pairStr, "")
		}

		return
	}

	table, misses, err := tm.resolveMemberTable()
	if err != nil {
		diags.AddError("member_probe_failed", err.Error(), pairStr, "")
		return
	}

	for _, miss := range misses {
		msg := fmt.Sprintf("source member %s has no destination member named %s", miss.Source, miss.Target)
		diags.Append(diagnostic.Diagnostic{
			Severity: diagnostic.SeverityError,
			Code:     "unmapped_member",
			Message:  msg,
			TypePair: pairStr,
			Member:   miss.Source,
			Suggestion: fmt.Sprintf("\tautomap.WithMemberOverride(%q, \"<destination member>\")",
				miss.Source),
		})
	}

	if len(misses) == 0 {
		tm.memberTable = table
	}
}
