package automap

import (
	"reflect"
	"sort"
)

// Config holds the explicit type maps and custom validators for one mapping
// setup. Configure it once, validate it, then obtain a Mapper from it.
// A Config is not safe for concurrent mutation.
type Config struct {
	maps       map[TypePair]*TypeMap
	validators []Validator
}

// NewConfig returns an empty configuration.
func NewConfig() *Config {
	return &Config{maps: map[TypePair]*TypeMap{}}
}

// CreateMap declares an explicit conversion from the type of src to the type
// of dst. The argument values only carry the types:
//
//	cfg.CreateMap(store.Order{}, warehouse.Order{})
//	cfg.CreateMap(store.OrderStatus(0), warehouse.OrderStatus(0), automap.ByName())
//
// Declaring the same pair again replaces the earlier entry.
func (c *Config) CreateMap(src, dst any, opts ...MapOption) *TypeMap {
	tm := &TypeMap{
		Src: reflect.TypeOf(src),
		Dst: reflect.TypeOf(dst),
	}

	for _, opt := range opts {
		opt(tm)
	}

	c.maps[tm.Pair()] = tm

	return tm
}

// TypeMapFor returns the explicit map declared for the pair, or nil.
func (c *Config) TypeMapFor(src, dst reflect.Type) *TypeMap {
	return c.maps[TypePair{Src: src, Dst: dst}]
}

// AddValidator registers a hook that Validate invokes once per visited type
// pairing, explicit and inferred alike.
func (c *Config) AddValidator(v Validator) {
	c.validators = append(c.validators, v)
}

// Mapper returns a mapper executing this configuration. Validate first; the
// mapper assumes the configuration is coherent.
func (c *Config) Mapper() *Mapper {
	return &Mapper{cfg: c}
}

// sortedPairs returns map keys in deterministic pair-string order.
func sortedPairs[V any](m map[TypePair]V) []TypePair {
	pairs := make([]TypePair, 0, len(m))
	for p := range m {
		pairs = append(pairs, p)
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].String() < pairs[j].String()
	})

	return pairs
}
