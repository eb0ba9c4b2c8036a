// Package automap is a small reflection-driven object mapper with an
// explicit configuration surface: developer-authored type maps, enum-to-enum
// conversion modes, and a configuration validity check with custom validator
// hooks.
//
// The package exists to carry the demonstration in the repository README:
// the default enum-to-enum conversion is value-based and never fails, so two
// enumerations that diverge in membership or ordering convert silently into
// the wrong members. Only an explicit by-name map plus Config.Validate makes
// that divergence loud, and only before any production data went through it.
//
// Typical configuration:
//
//	cfg := automap.NewConfig()
//	cfg.CreateMap(store.Order{}, warehouse.Order{})
//	cfg.CreateMap(store.OrderStatus(0), warehouse.OrderStatus(0), automap.ByName())
//	cfg.AddValidator(automap.RequireExplicitEnumMaps)
//	if err := cfg.Validate(); err != nil {
//		// fix the configuration before shipping
//	}
//	mapper := cfg.Mapper()
package automap
