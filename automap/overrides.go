package automap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OverrideFile is the YAML schema for human-reviewed enum mapping
// declarations. It lets a team keep member reconciliations next to the code
// that needs them instead of scattering option calls:
//
//	version: "1"
//	enums:
//	  - source: store.PaymentMethod
//	    target: warehouse.PaymentMethod
//	    byName: true
//	    members:
//	      MethodCrypto: MethodWire
type OverrideFile struct {
	Version string         `yaml:"version"`
	Enums   []EnumOverride `yaml:"enums"`
}

// EnumOverride declares mode and member overrides for one enum pairing,
// identified by the short "pkg.Type" spelling of both sides.
type EnumOverride struct {
	Source  string            `yaml:"source"`
	Target  string            `yaml:"target"`
	ByName  bool              `yaml:"byName"`
	Members map[string]string `yaml:"members"`
}

// LoadOverrides reads and parses an override file from the given path.
func LoadOverrides(path string) (*OverrideFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read override file %s: %w", path, err)
	}

	return ParseOverrides(data)
}

// ParseOverrides parses YAML data into an OverrideFile.
func ParseOverrides(data []byte) (*OverrideFile, error) {
	var of OverrideFile

	if err := yaml.Unmarshal(data, &of); err != nil {
		return nil, fmt.Errorf("failed to parse override YAML: %w", err)
	}

	if of.Version == "" {
		of.Version = "1"
	}

	return &of, nil
}

// ApplyOverrides merges the declarations into already-created type maps. An
// override that matches no declared map is an error: it is a stale review
// artifact, and silently skipping it would undo the point of reviewing.
func ApplyOverrides(cfg *Config, of *OverrideFile) error {
	for _, eo := range of.Enums {
		tm := cfg.typeMapNamed(eo.Source, eo.Target)
		if tm == nil {
			return fmt.Errorf("override %s -> %s matches no declared type map", eo.Source, eo.Target)
		}

		if eo.ByName {
			tm.Mode = ModeByName
		}

		for src, dst := range eo.Members {
			WithMemberOverride(src, dst)(tm)
		}

		tm.memberTable = nil // force re-resolution with the new overrides
	}

	return nil
}

// typeMapNamed finds a declared map by the short string spelling of its pair.
func (c *Config) typeMapNamed(src, dst string) *TypeMap {
	for pair, tm := range c.maps {
		if pair.Src.String() == src && pair.Dst.String() == dst {
			return tm
		}
	}

	return nil
}
