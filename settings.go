package glint

import (
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/glint/level"
)

// Settings is a declarative snapshot of registry configuration, typically
// unmarshaled from YAML supplied by the embedding application:
//
//	threshold: DEBUG
//	enhanced: false
//	namespaces:
//	  api.handler: TRACE
//	  storage: WARN
//
// Zero values leave the corresponding registry state untouched.
type Settings struct {
	Threshold  string            `yaml:"threshold"`
	Enhanced   *bool             `yaml:"enhanced"`
	Namespaces map[string]string `yaml:"namespaces"`
}

// ParseSettings unmarshals YAML-encoded settings.
func ParseSettings(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Apply applies the settings to the registry: the global threshold first,
// then the output mode, then namespace thresholds in sorted order so
// overlapping prefixes resolve deterministically.
//
// Level names are resolved with [level.FromName], so unrecognized names
// fall back to [level.Info] with a warning rather than failing.
func (r *Registry) Apply(s Settings) {
	if s.Threshold != "" {
		r.SetGlobalThreshold(level.FromName(s.Threshold))
	}

	if s.Enhanced != nil {
		r.SetEnhanced(*s.Enhanced)
	}

	prefixes := make([]string, 0, len(s.Namespaces))
	for prefix := range s.Namespaces {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	for _, prefix := range prefixes {
		r.SetNamespaceThreshold(prefix, level.FromName(s.Namespaces[prefix]))
	}
}
