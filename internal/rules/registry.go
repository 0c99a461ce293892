package rules

import "fmt"

// Registry is an immutable, ordered rule catalog. Rule order is part of
// the scan contract: findings inherit it as a deterministic tie-break.
type Registry struct {
	mode  Mode
	rules []Rule
	byKey map[string]int
}

// NewRegistry builds a registry from an ordered rule list. It panics on
// duplicate keys since catalogs are compiled-in data, not user input.
func NewRegistry(mode Mode, rules []Rule) *Registry {
	byKey := make(map[string]int, len(rules))
	for i, r := range rules {
		if _, dup := byKey[r.Key]; dup {
			panic(fmt.Sprintf("rules: duplicate rule key %q", r.Key))
		}
		byKey[r.Key] = i
	}
	return &Registry{mode: mode, rules: rules, byKey: byKey}
}

// Mode returns the scan mode this registry serves.
func (r *Registry) Mode() Mode { return r.mode }

// Rules returns the ordered catalog. Callers must not mutate it.
func (r *Registry) Rules() []Rule { return r.rules }

// Len returns the number of rules in the catalog.
func (r *Registry) Len() int { return len(r.rules) }

// Get returns the rule with the given key.
func (r *Registry) Get(key string) (*Rule, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return nil, false
	}
	return &r.rules[i], true
}

// ForMode returns the catalog for the given scan mode.
func ForMode(mode Mode) *Registry {
	if mode == ModeSecurity {
		return Security()
	}
	return Performance()
}

var (
	performanceRegistry = NewRegistry(ModePerformance, performanceRules())
	securityRegistry    = NewRegistry(ModeSecurity, securityRules())
)

// Performance returns the performance-scan catalog.
func Performance() *Registry { return performanceRegistry }

// Security returns the security-scan catalog.
func Security() *Registry { return securityRegistry }
