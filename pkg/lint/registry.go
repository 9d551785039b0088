package lint

import (
	"fmt"
	"sync"

	"github.com/leapstack-labs/sitelint/pkg/content"
)

// Factory constructs one rule from resolved parameters. Static rules
// ignore the parameters; factory rules close over them.
type Factory func(p *Params) RuleDef

// registry preserves registration order: the output contract is
// item-order x rule-definition-order, so order is part of the API.
type registry struct {
	mu        sync.Mutex
	factories []Factory
}

var globalRegistry = &registry{}

// Register adds a rule factory to the global registry. Call from init()
// in rule packages; the blank-import order of those packages fixes the
// definition order for the whole run.
func Register(f Factory) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.factories = append(globalRegistry.factories, f)
}

// Count returns the number of registered rule factories.
func Count() int {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	return len(globalRegistry.factories)
}

// emptyCheck is the evaluation function installed by an "off" override.
func emptyCheck(*content.Item, *Context) []Result { return nil }

// BuildRegistry instantiates every registered rule family in definition
// order and applies user severity overrides: "off" replaces the check
// with a constant-empty function, any other recognized value replaces the
// declared severity only.
func BuildRegistry(p *Params, overrides map[string]string) ([]RuleDef, error) {
	globalRegistry.mu.Lock()
	factories := make([]Factory, len(globalRegistry.factories))
	copy(factories, globalRegistry.factories)
	globalRegistry.mu.Unlock()

	defs := make([]RuleDef, 0, len(factories))
	seen := make(map[string]bool, len(factories))
	for _, f := range factories {
		def := f(p)
		if def.Name == "" || def.Check == nil {
			return nil, fmt.Errorf("rule factory produced an incomplete definition (name=%q)", def.Name)
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("duplicate rule name %q", def.Name)
		}
		seen[def.Name] = true
		defs = append(defs, def)
	}

	for name, value := range overrides {
		idx := -1
		for i := range defs {
			if defs[i].Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue // unknown rule names in config are ignored
		}
		if value == "off" {
			defs[idx].Check = emptyCheck
			defs[idx].Disabled = true
			continue
		}
		if sev, ok := ParseSeverity(value); ok {
			defs[idx].Severity = sev
		}
	}
	return defs, nil
}

// Metadata returns rule metadata in definition order.
func Metadata(defs []RuleDef) []RuleInfo {
	infos := make([]RuleInfo, len(defs))
	for i, d := range defs {
		infos[i] = d.Info()
	}
	return infos
}
