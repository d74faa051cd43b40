package lint

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/i18nlint/pkg/core"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	rules: make(map[string]LeafRule),
}

// Registry stores registered lint rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]LeafRule // keyed by ID
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	RegisterLeafRule(WrapRuleDef(rule))
}

// RegisterLeafRule adds a LeafRule to the global registry.
func RegisterLeafRule(rule LeafRule) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID()] = rule
}

// GetAllLeafRules returns all registered rules sorted by ID, so callers that
// iterate produce deterministic per-leaf diagnostic order.
func GetAllLeafRules() []LeafRule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]LeafRule, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID() < rules[j].ID() })
	return rules
}

// GetRuleByID returns a rule by its ID.
func GetRuleByID(id string) (LeafRule, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// GetRulesByGroup returns all rules in a specific group, sorted by ID.
func GetRulesByGroup(group string) []LeafRule {
	var rules []LeafRule
	for _, rule := range GetAllLeafRules() {
		if rule.Group() == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// AllRules returns metadata for all registered rules, sorted by ID.
func AllRules() []core.RuleInfo {
	all := GetAllLeafRules()
	infos := make([]core.RuleInfo, 0, len(all))
	for _, rule := range all {
		infos = append(infos, GetRuleInfo(rule))
	}
	return infos
}
