package config

import (
	_ "embed"
	"fmt"
	"maps"
	"sync"
)

//go:embed default.yaml
var defaultRuleSetYAML []byte

// RuleSet is the rule configuration handed to the style-check engine.
// Keys other than defaultSeverity and rules are preserved opaquely in Extra.
type RuleSet struct {
	// DefaultSeverity applies to rules that do not set a severity.
	DefaultSeverity Severity `yaml:"defaultSeverity,omitempty"`

	// Rules maps rule names to their configured value.
	Rules map[string]any `yaml:"rules"`

	// Extra holds any additional top-level keys of the template.
	Extra map[string]any `yaml:",inline"`
}

//nolint:gochecknoglobals // Parsed once from the embedded template; never handed out directly.
var (
	defaultOnce    sync.Once
	defaultRuleSet *RuleSet
	defaultErr     error
)

// DefaultRuleSet returns a fresh deep copy of the embedded default rule set.
// Callers may mutate the result freely.
func DefaultRuleSet() *RuleSet {
	defaultOnce.Do(func() {
		defaultRuleSet, defaultErr = RuleSetFromYAML(defaultRuleSetYAML)
	})
	if defaultErr != nil {
		// The template is embedded at build time; a parse failure is a build defect.
		panic(fmt.Sprintf("config: invalid embedded default rule set: %v", defaultErr))
	}
	return defaultRuleSet.Clone()
}

// DefaultRuleSetYAML returns the raw embedded default rule set.
func DefaultRuleSetYAML() []byte {
	out := make([]byte, len(defaultRuleSetYAML))
	copy(out, defaultRuleSetYAML)
	return out
}

// WithRules returns a deep copy of rs whose rules mapping is shallow-merged
// with overrides: override keys replace keys of the same name, every other
// key of rs is kept. Neither rs nor overrides is modified.
func (rs *RuleSet) WithRules(overrides map[string]any) *RuleSet {
	merged := rs.Clone()
	if merged == nil {
		merged = &RuleSet{}
	}
	merged.Rules = MergeRules(merged.Rules, overrides)
	return merged
}

// MergeRules returns a new map holding base with override applied on top.
// Override values are deep-copied so later mutation of either input does
// not leak into the result.
func MergeRules(base, override map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(override))
	maps.Copy(result, base)
	for key, val := range override {
		result[key] = deepCopyValue(val)
	}
	return result
}

// Clone creates a deep copy of the rule set. Scalar values keep their
// dynamic types.
func (rs *RuleSet) Clone() *RuleSet {
	if rs == nil {
		return nil
	}

	clone := &RuleSet{DefaultSeverity: rs.DefaultSeverity}
	if rs.Rules != nil {
		clone.Rules, _ = deepCopyValue(rs.Rules).(map[string]any)
	}
	if rs.Extra != nil {
		clone.Extra, _ = deepCopyValue(rs.Extra).(map[string]any)
	}
	return clone
}

// deepCopyValue recursively copies maps and slices produced by YAML or JSON decoding.
func deepCopyValue(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = deepCopyValue(v)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[fmt.Sprint(k)] = deepCopyValue(v)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = deepCopyValue(v)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(typed))
		for i, v := range typed {
			out[i], _ = deepCopyValue(v).(map[string]any)
		}
		return out
	case []string:
		out := make([]string, len(typed))
		copy(out, typed)
		return out
	default:
		return val
	}
}
