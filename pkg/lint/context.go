package lint

import (
	"context"

	"github.com/yaklabco/gocsslint/pkg/css"
)

// RuleContext provides all context needed by a rule to perform linting.
//
// RuleContext stores context.Context as a field because it is a short-lived
// parameter object created per rule invocation.
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Sheet is the parsed stylesheet.
	Sheet *css.Stylesheet

	// Root is the tree root (convenience alias for Sheet.Root).
	Root *css.Node

	// Primary is the rule's primary option value (true for option-less rules).
	Primary any

	// Secondary holds the rule's secondary options (may be nil).
	Secondary map[string]any

	// Registry provides access to the rule registry.
	Registry *Registry

	nodes *NodeCache
}

// NewRuleContext creates a RuleContext for the given stylesheet and options.
func NewRuleContext(ctx context.Context, sheet *css.Stylesheet, primary any, secondary map[string]any) *RuleContext {
	var root *css.Node
	if sheet != nil {
		root = sheet.Root
	}

	return &RuleContext{
		Ctx:       ctx,
		Sheet:     sheet,
		Root:      root,
		Primary:   primary,
		Secondary: secondary,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Nodes returns the node index for the stylesheet, building it lazily.
func (rc *RuleContext) Nodes() *NodeCache {
	if rc.nodes == nil {
		rc.nodes = newNodeCache()
		rc.nodes.build(rc.Root)
	}
	return rc.nodes
}

// PrimaryInt returns the primary option as an integer, or the default.
func (rc *RuleContext) PrimaryInt(defaultValue int) int {
	if n, ok := AsInt(rc.Primary); ok {
		return n
	}
	return defaultValue
}

// PrimaryString returns the primary option as a string, or the default.
func (rc *RuleContext) PrimaryString(defaultValue string) string {
	if s, ok := rc.Primary.(string); ok {
		return s
	}
	return defaultValue
}

// Option returns a secondary option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.Secondary == nil {
		return defaultValue
	}
	if v, ok := rc.Secondary[key]; ok {
		return v
	}
	return defaultValue
}

// OptionStringSlice returns a secondary option as a string slice, or the default.
// A single string is returned as a one-element slice.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	switch val := rc.Option(key, defaultValue).(type) {
	case []string:
		return val
	case string:
		return []string{val}
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}

// HasOption reports whether the string slice option key contains value.
func (rc *RuleContext) HasOption(key, value string) bool {
	for _, item := range rc.OptionStringSlice(key, nil) {
		if item == value {
			return true
		}
	}
	return false
}

// AsInt converts YAML and JSON numeric values to int.
func AsInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case uint64:
		return int(val), true
	case float64:
		if val == float64(int(val)) {
			return int(val), true
		}
	}
	return 0, false
}
