package lint

import (
	"errors"
	"fmt"
	"slices"

	"github.com/yaklabco/gocsslint/pkg/config"
)

// ResolvedRule combines a rule with its effective configuration.
type ResolvedRule struct {
	Rule      Rule
	Primary   any
	Secondary map[string]any
	Severity  config.Severity

	// Message replaces the rule's own message text when set.
	Message string
}

// ResolveRules determines which rules are enabled by the rule set and with
// what options. Rules run in name order. Configuration problems (unknown
// rule names, invalid option values) are returned as messages positioned
// at the start of the file.
func ResolveRules(registry *Registry, ruleSet *config.RuleSet) ([]ResolvedRule, []Message) {
	if ruleSet == nil {
		return nil, nil
	}

	defaultSeverity := ruleSet.DefaultSeverity
	if !defaultSeverity.IsValid() {
		defaultSeverity = config.SeverityError
	}

	names := make([]string, 0, len(ruleSet.Rules))
	for name := range ruleSet.Rules {
		names = append(names, name)
	}
	slices.Sort(names)

	var (
		resolved []ResolvedRule
		problems []Message
	)

	for _, name := range names {
		primary, secondary, enabled := splitRuleValue(ruleSet.Rules[name])
		if !enabled {
			continue
		}

		rule, ok := registry.Get(name)
		if !ok {
			problems = append(problems, configProblem("", fmt.Sprintf("Unknown rule %s.", name)))
			continue
		}

		if err := rule.ValidateOption(primary); err != nil {
			problems = append(problems, invalidOption(name, primary))
			continue
		}

		rr := ResolvedRule{
			Rule:      rule,
			Primary:   primary,
			Secondary: secondary,
			Severity:  defaultSeverity,
		}

		if raw, ok := secondary["severity"]; ok {
			sev, isString := raw.(string)
			if !isString || !config.Severity(sev).IsValid() {
				problems = append(problems, invalidOption(name, raw))
				continue
			}
			rr.Severity = config.Severity(sev)
		}
		if msg, ok := secondary["message"].(string); ok {
			rr.Message = msg
		}

		resolved = append(resolved, rr)
	}

	return resolved, problems
}

// splitRuleValue interprets a rule value: null and false disable the rule,
// a two-element list whose second element is a mapping carries secondary
// options, anything else is the primary option.
func splitRuleValue(value any) (any, map[string]any, bool) {
	switch val := value.(type) {
	case nil:
		return nil, nil, false
	case bool:
		return val, nil, val
	case []any:
		if len(val) == 2 {
			if secondary, ok := asStringMap(val[1]); ok {
				if val[0] == nil {
					return nil, nil, false
				}
				return val[0], secondary, true
			}
		}
	}
	return value, nil, true
}

func asStringMap(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, true
	case map[any]any:
		out := make(map[string]any, len(val))
		for key, item := range val {
			out[fmt.Sprint(key)] = item
		}
		return out, true
	}
	return nil, false
}

func configProblem(rule, text string) Message {
	return Message{
		Text:      text,
		Rule:      rule,
		Severity:  config.SeverityError,
		Line:      1,
		Column:    1,
		EndLine:   1,
		EndColumn: 1,
	}
}

func invalidOption(name string, value any) Message {
	return configProblem(name, fmt.Sprintf("Invalid option value %q for rule %q (%s)", fmt.Sprint(value), name, name))
}

// IsInvalidOption reports whether err is an option validation failure.
func IsInvalidOption(err error) bool {
	return errors.Is(err, ErrInvalidOption)
}
