package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/lint"
)

// strictRule accepts only integer options.
type strictRule struct {
	lint.BaseRule
}

func (r *strictRule) ValidateOption(primary any) error {
	if _, ok := lint.AsInt(primary); ok {
		return nil
	}
	return lint.ErrInvalidOption
}

func TestResolveRules(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(&strictRule{BaseRule: lint.NewBaseRule("max-thing", "", nil)})
	registry.Register(newFakeRule("plain", ""))

	tests := []struct {
		name         string
		rules        map[string]any
		severity     config.Severity
		wantRules    []string
		wantSeverity config.Severity
		wantPrimary  any
		wantProblems []string
	}{
		{
			name:         "primary value",
			rules:        map[string]any{"max-thing": 3},
			wantRules:    []string{"max-thing"},
			wantSeverity: config.SeverityError,
			wantPrimary:  3,
		},
		{
			name:         "null disables",
			rules:        map[string]any{"max-thing": nil, "plain": false},
			wantRules:    nil,
			wantProblems: nil,
		},
		{
			name:         "null primary in list disables",
			rules:        map[string]any{"max-thing": []any{nil, map[string]any{"severity": "warning"}}},
			wantRules:    nil,
			wantProblems: nil,
		},
		{
			name:         "secondary severity",
			rules:        map[string]any{"max-thing": []any{2, map[string]any{"severity": "warning"}}},
			wantRules:    []string{"max-thing"},
			wantSeverity: config.SeverityWarning,
			wantPrimary:  2,
		},
		{
			name:         "default severity",
			rules:        map[string]any{"plain": true},
			severity:     config.SeverityWarning,
			wantRules:    []string{"plain"},
			wantSeverity: config.SeverityWarning,
			wantPrimary:  true,
		},
		{
			name:         "unknown rule",
			rules:        map[string]any{"nope": true},
			wantProblems: []string{"Unknown rule nope."},
		},
		{
			name:         "invalid option",
			rules:        map[string]any{"max-thing": "lots"},
			wantProblems: []string{`Invalid option value "lots" for rule "max-thing" (max-thing)`},
		},
		{
			name:         "invalid severity",
			rules:        map[string]any{"plain": []any{true, map[string]any{"severity": "fatal"}}},
			wantProblems: []string{`Invalid option value "fatal" for rule "plain" (plain)`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolved, problems := lint.ResolveRules(registry, &config.RuleSet{
				DefaultSeverity: tt.severity,
				Rules:           tt.rules,
			})

			var names []string
			for _, rr := range resolved {
				names = append(names, rr.Rule.Name())
			}
			assert.Equal(t, tt.wantRules, names)

			var texts []string
			for _, p := range problems {
				texts = append(texts, p.Text)
			}
			assert.Equal(t, tt.wantProblems, texts)

			if len(resolved) == 1 {
				assert.Equal(t, tt.wantSeverity, resolved[0].Severity)
				assert.Equal(t, tt.wantPrimary, resolved[0].Primary)
			}
		})
	}
}

func TestResolveRules_NilRuleSet(t *testing.T) {
	t.Parallel()

	resolved, problems := lint.ResolveRules(lint.NewRegistry(), nil)
	assert.Empty(t, resolved)
	assert.Empty(t, problems)
}

func TestResolveRules_OrderedByName(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		registry.Register(newFakeRule(name, ""))
	}

	resolved, _ := lint.ResolveRules(registry, &config.RuleSet{Rules: map[string]any{"c": true, "b": true, "a": true}})
	require.Len(t, resolved, 3)
	assert.Equal(t, "a", resolved[0].Rule.Name())
	assert.Equal(t, "b", resolved[1].Rule.Name())
	assert.Equal(t, "c", resolved[2].Rule.Name())
}

func TestBaseRule_ValidateOption(t *testing.T) {
	t.Parallel()

	base := lint.NewBaseRule("x", "desc", []string{"tag"})
	require.NoError(t, base.ValidateOption(true))
	require.ErrorIs(t, base.ValidateOption("yes"), lint.ErrInvalidOption)
	assert.True(t, lint.IsInvalidOption(base.ValidateOption(3)))
	assert.True(t, base.AppliesTo(config.SyntaxCSS))
	assert.Equal(t, "desc", base.Description())
	assert.Equal(t, []string{"tag"}, base.Tags())
}
