package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsslint/pkg/config"
)

func TestParseRuleValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{name: "true", raw: "true", want: true},
		{name: "null", raw: "null", want: nil},
		{name: "empty is null", raw: "", want: nil},
		{name: "string", raw: "upper", want: "upper"},
		{name: "int", raw: "3", want: 3},
		{
			name: "flow sequence",
			raw:  "[3, {severity: warning}]",
			want: []any{3, map[string]any{"severity": "warning"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.ParseRuleValue(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRuleValue_Invalid(t *testing.T) {
	_, err := config.ParseRuleValue("[unclosed")
	require.Error(t, err)
}

func TestParseRuleAssignment(t *testing.T) {
	name, value, err := config.ParseRuleAssignment("color-hex-case = upper")
	require.NoError(t, err)
	assert.Equal(t, "color-hex-case", name)
	assert.Equal(t, "upper", value)

	_, _, err = config.ParseRuleAssignment("no-equals-sign")
	require.Error(t, err)

	_, _, err = config.ParseRuleAssignment("=true")
	require.Error(t, err)
}

func TestConfig_ToYAMLWithHeader(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Rules["block-no-empty"] = nil
	cfg.Output = "report.json"

	data, err := cfg.ToYAMLWithHeader("gocsslint configuration\nsecond line")
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "# gocsslint configuration\n# second line\n\n")
	assert.Contains(t, text, "syntax: scss")
	assert.Contains(t, text, "block-no-empty: null")
	assert.NotContains(t, text, "report.json", "CLI-only fields are not persisted")
}
