package config

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlIndent is the indentation used when serializing configuration.
const yamlIndent = 2

func encodeYAML(value any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(value); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// RuleSetFromYAML parses a rule set from YAML bytes.
func RuleSetFromYAML(data []byte) (*RuleSet, error) {
	rs := &RuleSet{}
	if err := yaml.Unmarshal(data, rs); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if rs.Rules == nil {
		rs.Rules = make(map[string]any)
	}
	return rs, nil
}

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	return encodeYAML(c)
}

// ToYAMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}

	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	for _, line := range strings.Split(strings.TrimRight(header, "\n"), "\n") {
		buf.WriteString("# " + line + "\n")
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// ParseRuleValue decodes a single rule value written in YAML flow syntax,
// such as "true", "null", "upper" or `[3, {severity: warning}]`.
func ParseRuleValue(raw string) (any, error) {
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return nil, fmt.Errorf("parse rule value %q: %w", raw, err)
	}
	return value, nil
}

// ParseRuleAssignment splits a "name=value" rule override and decodes its value.
func ParseRuleAssignment(assignment string) (string, any, error) {
	name, raw, ok := strings.Cut(assignment, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", nil, fmt.Errorf("invalid rule override %q: expected name=value", assignment)
	}
	value, err := ParseRuleValue(strings.TrimSpace(raw))
	if err != nil {
		return "", nil, err
	}
	return name, value, nil
}
