package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/gocsslint/pkg/lint"
)

var (
	// dimensionPattern splits a dimension into number and unit.
	dimensionPattern = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)([a-zA-Z%]+)$`)

	// zeroPattern matches a zero number with any number of leading or trailing zeros.
	zeroPattern = regexp.MustCompile(`^[+-]?(?:0+(?:\.0*)?|\.0+)$`)
)

// lengthUnits are the absolute and relative length units.
var lengthUnits = map[string]bool{
	"em": true, "ex": true, "ch": true, "rem": true, "cap": true, "ic": true, "lh": true, "rlh": true,
	"rex": true, "rch": true, "rcap": true, "ric": true,
	"vw": true, "vh": true, "vi": true, "vb": true, "vmin": true, "vmax": true,
	"svw": true, "svh": true, "lvw": true, "lvh": true, "dvw": true, "dvh": true,
	"svi": true, "svb": true, "lvi": true, "lvb": true, "dvi": true, "dvb": true,
	"svmin": true, "svmax": true, "lvmin": true, "lvmax": true, "dvmin": true, "dvmax": true,
	"cqw": true, "cqh": true, "cqi": true, "cqb": true, "cqmin": true, "cqmax": true,
	"cm": true, "mm": true, "q": true, "in": true, "pt": true, "pc": true, "px": true,
}

// otherUnits are the non-length units that are also known.
var otherUnits = map[string]bool{
	"%":   true,
	"deg": true, "grad": true, "rad": true, "turn": true,
	"s": true, "ms": true,
	"hz": true, "khz": true,
	"dpi": true, "dpcm": true, "dppx": true, "x": true,
	"fr": true,
}

// mathFunctions keep their zero units: "calc(0px + 1em)" is not "calc(0 + 1em)".
var mathFunctions = map[string]bool{
	"calc": true, "min": true, "max": true, "clamp": true, "var": true,
}

// LengthZeroNoUnitRule disallows units for zero lengths.
type LengthZeroNoUnitRule struct {
	lint.BaseRule
}

// NewLengthZeroNoUnitRule creates a new length-zero-no-unit rule.
func NewLengthZeroNoUnitRule() *LengthZeroNoUnitRule {
	return &LengthZeroNoUnitRule{
		BaseRule: lint.NewBaseRule(
			"length-zero-no-unit",
			"Disallow units for zero lengths",
			[]string{"units", "values"},
		),
	}
}

// Apply reports zero lengths that carry a unit. Custom properties, the
// flex shorthand and math function arguments are skipped.
func (r *LengthZeroNoUnitRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	for _, decl := range ctx.Nodes().Declarations() {
		if lint.IsCustomProperty(decl.Prop) || strings.EqualFold(decl.Prop, "flex") {
			continue
		}
		for _, word := range lint.ValueWords(decl.Value) {
			if word.IsFunction || mathFunctions[word.Function] {
				continue
			}
			match := dimensionPattern.FindStringSubmatch(word.Text)
			if match == nil || !lengthUnits[strings.ToLower(match[1])] {
				continue
			}
			number := word.Text[:len(word.Text)-len(match[1])]
			if !zeroPattern.MatchString(number) {
				continue
			}
			pos := lint.ValuePosition(ctx.Sheet, decl, word.Offset+len(number))
			diags = append(diags, lint.NewDiagnosticAt(r.Name(), pos, "Unexpected unit").Build())
		}
	}
	return diags, nil
}

// UnitNoUnknownRule disallows unknown units.
type UnitNoUnknownRule struct {
	lint.BaseRule
}

// NewUnitNoUnknownRule creates a new unit-no-unknown rule.
func NewUnitNoUnknownRule() *UnitNoUnknownRule {
	return &UnitNoUnknownRule{
		BaseRule: lint.NewBaseRule(
			"unit-no-unknown",
			"Disallow unknown units",
			[]string{"units", "values"},
		),
	}
}

// Apply reports dimensions whose unit is neither a length nor another known unit.
func (r *UnitNoUnknownRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	for _, decl := range ctx.Nodes().Declarations() {
		for _, word := range lint.ValueWords(decl.Value) {
			if word.IsFunction {
				continue
			}
			match := dimensionPattern.FindStringSubmatch(word.Text)
			if match == nil {
				continue
			}
			unit := strings.ToLower(match[1])
			if lengthUnits[unit] || otherUnits[unit] {
				continue
			}
			offset := word.Offset + len(word.Text) - len(match[1])
			pos := lint.ValuePosition(ctx.Sheet, decl, offset)
			diags = append(diags, lint.NewDiagnosticAt(
				r.Name(),
				pos,
				fmt.Sprintf("Unexpected unknown unit %q", match[1]),
			).Build())
		}
	}
	return diags, nil
}
