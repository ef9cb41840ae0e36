// Package rules provides the built-in style rules for gocsslint.
//
// # Rule Domains
//
//   - Blocks:
//
//   - block-no-empty - Disallow empty blocks
//
//   - max-nesting-depth - Limit the depth of nested blocks
//
//   - Colors:
//
//   - color-no-invalid-hex - Disallow invalid hex colors
//
//   - color-hex-case - Require lower or upper case hex colors
//
//   - Comments:
//
//   - comment-no-empty - Disallow empty comments
//
//   - Declarations:
//
//   - declaration-block-no-duplicate-properties - Disallow duplicate properties within a block
//
//   - declaration-no-important - Disallow !important within declarations
//
//   - Units and values:
//
//   - length-zero-no-unit - Disallow units for zero lengths
//
//   - unit-no-unknown - Disallow unknown units
//
//   - Selectors:
//
//   - selector-max-id - Limit the number of ID selectors in a selector
//
//   - Whitespace:
//
//   - no-eol-whitespace - Disallow end-of-line whitespace
//
//   - no-missing-end-of-source-newline - Require a newline at the end of the source
//
//   - SCSS:
//
//   - scss/dollar-variable-pattern - Require $-variable names to match a pattern
//
//   - Plugins:
//
//   - plugin/esbuild-compat - Report problems found by the esbuild CSS parser (plain CSS only)
//
// # Registration
//
// Rules are registered with the default registry via RegisterAll.
// Each rule follows the lint.Rule interface and uses the RuleContext and
// DiagnosticBuilder infrastructure.
package rules
