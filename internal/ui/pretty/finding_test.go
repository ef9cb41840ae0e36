package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gocsslint/internal/ui/pretty"
	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/runner"
)

func TestFormatFinding(t *testing.T) {
	styles := pretty.NewStyles(false)
	f := runner.Finding{
		Filename: "a.css",
		Line:     3,
		Column:   7,
		Message:  "Unexpected empty block",
		RuleID:   "block-no-empty",
		Severity: config.SeverityError,
	}

	assert.Equal(t, "  3:7    error    Unexpected empty block  block-no-empty\n", styles.FormatFinding(f, 5))

	f.Severity = config.SeverityWarning
	assert.Equal(t, "  3:7  warning  Unexpected empty block  block-no-empty\n", styles.FormatFinding(f, 0))
}

func TestLocationWidth(t *testing.T) {
	findings := []runner.Finding{{Line: 1, Column: 1}, {Line: 120, Column: 14}, {Line: 9, Column: 3}}
	assert.Equal(t, 6, pretty.LocationWidth(findings))
	assert.Equal(t, 0, pretty.LocationWidth(nil))
}

func TestFormatSourceContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name   string
		line   string
		column int
		want   string
	}{
		{
			name:   "caret under column",
			line:   "a { color: #FFF; }",
			column: 12,
			want:   "       2 | a { color: #FFF; }\n" + "           " + "           ^\n",
		},
		{
			name:   "tabs expanded",
			line:   "\tcolor: red;",
			column: 2,
			want:   "       2 |     color: red;\n" + "           " + "    ^\n",
		},
		{
			name:   "past end of line",
			line:   "ab",
			column: 4,
			want:   "       2 | ab\n" + "           " + "   ^\n",
		},
		{
			name:   "no caret",
			line:   "ab",
			column: 0,
			want:   "       2 | ab\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatSourceContext(2, tt.line, tt.column))
		})
	}
}

func TestFormatFileHeader(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "a.css (1 problem)", styles.FormatFileHeader("a.css", 1))
	assert.Equal(t, "a.css (2 problems)", styles.FormatFileHeader("a.css", 2))
	assert.Equal(t, "a.css", styles.FormatFileHeader("a.css", 0))
}
