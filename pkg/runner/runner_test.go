package runner_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/css"
	"github.com/yaklabco/gocsslint/pkg/lint"
	"github.com/yaklabco/gocsslint/pkg/runner"
)

// call records one engine invocation.
type call struct {
	source  string
	ruleSet *config.RuleSet
	opts    runner.ProcessOptions
}

// fakeEngine answers each file with a scripted response keyed by From.
type fakeEngine struct {
	mu        sync.Mutex
	calls     []call
	responses map[string]func() (*lint.Result, error)
}

func (e *fakeEngine) Process(
	_ context.Context,
	source string,
	ruleSet *config.RuleSet,
	opts runner.ProcessOptions,
) (*lint.Result, error) {
	e.mu.Lock()
	e.calls = append(e.calls, call{source: source, ruleSet: ruleSet, opts: opts})
	respond := e.responses[opts.From]
	e.mu.Unlock()

	if respond == nil {
		return &lint.Result{}, nil
	}
	return respond()
}

func messages(msgs ...lint.Message) func() (*lint.Result, error) {
	return func() (*lint.Result, error) { return &lint.Result{Messages: msgs}, nil }
}

func failing(err error) func() (*lint.Result, error) {
	return func() (*lint.Result, error) { return nil, err }
}

// memLoader serves file contents from a map.
func memLoader(files map[string]string) runner.Loader {
	return runner.LoaderFunc(func(_ context.Context, path string) (string, error) {
		src, ok := files[path]
		if !ok {
			return "", fmt.Errorf("open %s: %w", path, os.ErrNotExist)
		}
		return src, nil
	})
}

type progressEvent struct {
	fraction float64
	message  string
}

func recordProgress(events *[]progressEvent) runner.ProgressFunc {
	return func(fraction float64, message string) {
		*events = append(*events, progressEvent{fraction, message})
	}
}

func newRunner(engine runner.Engine, files map[string]string) *runner.Runner {
	r := runner.New(engine, memLoader(files))
	r.WorkingDir = "/work"
	return r
}

func TestRun_EmptyFileList(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{}
	var events []progressEvent
	report := runner.NewReport()

	passed, err := newRunner(engine, nil).Run(context.Background(), nil,
		runner.Options{Progress: recordProgress(&events)}, report)

	require.NoError(t, err)
	assert.True(t, passed)
	assert.Empty(t, report.Findings)
	assert.Empty(t, report.Sources)
	assert.Empty(t, engine.calls)
	assert.Equal(t, []progressEvent{
		{0, "linting CSS: starting"},
		{1, "linting CSS: done"},
	}, events)
}

func TestRun_CleanFilesPass(t *testing.T) {
	t.Parallel()

	files := map[string]string{"/work/a.css": "a {}\n", "/work/b.css": "b {}\n"}
	engine := &fakeEngine{}
	report := runner.NewReport()

	passed, err := newRunner(engine, files).Run(context.Background(),
		[]string{"/work/a.css", "/work/b.css"}, runner.Options{}, report)

	require.NoError(t, err)
	assert.True(t, passed)
	assert.Empty(t, report.Findings)
	assert.Empty(t, report.Sources)
	require.Len(t, engine.calls, 2)
	assert.Equal(t, "a.css", engine.calls[0].opts.From)
	assert.Equal(t, "a.css", engine.calls[0].opts.To)
	assert.Equal(t, config.SyntaxSCSS, engine.calls[0].opts.Syntax)
	assert.Equal(t, "a {}\n", engine.calls[0].source)
}

func TestRun_ProgressPerFile(t *testing.T) {
	t.Parallel()

	files := map[string]string{"/work/a.css": "", "/work/sub/b.css": ""}
	var events []progressEvent

	_, err := newRunner(&fakeEngine{}, files).Run(context.Background(),
		[]string{"/work/a.css", "/work/sub/b.css"},
		runner.Options{Progress: recordProgress(&events)}, nil)

	require.NoError(t, err)
	assert.Equal(t, []progressEvent{
		{0, "linting CSS: starting"},
		{0, "linting CSS: a.css"},
		{0.5, "linting CSS: sub/b.css"},
		{1, "linting CSS: done"},
	}, events)
}

func TestRun_StyleMessages(t *testing.T) {
	t.Parallel()

	files := map[string]string{"/work/a.css": "a { color: #FFF; }\n"}
	engine := &fakeEngine{responses: map[string]func() (*lint.Result, error){
		"a.css": messages(
			lint.Message{
				Text:     `Expected "#FFF" to be "#fff" (color-hex-case)`,
				Severity: config.SeverityWarning,
				Line:     1,
				Column:   12,
			},
			lint.Message{Text: "Unknown rule nope.", Severity: config.SeverityError, Line: 1, Column: 1},
		),
	}}

	report, passed, err := newRunner(engine, files).Lint(context.Background(),
		[]string{"/work/a.css"}, runner.Options{})

	require.NoError(t, err)
	assert.False(t, passed)
	assert.Equal(t, []runner.Finding{
		{
			Ctx:      runner.CtxCSS,
			Filename: "a.css",
			Line:     1,
			Column:   12,
			Message:  `Expected "#FFF" to be "#fff"`,
			RuleProc: runner.RuleProcStyle,
			RuleID:   "color-hex-case",
			Severity: config.SeverityWarning,
		},
		{
			Ctx:      runner.CtxCSS,
			Filename: "a.css",
			Line:     1,
			Column:   1,
			Message:  "Unknown rule nope.",
			RuleProc: runner.RuleProcStyle,
			RuleID:   runner.RuleIDUnknown,
			Severity: config.SeverityError,
		},
	}, report.Findings)
	assert.Equal(t, map[string]string{"a.css": "a { color: #FFF; }\n"}, report.Sources)
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	files := map[string]string{"/work/a.scss": "a {"}
	engine := &fakeEngine{responses: map[string]func() (*lint.Result, error){
		"a.scss": failing(fmt.Errorf("parse error: %w",
			&css.SyntaxError{File: "a.scss", Line: 1, Column: 1, Reason: css.ReasonUnclosedBlock})),
	}}

	report, passed, err := newRunner(engine, files).Lint(context.Background(),
		[]string{"/work/a.scss"}, runner.Options{})

	require.NoError(t, err)
	assert.False(t, passed)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, runner.Finding{
		Ctx:      runner.CtxCSS,
		Filename: "a.scss",
		Line:     1,
		Column:   1,
		Message:  "Unclosed block",
		RuleProc: runner.RuleProcParser,
		RuleID:   runner.RuleIDWildcard,
		Severity: config.SeverityError,
	}, report.Findings[0])
	assert.Equal(t, "a {", report.Sources["a.scss"])
}

func TestRun_UnknownError(t *testing.T) {
	t.Parallel()

	files := map[string]string{"/work/a.css": "x"}
	engine := &fakeEngine{responses: map[string]func() (*lint.Result, error){
		"a.css": failing(errors.New("boom")),
	}}

	report, passed, err := newRunner(engine, files).Lint(context.Background(),
		[]string{"/work/a.css"}, runner.Options{})

	require.NoError(t, err)
	assert.False(t, passed)
	require.Len(t, report.Findings, 1)
	f := report.Findings[0]
	assert.Equal(t, 1, f.Line)
	assert.Equal(t, 1, f.Column)
	assert.Equal(t, "UNKNOWN PARSING ERROR: boom", f.Message)
	assert.Equal(t, runner.RuleProcParser, f.RuleProc)
	assert.Equal(t, runner.RuleIDWildcard, f.RuleID)
	assert.Equal(t, "x", report.Sources["a.css"])
}

func TestRun_EnginePanicIsUnknownError(t *testing.T) {
	t.Parallel()

	files := map[string]string{"/work/a.css": "x", "/work/b.css": "y"}
	engine := &fakeEngine{responses: map[string]func() (*lint.Result, error){
		"a.css": func() (*lint.Result, error) { panic("kaboom") },
	}}

	report, passed, err := newRunner(engine, files).Lint(context.Background(),
		[]string{"/work/a.css", "/work/b.css"}, runner.Options{})

	require.NoError(t, err)
	assert.False(t, passed)
	require.Len(t, report.Findings, 1)
	assert.Contains(t, report.Findings[0].Message, "UNKNOWN PARSING ERROR")
	assert.Contains(t, report.Findings[0].Message, "kaboom")
	assert.Len(t, engine.calls, 2, "run continues after a panic")
}

func TestRun_ReadErrorIsFatal(t *testing.T) {
	t.Parallel()

	files := map[string]string{"/work/a.css": "a{}", "/work/c.css": "c{}"}
	engine := &fakeEngine{responses: map[string]func() (*lint.Result, error){
		"a.css": messages(lint.Message{Text: "bad (block-no-empty)", Line: 1, Column: 2}),
	}}
	var events []progressEvent
	report := runner.NewReport()

	passed, err := newRunner(engine, files).Run(context.Background(),
		[]string{"/work/a.css", "/work/missing.css", "/work/c.css"},
		runner.Options{Progress: recordProgress(&events)}, report)

	require.Error(t, err)
	require.ErrorIs(t, err, runner.ErrReadFailure)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, passed)

	require.Len(t, report.Findings, 1, "findings before the failure are kept")
	assert.Equal(t, "a.css", report.Findings[0].Filename)
	assert.Len(t, engine.calls, 1, "files after the failure are not processed")

	last := events[len(events)-1]
	assert.Equal(t, "linting CSS: missing.css", last.message, "no done event after a fatal error")
}

func TestRun_AppendsToExistingReport(t *testing.T) {
	t.Parallel()

	files := map[string]string{"/work/a.css": "a{}"}
	engine := &fakeEngine{responses: map[string]func() (*lint.Result, error){
		"a.css": messages(lint.Message{Text: "x (r)", Line: 2, Column: 3}),
	}}
	report := runner.NewReport()
	report.Findings = append(report.Findings, runner.Finding{Filename: "old.css", Message: "earlier"})
	report.Sources["old.css"] = "old"

	_, err := newRunner(engine, files).Run(context.Background(), []string{"/work/a.css"}, runner.Options{}, report)

	require.NoError(t, err)
	require.Len(t, report.Findings, 2)
	assert.Equal(t, "earlier", report.Findings[0].Message)
	assert.Equal(t, "old", report.Sources["old.css"])
	assert.Equal(t, []string{"old.css", "a.css"}, report.Files())
}

func TestRun_SourcesOnlyForFilesWithFindings(t *testing.T) {
	t.Parallel()

	files := map[string]string{"/work/ok.css": "ok", "/work/bad.css": "bad"}
	engine := &fakeEngine{responses: map[string]func() (*lint.Result, error){
		"bad.css": messages(lint.Message{Text: "nope (r)", Line: 1, Column: 1}),
	}}

	report, passed, err := newRunner(engine, files).Lint(context.Background(),
		[]string{"/work/ok.css", "/work/bad.css"}, runner.Options{})

	require.NoError(t, err)
	assert.False(t, passed)
	assert.Equal(t, map[string]string{"bad.css": "bad"}, report.Sources)
	for _, f := range report.Findings {
		assert.Contains(t, report.Sources, f.Filename)
	}
}

func TestRun_RuleOverridesDoNotAliasDefaults(t *testing.T) {
	t.Parallel()

	defaults := &config.RuleSet{
		DefaultSeverity: config.SeverityError,
		Rules:           map[string]any{"block-no-empty": true, "max-nesting-depth": 3},
	}
	overrides := map[string]any{"max-nesting-depth": 1, "color-hex-case": "lower"}
	files := map[string]string{"/work/a.css": "", "/work/b.css": ""}
	engine := &fakeEngine{}

	r := newRunner(engine, files)
	r.Defaults = defaults

	_, err := r.Run(context.Background(), []string{"/work/a.css", "/work/b.css"},
		runner.Options{Rules: overrides}, nil)
	require.NoError(t, err)

	require.Len(t, engine.calls, 2)
	first := engine.calls[0].ruleSet
	assert.Equal(t, map[string]any{
		"block-no-empty":    true,
		"max-nesting-depth": 1,
		"color-hex-case":    "lower",
	}, first.Rules)

	// Mutating one effective configuration leaks into nothing else.
	first.Rules["block-no-empty"] = false
	assert.Equal(t, true, engine.calls[1].ruleSet.Rules["block-no-empty"])
	assert.Equal(t, map[string]any{"block-no-empty": true, "max-nesting-depth": 3}, defaults.Rules)
	assert.Equal(t, map[string]any{"max-nesting-depth": 1, "color-hex-case": "lower"}, overrides)
	assert.NotSame(t, engine.calls[0].ruleSet, engine.calls[1].ruleSet)
}

func TestRun_UsesDefaultRuleSetWhenUnset(t *testing.T) {
	t.Parallel()

	files := map[string]string{"/work/a.css": ""}
	engine := &fakeEngine{}

	_, err := newRunner(engine, files).Run(context.Background(), []string{"/work/a.css"}, runner.Options{}, nil)
	require.NoError(t, err)

	require.Len(t, engine.calls, 1)
	assert.Equal(t, config.DefaultRuleSet().Rules, engine.calls[0].ruleSet.Rules)
}

func TestRun_RelativeNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "absolute inside", input: "/work/css/a.css", want: "css/a.css"},
		{name: "relative", input: "css/b.css", want: "css/b.css"},
		{name: "outside", input: "/other/c.css", want: "../other/c.css"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := &fakeEngine{}
			loader := runner.LoaderFunc(func(context.Context, string) (string, error) { return "", nil })
			r := runner.New(engine, loader)
			r.WorkingDir = "/work"

			_, err := r.Run(context.Background(), []string{tt.input}, runner.Options{}, nil)
			require.NoError(t, err)
			require.Len(t, engine.calls, 1)
			assert.Equal(t, tt.want, engine.calls[0].opts.From)
		})
	}
}

func TestRun_SyntaxSelection(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"/work/a.css":  ".a { color: red; }\n",
		"/work/b.scss": "$x: 1;\n",
	}

	t.Run("explicit", func(t *testing.T) {
		t.Parallel()
		engine := &fakeEngine{}
		_, err := newRunner(engine, files).Run(context.Background(), []string{"/work/b.scss"},
			runner.Options{Syntax: config.SyntaxCSS}, nil)
		require.NoError(t, err)
		assert.Equal(t, config.SyntaxCSS, engine.calls[0].opts.Syntax)
	})

	t.Run("auto", func(t *testing.T) {
		t.Parallel()
		engine := &fakeEngine{}
		_, err := newRunner(engine, files).Run(context.Background(), []string{"/work/a.css", "/work/b.scss"},
			runner.Options{Syntax: config.SyntaxAuto}, nil)
		require.NoError(t, err)
		require.Len(t, engine.calls, 2)
		assert.Equal(t, config.SyntaxCSS, engine.calls[0].opts.Syntax)
		assert.Equal(t, config.SyntaxSCSS, engine.calls[1].opts.Syntax)
	})
}

func TestRun_IgnoresCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var seen []error
	engine := &ctxEngine{seen: &seen}
	loader := runner.LoaderFunc(func(context.Context, string) (string, error) { return "", nil })
	r := runner.New(engine, loader)
	r.WorkingDir = "/work"

	passed, err := r.Run(ctx, []string{"a.css", "b.css"}, runner.Options{}, nil)

	require.NoError(t, err)
	assert.True(t, passed)
	assert.Equal(t, []error{nil, nil}, seen)
}

type ctxEngine struct{ seen *[]error }

func (e *ctxEngine) Process(ctx context.Context, _ string, _ *config.RuleSet, _ runner.ProcessOptions) (*lint.Result, error) {
	*e.seen = append(*e.seen, ctx.Err())
	return &lint.Result{}, nil
}

func TestRun_ProgressCanReadReport(t *testing.T) {
	t.Parallel()

	files := map[string]string{"/work/a.css": "a", "/work/b.css": "b"}
	engine := &fakeEngine{responses: map[string]func() (*lint.Result, error){
		"a.css": messages(lint.Message{Text: "x (r)", Line: 1, Column: 1}),
	}}
	report := runner.NewReport()

	var seen []int
	progress := func(float64, string) { seen = append(seen, report.Len()) }

	done := make(chan struct{})
	var passed bool
	var err error
	go func() {
		defer close(done)
		passed, err = newRunner(engine, files).Run(context.Background(),
			[]string{"/work/a.css", "/work/b.css"}, runner.Options{Progress: progress}, report)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return while its progress callback read the report")
	}

	require.NoError(t, err)
	assert.False(t, passed)
	assert.Equal(t, []int{0, 0, 1, 1}, seen)
}

func TestRun_LoaderCanReadReport(t *testing.T) {
	t.Parallel()

	report := runner.NewReport()
	var files []string
	loader := runner.LoaderFunc(func(context.Context, string) (string, error) {
		files = append(files, report.Files()...)
		return "a", nil
	})
	engine := &fakeEngine{responses: map[string]func() (*lint.Result, error){
		"a.css": messages(lint.Message{Text: "x (r)", Line: 1, Column: 1}),
	}}
	r := runner.New(engine, loader)
	r.WorkingDir = "/work"

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = r.Run(context.Background(), []string{"/work/a.css", "/work/b.css"}, runner.Options{}, report)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return while its loader read the report")
	}
	assert.Equal(t, []string{"a.css"}, files)
}

func TestRun_ReportReadableMidRun(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	engine := &fakeEngine{responses: map[string]func() (*lint.Result, error){
		"b.css": func() (*lint.Result, error) {
			close(started)
			<-release
			return &lint.Result{}, nil
		},
		"a.css": messages(lint.Message{Text: "x (r)", Line: 1, Column: 1}),
	}}
	files := map[string]string{"/work/a.css": "a", "/work/b.css": "b"}
	report := runner.NewReport()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = newRunner(engine, files).Run(context.Background(),
			[]string{"/work/a.css", "/work/b.css"}, runner.Options{}, report)
	}()

	<-started
	assert.Equal(t, 1, report.Len())
	src, ok := report.Source("a.css")
	assert.True(t, ok)
	assert.Equal(t, "a", src)

	close(release)
	<-done
}

func TestRun_SerializesRunsOnSharedReport(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	first := &fakeEngine{responses: map[string]func() (*lint.Result, error){
		"a.css": func() (*lint.Result, error) {
			close(started)
			<-release
			return &lint.Result{Messages: []lint.Message{{Text: "first (r)", Line: 1, Column: 1}}}, nil
		},
	}}
	secondCalled := make(chan struct{})
	second := &fakeEngine{responses: map[string]func() (*lint.Result, error){
		"b.css": func() (*lint.Result, error) {
			close(secondCalled)
			return &lint.Result{Messages: []lint.Message{{Text: "second (r)", Line: 1, Column: 1}}}, nil
		},
	}}
	files := map[string]string{"/work/a.css": "a", "/work/b.css": "b"}
	report := runner.NewReport()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = newRunner(first, files).Run(context.Background(), []string{"/work/a.css"}, runner.Options{}, report)
	}()
	<-started
	go func() {
		defer wg.Done()
		_, _ = newRunner(second, files).Run(context.Background(), []string{"/work/b.css"}, runner.Options{}, report)
	}()

	select {
	case <-secondCalled:
		t.Fatal("second run started while the first still held the report")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	wg.Wait()

	require.Len(t, report.Findings, 2)
	assert.Equal(t, "first", report.Findings[0].Message)
	assert.Equal(t, "second", report.Findings[1].Message)
}

func TestRun_NoEngine(t *testing.T) {
	t.Parallel()

	passed, err := (&runner.Runner{}).Run(context.Background(), []string{"a.css"}, runner.Options{}, nil)
	require.Error(t, err)
	assert.False(t, passed)
}

func TestFileLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.css")
	require.NoError(t, os.WriteFile(path, []byte("a {}\n"), 0o600))

	got, err := runner.FileLoader{}.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "a {}\n", got)

	_, err = runner.FileLoader{}.Load(context.Background(), filepath.Join(dir, "missing.css"))
	require.Error(t, err)
}
