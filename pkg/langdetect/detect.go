// Package langdetect detects the stylesheet dialect of a source file.
// It uses go-enry for extension and content classification, primarily
// for resolving the "auto" syntax setting per file.
package langdetect

import (
	"bytes"
	"regexp"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/gocsslint/pkg/config"
)

// enry language names mapped to parser dialects.
var dialects = map[string]config.Syntax{
	"CSS":      config.SyntaxCSS,
	"SCSS":     config.SyntaxSCSS,
	"Markdown": config.SyntaxMarkdown,
}

// classifierCandidates restricts the classifier to the supported dialects.
var classifierCandidates = []string{"CSS", "SCSS", "Markdown"}

var (
	scssVariable  = regexp.MustCompile(`(?m)^\s*\$[\w-]+\s*:`)
	scssDirective = regexp.MustCompile(`@(mixin|include|extend|use|forward|function|if|each)\b`)
	scssNesting   = regexp.MustCompile(`(?m)^\s*&`)
	markdownFence = regexp.MustCompile("(?m)^\\s*(```|~~~)")
)

// DetectSyntax returns the dialect of a file.
//
// Detection order:
//  1. The file extension, through enry.
//  2. SCSS and Markdown markers in the content.
//  3. The enry classifier restricted to CSS, SCSS and Markdown.
//
// Returns scss when nothing matches, since scss accepts plain CSS.
func DetectSyntax(path string, content []byte) config.Syntax {
	for _, lang := range enry.GetLanguagesByExtension(path, content, nil) {
		if syntax, ok := dialects[lang]; ok {
			return syntax
		}
	}

	if syntax := detectByPattern(content); syntax != "" {
		return syntax
	}

	if len(bytes.TrimSpace(content)) > 0 {
		if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe {
			if syntax, ok := dialects[lang]; ok {
				return syntax
			}
		}
	}

	return config.SyntaxSCSS
}

// Resolve returns syntax unchanged unless it is auto (or empty), in which
// case the dialect is detected from path and content.
func Resolve(syntax config.Syntax, path string, content []byte) config.Syntax {
	if syntax != config.SyntaxAuto && syntax != "" {
		return syntax
	}
	return DetectSyntax(path, content)
}

// detectByPattern checks for markers that are highly indicative of a dialect.
func detectByPattern(content []byte) config.Syntax {
	switch {
	case markdownFence.Match(content):
		return config.SyntaxMarkdown
	case scssVariable.Match(content), scssDirective.Match(content), scssNesting.Match(content):
		return config.SyntaxSCSS
	}
	return ""
}
