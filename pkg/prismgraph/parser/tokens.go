// Package parser splits free-text graph commands into directives and expressions.
package parser

import (
	"regexp"
	"strings"
)

// commandVerbPattern matches a leading verb such as "plot" or "graph:".
var commandVerbPattern = regexp.MustCompile(`(?i)^\s*(?:plot|graph|draw|show)\b\s*:?\s*`)

// Tokenize splits raw input into ordered, trimmed, non-empty tokens.
// Statements are separated by newlines or semicolons and each statement is
// split again on commas that are not nested inside parentheses or brackets.
func Tokenize(input string) []string {
	var tokens []string

	for _, statement := range SplitStatements(input) {
		statement = commandVerbPattern.ReplaceAllString(statement, "")
		for _, part := range splitTopLevel(statement, ',') {
			part = strings.TrimSpace(part)
			if part != "" {
				tokens = append(tokens, part)
			}
		}
	}

	return tokens
}

// SplitStatements splits input on newlines and semicolons.
func SplitStatements(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ';'
	})

	var statements []string
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field != "" {
			statements = append(statements, field)
		}
	}
	return statements
}

// splitTopLevel splits s on sep, ignoring separators nested in () or [].
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	depth := 0
	start := 0

	for i, r := range s {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + len(string(sep))
			}
		}
	}

	return append(parts, s[start:])
}
