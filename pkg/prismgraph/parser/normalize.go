package parser

import (
	"regexp"
	"strings"
)

var (
	prefix2D = regexp.MustCompile(`(?i)^\s*(?:y|[fgh]\s*\(\s*x\s*\))\s*=`)
	prefix3D = regexp.MustCompile(`(?i)^\s*(?:z|[fgh]\s*\(\s*x\s*,\s*y\s*\))\s*=`)
)

// Normalize strips human notation ("y =", "f(x) =", "z =", "f(x,y) =") from
// a candidate token and, if a bare "=" remains, keeps its right-hand side.
// It does not validate syntax. An empty result means the token should be
// skipped.
func Normalize(token string, variant Variant) string {
	prefix := prefix2D
	if variant == Variant3D {
		prefix = prefix3D
	}

	s := strings.TrimSpace(token)
	if loc := prefix.FindStringIndex(s); loc != nil && !strings.HasPrefix(s[loc[1]:], "=") {
		s = s[loc[1]:]
	}

	if i := lastBareEquals(s); i >= 0 {
		s = s[i+1:]
	}

	return strings.TrimSpace(s)
}

// lastBareEquals returns the index of the last "=" that is not part of a
// comparison operator ("==", "<=", ">=", "!="), or -1.
func lastBareEquals(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != '=' {
			continue
		}
		if i > 0 && strings.ContainsRune("=<>!", rune(s[i-1])) {
			i--
			continue
		}
		if i+1 < len(s) && s[i+1] == '=' {
			continue
		}
		return i
	}
	return -1
}
