package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/sampler"
)

// Variant selects the 2D (free variable x) or 3D (free variables x, y) grammar.
type Variant int

const (
	// Variant2D parses line plots over x.
	Variant2D Variant = iota
	// Variant3D parses surfaces over x and y.
	Variant3D
)

func (v Variant) String() string {
	if v == Variant3D {
		return "3d"
	}
	return "2d"
}

// Rules configures directive acceptance.
type Rules struct {
	// Variant selects the grammar.
	Variant Variant
	// MinSamples and MaxSamples bound a 2D "samples N" directive. Counts
	// outside the bounds are treated as no-match. 3D counts are accepted
	// as-is and clamped by the caller.
	MinSamples int
	MaxSamples int
}

// Directives holds the values recognized in the input. Nil means "not given".
type Directives struct {
	X          *sampler.Range
	Y          *sampler.Range
	Resolution *sampler.Resolution
}

// Extraction is the result of separating directives from expressions.
type Extraction struct {
	Directives Directives
	// Expressions are the candidate expression tokens in input order.
	Expressions []string
}

type directiveKind int

const (
	kindRangeX directiveKind = iota
	kindRangeY
	kindRangeDomain
	kindStep
	kindCount
)

type directivePattern struct {
	kind directiveKind
	re   *regexp.Regexp
	// leadingAxis is set when the match begins with the axis variable.
	leadingAxis bool
}

const numberCapture = `([-+]?[^\s,;\[\]()<>=]+)`

func rangePatterns(axis string, kind directiveKind) []directivePattern {
	return []directivePattern{
		{kind, regexp.MustCompile(`(?i)\b` + axis + `\s+from\s+` + numberCapture + `\s+to\s+` + numberCapture), true},
		{kind, regexp.MustCompile(`(?i)\b` + axis + `\s+between\s+` + numberCapture + `\s+and\s+` + numberCapture), true},
		{kind, regexp.MustCompile(`(?i)\b` + axis + `\s+in\s*[\[(]\s*` + numberCapture + `\s*,\s*` + numberCapture + `\s*[\])]`), true},
		{kind, regexp.MustCompile(`(?i)` + numberCapture + `\s*<=?\s*` + axis + `\s*<=?\s*` + numberCapture), false},
	}
}

var (
	domainPattern = directivePattern{kindRangeDomain, regexp.MustCompile(`(?i)\bdomain\s*:?\s*[\[(]\s*` + numberCapture + `\s*,\s*` + numberCapture + `\s*[\])]`), false}
	stepPattern   = directivePattern{kindStep, regexp.MustCompile(`(?i)\bstep\s*[:=]?\s*` + numberCapture), false}
	count2D       = directivePattern{kindCount, regexp.MustCompile(`(?i)\b(?:samples|points|resolution)\s*[:=]?\s*([^\s,;]+)`), false}
	// A non-integer count such as "grid 4.5" must not match at all.
	count3D = directivePattern{kindCount, regexp.MustCompile(`(?i)\b(?:grid|resolution|samples)\s*[:=]?\s*(\d+)(?:\s*[x×*]\s*\d+)?(?:$|[\s,;])`), false}

	patterns2D = concatPatterns(rangePatterns("x", kindRangeX), []directivePattern{domainPattern, stepPattern, count2D})
	patterns3D = concatPatterns(rangePatterns("x", kindRangeX), rangePatterns("y", kindRangeY), []directivePattern{domainPattern, stepPattern, count3D})
)

// connectorPattern matches connector words left dangling after a directive
// is removed ("y = sin(x) for", "and").
var connectorPattern = regexp.MustCompile(`(?i)(?:^\s*(?:for|where|over|with|on|and)\b|\b(?:for|where|over|with|on|and)\s*$)`)

func concatPatterns(groups ...[]directivePattern) []directivePattern {
	var all []directivePattern
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// match is a single accepted directive occurrence within a token.
type match struct {
	start, end  int
	priority    int
	kind        directiveKind
	leadingAxis bool
	values      []string
}

// ExtractDirectives scans tokens in order, records recognized directives
// (the last occurrence of each parameter wins) and returns the remaining
// text of each token as an expression candidate.
func ExtractDirectives(tokens []string, rules Rules) Extraction {
	var ext Extraction
	pats := patterns2D
	if rules.Variant == Variant3D {
		pats = patterns3D
	}

	for _, token := range tokens {
		rest := extractFromToken(token, pats, rules, &ext.Directives)
		if rest != "" {
			ext.Expressions = append(ext.Expressions, rest)
		}
	}

	return ext
}

// ParseRange returns the last range directive for axis ("x" or "y") in
// token. A "domain [A,B]" directive applies to either axis.
func ParseRange(token, axis string) (sampler.Range, bool) {
	var d Directives
	extractFromToken(token, patterns3D, Rules{Variant: Variant3D}, &d)

	r := d.X
	if strings.EqualFold(axis, "y") {
		r = d.Y
	}
	if r == nil {
		return sampler.Range{}, false
	}
	return *r, true
}

// ParseResolution returns the last step or count directive in token under
// the given rules.
func ParseResolution(token string, rules Rules) (sampler.Resolution, bool) {
	pats := patterns2D
	if rules.Variant == Variant3D {
		pats = patterns3D
	}

	var d Directives
	extractFromToken(token, pats, rules, &d)
	if d.Resolution == nil {
		return sampler.Resolution{}, false
	}
	return *d.Resolution, true
}

// extractFromToken applies every directive found in token and returns what is left.
func extractFromToken(token string, pats []directivePattern, rules Rules, d *Directives) string {
	var found []match
	for priority, p := range pats {
		for _, loc := range p.re.FindAllStringSubmatchIndex(token, -1) {
			m := match{start: loc[0], end: loc[1], priority: priority, kind: p.kind, leadingAxis: p.leadingAxis}
			for i := 2; i+1 < len(loc); i += 2 {
				if loc[i] >= 0 {
					m.values = append(m.values, token[loc[i]:loc[i+1]])
				}
			}
			found = append(found, m)
		}
	}
	if len(found) == 0 {
		return strings.TrimSpace(token)
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].start != found[j].start {
			return found[i].start < found[j].start
		}
		return found[i].priority < found[j].priority
	})

	var b strings.Builder
	cursor := 0
	for _, m := range found {
		if m.start < cursor {
			continue // overlaps an accepted directive
		}
		if !apply(m, rules, d) {
			continue
		}
		b.WriteString(token[cursor:m.start])
		// In "y = x from 0 to 5" the axis is also the right-hand side.
		if m.leadingAxis && endsWithBareEquals(token[:m.start]) {
			b.WriteString(token[m.start : m.start+1])
		}
		b.WriteString(" ")
		cursor = m.end
	}
	b.WriteString(token[cursor:])

	return cleanRemainder(b.String())
}

// apply records m into d. Malformed numbers leave d untouched and report false.
func apply(m match, rules Rules, d *Directives) bool {
	switch m.kind {
	case kindRangeX, kindRangeY, kindRangeDomain:
		if len(m.values) != 2 {
			return false
		}
		lo, ok1 := ParseNumber(m.values[0])
		hi, ok2 := ParseNumber(m.values[1])
		if !ok1 || !ok2 {
			return false
		}
		r := sampler.Range{Min: lo, Max: hi}
		switch {
		case m.kind == kindRangeX:
			d.X = &r
		case m.kind == kindRangeY:
			d.Y = &r
		case rules.Variant == Variant3D:
			ry := r
			d.X, d.Y = &r, &ry
		default:
			d.X = &r
		}
		return true

	case kindStep:
		if len(m.values) != 1 {
			return false
		}
		step, ok := ParseNumber(m.values[0])
		if !ok || step <= 0 {
			return false
		}
		d.Resolution = &sampler.Resolution{Step: step}
		return true

	case kindCount:
		if len(m.values) != 1 {
			return false
		}
		n, ok := parseCount(m.values[0])
		if !ok {
			return false
		}
		if rules.Variant == Variant2D && (n < rules.MinSamples || n > rules.MaxSamples) {
			return false
		}
		d.Resolution = &sampler.Resolution{Count: n}
		return true
	}
	return false
}

// endsWithBareEquals reports whether s ends in "=" that is not part of
// "<=", ">=", "!=" or "==".
func endsWithBareEquals(s string) bool {
	s = strings.TrimRight(s, " \t")
	if !strings.HasSuffix(s, "=") {
		return false
	}
	s = s[:len(s)-1]
	return s == "" || !strings.ContainsAny(s[len(s)-1:], "<>!=")
}

// cleanRemainder trims separators and dangling connector words.
func cleanRemainder(s string) string {
	for {
		prev := s
		s = strings.Trim(s, " \t,")
		s = connectorPattern.ReplaceAllString(s, "")
		if s == prev {
			return s
		}
	}
}
