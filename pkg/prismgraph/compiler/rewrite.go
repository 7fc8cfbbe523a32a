package compiler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokLParen
	tokRParen
	tokOp
	tokComma
	tokOther
)

type token struct {
	kind tokenKind
	text string
}

// operatorAliases maps typographic operators to their ASCII form.
var operatorAliases = map[rune]string{
	'×': "*",
	'·': "*",
	'÷': "/",
	'−': "-",
}

// lex splits an expression into tokens. Identifiers are lower-cased and
// "**" is folded into "^".
func lex(s string) ([]token, error) {
	var tokens []token
	runes := []rune(strings.ReplaceAll(s, "π", "pi"))

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case unicode.IsDigit(r) || (r == '.' && i+1 < len(runes) && unicode.IsDigit(runes[i+1])):
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			hasExp := false
			if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
				j := i + 1
				if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
					j++
				}
				if j < len(runes) && unicode.IsDigit(runes[j]) {
					hasExp = true
					for j < len(runes) && unicode.IsDigit(runes[j]) {
						j++
					}
					i = j
				}
			}
			text := string(runes[start:i])
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q", text)
			}
			if hasExp {
				text = strconv.FormatFloat(v, 'f', -1, 64)
			}
			tokens = append(tokens, token{tokNumber, text})

		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, token{tokIdent, strings.ToLower(string(runes[start:i]))})

		case r == '(' || r == '[':
			tokens = append(tokens, token{tokLParen, "("})
			i++

		case r == ')' || r == ']':
			tokens = append(tokens, token{tokRParen, ")"})
			i++

		case r == '*' && i+1 < len(runes) && runes[i+1] == '*':
			tokens = append(tokens, token{tokOp, "^"})
			i += 2

		case strings.ContainsRune("+-*/^%", r):
			tokens = append(tokens, token{tokOp, string(r)})
			i++

		case r == ',':
			tokens = append(tokens, token{tokComma, ","})
			i++

		case strings.ContainsRune("<>=!&|", r):
			tokens = append(tokens, token{tokOther, string(r)})
			i++

		default:
			if alias, ok := operatorAliases[r]; ok {
				tokens = append(tokens, token{tokOp, alias})
				i++
				continue
			}
			return nil, fmt.Errorf("unexpected character %q", r)
		}
	}

	return tokens, nil
}

// prepare lexes expression, validates identifiers against vars, constants
// and functions, and returns a canonical source string using "^" for powers,
// explicit multiplication, parenthesized unary minus in power chains and
// explicitly right-grouped power chains.
func prepare(expression string, vars []string) (string, error) {
	tokens, err := lex(expression)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", fmt.Errorf("empty expression")
	}

	known := make(map[string]bool, len(vars))
	for _, v := range vars {
		known[v] = true
	}

	for i, t := range tokens {
		if t.kind != tokIdent {
			continue
		}
		calls := i+1 < len(tokens) && tokens[i+1].kind == tokLParen
		switch {
		case IsFunction(t.text) && calls:
		case IsFunction(t.text):
			return "", fmt.Errorf("function %s must be called with parentheses", t.text)
		case known[t.text]:
		case isConstant(t.text):
		default:
			return "", fmt.Errorf("unknown identifier %q", t.text)
		}
	}

	tokens = insertImplicitMultiplication(tokens)
	tokens = dropUnaryPlus(tokens)
	tokens = wrapNegatedPowers(tokens)
	tokens = groupPowersRight(tokens)

	return join(tokens), nil
}

func isConstant(name string) bool {
	_, ok := Constants[name]
	return ok
}

// endsOperand reports whether t can end an operand.
func endsOperand(t token) bool {
	return t.kind == tokNumber || t.kind == tokRParen || (t.kind == tokIdent && !IsFunction(t.text))
}

// startsOperand reports whether t can start an operand.
func startsOperand(t token) bool {
	return t.kind == tokNumber || t.kind == tokIdent || t.kind == tokLParen
}

// insertImplicitMultiplication turns "2x", "3(x+1)", "(x+1)(x-1)" and
// "2sin(x)" into explicit products.
func insertImplicitMultiplication(tokens []token) []token {
	out := make([]token, 0, len(tokens))
	for i, t := range tokens {
		if i > 0 {
			prev := tokens[i-1]
			if endsOperand(prev) && startsOperand(t) && !(prev.kind == tokNumber && t.kind == tokNumber) {
				out = append(out, token{tokOp, "*"})
			}
		}
		out = append(out, t)
	}
	return out
}

// isUnaryPosition reports whether an operator at index i is a prefix operator.
func isUnaryPosition(tokens []token, i int) bool {
	if i == 0 {
		return true
	}
	switch tokens[i-1].kind {
	case tokOp, tokLParen, tokComma, tokOther:
		return true
	}
	return false
}

func dropUnaryPlus(tokens []token) []token {
	out := make([]token, 0, len(tokens))
	for i, t := range tokens {
		if t.kind == tokOp && t.text == "+" && isUnaryPosition(tokens, i) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// wrapNegatedPowers rewrites "-a^b" as "(0-a^b)" so every engine gives
// unary minus a lower precedence than exponentiation.
func wrapNegatedPowers(tokens []token) []token {
	out := make([]token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.kind != tokOp || t.text != "-" || !isUnaryPosition(tokens, i) {
			out = append(out, t)
			continue
		}

		end, hasPower := powerChainEnd(tokens, i+1)
		if end < 0 || !hasPower {
			out = append(out, t)
			continue
		}

		out = append(out, token{tokLParen, "("}, token{tokNumber, "0"}, token{tokOp, "-"})
		out = append(out, wrapNegatedPowers(tokens[i+1:end])...)
		out = append(out, token{tokRParen, ")"})
		i = end - 1
	}
	return out
}

// groupPowersRight rewrites "a^b^c" as "a^(b^c)". govaluate groups "**"
// to the left, expr to the right.
func groupPowersRight(tokens []token) []token {
	out := make([]token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		out = append(out, t)
		if t.kind != tokOp || t.text != "^" {
			continue
		}

		end, hasPower := powerChainEnd(tokens, i+1)
		if end < 0 || !hasPower {
			continue
		}

		out = append(out, token{tokLParen, "("})
		out = append(out, groupPowersRight(tokens[i+1:end])...)
		out = append(out, token{tokRParen, ")"})
		i = end - 1
	}
	return out
}

// powerChainEnd returns the end of "primary (^ primary)*" starting at i.
func powerChainEnd(tokens []token, i int) (end int, hasPower bool) {
	end = primaryEnd(tokens, i)
	for end > 0 && end < len(tokens) && tokens[end].kind == tokOp && tokens[end].text == "^" {
		hasPower = true
		end = primaryEnd(tokens, end+1)
	}
	return end, hasPower
}

// primaryEnd returns the index after the primary starting at i, or -1.
func primaryEnd(tokens []token, i int) int {
	if i >= len(tokens) {
		return -1
	}
	switch t := tokens[i]; t.kind {
	case tokNumber:
		return i + 1
	case tokIdent:
		if IsFunction(t.text) {
			return matchingParen(tokens, i+1)
		}
		return i + 1
	case tokLParen:
		return matchingParen(tokens, i)
	case tokOp:
		if t.text == "-" {
			return primaryEnd(tokens, i+1)
		}
	}
	return -1
}

// matchingParen returns the index after the parenthesis closing tokens[i].
func matchingParen(tokens []token, i int) int {
	if i >= len(tokens) || tokens[i].kind != tokLParen {
		return -1
	}
	depth := 0
	for j := i; j < len(tokens); j++ {
		switch tokens[j].kind {
		case tokLParen:
			depth++
		case tokRParen:
			depth--
			if depth == 0 {
				return j + 1
			}
		}
	}
	return -1
}

func join(tokens []token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 && isWord(tokens[i-1]) && isWord(t) {
			b.WriteByte(' ')
		}
		b.WriteString(t.text)
	}
	return b.String()
}

func isWord(t token) bool {
	return t.kind == tokNumber || t.kind == tokIdent
}
