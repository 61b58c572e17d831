package backtrack

import (
	"fmt"
	"strings"
)

// subsets enumerates every subset of distinct elements. Every node is a
// result; children extend the path with elements after the last chosen one.
type subsets struct {
	elems []string
	index map[string]int
}

// Subsets returns the power-set Problem over elems, visited in input order.
// Elements must be non-empty and distinct; at most MaxChoices are accepted.
func Subsets(elems []string) (Problem, error) {
	if len(elems) > MaxChoices {
		return nil, fmt.Errorf("%w: %d elements, limit %d", ErrTooManyChoices, len(elems), MaxChoices)
	}
	p := &subsets{elems: make([]string, len(elems)), index: make(map[string]int, len(elems))}
	for i, e := range elems {
		if e == "" {
			return nil, fmt.Errorf("%w: empty element at index %d", ErrInvalidChoice, i)
		}
		if j, dup := p.index[e]; dup {
			return nil, fmt.Errorf("%w: %q at index %d and %d", ErrDuplicateChoice, e, j, i)
		}
		p.index[e] = i
		p.elems[i] = e
	}
	return p, nil
}

func (p *subsets) Name() string { return "subsets" }

func (p *subsets) Branches(path []string) []string {
	start := 0
	if n := len(path); n > 0 {
		start = p.index[path[n-1]] + 1
	}
	return p.elems[start:]
}

func (p *subsets) Accept([]string) bool { return true }

func (p *subsets) Format(path []string) string { return "[" + strings.Join(path, ",") + "]" }

// parentheses enumerates balanced sequences of n pairs.
type parentheses struct {
	n int
}

// Parentheses returns the balanced-sequence Problem for n pairs, choosing
// '(' before ')'. n must lie in [0, MaxPairs].
func Parentheses(n int) (Problem, error) {
	if n < 0 || n > MaxPairs {
		return nil, fmt.Errorf("%w: %d, want [0,%d]", ErrPairsOutOfRange, n, MaxPairs)
	}
	return &parentheses{n: n}, nil
}

func (p *parentheses) Name() string { return "parentheses" }

func (p *parentheses) Branches(path []string) []string {
	opens, closes := 0, 0
	for _, s := range path {
		if s == "(" {
			opens++
		} else {
			closes++
		}
	}
	out := make([]string, 0, 2)
	if opens < p.n {
		out = append(out, "(")
	}
	if closes < opens {
		out = append(out, ")")
	}
	return out
}

func (p *parentheses) Accept(path []string) bool { return len(path) == 2*p.n }

func (p *parentheses) Format(path []string) string { return strings.Join(path, "") }

// keypad maps phone digits to letters in dialing order.
var keypad = map[byte]string{
	'2': "abc", '3': "def", '4': "ghi", '5': "jkl",
	'6': "mno", '7': "pqrs", '8': "tuv", '9': "wxyz",
}

// letters enumerates keypad letter combinations for a digit string.
type letters struct {
	digits string
}

// LetterCombinations returns the Problem spelling every letter combination
// of digits on a phone keypad. Digits must be 2-9; at most MaxDigits. An
// empty string is valid and has no results.
func LetterCombinations(digits string) (Problem, error) {
	if len(digits) > MaxDigits {
		return nil, fmt.Errorf("%w: %d digits, limit %d", ErrTooManyChoices, len(digits), MaxDigits)
	}
	for i := 0; i < len(digits); i++ {
		if _, ok := keypad[digits[i]]; !ok {
			return nil, fmt.Errorf("%w: %q at index %d", ErrInvalidDigit, digits[i], i)
		}
	}
	return &letters{digits: digits}, nil
}

func (p *letters) Name() string { return "letter-combinations" }

func (p *letters) Branches(path []string) []string {
	if len(path) >= len(p.digits) {
		return nil
	}
	keys := keypad[p.digits[len(path)]]
	out := make([]string, len(keys))
	for i := range keys {
		out[i] = keys[i : i+1]
	}
	return out
}

func (p *letters) Accept(path []string) bool {
	return len(p.digits) > 0 && len(path) == len(p.digits)
}

func (p *letters) Format(path []string) string { return strings.Join(path, "") }
