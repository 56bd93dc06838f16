// Package steps parses composite-action tokens such as
// `fill:label:"Email"="user@example.com"` and compiles them into the
// wire-ready execution steps consumed by agent/act.
package steps

import (
	"errors"
	"fmt"

	"github.com/browseragentprotocol/bap-go/api/schemas"
	"github.com/browseragentprotocol/bap-go/internal/selector"
)

// ErrSyntax marks a malformed composite token.
var ErrSyntax = errors.New("step syntax error")

// ParsedStep is the intermediate form of one composite token: a canonical
// namespaced action id plus at most one payload field. It is consumed
// immediately by Compile and not retained.
type ParsedStep struct {
	Action   string
	Selector *schemas.Selector
	Value    string
	HasValue bool
	URL      string
	Key      string
}

// parameterlessActions maps whole tokens that are complete actions by
// themselves and take no payload.
var parameterlessActions = map[string]string{
	"snapshot":   "observe/ariaSnapshot",
	"screenshot": "observe/screenshot",
	"back":       "page/goBack",
	"forward":    "page/goForward",
	"reload":     "page/reload",
	"close":      "page/close",
}

// actionNames maps verb to canonical namespaced action id. Verbs not listed
// here map to action/<name>, keeping the grammar forward-compatible with
// new engine verbs.
var actionNames = map[string]string{
	"click":    "action/click",
	"dblclick": "action/dblclick",
	"fill":     "action/fill",
	"type":     "action/type",
	"press":    "action/press",
	"hover":    "action/hover",
	"scroll":   "action/scroll",
	"select":   "action/select",
	"check":    "action/check",
	"uncheck":  "action/uncheck",
	"clear":    "action/clear",
	"upload":   "action/upload",
	"drag":     "action/drag",
	"goto":     "page/navigate",
}

// ParseStep parses one composite-action token into a ParsedStep.
func ParseStep(token string) (ParsedStep, error) {
	if action, ok := parameterlessActions[token]; ok {
		return ParsedStep{Action: action}, nil
	}

	name, rest, ok := cutColon(token)
	if !ok {
		return ParsedStep{}, fmt.Errorf(
			"%w: %q - expected action:target or action:target=value", ErrSyntax, token)
	}

	action, known := actionNames[name]
	if !known {
		action = "action/" + name
	}

	switch name {
	case "goto":
		// URLs legitimately contain colons and = characters; the remainder
		// is taken verbatim.
		return ParsedStep{Action: action, URL: rest}, nil
	case "press":
		return ParsedStep{Action: action, Key: rest}, nil
	}

	selText, value, hasValue := splitValue(rest)
	sel, err := selector.Parse(selText)
	if err != nil {
		return ParsedStep{}, fmt.Errorf("step %q: %w", token, err)
	}
	step := ParsedStep{Action: action, Selector: &sel}
	if hasValue {
		step.Value = stripQuotes(value)
		step.HasValue = true
	}
	return step, nil
}

// ParseSteps parses an ordered sequence of composite tokens. It fails
// atomically: the first bad token aborts the whole batch so the caller
// never receives a truncated step list.
func ParseSteps(tokens []string) ([]ParsedStep, error) {
	out := make([]ParsedStep, 0, len(tokens))
	for i, token := range tokens {
		step, err := ParseStep(token)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		out = append(out, step)
	}
	return out, nil
}

func cutColon(s string) (before, after string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

// splitValue finds the last `=` that lies outside any quoted span, scanning
// right to left with the quote state keyed to the most recently opened
// quote character. An `=` inside an open quote is never a split point, so
// quoted values and quoted selector names may carry `=` freely; an
// unguarded `=` inside the selector portion is the one shape the grammar
// cannot protect.
func splitValue(s string) (selText, value string, found bool) {
	var quote byte
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '=':
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

// stripQuotes mirrors the selector mini-language's quoting rule for literal
// values: exactly one matching outer pair is removed, everything else
// passes through untouched.
func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first != last {
		return s
	}
	if first == '"' || first == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}
