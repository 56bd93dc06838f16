// Package selector implements the BAP selector mini-language: short text
// tokens such as `role:button:"Submit"`, `e12`, `@login`, `#main` or a bare
// phrase, parsed into the typed selector union of api/schemas.
//
// The grammar has no escape mechanism. A value that needs a literal quote
// character of the same kind at both ends cannot be expressed; interior
// quotes pass through verbatim.
package selector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/browseragentprotocol/bap-go/api/schemas"
)

// ErrSyntax marks a malformed token: the shape of the text itself is wrong.
var ErrSyntax = errors.New("selector syntax error")

// ErrSchema marks a token that scans fine but produces a value failing the
// selector variant schema, e.g. an unknown aria role.
var ErrSchema = errors.New("selector schema error")

// Parse converts one text token into exactly one selector.
//
// Precedence, highest first:
//  1. positional ref: `e` followed only by digits
//  2. stable ref: leading `@`
//  3. prefixed forms: role:, text:, label:, placeholder:, testid:, css:,
//     xpath:, coords:, ref:
//  4. shorthand CSS: leading `#` or `.`
//  5. free-text fallback
func Parse(token string) (schemas.Selector, error) {
	if token == "" {
		return schemas.Selector{}, fmt.Errorf("%w: empty token", ErrSyntax)
	}

	if isPositionalRef(token) {
		return schemas.Ref(token), nil
	}
	if strings.HasPrefix(token, "@") {
		return checked(schemas.Ref(token))
	}

	if kind, rest, ok := strings.Cut(token, ":"); ok {
		switch kind {
		case "ref":
			// Explicit prefix for a stable ref; the remainder is the ref id.
			return checked(schemas.Ref(rest))
		case "role":
			return parseRole(rest)
		case "text":
			return checked(schemas.Text(stripQuotes(rest)))
		case "label":
			return checked(schemas.Label(stripQuotes(rest)))
		case "placeholder":
			return checked(schemas.Placeholder(stripQuotes(rest)))
		case "testid":
			return checked(schemas.TestID(rest))
		case "css":
			return checked(schemas.CSS(rest))
		case "xpath":
			// Never quote-stripped: leading // and attribute quotes are
			// structural in XPath.
			return checked(schemas.XPath(rest))
		case "coords":
			return parseCoords(rest)
		}
	}

	if strings.HasPrefix(token, "#") || strings.HasPrefix(token, ".") {
		return schemas.CSS(token), nil
	}

	// Free-form phrases like "Sign in" match by text content.
	return schemas.Text(token), nil
}

// isPositionalRef matches ^e[0-9]+$. Requiring the whole token to be `e`
// plus digits keeps plain words like "email" in the text fallback.
func isPositionalRef(token string) bool {
	if len(token) < 2 || token[0] != 'e' {
		return false
	}
	for i := 1; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}

// parseRole handles `role:<role>[:<name>]`. The name may contain colons
// when quoted; the split happens before quote stripping so the quoted name
// survives intact. An unquoted name is cut at its first interior colon -
// quoting is the supported form for names containing colons.
func parseRole(rest string) (schemas.Selector, error) {
	roleStr, name, hasName := strings.Cut(rest, ":")
	if roleStr == "" {
		return schemas.Selector{}, fmt.Errorf("%w: role selector requires a role", ErrSyntax)
	}
	role := schemas.AriaRole(roleStr)
	if !hasName {
		return checked(schemas.Role(role))
	}
	if len(name) > 0 && name[0] != '"' && name[0] != '\'' {
		name, _, _ = strings.Cut(name, ":")
	}
	return checked(schemas.RoleNamed(role, stripQuotes(name)))
}

// parseCoords handles `coords:<x>,<y>` with two integers.
func parseCoords(rest string) (schemas.Selector, error) {
	xs, ys, ok := strings.Cut(rest, ",")
	if !ok {
		return schemas.Selector{}, fmt.Errorf("%w: coords requires x,y", ErrSyntax)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return schemas.Selector{}, fmt.Errorf("%w: coords x %q is not an integer", ErrSyntax, xs)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return schemas.Selector{}, fmt.Errorf("%w: coords y %q is not an integer", ErrSyntax, ys)
	}
	return schemas.Coords(float64(x), float64(y)), nil
}

// checked runs the variant schema over a constructed selector so that Parse
// never hands back a value that would fail validation downstream.
func checked(sel schemas.Selector) (schemas.Selector, error) {
	if err := sel.Validate(); err != nil {
		return schemas.Selector{}, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return sel, nil
}

// stripQuotes removes exactly one matching outer pair of double or single
// quotes. Mismatched, single-character and empty strings pass through
// untouched, as do interior quotes and whitespace. This is deliberately not
// a trim: only the outermost pair is considered.
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
