package selector

import "testing"

// FuzzParse checks the parser's two hard guarantees on arbitrary input: it
// never panics, and any selector it returns passes the variant schema.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"e5", "@login", "ref:@cart", "role:button", `role:button:"Sign in: Now"`,
		`text:"hello"`, "label:Email", "placeholder:Search", "testid:x",
		"css:#a > b", `xpath://a[@href="x"]`, "coords:1,2", "#id", ".class",
		"Sign in", "foo:bar", "coords:a,b", "role:", `"'`,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, token string) {
		sel, err := Parse(token)
		if err != nil {
			return
		}
		if verr := sel.Validate(); verr != nil {
			t.Fatalf("Parse(%q) returned invalid selector %+v: %v", token, sel, verr)
		}
	})
}
