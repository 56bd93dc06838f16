package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/browseragentprotocol/bap-go/api/schemas"
	"github.com/browseragentprotocol/bap-go/internal/selector"
)

func selPtr(sel schemas.Selector) *schemas.Selector { return &sel }

func TestParseStep(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		token string
		want  ParsedStep
	}{
		// Parameterless actions are complete tokens by themselves.
		{"snapshot", "snapshot", ParsedStep{Action: "observe/ariaSnapshot"}},
		{"screenshot", "screenshot", ParsedStep{Action: "observe/screenshot"}},
		{"back", "back", ParsedStep{Action: "page/goBack"}},
		{"forward", "forward", ParsedStep{Action: "page/goForward"}},
		{"reload", "reload", ParsedStep{Action: "page/reload"}},
		{"close", "close", ParsedStep{Action: "page/close"}},

		// goto takes its remainder verbatim; URLs contain colons and =.
		{
			"gotoURL",
			"goto:https://example.com/path?query=1",
			ParsedStep{Action: "page/navigate", URL: "https://example.com/path?query=1"},
		},

		// press takes its remainder verbatim as a key name.
		{"pressEnter", "press:Enter", ParsedStep{Action: "action/press", Key: "Enter"}},
		{"pressChord", "press:Control+Shift+T", ParsedStep{Action: "action/press", Key: "Control+Shift+T"}},

		// Selector-only actions.
		{
			"clickRef",
			"click:e3",
			ParsedStep{Action: "action/click", Selector: selPtr(schemas.Ref("e3"))},
		},
		{
			"clickRoleNamed",
			`click:role:button:"Sign in"`,
			ParsedStep{Action: "action/click", Selector: selPtr(schemas.RoleNamed(schemas.RoleButton, "Sign in"))},
		},
		{
			"checkShorthandCSS",
			"check:#terms",
			ParsedStep{Action: "action/check", Selector: selPtr(schemas.CSS("#terms"))},
		},
		{
			"hoverText",
			"hover:Products",
			ParsedStep{Action: "action/hover", Selector: selPtr(schemas.Text("Products"))},
		},

		// Selector=value actions.
		{
			"fillRefValue",
			"fill:e5=password",
			ParsedStep{
				Action:   "action/fill",
				Selector: selPtr(schemas.Ref("e5")),
				Value:    "password",
				HasValue: true,
			},
		},
		{
			"fillLabelQuotedValue",
			`fill:label:"Email"="user@example.com"`,
			ParsedStep{
				Action:   "action/fill",
				Selector: selPtr(schemas.Label("Email")),
				Value:    "user@example.com",
				HasValue: true,
			},
		},
		{
			"valueContainingEqualsQuoted",
			`fill:e5="hunter2=secret"`,
			ParsedStep{
				Action:   "action/fill",
				Selector: selPtr(schemas.Ref("e5")),
				Value:    "hunter2=secret",
				HasValue: true,
			},
		},
		{
			"selectOption",
			`select:label:"Country"=DE`,
			ParsedStep{
				Action:   "action/select",
				Selector: selPtr(schemas.Label("Country")),
				Value:    "DE",
				HasValue: true,
			},
		},
		{
			"emptyValue",
			"fill:e2=",
			ParsedStep{
				Action:   "action/fill",
				Selector: selPtr(schemas.Ref("e2")),
				Value:    "",
				HasValue: true,
			},
		},

		// Unknown verbs stay forward-compatible.
		{
			"unknownVerb",
			"shake:e1",
			ParsedStep{Action: "action/shake", Selector: selPtr(schemas.Ref("e1"))},
		},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseStep(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParseStepQuotedSelectorName pins the quote-aware reverse scan: an `=`
// inside the selector's quoted name is never a split point.
func TestParseStepQuotedSelectorName(t *testing.T) {
	t.Parallel()
	got, err := ParseStep(`click:role:button:"a=b"`)
	require.NoError(t, err)
	assert.Equal(t, ParsedStep{
		Action:   "action/click",
		Selector: selPtr(schemas.RoleNamed(schemas.RoleButton, "a=b")),
	}, got)
}

func TestParseStepErrors(t *testing.T) {
	t.Parallel()

	t.Run("noColonNotParameterless", func(t *testing.T) {
		t.Parallel()
		_, err := ParseStep("invalid")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSyntax)
		assert.Contains(t, err.Error(), "action:target")
	})

	t.Run("selectorErrorPropagates", func(t *testing.T) {
		t.Parallel()
		_, err := ParseStep("click:coords:1")
		require.Error(t, err)
		assert.ErrorIs(t, err, selector.ErrSyntax)
	})

	t.Run("schemaErrorPropagates", func(t *testing.T) {
		t.Parallel()
		_, err := ParseStep("click:role:hyperlink")
		require.Error(t, err)
		assert.ErrorIs(t, err, selector.ErrSchema)
	})
}

func TestParseSteps(t *testing.T) {
	t.Parallel()

	t.Run("preservesOrderAndLength", func(t *testing.T) {
		t.Parallel()
		tokens := []string{
			"goto:https://example.com/login",
			`fill:label:"Email"="user@example.com"`,
			"fill:e5=hunter2",
			`click:role:button:"Sign in"`,
			"snapshot",
		}
		parsed, err := ParseSteps(tokens)
		require.NoError(t, err)
		require.Len(t, parsed, len(tokens))

		actions := make([]string, len(parsed))
		for i, step := range parsed {
			actions[i] = step.Action
		}
		assert.Equal(t, []string{
			"page/navigate", "action/fill", "action/fill", "action/click",
			"observe/ariaSnapshot",
		}, actions)
	})

	t.Run("failsAtomically", func(t *testing.T) {
		t.Parallel()
		parsed, err := ParseSteps([]string{"click:e1", "invalid", "click:e2"})
		require.Error(t, err)
		assert.Nil(t, parsed, "a bad token must not yield a partial step list")
		assert.Contains(t, err.Error(), "token 2")
	})

	t.Run("emptyInput", func(t *testing.T) {
		t.Parallel()
		parsed, err := ParseSteps(nil)
		require.NoError(t, err)
		assert.Empty(t, parsed)
	})
}

func TestSplitValue(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		input     string
		wantSel   string
		wantValue string
		wantFound bool
	}{
		{"simple", "e5=x", "e5", "x", true},
		{"noEquals", "e5", "e5", "", false},
		{"equalsInsideQuotes", `label:"a=b"`, `label:"a=b"`, "", false},
		{"quotedValueWithEquals", `e5="a=b"`, "e5", `"a=b"`, true},
		{"lastUnquotedWins", `e5=a=b`, "e5=a", "b", true},
		{"singleQuotes", `e5='p=q'`, "e5", `'p=q'`, true},
		{"emptyValue", "e5=", "e5", "", true},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			selText, value, found := splitValue(tt.input)
			assert.Equal(t, tt.wantSel, selText)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}
