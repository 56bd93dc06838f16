package steps

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/browseragentprotocol/bap-go/api/schemas"
)

func TestCompile(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		step ParsedStep
		want schemas.ExecutionStep
	}{
		{
			"parameterless",
			ParsedStep{Action: "observe/ariaSnapshot"},
			schemas.ExecutionStep{Action: "observe/ariaSnapshot", Params: map[string]any{}},
		},
		{
			"selectorOnly",
			ParsedStep{Action: "action/click", Selector: selPtr(schemas.Ref("e3"))},
			schemas.ExecutionStep{
				Action: "action/click",
				Params: map[string]any{"selector": schemas.Ref("e3")},
			},
		},
		{
			"selectorAndValue",
			ParsedStep{
				Action:   "action/fill",
				Selector: selPtr(schemas.Ref("e5")),
				Value:    "hunter2",
				HasValue: true,
			},
			schemas.ExecutionStep{
				Action: "action/fill",
				Params: map[string]any{
					"selector": schemas.Ref("e5"),
					"value":    "hunter2",
				},
			},
		},
		{
			"emptyValueStillPresent",
			ParsedStep{
				Action:   "action/fill",
				Selector: selPtr(schemas.Ref("e5")),
				HasValue: true,
			},
			schemas.ExecutionStep{
				Action: "action/fill",
				Params: map[string]any{
					"selector": schemas.Ref("e5"),
					"value":    "",
				},
			},
		},
		{
			"navigate",
			ParsedStep{Action: "page/navigate", URL: "https://example.com"},
			schemas.ExecutionStep{
				Action: "page/navigate",
				Params: map[string]any{"url": "https://example.com"},
			},
		},
		{
			"press",
			ParsedStep{Action: "action/press", Key: "Enter"},
			schemas.ExecutionStep{
				Action: "action/press",
				Params: map[string]any{"key": "Enter"},
			},
		},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Compile(tt.step)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compile mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestCompileNoSpuriousKeys pins that absent fields never appear in params,
// not even as empty values.
func TestCompileNoSpuriousKeys(t *testing.T) {
	t.Parallel()
	got := Compile(ParsedStep{Action: "action/click", Selector: selPtr(schemas.Ref("e1"))})
	assert.Len(t, got.Params, 1)
	assert.NotContains(t, got.Params, "value")
	assert.NotContains(t, got.Params, "url")
	assert.NotContains(t, got.Params, "key")
}

func TestCompileAll(t *testing.T) {
	t.Parallel()
	parsed, err := ParseSteps([]string{
		"goto:https://example.com",
		"fill:e5=hunter2",
		`click:role:button:"Sign in"`,
		"snapshot",
	})
	require.NoError(t, err)

	compiled := CompileAll(parsed)
	require.Len(t, compiled, len(parsed))
	for i, step := range compiled {
		assert.Equal(t, parsed[i].Action, step.Action, "order must be preserved")
	}

	sel, ok := compiled[2].Params["selector"].(schemas.Selector)
	require.True(t, ok, "selector passes through as a typed value")
	assert.Equal(t, schemas.RoleNamed(schemas.RoleButton, "Sign in"), sel)
}
