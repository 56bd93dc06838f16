package schemas_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/browseragentprotocol/bap-go/api/schemas"
)

// TestConstructorsProduceValidSelectors verifies the core guarantee the
// text parser relies on: every constructor output passes Validate.
func TestConstructorsProduceValidSelectors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		sel  schemas.Selector
	}{
		{"css", schemas.CSS("#login > button")},
		{"xpath", schemas.XPath(`//button[@name="q"]`)},
		{"role", schemas.Role(schemas.RoleButton)},
		{"roleNamed", schemas.RoleNamed(schemas.RoleTextbox, "Email")},
		{"text", schemas.Text("Sign in")},
		{"label", schemas.Label("Password")},
		{"placeholder", schemas.Placeholder("Search...")},
		{"testId", schemas.TestID("submit-btn")},
		{"semantic", schemas.Semantic("the blue button next to the cart icon")},
		{"coords", schemas.Coords(100, 200)},
		{"coordsOrigin", schemas.Coords(0, 0)},
		{"refPositional", schemas.Ref("e12")},
		{"refStable", schemas.Ref("@login-button")},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, tt.sel.Validate())
		})
	}
}

func TestSelectorValidateRejections(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		sel  schemas.Selector
	}{
		{"noType", schemas.Selector{Value: "x"}},
		{"unknownType", schemas.Selector{Type: "shadow", Value: "x"}},
		{"cssWithoutValue", schemas.Selector{Type: schemas.SelectorCSS}},
		{"textWithoutValue", schemas.Selector{Type: schemas.SelectorText}},
		{"roleWithoutRole", schemas.Selector{Type: schemas.SelectorRole, Name: "Email"}},
		{"unknownRole", schemas.Selector{Type: schemas.SelectorRole, Role: "hyperlink"}},
		{"semanticWithoutDescription", schemas.Selector{Type: schemas.SelectorSemantic}},
		{"refWithoutRef", schemas.Selector{Type: schemas.SelectorRef}},
		{"crossVariantFields", schemas.Selector{Type: schemas.SelectorRef, Ref: "e1", Value: "#x"}},
		{"roleOnText", schemas.Selector{Type: schemas.SelectorText, Value: "hi", Role: schemas.RoleButton}},
		{"coordsWithValue", schemas.Selector{Type: schemas.SelectorCoordinates, X: 1, Value: "x"}},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, tt.sel.Validate())
		})
	}
}

func TestAriaRoleSet(t *testing.T) {
	t.Parallel()

	// The protocol fixes exactly 69 roles, from alert to treeitem.
	assert.Len(t, schemas.AriaRoles, 69)
	assert.Equal(t, schemas.RoleAlert, schemas.AriaRoles[0])
	assert.Equal(t, schemas.RoleTreeItem, schemas.AriaRoles[len(schemas.AriaRoles)-1])

	assert.True(t, schemas.ValidRole(schemas.RoleButton))
	assert.True(t, schemas.ValidRole("menuitemcheckbox"))
	assert.False(t, schemas.ValidRole("hyperlink"))
	assert.False(t, schemas.ValidRole(""))
	assert.False(t, schemas.ValidRole("Button"), "role matching is case-sensitive")
}

func TestSelectorJSONRoundTrip(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		sel      schemas.Selector
		wantJSON string
	}{
		{
			"roleNamed",
			schemas.RoleNamed(schemas.RoleButton, "Sign in"),
			`{"type":"role","role":"button","name":"Sign in"}`,
		},
		{
			"text",
			schemas.Text("Forgot password?"),
			`{"type":"text","value":"Forgot password?"}`,
		},
		{
			"coordsOrigin",
			schemas.Coords(0, 0),
			`{"type":"coordinates","x":0,"y":0}`,
		},
		{
			"ref",
			schemas.Ref("@cart"),
			`{"type":"ref","ref":"@cart"}`,
		},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			encoded, err := json.Marshal(tt.sel)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(encoded))

			var decoded schemas.Selector
			require.NoError(t, json.Unmarshal(encoded, &decoded))
			assert.Equal(t, tt.sel, decoded)
		})
	}
}

func TestSelectorUnmarshalRejectsMalformed(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		payload string
	}{
		{"unknownType", `{"type":"shadow","value":"x"}`},
		{"missingType", `{"value":"x"}`},
		{"missingRequiredField", `{"type":"css"}`},
		{"badRole", `{"type":"role","role":"hyperlink"}`},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var sel schemas.Selector
			assert.Error(t, json.Unmarshal([]byte(tt.payload), &sel))
		})
	}
}

// TestSelectorMarshalValidates pins that a hand-built invalid selector can
// never be silently serialized.
func TestSelectorMarshalValidates(t *testing.T) {
	t.Parallel()
	_, err := json.Marshal(schemas.Selector{Type: schemas.SelectorRole, Role: "hyperlink"})
	assert.Error(t, err)
}
