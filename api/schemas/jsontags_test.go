package schemas_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/browseragentprotocol/bap-go/api/schemas"
)

// TestStructJSONTags uses reflection to verify the `json` tags on the wire
// structs. The tags are the API contract with the TypeScript and Python
// SDKs, so accidental renames must fail loudly.
func TestStructJSONTags(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name         string
		structRef    interface{}
		expectedTags map[string]string
	}{
		{
			name:      "ExecutionStep",
			structRef: schemas.ExecutionStep{},
			expectedTags: map[string]string{
				"Label":      "label",
				"Action":     "action",
				"Params":     "params",
				"OnError":    "onError",
				"MaxRetries": "maxRetries",
				"RetryDelay": "retryDelay",
			},
		},
		{
			name:      "AgentActParams",
			structRef: schemas.AgentActParams{},
			expectedTags: map[string]string{
				"PageID":           "pageId",
				"Steps":            "steps",
				"StopOnFirstError": "stopOnFirstError",
				"Timeout":          "timeout",
			},
		},
		{
			name:      "AgentActResult",
			structRef: schemas.AgentActResult{},
			expectedTags: map[string]string{
				"Completed": "completed",
				"Total":     "total",
				"Success":   "success",
				"Results":   "results",
				"Duration":  "duration",
				"FailedAt":  "failedAt",
			},
		},
		{
			name:      "RPCError",
			structRef: schemas.RPCError{},
			expectedTags: map[string]string{
				"Code":    "code",
				"Message": "message",
				"Data":    "data",
			},
		},
		{
			name:      "RPCErrorData",
			structRef: schemas.RPCErrorData{},
			expectedTags: map[string]string{
				"Retryable":    "retryable",
				"RetryAfterMS": "retryAfterMs",
				"Details":      "details",
			},
		},
		{
			name:      "InitializeParams",
			structRef: schemas.InitializeParams{},
			expectedTags: map[string]string{
				"ProtocolVersion": "protocolVersion",
				"ClientInfo":      "clientInfo",
				"Capabilities":    "capabilities",
			},
		},
		{
			name:      "InteractiveElement",
			structRef: schemas.InteractiveElement{},
			expectedTags: map[string]string{
				"Ref":         "ref",
				"Selector":    "selector",
				"Role":        "role",
				"Name":        "name",
				"Value":       "value",
				"ActionHints": "actionHints",
				"Bounds":      "bounds",
				"TagName":     "tagName",
				"Disabled":    "disabled",
			},
		},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			structType := reflect.TypeOf(tt.structRef)
			require.Equal(t, reflect.Struct, structType.Kind())

			for fieldName, expectedTag := range tt.expectedTags {
				field, ok := structType.FieldByName(fieldName)
				require.True(t, ok, "field %s not found on %s", fieldName, tt.name)

				tag := field.Tag.Get("json")
				// Strip options like omitempty; only the name is contractual.
				tagName := strings.Split(tag, ",")[0]
				assert.Equal(t, expectedTag, tagName,
					"json tag mismatch on %s.%s", tt.name, fieldName)
			}
		})
	}
}
