package steps

import "github.com/browseragentprotocol/bap-go/api/schemas"

// Compile converts one parsed step into its wire-ready form: the action id
// is copied through and whichever payload field is present lands in the
// params bag under the same name. Purely structural - no validation beyond
// what the selector schema already guarantees, no keys for absent fields.
func Compile(step ParsedStep) schemas.ExecutionStep {
	params := make(map[string]any)
	if step.Selector != nil {
		params["selector"] = *step.Selector
	}
	if step.HasValue {
		params["value"] = step.Value
	}
	if step.URL != "" {
		params["url"] = step.URL
	}
	if step.Key != "" {
		params["key"] = step.Key
	}
	return schemas.ExecutionStep{Action: step.Action, Params: params}
}

// CompileAll compiles a parsed sequence in order.
func CompileAll(parsed []ParsedStep) []schemas.ExecutionStep {
	out := make([]schemas.ExecutionStep, len(parsed))
	for i, step := range parsed {
		out[i] = Compile(step)
	}
	return out
}
