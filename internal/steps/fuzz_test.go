package steps

import (
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
)

// FuzzParseStep throws arbitrary tokens at the composite grammar. The goal
// is survival: no panic, and any accepted token yields a canonical action id
// plus a selector that passes its own schema.
func FuzzParseStep(f *testing.F) {
	f.Add("snapshot")
	f.Add("fill:e5=password")
	f.Add(`click:role:button:"Sign in"`)
	f.Add("goto:https://example.com?q=1")
	f.Add("press:Control+Shift+T")
	f.Add(`fill:label:"a=b"="c=d"`)
	f.Add("check:#terms")
	f.Add("drag:coords:10,20")
	f.Add("shake:e1")
	f.Add(":")
	f.Add("=")
	f.Add(`"`)

	f.Fuzz(func(t *testing.T, token string) {
		step, err := ParseStep(token)
		if err != nil {
			return
		}
		if step.Action == "" {
			t.Errorf("accepted token %q produced an empty action", token)
		}
		if step.Selector != nil {
			if verr := step.Selector.Validate(); verr != nil {
				t.Errorf("accepted token %q produced invalid selector: %v", token, verr)
			}
		}
		// Compilation of an accepted step never fails or drops the action.
		compiled := Compile(step)
		if compiled.Action != step.Action {
			t.Errorf("compile changed action %q to %q", step.Action, compiled.Action)
		}
	})
}

// FuzzParseStepStructured drives the grammar from structured fuzz data,
// assembling verb, target and value fragments the way a caller would.
func FuzzParseStepStructured(f *testing.F) {
	f.Fuzz(func(t *testing.T, data []byte) {
		fuzzConsumer := fuzz.NewConsumer(data)

		verb, err := fuzzConsumer.GetString()
		if err != nil {
			return
		}
		target, err := fuzzConsumer.GetString()
		if err != nil {
			return
		}
		value, err := fuzzConsumer.GetString()
		if err != nil {
			return
		}
		hasValue, err := fuzzConsumer.GetBool()
		if err != nil {
			return
		}

		token := verb + ":" + target
		if hasValue {
			token += "=" + value
		}

		steps, err := ParseSteps([]string{token, "snapshot"})
		if err != nil {
			if steps != nil {
				t.Errorf("ParseSteps returned both steps and error for %q", token)
			}
			return
		}
		if len(steps) != 2 {
			t.Errorf("ParseSteps returned %d steps for a 2-token batch", len(steps))
		}
	})
}
