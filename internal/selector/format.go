package selector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/browseragentprotocol/bap-go/api/schemas"
)

// Format renders a selector in the mini-language's display form. It is a
// convenience for humans and agents, not an exact inverse of Parse: values
// containing ambiguous characters (colons, quotes) may not reverse-parse
// byte-for-byte.
func Format(sel schemas.Selector) string {
	switch sel.Type {
	case schemas.SelectorRef:
		return sel.Ref
	case schemas.SelectorRole:
		if sel.Name != "" {
			return fmt.Sprintf("role:%s:%q", sel.Role, sel.Name)
		}
		return fmt.Sprintf("role:%s", sel.Role)
	case schemas.SelectorText:
		return fmt.Sprintf("text:%q", sel.Value)
	case schemas.SelectorLabel:
		return fmt.Sprintf("label:%q", sel.Value)
	case schemas.SelectorPlaceholder:
		return fmt.Sprintf("placeholder:%q", sel.Value)
	case schemas.SelectorTestID:
		return "testid:" + sel.Value
	case schemas.SelectorCSS:
		// Id/class shorthand reads better without the prefix.
		if strings.HasPrefix(sel.Value, "#") || strings.HasPrefix(sel.Value, ".") {
			return sel.Value
		}
		return "css:" + sel.Value
	case schemas.SelectorXPath:
		return "xpath:" + sel.Value
	case schemas.SelectorCoordinates:
		return "coords:" + strconv.FormatFloat(sel.X, 'f', -1, 64) +
			"," + strconv.FormatFloat(sel.Y, 'f', -1, 64)
	case schemas.SelectorSemantic:
		return sel.Description
	default:
		return string(sel.Type)
	}
}
