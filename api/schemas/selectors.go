package schemas

import (
	"encoding/json"
	"fmt"
)

// -- Selector Schemas --

// SelectorType discriminates the Selector union. Exactly one variant is
// active per value; Validate enforces the variant's field schema.
type SelectorType string

const (
	SelectorCSS         SelectorType = "css"
	SelectorXPath       SelectorType = "xpath"
	SelectorRole        SelectorType = "role"
	SelectorText        SelectorType = "text"
	SelectorLabel       SelectorType = "label"
	SelectorPlaceholder SelectorType = "placeholder"
	SelectorTestID      SelectorType = "testId"
	SelectorSemantic    SelectorType = "semantic"
	SelectorCoordinates SelectorType = "coordinates"
	SelectorRef         SelectorType = "ref"
)

func (s SelectorType) String() string { return string(s) }

// AriaRole identifies the ARIA role of an element for role-based selectors.
type AriaRole string

const (
	RoleAlert            AriaRole = "alert"
	RoleAlertDialog      AriaRole = "alertdialog"
	RoleApplication      AriaRole = "application"
	RoleArticle          AriaRole = "article"
	RoleBanner           AriaRole = "banner"
	RoleButton           AriaRole = "button"
	RoleCell             AriaRole = "cell"
	RoleCheckbox         AriaRole = "checkbox"
	RoleColumnHeader     AriaRole = "columnheader"
	RoleCombobox         AriaRole = "combobox"
	RoleComplementary    AriaRole = "complementary"
	RoleContentInfo      AriaRole = "contentinfo"
	RoleDefinition       AriaRole = "definition"
	RoleDialog           AriaRole = "dialog"
	RoleDirectory        AriaRole = "directory"
	RoleDocument         AriaRole = "document"
	RoleFeed             AriaRole = "feed"
	RoleFigure           AriaRole = "figure"
	RoleForm             AriaRole = "form"
	RoleGrid             AriaRole = "grid"
	RoleGridCell         AriaRole = "gridcell"
	RoleGroup            AriaRole = "group"
	RoleHeading          AriaRole = "heading"
	RoleImg              AriaRole = "img"
	RoleLink             AriaRole = "link"
	RoleList             AriaRole = "list"
	RoleListbox          AriaRole = "listbox"
	RoleListItem         AriaRole = "listitem"
	RoleLog              AriaRole = "log"
	RoleMain             AriaRole = "main"
	RoleMarquee          AriaRole = "marquee"
	RoleMath             AriaRole = "math"
	RoleMenu             AriaRole = "menu"
	RoleMenuBar          AriaRole = "menubar"
	RoleMenuItem         AriaRole = "menuitem"
	RoleMenuItemCheckbox AriaRole = "menuitemcheckbox"
	RoleMenuItemRadio    AriaRole = "menuitemradio"
	RoleNavigation       AriaRole = "navigation"
	RoleNone             AriaRole = "none"
	RoleNote             AriaRole = "note"
	RoleOption           AriaRole = "option"
	RolePresentation     AriaRole = "presentation"
	RoleProgressBar      AriaRole = "progressbar"
	RoleRadio            AriaRole = "radio"
	RoleRadioGroup       AriaRole = "radiogroup"
	RoleRegion           AriaRole = "region"
	RoleRow              AriaRole = "row"
	RoleRowGroup         AriaRole = "rowgroup"
	RoleRowHeader        AriaRole = "rowheader"
	RoleScrollBar        AriaRole = "scrollbar"
	RoleSearch           AriaRole = "search"
	RoleSearchBox        AriaRole = "searchbox"
	RoleSeparator        AriaRole = "separator"
	RoleSlider           AriaRole = "slider"
	RoleSpinButton       AriaRole = "spinbutton"
	RoleStatus           AriaRole = "status"
	RoleSwitch           AriaRole = "switch"
	RoleTab              AriaRole = "tab"
	RoleTable            AriaRole = "table"
	RoleTabList          AriaRole = "tablist"
	RoleTabPanel         AriaRole = "tabpanel"
	RoleTerm             AriaRole = "term"
	RoleTextbox          AriaRole = "textbox"
	RoleTimer            AriaRole = "timer"
	RoleToolbar          AriaRole = "toolbar"
	RoleTooltip          AriaRole = "tooltip"
	RoleTree             AriaRole = "tree"
	RoleTreeGrid         AriaRole = "treegrid"
	RoleTreeItem         AriaRole = "treeitem"
)

func (r AriaRole) String() string { return string(r) }

// AriaRoles enumerates every valid role, in the order defined by the protocol.
var AriaRoles = []AriaRole{
	RoleAlert, RoleAlertDialog, RoleApplication, RoleArticle, RoleBanner,
	RoleButton, RoleCell, RoleCheckbox, RoleColumnHeader, RoleCombobox,
	RoleComplementary, RoleContentInfo, RoleDefinition, RoleDialog,
	RoleDirectory, RoleDocument, RoleFeed, RoleFigure, RoleForm, RoleGrid,
	RoleGridCell, RoleGroup, RoleHeading, RoleImg, RoleLink, RoleList,
	RoleListbox, RoleListItem, RoleLog, RoleMain, RoleMarquee, RoleMath,
	RoleMenu, RoleMenuBar, RoleMenuItem, RoleMenuItemCheckbox,
	RoleMenuItemRadio, RoleNavigation, RoleNone, RoleNote, RoleOption,
	RolePresentation, RoleProgressBar, RoleRadio, RoleRadioGroup, RoleRegion,
	RoleRow, RoleRowGroup, RoleRowHeader, RoleScrollBar, RoleSearch,
	RoleSearchBox, RoleSeparator, RoleSlider, RoleSpinButton, RoleStatus,
	RoleSwitch, RoleTab, RoleTable, RoleTabList, RoleTabPanel, RoleTerm,
	RoleTextbox, RoleTimer, RoleToolbar, RoleTooltip, RoleTree, RoleTreeGrid,
	RoleTreeItem,
}

var validRoles = func() map[AriaRole]struct{} {
	m := make(map[AriaRole]struct{}, len(AriaRoles))
	for _, r := range AriaRoles {
		m[r] = struct{}{}
	}
	return m
}()

// ValidRole reports whether r is a member of the fixed ARIA role set.
func ValidRole(r AriaRole) bool {
	_, ok := validRoles[r]
	return ok
}

// Selector is the canonical description of how to locate a page element.
// It is a tagged union discriminated by Type; only the fields belonging to
// the active variant are set, and Validate rejects anything else. Selectors
// are never resolved against a live page by this SDK - resolution happens
// in the remote automation engine.
type Selector struct {
	Type SelectorType `json:"type"`

	// Value carries the payload for css, xpath, text, label, placeholder
	// and testId selectors.
	Value string `json:"value,omitempty"`

	// Role, Name and Exact belong to the role variant. Exact is shared with
	// the text, label and placeholder variants.
	Role  AriaRole `json:"role,omitempty"`
	Name  string   `json:"name,omitempty"`
	Exact *bool    `json:"exact,omitempty"`

	// Description belongs to the semantic variant.
	Description string `json:"description,omitempty"`

	// X and Y belong to the coordinates variant.
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	// Ref belongs to the ref variant: a positional ref ("e12") or stable
	// ref ("@login-button") assigned by the engine's observation mechanism.
	Ref string `json:"ref,omitempty"`
}

// -- Constructors --
// Every constructor produces a value that passes Validate, which is what
// lets the text parser guarantee well-formed output without re-validating.

// CSS creates a CSS selector.
func CSS(value string) Selector { return Selector{Type: SelectorCSS, Value: value} }

// XPath creates an XPath selector.
func XPath(value string) Selector { return Selector{Type: SelectorXPath, Value: value} }

// Role creates a role selector without an accessible name constraint.
func Role(role AriaRole) Selector { return Selector{Type: SelectorRole, Role: role} }

// RoleNamed creates a role selector constrained by accessible name.
func RoleNamed(role AriaRole, name string) Selector {
	return Selector{Type: SelectorRole, Role: role, Name: name}
}

// Text creates a text-content selector.
func Text(value string) Selector { return Selector{Type: SelectorText, Value: value} }

// Label creates a form-label selector.
func Label(value string) Selector { return Selector{Type: SelectorLabel, Value: value} }

// Placeholder creates an input-placeholder selector.
func Placeholder(value string) Selector {
	return Selector{Type: SelectorPlaceholder, Value: value}
}

// TestID creates a data-testid selector.
func TestID(value string) Selector { return Selector{Type: SelectorTestID, Value: value} }

// Semantic creates a natural-language selector, resolved by the engine.
func Semantic(description string) Selector {
	return Selector{Type: SelectorSemantic, Description: description}
}

// Coords creates an absolute viewport-coordinate selector.
func Coords(x, y float64) Selector {
	return Selector{Type: SelectorCoordinates, X: x, Y: y}
}

// Ref creates a selector for an engine-assigned element ref.
func Ref(ref string) Selector { return Selector{Type: SelectorRef, Ref: ref} }

// Validate checks that the selector matches exactly one variant schema:
// the discriminator is known, the variant's required fields are present,
// and no field belonging to another variant is set.
func (s Selector) Validate() error {
	switch s.Type {
	case SelectorCSS, SelectorXPath, SelectorTestID:
		if s.Value == "" {
			return fmt.Errorf("%s selector requires a value", s.Type)
		}
		if s.Exact != nil {
			return fmt.Errorf("%s selector does not take exact", s.Type)
		}
		return s.requireOnly(fieldValue | fieldExact)
	case SelectorText, SelectorLabel, SelectorPlaceholder:
		if s.Value == "" {
			return fmt.Errorf("%s selector requires a value", s.Type)
		}
		return s.requireOnly(fieldValue | fieldExact)
	case SelectorRole:
		if s.Role == "" {
			return fmt.Errorf("role selector requires a role")
		}
		if !ValidRole(s.Role) {
			return fmt.Errorf("unknown aria role %q", s.Role)
		}
		return s.requireOnly(fieldRole | fieldName | fieldExact)
	case SelectorSemantic:
		if s.Description == "" {
			return fmt.Errorf("semantic selector requires a description")
		}
		return s.requireOnly(fieldDescription)
	case SelectorCoordinates:
		return s.requireOnly(fieldCoords)
	case SelectorRef:
		if s.Ref == "" {
			return fmt.Errorf("ref selector requires a ref")
		}
		return s.requireOnly(fieldRef)
	case "":
		return fmt.Errorf("selector has no type")
	default:
		return fmt.Errorf("unknown selector type %q", s.Type)
	}
}

type selectorFields uint

const (
	fieldValue selectorFields = 1 << iota
	fieldRole
	fieldName
	fieldExact
	fieldDescription
	fieldCoords
	fieldRef
)

// requireOnly rejects any populated field outside the allowed set, keeping
// the "exactly one variant matches" invariant honest.
func (s Selector) requireOnly(allowed selectorFields) error {
	set := selectorFields(0)
	if s.Value != "" {
		set |= fieldValue
	}
	if s.Role != "" {
		set |= fieldRole
	}
	if s.Name != "" {
		set |= fieldName
	}
	if s.Exact != nil {
		set |= fieldExact
	}
	if s.Description != "" {
		set |= fieldDescription
	}
	if s.X != 0 || s.Y != 0 {
		set |= fieldCoords
	}
	if s.Ref != "" {
		set |= fieldRef
	}
	if extra := set &^ allowed; extra != 0 {
		return fmt.Errorf("%s selector carries fields of another variant", s.Type)
	}
	return nil
}

// coordinatesJSON forces x/y emission for the coordinates variant, which
// omitempty would drop at the origin.
type coordinatesJSON struct {
	Type SelectorType `json:"type"`
	X    float64      `json:"x"`
	Y    float64      `json:"y"`
}

// MarshalJSON emits the discriminated-union wire shape shared with the
// TypeScript and Python SDKs.
func (s Selector) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Type == SelectorCoordinates {
		return json.Marshal(coordinatesJSON{Type: s.Type, X: s.X, Y: s.Y})
	}
	type plain Selector
	return json.Marshal(plain(s))
}

// UnmarshalJSON decodes and validates in one step; a payload that fails the
// variant schema is an error, never a silently accepted partial value.
func (s *Selector) UnmarshalJSON(data []byte) error {
	type plain Selector
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	decoded := Selector(p)
	if err := decoded.Validate(); err != nil {
		return fmt.Errorf("invalid selector: %w", err)
	}
	*s = decoded
	return nil
}
