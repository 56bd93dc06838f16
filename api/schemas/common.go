package schemas

// -- Common Schemas --

// Viewport holds browser viewport dimensions.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// BoundingBox is an element's position and size in viewport coordinates.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ScreenshotFormat selects the screenshot image encoding.
type ScreenshotFormat string

const (
	ScreenshotPNG  ScreenshotFormat = "png"
	ScreenshotJPEG ScreenshotFormat = "jpeg"
	ScreenshotWebP ScreenshotFormat = "webp"
)

func (f ScreenshotFormat) String() string { return string(f) }

// ContentFormat selects the page-content rendering.
type ContentFormat string

const (
	ContentHTML     ContentFormat = "html"
	ContentText     ContentFormat = "text"
	ContentMarkdown ContentFormat = "markdown"
)

func (f ContentFormat) String() string { return string(f) }

// AccessibilityNode is one node of the accessibility tree returned by the
// engine's observation methods.
type AccessibilityNode struct {
	Role        string              `json:"role"`
	Name        string              `json:"name,omitempty"`
	Value       string              `json:"value,omitempty"`
	Description string              `json:"description,omitempty"`
	Disabled    bool                `json:"disabled,omitempty"`
	Focused     bool                `json:"focused,omitempty"`
	Level       int                 `json:"level,omitempty"`
	BoundingBox *BoundingBox        `json:"boundingBox,omitempty"`
	Children    []AccessibilityNode `json:"children,omitempty"`
}
