package schemas

import "encoding/json"

// -- Agent Schemas (agent/act, agent/observe) --

// Method names for the agent surface.
const (
	MethodInitialize   = "initialize"
	MethodAgentAct     = "agent/act"
	MethodAgentObserve = "agent/observe"
)

// StepErrorHandling selects what the engine does when a step fails.
type StepErrorHandling string

const (
	StepErrorStop  StepErrorHandling = "stop"
	StepErrorSkip  StepErrorHandling = "skip"
	StepErrorRetry StepErrorHandling = "retry"
)

func (s StepErrorHandling) String() string { return string(s) }

// ExecutionStep is the compiled, wire-ready form of one action: a namespaced
// action id plus a parameter bag. Params keys produced by the step compiler
// are limited to selector, value, url and key; the wire schema itself leaves
// the bag open for engine-specific options.
type ExecutionStep struct {
	Label      string            `json:"label,omitempty"`
	Action     string            `json:"action"`
	Params     map[string]any    `json:"params"`
	OnError    StepErrorHandling `json:"onError,omitempty"`
	MaxRetries int               `json:"maxRetries,omitempty"`
	RetryDelay int               `json:"retryDelay,omitempty"`
}

// AgentActParams are the parameters for agent/act.
type AgentActParams struct {
	PageID           string          `json:"pageId,omitempty"`
	Steps            []ExecutionStep `json:"steps"`
	StopOnFirstError bool            `json:"stopOnFirstError,omitempty"`
	Timeout          int             `json:"timeout,omitempty"`
}

// StepError describes why a single step failed.
type StepError struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// StepResult is the outcome of one executed step.
type StepResult struct {
	Step     int             `json:"step"`
	Label    string          `json:"label,omitempty"`
	Success  bool            `json:"success"`
	Result   json.RawMessage `json:"result,omitempty"`
	Error    *StepError      `json:"error,omitempty"`
	Duration int             `json:"duration"`
	Retries  int             `json:"retries,omitempty"`
}

// AgentActResult is the result of agent/act.
type AgentActResult struct {
	Completed int          `json:"completed"`
	Total     int          `json:"total"`
	Success   bool         `json:"success"`
	Results   []StepResult `json:"results"`
	Duration  int          `json:"duration"`
	FailedAt  *int         `json:"failedAt,omitempty"`
}

// AllowedActActions lists the namespaced action ids agent/act accepts.
var AllowedActActions = []string{
	"action/click",
	"action/dblclick",
	"action/fill",
	"action/type",
	"action/press",
	"action/hover",
	"action/scroll",
	"action/select",
	"action/check",
	"action/uncheck",
	"action/clear",
	"action/upload",
	"action/drag",
	"page/navigate",
	"page/reload",
	"page/goBack",
	"page/goForward",
}

// -- agent/observe --

// ObserveMetadata is the page metadata block in an observation.
type ObserveMetadata struct {
	URL      string         `json:"url"`
	Title    string         `json:"title"`
	Viewport map[string]int `json:"viewport"`
}

// ObserveScreenshot is the screenshot block in an observation.
type ObserveScreenshot struct {
	Data   string           `json:"data"`
	Format ScreenshotFormat `json:"format"`
	Width  int              `json:"width"`
	Height int              `json:"height"`
}

// InteractiveElement is one interactive element with its pre-computed
// selector and engine-assigned ref.
type InteractiveElement struct {
	Ref         string       `json:"ref"`
	Selector    Selector     `json:"selector"`
	Role        string       `json:"role"`
	Name        string       `json:"name,omitempty"`
	Value       string       `json:"value,omitempty"`
	ActionHints []string     `json:"actionHints"`
	Bounds      *BoundingBox `json:"bounds,omitempty"`
	TagName     string       `json:"tagName"`
	Disabled    bool         `json:"disabled,omitempty"`
}

// AgentObserveParams are the response-shaping parameters for agent/observe.
// They travel alongside compiled steps but are never parsed by this SDK.
type AgentObserveParams struct {
	PageID                     string   `json:"pageId,omitempty"`
	IncludeScreenshot          bool     `json:"includeScreenshot,omitempty"`
	IncludeInteractiveElements bool     `json:"includeInteractiveElements,omitempty"`
	IncludeMetadata            bool     `json:"includeMetadata,omitempty"`
	MaxElements                int      `json:"maxElements,omitempty"`
	FilterRoles                []string `json:"filterRoles,omitempty"`
	StableRefs                 bool     `json:"stableRefs,omitempty"`
}

// AgentObserveResult is the result of agent/observe.
type AgentObserveResult struct {
	Metadata                 *ObserveMetadata     `json:"metadata,omitempty"`
	Screenshot               *ObserveScreenshot   `json:"screenshot,omitempty"`
	InteractiveElements      []InteractiveElement `json:"interactiveElements,omitempty"`
	TotalInteractiveElements int                  `json:"totalInteractiveElements,omitempty"`
}
