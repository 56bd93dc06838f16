// Package baperr carries the structured BAP error taxonomy. Every remote
// failure decodes into one *Error holding the protocol code plus the
// retryable/retryAfterMs hints; whether to actually retry stays with the
// caller.
package baperr

import (
	"fmt"

	"github.com/browseragentprotocol/bap-go/api/schemas"
)

// Error is a BAP protocol error. It satisfies the error interface and is
// matched with errors.As.
type Error struct {
	Code         int
	Message      string
	Retryable    bool
	RetryAfterMS int64
	Details      map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("bap error %d: %s", e.Code, e.Message)
}

// ToRPCError converts back to the wire error object.
func (e *Error) ToRPCError() *schemas.RPCError {
	return &schemas.RPCError{
		Code:    e.Code,
		Message: e.Message,
		Data: &schemas.RPCErrorData{
			Retryable:    e.Retryable,
			RetryAfterMS: e.RetryAfterMS,
			Details:      e.Details,
		},
	}
}

// FromRPCError decodes a wire error object into an *Error.
func FromRPCError(rpcErr *schemas.RPCError) *Error {
	e := &Error{Code: rpcErr.Code, Message: rpcErr.Message}
	if rpcErr.Data != nil {
		e.Retryable = rpcErr.Data.Retryable
		e.RetryAfterMS = rpcErr.Data.RetryAfterMS
		e.Details = rpcErr.Data.Details
	}
	return e
}

// -- Connection --

// ConnectionFailed reports a transport-level connection failure. These are
// retryable by convention with a short backoff hint.
func ConnectionFailed(message string) *Error {
	return &Error{
		Code:         schemas.CodeServerError,
		Message:      message,
		Retryable:    true,
		RetryAfterMS: 1000,
	}
}

// -- Protocol --

// Parse reports a JSON parse failure.
func Parse(message string) *Error {
	return &Error{Code: schemas.CodeParseError, Message: message}
}

// InvalidRequest reports a malformed request envelope.
func InvalidRequest(message string) *Error {
	return &Error{Code: schemas.CodeInvalidRequest, Message: message}
}

// MethodNotFound reports an unknown method.
func MethodNotFound(method string) *Error {
	return &Error{
		Code:    schemas.CodeMethodNotFound,
		Message: fmt.Sprintf("Method not found: %s", method),
	}
}

// InvalidParams reports parameters rejected by the engine.
func InvalidParams(message string) *Error {
	return &Error{Code: schemas.CodeInvalidParams, Message: message}
}

// -- Server state --

// NotInitialized reports use of the client before the initialize handshake.
func NotInitialized() *Error {
	return &Error{
		Code:    schemas.CodeNotInitialized,
		Message: "Client not initialized. Call Connect first.",
	}
}

// AlreadyInitialized reports a second initialize handshake.
func AlreadyInitialized() *Error {
	return &Error{
		Code:    schemas.CodeAlreadyInitialized,
		Message: "Client already initialized",
	}
}

// -- Browser --

// BrowserNotLaunched reports actions issued before browser/launch.
func BrowserNotLaunched() *Error {
	return &Error{
		Code:    schemas.CodeBrowserNotLaunched,
		Message: "Browser not launched. Call launch first.",
	}
}

// PageNotFound reports an unknown page id.
func PageNotFound(pageID string) *Error {
	return &Error{
		Code:    schemas.CodePageNotFound,
		Message: fmt.Sprintf("Page not found: %s", pageID),
		Details: map[string]any{"pageId": pageID},
	}
}

// -- Elements --

// ElementNotFound reports a selector matching no element. Retryable with a
// short delay because the element may still be rendering.
func ElementNotFound(sel any) *Error {
	return &Error{
		Code:         schemas.CodeElementNotFound,
		Message:      "Element not found",
		Retryable:    true,
		RetryAfterMS: 500,
		Details:      map[string]any{"selector": sel},
	}
}

// ElementNotVisible reports an element present but not visible.
func ElementNotVisible(sel any) *Error {
	return &Error{
		Code:         schemas.CodeElementNotVisible,
		Message:      "Element not visible",
		Retryable:    true,
		RetryAfterMS: 500,
		Details:      map[string]any{"selector": sel},
	}
}

// ElementNotEnabled reports an element present but disabled.
func ElementNotEnabled(sel any) *Error {
	return &Error{
		Code:         schemas.CodeElementNotEnabled,
		Message:      "Element not enabled",
		Retryable:    true,
		RetryAfterMS: 500,
		Details:      map[string]any{"selector": sel},
	}
}

// SelectorAmbiguous reports a selector matching more than one element.
func SelectorAmbiguous(sel any, count int) *Error {
	return &Error{
		Code:    schemas.CodeSelectorAmbiguous,
		Message: fmt.Sprintf("Selector matched %d elements, expected 1", count),
		Details: map[string]any{"selector": sel, "count": count},
	}
}

// -- Navigation and timing --

// NavigationFailed reports a failed page navigation.
func NavigationFailed(message, url string, status int) *Error {
	details := map[string]any{}
	if url != "" {
		details["url"] = url
	}
	if status != 0 {
		details["status"] = status
	}
	if len(details) == 0 {
		details = nil
	}
	return &Error{
		Code:         schemas.CodeNavigationFailed,
		Message:      message,
		Retryable:    true,
		RetryAfterMS: 1000,
		Details:      details,
	}
}

// Timeout reports an operation exceeding its deadline.
func Timeout(message string, timeoutMS int64) *Error {
	e := &Error{
		Code:      schemas.CodeTimeout,
		Message:   message,
		Retryable: true,
	}
	if timeoutMS != 0 {
		e.Details = map[string]any{"timeout": timeoutMS}
	}
	return e
}

// ActionFailed reports a failed action on a resolved element.
func ActionFailed(action, message string, sel any) *Error {
	details := map[string]any{"action": action}
	if sel != nil {
		details["selector"] = sel
	}
	return &Error{
		Code:    schemas.CodeActionFailed,
		Message: fmt.Sprintf("%s failed: %s", action, message),
		Details: details,
	}
}

// TargetClosed reports a page or context closed underneath an operation.
func TargetClosed(target string) *Error {
	if target == "" {
		target = "target"
	}
	return &Error{
		Code:    schemas.CodeTargetClosed,
		Message: fmt.Sprintf("%s was closed", target),
	}
}

// ExecutionContextDestroyed reports a navigation tearing down the JS world
// mid-operation. Retryable almost immediately.
func ExecutionContextDestroyed() *Error {
	return &Error{
		Code:         schemas.CodeExecutionContextDestroyed,
		Message:      "Execution context was destroyed",
		Retryable:    true,
		RetryAfterMS: 100,
	}
}

// -- Contexts --

// ContextNotFound reports an unknown browser context id.
func ContextNotFound(contextID string) *Error {
	return &Error{
		Code:    schemas.CodeContextNotFound,
		Message: fmt.Sprintf("Context not found: %s", contextID),
		Details: map[string]any{"contextId": contextID},
	}
}

// ResourceLimitExceeded reports a context or page quota hit.
func ResourceLimitExceeded(resource string, limit, current int) *Error {
	return &Error{
		Code: schemas.CodeResourceLimitExceeded,
		Message: fmt.Sprintf("Resource limit exceeded: %s (max: %d, current: %d)",
			resource, limit, current),
		Details: map[string]any{"resource": resource, "limit": limit, "current": current},
	}
}

// -- Approvals --

// ApprovalDenied reports a human rejecting a gated action.
func ApprovalDenied(reason, rule string) *Error {
	message := "Approval denied"
	if reason != "" {
		message = fmt.Sprintf("Approval denied: %s", reason)
	}
	e := &Error{Code: schemas.CodeApprovalDenied, Message: message}
	if reason != "" || rule != "" {
		e.Details = map[string]any{"rule": rule, "reason": reason}
	}
	return e
}

// ApprovalTimeout reports an approval request expiring unanswered.
func ApprovalTimeout(timeoutMS int64) *Error {
	return &Error{
		Code:      schemas.CodeApprovalTimeout,
		Message:   fmt.Sprintf("Approval timed out after %dms", timeoutMS),
		Retryable: true,
		Details:   map[string]any{"timeout": timeoutMS},
	}
}

// ApprovalRequired reports an action held for human approval.
func ApprovalRequired(requestID, rule string) *Error {
	return &Error{
		Code:    schemas.CodeApprovalRequired,
		Message: fmt.Sprintf("Approval required for action (rule: %s)", rule),
		Details: map[string]any{"requestId": requestID, "rule": rule},
	}
}

// -- Frames --

// FrameNotFound reports an unknown frame identifier.
func FrameNotFound(identifier string) *Error {
	message := "Frame not found"
	e := &Error{Code: schemas.CodeFrameNotFound, Message: message}
	if identifier != "" {
		e.Message = fmt.Sprintf("Frame not found: %s", identifier)
		e.Details = map[string]any{"identifier": identifier}
	}
	return e
}

// DomainNotAllowed reports a frame navigation blocked by domain policy.
func DomainNotAllowed(domain string) *Error {
	return &Error{
		Code:    schemas.CodeDomainNotAllowed,
		Message: fmt.Sprintf("Domain not allowed: %s", domain),
		Details: map[string]any{"domain": domain},
	}
}

// -- Streams --

// StreamNotFound reports an unknown stream id.
func StreamNotFound(streamID string) *Error {
	return &Error{
		Code:    schemas.CodeStreamNotFound,
		Message: fmt.Sprintf("Stream not found: %s", streamID),
		Details: map[string]any{"streamId": streamID},
	}
}

// StreamCancelled reports a stream cancelled before completion.
func StreamCancelled(streamID string) *Error {
	return &Error{
		Code:    schemas.CodeStreamCancelled,
		Message: fmt.Sprintf("Stream was cancelled: %s", streamID),
		Details: map[string]any{"streamId": streamID},
	}
}
