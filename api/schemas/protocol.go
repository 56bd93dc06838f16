package schemas

import (
	"encoding/json"
	"fmt"
)

// -- JSON-RPC 2.0 Envelope Schemas --

// BAPVersion is the protocol version negotiated during initialize.
const BAPVersion = "0.2.0"

// JSONRPCVersion is the fixed jsonrpc field value on every message.
const JSONRPCVersion = "2.0"

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Server error codes (-320xx band).
const (
	CodeServerError        = -32000
	CodeNotInitialized     = -32001
	CodeAlreadyInitialized = -32002
)

// Browser and action error codes (-3201x/-3202x band).
const (
	CodeBrowserNotLaunched        = -32010
	CodePageNotFound              = -32011
	CodeElementNotFound           = -32012
	CodeElementNotVisible         = -32013
	CodeElementNotEnabled         = -32014
	CodeNavigationFailed          = -32015
	CodeTimeout                   = -32016
	CodeTargetClosed              = -32017
	CodeExecutionContextDestroyed = -32018
	CodeSelectorAmbiguous         = -32020
	CodeActionFailed              = -32021
	CodeInterceptedRequest        = -32022
)

// Context error codes (multi-context support).
const (
	CodeContextNotFound       = -32023
	CodeResourceLimitExceeded = -32024
)

// Approval error codes (human-in-the-loop, -3203x band).
const (
	CodeApprovalDenied   = -32030
	CodeApprovalTimeout  = -32031
	CodeApprovalRequired = -32032
)

// Frame error codes (-3204x band).
const (
	CodeFrameNotFound    = -32040
	CodeDomainNotAllowed = -32041
)

// Stream error codes (-3205x band).
const (
	CodeStreamNotFound  = -32050
	CodeStreamCancelled = -32051
)

// RequestID carries a JSON-RPC id, which the protocol allows to be either
// a string or an integer. The zero value is not a valid id.
type RequestID struct {
	Str   string
	Num   int64
	IsNum bool
	valid bool
}

// IntID creates a numeric request id.
func IntID(n int64) RequestID { return RequestID{Num: n, IsNum: true, valid: true} }

// StringID creates a string request id.
func StringID(s string) RequestID { return RequestID{Str: s, valid: true} }

// Valid reports whether the id was set at all.
func (id RequestID) Valid() bool { return id.valid }

func (id RequestID) String() string {
	if id.IsNum {
		return fmt.Sprintf("%d", id.Num)
	}
	return id.Str
}

func (id RequestID) MarshalJSON() ([]byte, error) {
	if !id.valid {
		return nil, fmt.Errorf("request id is unset")
	}
	if id.IsNum {
		return json.Marshal(id.Num)
	}
	return json.Marshal(id.Str)
}

func (id *RequestID) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*id = IntID(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = StringID(s)
		return nil
	}
	return fmt.Errorf("request id must be a string or an integer")
}

// RPCErrorData is the optional structured payload on an RPCError. Retryable
// tells the caller whether the operation may be retried; retry policy itself
// is entirely the caller's concern.
type RPCErrorData struct {
	Retryable    bool           `json:"retryable"`
	RetryAfterMS int64          `json:"retryAfterMs,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
}

// RPCError is the JSON-RPC error object.
type RPCError struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Data    *RPCErrorData `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Request is a JSON-RPC request expecting a response correlated by id.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      RequestID       `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// SuccessResponse is a JSON-RPC response carrying a result.
type SuccessResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      RequestID       `json:"id"`
	Result  json.RawMessage `json:"result"`
}

// ErrorResponse is a JSON-RPC response carrying an error.
type ErrorResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      RequestID `json:"id"`
	Error   *RPCError `json:"error"`
}

// Notification is a JSON-RPC message with no id; no response is expected.
type Notification struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// -- Constructors --
// These exist purely to guarantee well-formed output; they perform no I/O.

// NewRequest creates a request envelope.
func NewRequest(id RequestID, method string, params json.RawMessage) Request {
	return Request{JSONRPC: JSONRPCVersion, ID: id, Method: method, Params: params}
}

// NewSuccessResponse creates a success response envelope.
func NewSuccessResponse(id RequestID, result json.RawMessage) SuccessResponse {
	return SuccessResponse{JSONRPC: JSONRPCVersion, ID: id, Result: result}
}

// NewErrorResponse creates an error response envelope.
func NewErrorResponse(id RequestID, code int, message string, data *RPCErrorData) ErrorResponse {
	return ErrorResponse{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Error:   &RPCError{Code: code, Message: message, Data: data},
	}
}

// NewNotification creates a notification envelope.
func NewNotification(method string, params json.RawMessage) Notification {
	return Notification{JSONRPC: JSONRPCVersion, Method: method, Params: params}
}

// -- Message Classification --

// Message is a decoded envelope of unknown kind, used to classify inbound
// traffic before committing to a concrete shape.
type Message struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *RequestID      `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// IsRequest reports whether the message carries both an id and a method.
func (m *Message) IsRequest() bool { return m.ID != nil && m.Method != "" }

// IsResponse reports whether the message carries an id and no method.
func (m *Message) IsResponse() bool { return m.ID != nil && m.Method == "" }

// IsNotification reports whether the message carries a method and no id.
func (m *Message) IsNotification() bool { return m.ID == nil && m.Method != "" }

// IsErrorResponse reports whether the message is a response whose error
// field is an object with a numeric code and a string message. A present
// but malformed error field disqualifies the message, defending against
// partial payloads masquerading as errors.
func (m *Message) IsErrorResponse() bool {
	return m.DecodeError() != nil
}

// DecodeError returns the message's error object, or nil when the message
// does not qualify as an error response.
func (m *Message) DecodeError() *RPCError {
	if len(m.Error) == 0 {
		return nil
	}
	var probe struct {
		Code    json.RawMessage `json:"code"`
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(m.Error, &probe); err != nil {
		return nil
	}
	var code float64
	if err := json.Unmarshal(probe.Code, &code); err != nil {
		return nil
	}
	var msg string
	if err := json.Unmarshal(probe.Message, &msg); err != nil {
		return nil
	}
	var rpcErr RPCError
	if err := json.Unmarshal(m.Error, &rpcErr); err != nil {
		return nil
	}
	return &rpcErr
}
