// Package rpc implements the JSON-RPC 2.0 envelope and Content-Length
// transport framing this server speaks over stdio.
package rpc

import (
	"encoding/json"
	"fmt"
)

// ErrorCode is a JSON-RPC / LSP error code.
type ErrorCode int32

const (
	ParseError     ErrorCode = -32700
	InvalidRequest ErrorCode = -32600
	MethodNotFound ErrorCode = -32601
	InvalidParams  ErrorCode = -32602
	InternalError  ErrorCode = -32603

	// ServerNotInitialized is returned for any request other than
	// initialize/exit received before the initialized notification.
	ServerNotInitialized ErrorCode = -32002
)

// ID is a JSON-RPC request identifier, which the spec allows to be either
// a string or a number. Presence/absence on a Message also discriminates
// requests (ID set) from notifications (ID unset).
type ID struct {
	name   string
	number int64
	isName bool
	isSet  bool
}

// NewNumberID builds an ID from an integer, as this server's own requests
// (none outbound today, reserved for future client-bound requests) would.
func NewNumberID(n int64) ID { return ID{number: n, isSet: true} }

// NewStringID builds an ID from a string.
func NewStringID(s string) ID { return ID{name: s, isName: true, isSet: true} }

// IsEmpty reports whether the ID was never set (used for notifications
// which carry no ID).
func (id ID) IsEmpty() bool { return !id.isSet }

// String renders the ID for logging.
func (id ID) String() string {
	if id.isName {
		return id.name
	}
	return fmt.Sprintf("%d", id.number)
}

// MarshalJSON encodes the ID as a JSON string or number, matching
// whichever form it was constructed or decoded with.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.isName {
		return json.Marshal(id.name)
	}
	return json.Marshal(id.number)
}

// UnmarshalJSON decodes a JSON string or number into the ID.
func (id *ID) UnmarshalJSON(data []byte) error {
	*id = ID{}
	if err := json.Unmarshal(data, &id.number); err == nil {
		id.isSet = true
		return nil
	}
	if err := json.Unmarshal(data, &id.name); err != nil {
		return err
	}
	id.isName = true
	id.isSet = true
	return nil
}

// Error is a structured JSON-RPC error object.
type Error struct {
	Code    ErrorCode       `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string { return fmt.Sprintf("%d: %s", e.Code, e.Message) }

// NewError builds an *Error for the given code/message.
func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Message carries every field any of request/response/notification may
// have. Presence/absence of ID and Method discriminates the three:
//   - Request: ID set, Method set
//   - Notification: ID unset, Method set
//   - Response: ID set, Method unset, Result or Error set
// Unmarshaling of Params/Result is deferred (json.RawMessage) until the
// dispatcher knows which concrete type to decode into.
type Message struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *ID             `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// IsRequest reports whether m is a request (expects a response).
func (m *Message) IsRequest() bool { return m.ID != nil && m.Method != "" }

// IsNotification reports whether m is a notification (no response).
func (m *Message) IsNotification() bool { return m.ID == nil && m.Method != "" }

// IsResponse reports whether m is a response to a previously sent request.
func (m *Message) IsResponse() bool { return m.ID != nil && m.Method == "" }

// NewRequest builds a request Message with the given id/method/params.
func NewRequest(id ID, method string, params any) (*Message, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return &Message{JSONRPC: "2.0", ID: &id, Method: method, Params: raw}, nil
}

// NewNotification builds a notification Message (no ID).
func NewNotification(method string, params any) (*Message, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return &Message{JSONRPC: "2.0", Method: method, Params: raw}, nil
}

// NewResponse builds a successful response Message.
func NewResponse(id ID, result any) (*Message, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return &Message{JSONRPC: "2.0", ID: &id, Result: raw}, nil
}

// NewErrorResponse builds a failed response Message.
func NewErrorResponse(id ID, rpcErr *Error) *Message {
	return &Message{JSONRPC: "2.0", ID: &id, Error: rpcErr}
}
