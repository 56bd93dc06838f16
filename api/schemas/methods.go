package schemas

// -- Handshake Schemas (initialize) --

// ClientInfo identifies the connecting client.
type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ClientCapabilities advertises optional client features.
type ClientCapabilities struct {
	Events      []string `json:"events,omitempty"`
	Streaming   bool     `json:"streaming,omitempty"`
	Compression bool     `json:"compression,omitempty"`
}

// InitializeParams are the parameters for initialize.
type InitializeParams struct {
	ProtocolVersion string              `json:"protocolVersion"`
	ClientInfo      ClientInfo          `json:"clientInfo"`
	Capabilities    *ClientCapabilities `json:"capabilities,omitempty"`
}

// ServerInfo identifies the serving engine.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ServerCapabilities advertises what the engine supports.
type ServerCapabilities struct {
	Browsers     []string `json:"browsers,omitempty"`
	Actions      []string `json:"actions,omitempty"`
	Observations []string `json:"observations,omitempty"`
	Events       []string `json:"events,omitempty"`
	Streaming    bool     `json:"streaming,omitempty"`
	Compression  bool     `json:"compression,omitempty"`
}

// InitializeResult is the result of initialize.
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	ServerInfo      ServerInfo         `json:"serverInfo"`
	Capabilities    ServerCapabilities `json:"capabilities"`
}

// PageNavigateResult is the result of page/navigate.
type PageNavigateResult struct {
	URL    string `json:"url"`
	Status int    `json:"status,omitempty"`
}
