// Package client implements the BAP JSON-RPC client over a websocket
// transport: the initialize handshake, id-correlated request/response
// calls, and notification dispatch. Retry and reconnection policy stay
// with the caller; the client only surfaces the structured error fields
// needed to decide.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/browseragentprotocol/bap-go/api/schemas"
	"github.com/browseragentprotocol/bap-go/internal/baperr"
	"github.com/browseragentprotocol/bap-go/internal/config"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// ClientName identifies this SDK in the initialize handshake.
const ClientName = "bap-go"

// NotificationHandler receives server-initiated notifications.
type NotificationHandler func(method string, params json.RawMessage)

type pendingResult struct {
	result json.RawMessage
	err    error
}

// Client is a BAP protocol client bound to one websocket connection.
// It is safe for concurrent use once Connect has returned.
type Client struct {
	cfg     config.ServerConfig
	version string
	logger  *zap.Logger

	conn    *websocket.Conn
	writeMu sync.Mutex

	mu          sync.Mutex
	pending     map[int64]chan pendingResult
	initialized bool
	closed      bool

	nextID   atomic.Int64
	onNotify NotificationHandler

	pump *errgroup.Group
}

// New creates a client for the configured server. version is reported as
// the client version during the handshake.
func New(cfg config.ServerConfig, version string, logger *zap.Logger) *Client {
	// A per-connection id keeps log lines correlatable across sessions.
	connID := uuid.NewString()
	return &Client{
		cfg:     cfg,
		version: version,
		logger:  logger.Named("client").With(zap.String("connectionId", connID)),
		pending: make(map[int64]chan pendingResult),
	}
}

// OnNotification registers the handler for server notifications. Must be
// called before Connect.
func (c *Client) OnNotification(h NotificationHandler) { c.onNotify = h }

// Connect dials the server and performs the initialize handshake.
func (c *Client) Connect(ctx context.Context) (*schemas.InitializeResult, error) {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return nil, baperr.AlreadyInitialized()
	}
	c.mu.Unlock()

	dialer := websocket.Dialer{HandshakeTimeout: c.cfg.ConnectTimeout}
	header := http.Header{}
	if c.cfg.Token != "" {
		header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	conn, _, err := dialer.DialContext(ctx, c.cfg.URL, header)
	if err != nil {
		return nil, baperr.ConnectionFailed(fmt.Sprintf("dial %s: %v", c.cfg.URL, err))
	}
	c.conn = conn

	c.pump, _ = errgroup.WithContext(context.Background())
	c.pump.Go(c.readPump)

	raw, err := c.call(ctx, schemas.MethodInitialize, schemas.InitializeParams{
		ProtocolVersion: schemas.BAPVersion,
		ClientInfo:      schemas.ClientInfo{Name: ClientName, Version: c.version},
	})
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	var result schemas.InitializeResult
	if err := jsonAPI.Unmarshal(raw, &result); err != nil {
		_ = c.Close()
		return nil, baperr.Parse(fmt.Sprintf("decoding initialize result: %v", err))
	}

	c.mu.Lock()
	c.initialized = true
	c.mu.Unlock()

	c.logger.Info("Connected to BAP server",
		zap.String("server", result.ServerInfo.Name),
		zap.String("serverVersion", result.ServerInfo.Version),
		zap.String("protocolVersion", result.ProtocolVersion))
	return &result, nil
}

// Call issues a request and waits for the correlated response.
func (c *Client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	c.mu.Lock()
	ready := c.initialized
	c.mu.Unlock()
	if !ready {
		return nil, baperr.NotInitialized()
	}
	return c.call(ctx, method, params)
}

// Act wraps compiled steps in an agent/act request.
func (c *Client) Act(ctx context.Context, steps []schemas.ExecutionStep, stopOnFirstError bool) (*schemas.AgentActResult, error) {
	raw, err := c.Call(ctx, schemas.MethodAgentAct, schemas.AgentActParams{
		Steps:            steps,
		StopOnFirstError: stopOnFirstError,
	})
	if err != nil {
		return nil, err
	}
	var result schemas.AgentActResult
	if err := jsonAPI.Unmarshal(raw, &result); err != nil {
		return nil, baperr.Parse(fmt.Sprintf("decoding agent/act result: %v", err))
	}
	return &result, nil
}

// Observe requests an AI-optimized page observation.
func (c *Client) Observe(ctx context.Context, params schemas.AgentObserveParams) (*schemas.AgentObserveResult, error) {
	raw, err := c.Call(ctx, schemas.MethodAgentObserve, params)
	if err != nil {
		return nil, err
	}
	var result schemas.AgentObserveResult
	if err := jsonAPI.Unmarshal(raw, &result); err != nil {
		return nil, baperr.Parse(fmt.Sprintf("decoding agent/observe result: %v", err))
	}
	return &result, nil
}

func (c *Client) call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	var rawParams json.RawMessage
	if params != nil {
		encoded, err := jsonAPI.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("encoding params for %s: %w", method, err)
		}
		rawParams = encoded
	}

	id := c.nextID.Add(1)
	ch := make(chan pendingResult, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, baperr.ConnectionFailed("connection closed")
	}
	c.pending[id] = ch
	c.mu.Unlock()

	req := schemas.NewRequest(schemas.IntID(id), method, rawParams)
	if err := c.write(req); err != nil {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		return nil, baperr.ConnectionFailed(fmt.Sprintf("sending %s: %v", method, err))
	}

	select {
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		return nil, ctx.Err()
	case res := <-ch:
		return res.result, res.err
	}
}

func (c *Client) write(v any) error {
	payload, err := jsonAPI.Marshal(v)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

// readPump classifies every inbound message: responses are correlated by
// id, notifications are dispatched to the registered handler, and anything
// else is logged and dropped.
func (c *Client) readPump() error {
	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			c.failPending(baperr.ConnectionFailed(fmt.Sprintf("connection lost: %v", err)))
			return nil
		}

		var msg schemas.Message
		if err := jsonAPI.Unmarshal(payload, &msg); err != nil {
			c.logger.Warn("Dropping unparseable message", zap.Error(err))
			continue
		}

		switch {
		case msg.IsResponse():
			c.dispatchResponse(&msg)
		case msg.IsNotification():
			if c.onNotify != nil {
				c.onNotify(msg.Method, msg.Params)
			}
		case msg.IsRequest():
			// Server-to-client requests (e.g. approval prompts) are not
			// handled by this client; refuse them rather than stall the peer.
			resp := schemas.NewErrorResponse(*msg.ID, schemas.CodeMethodNotFound,
				fmt.Sprintf("Method not found: %s", msg.Method), nil)
			if err := c.write(resp); err != nil {
				c.logger.Warn("Failed to refuse server request", zap.Error(err))
			}
		default:
			c.logger.Warn("Dropping unclassifiable message")
		}
	}
}

func (c *Client) dispatchResponse(msg *schemas.Message) {
	if !msg.ID.IsNum {
		c.logger.Warn("Dropping response with non-numeric id", zap.String("id", msg.ID.String()))
		return
	}

	c.mu.Lock()
	ch, ok := c.pending[msg.ID.Num]
	delete(c.pending, msg.ID.Num)
	c.mu.Unlock()
	if !ok {
		c.logger.Warn("Dropping uncorrelated response", zap.Int64("id", msg.ID.Num))
		return
	}

	if rpcErr := msg.DecodeError(); rpcErr != nil {
		ch <- pendingResult{err: baperr.FromRPCError(rpcErr)}
		return
	}
	ch <- pendingResult{result: msg.Result}
}

func (c *Client) failPending(err *baperr.Error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, ch := range c.pending {
		ch <- pendingResult{err: err}
		delete(c.pending, id)
	}
	c.closed = true
}

// Close tears down the connection and waits for the read pump to exit.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.conn == nil {
		c.mu.Unlock()
		return nil
	}
	c.initialized = false
	c.closed = true
	c.mu.Unlock()

	err := c.conn.Close()
	if c.pump != nil {
		_ = c.pump.Wait()
	}
	return err
}
