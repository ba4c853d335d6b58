package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/config"
	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/resources"
	"github.com/TaylorBeck/lead-finder-chatgpt/internal/mcpserver/tools"
)

// ServerName identifies this server in the initialize handshake
const ServerName = "business-lead-finder"

// LatestProtocolVersion is offered when a client asks for a version we do not speak
const LatestProtocolVersion = "2025-06-18"

// SupportedProtocolVersions lists accepted Mcp-Protocol-Version values, newest first
var SupportedProtocolVersions = []string{LatestProtocolVersion, "2025-03-26", "2024-11-05"}

const maxRequestBytes = 1 << 20

// MCPServer is the Streamable HTTP MCP server
type MCPServer struct {
	config         *config.Config
	httpServer     *http.Server
	sessionMgr     *SessionManager // nil in stateless mode
	rateLimiter    *RateLimiter    // nil when limiting is off
	toolRegistry   *tools.Registry
	resources      *resources.Resolver
	metricsHandler http.Handler
	version        string
	keepAlive      time.Duration
}

// Option customizes an MCPServer
type Option func(*MCPServer)

// WithMetricsHandler serves h on GET /metrics
func WithMetricsHandler(h http.Handler) Option {
	return func(s *MCPServer) { s.metricsHandler = h }
}

// WithVersion sets the version reported in serverInfo
func WithVersion(version string) Option {
	return func(s *MCPServer) { s.version = version }
}

// WithKeepAliveInterval sets how often idle SSE streams receive a keep-alive
func WithKeepAliveInterval(d time.Duration) Option {
	return func(s *MCPServer) { s.keepAlive = d }
}

// NewMCPServer creates a new MCP server
func NewMCPServer(cfg *config.Config, toolRegistry *tools.Registry, resolver *resources.Resolver, opts ...Option) *MCPServer {
	s := &MCPServer{
		config:       cfg,
		toolRegistry: toolRegistry,
		resources:    resolver,
		version:      "dev",
		keepAlive:    25 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	if !cfg.StatelessHTTP {
		s.sessionMgr = NewSessionManager(cfg.SessionTTL.Duration)
	}
	if cfg.RateLimit.Enabled() {
		s.rateLimiter = NewRateLimiter(cfg.RateLimit)
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// WriteTimeout is intentionally omitted to support long-lived SSE connections
	}

	return s
}

// Routes builds the HTTP handler
func (s *MCPServer) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(CorrelationMiddleware)
	r.Use(AccessLog)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Mcp-Session-Id", "X-Correlation-ID"},
	}).Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if s.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.metricsHandler)
	}

	// MCP endpoints
	if s.rateLimiter != nil {
		r.With(s.rateLimiter.Middleware).Post("/mcp", s.handleMCPPost)
	} else {
		r.Post("/mcp", s.handleMCPPost)
	}
	r.Get("/mcp", s.handleMCPGet)
	r.Delete("/mcp", s.handleMCPDelete)

	return r
}

// Start serves until Shutdown is called
func (s *MCPServer) Start() error {
	log.Info().
		Str("addr", s.config.Addr).
		Bool("stateless", s.config.StatelessHTTP).
		Msg("Starting MCP server")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *MCPServer) Shutdown(ctx context.Context) error {
	if s.sessionMgr != nil {
		s.sessionMgr.Close()
	}
	if s.rateLimiter != nil {
		s.rateLimiter.Close()
	}
	return s.httpServer.Shutdown(ctx)
}

// handleMCPPost handles POST /mcp (JSON-RPC requests)
func (s *MCPServer) handleMCPPost(w http.ResponseWriter, r *http.Request) {
	// Validate Origin header (DNS rebinding protection)
	if !s.validateOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	if !s.validateProtocolVersion(w, r) {
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	var req JSONRPCRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.sendError(w, nil, ParseError, "invalid JSON")
		return
	}

	// Validate JSON-RPC version
	if req.JSONRPC != "2.0" {
		s.sendError(w, req.ID, InvalidRequest, "invalid jsonrpc version")
		return
	}

	logger := log.Ctx(r.Context()).With().Str("method", req.Method).Logger()

	// Notifications get no response body
	if req.IsNotification() {
		logger.Debug().Msg("Notification received")
		w.WriteHeader(http.StatusAccepted)
		return
	}

	if req.Method == "initialize" {
		s.handleInitialize(w, &req, logger)
		return
	}

	sessionID := r.Header.Get("Mcp-Session-Id")
	if s.sessionMgr != nil {
		if sessionID == "" {
			s.sendError(w, req.ID, InvalidRequest, "missing Mcp-Session-Id header")
			return
		}
		if err := s.sessionMgr.Touch(sessionID); err != nil {
			s.sendError(w, req.ID, InvalidRequest, "session not found")
			return
		}
		logger = logger.With().Str("sessionId", sessionID).Logger()
	}

	s.handleJSONRPC(r.Context(), w, &req, sessionID, logger)
}

// handleInitialize negotiates the protocol version and, in stateful mode, opens a session
func (s *MCPServer) handleInitialize(w http.ResponseWriter, req *JSONRPCRequest, logger zerolog.Logger) {
	var params initializeParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			s.sendError(w, req.ID, InvalidParams, "invalid initialize parameters")
			return
		}
	}

	version := negotiateProtocolVersion(params.ProtocolVersion)

	if s.sessionMgr != nil {
		session := s.sessionMgr.CreateSession(version, params.ClientInfo.Name)
		w.Header().Set("Mcp-Session-Id", session.ID)
		logger = logger.With().Str("sessionId", session.ID).Logger()
	}

	logger.Info().
		Str("client", params.ClientInfo.Name).
		Str("requestedVersion", params.ProtocolVersion).
		Str("protocolVersion", version).
		Msg("MCP client initialized")

	s.sendResult(w, req.ID, InitializeResult{
		ProtocolVersion: version,
		Capabilities: map[string]any{
			"tools":     map[string]any{"listChanged": false},
			"resources": map[string]any{"subscribe": false, "listChanged": false},
		},
		ServerInfo: Implementation{
			Name:    ServerName,
			Version: s.version,
		},
	})
}

// handleJSONRPC routes JSON-RPC requests to appropriate handlers
func (s *MCPServer) handleJSONRPC(ctx context.Context, w http.ResponseWriter, req *JSONRPCRequest, sessionID string, logger zerolog.Logger) {
	switch req.Method {
	case "ping":
		s.sendResult(w, req.ID, map[string]any{})

	case "tools/list":
		s.sendResult(w, req.ID, map[string]any{
			"tools": s.toolRegistry.List(),
		})

	case "tools/call":
		var callReq tools.CallRequest
		if err := json.Unmarshal(req.Params, &callReq); err != nil {
			s.sendToolError(w, req.ID, tools.NewToolError(tools.ErrCodeInvalidParams, "invalid tool call parameters", nil))
			return
		}
		if callReq.Name == "" {
			s.sendToolError(w, req.ID, tools.NewToolError(tools.ErrCodeInvalidParams, "tool name is required", map[string]any{"field": "name"}))
			return
		}

		toolLogger := logger.With().Str("tool", callReq.Name).Logger()
		toolCtx := tools.NewToolContext(&toolLogger, sessionID)

		// Unknown tools, invalid arguments and tool failures all come back
		// as error-flagged results rather than protocol errors
		outcome := s.toolRegistry.Invoke(ctx, toolCtx, callReq.Name, callReq.Arguments)
		s.sendResult(w, req.ID, outcome.Result)

	case "resources/list":
		s.sendResult(w, req.ID, map[string]any{
			"resources": s.resources.ListResources(),
		})

	case "resources/templates/list":
		s.sendResult(w, req.ID, map[string]any{
			"resourceTemplates": s.resources.ListResourceTemplates(),
		})

	case "resources/read":
		var params readResourceParams
		if err := json.Unmarshal(req.Params, &params); err != nil || params.URI == "" {
			s.sendToolError(w, req.ID, tools.NewToolError(tools.ErrCodeInvalidParams, "resource uri is required", map[string]any{"field": "uri"}))
			return
		}

		result := s.resources.Read(params.URI)
		if !result.Found() {
			logger.Warn().Str("uri", params.URI).Msg("Unknown resource requested")
		}
		s.sendResult(w, req.ID, result)

	default:
		s.sendError(w, req.ID, MethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
	}
}

// handleMCPGet handles GET /mcp (SSE stream)
func (s *MCPServer) handleMCPGet(w http.ResponseWriter, r *http.Request) {
	if s.sessionMgr == nil {
		w.Header().Set("Allow", "POST")
		http.Error(w, "streaming is not offered in stateless mode", http.StatusMethodNotAllowed)
		return
	}

	if !s.validateOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	if !s.validateProtocolVersion(w, r) {
		return
	}

	sessionID := r.Header.Get("Mcp-Session-Id")
	if sessionID == "" {
		http.Error(w, "missing Mcp-Session-Id header", http.StatusBadRequest)
		return
	}

	if err := s.sessionMgr.Touch(sessionID); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	stream, err := NewSSEStream(r.Context(), w, sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer stream.Close()

	logger := log.Ctx(r.Context()).With().Str("sessionId", sessionID).Logger()
	logger.Info().Msg("SSE stream established")

	stream.Run(s.keepAlive)

	logger.Info().Msg("SSE stream closed")
}

// handleMCPDelete handles DELETE /mcp (close session)
func (s *MCPServer) handleMCPDelete(w http.ResponseWriter, r *http.Request) {
	if s.sessionMgr == nil {
		w.Header().Set("Allow", "POST")
		http.Error(w, "sessions are not used in stateless mode", http.StatusMethodNotAllowed)
		return
	}

	if !s.validateOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	sessionID := r.Header.Get("Mcp-Session-Id")
	if sessionID == "" {
		http.Error(w, "missing session ID", http.StatusBadRequest)
		return
	}

	if !s.sessionMgr.DeleteSession(sessionID) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validateOrigin checks the Origin header against the allowlist to prevent
// DNS rebinding. Non-browser clients send no Origin and are accepted.
func (s *MCPServer) validateOrigin(r *http.Request) bool {
	if len(s.config.AllowedOrigins) == 0 {
		return true
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	for _, allowed := range s.config.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}

	log.Ctx(r.Context()).Warn().
		Str("origin", origin).
		Strs("allowedOrigins", s.config.AllowedOrigins).
		Msg("Origin not in allowlist")
	return false
}

// validateProtocolVersion rejects requests naming a protocol version we do not
// speak. A missing header is accepted for clients predating it.
func (s *MCPServer) validateProtocolVersion(w http.ResponseWriter, r *http.Request) bool {
	version := r.Header.Get("Mcp-Protocol-Version")
	if version == "" || isSupportedProtocolVersion(version) {
		return true
	}

	log.Ctx(r.Context()).Warn().Str("protocolVersion", version).Msg("Unsupported protocol version")
	http.Error(w, "unsupported protocol version", http.StatusBadRequest)
	return false
}

func isSupportedProtocolVersion(version string) bool {
	for _, v := range SupportedProtocolVersions {
		if v == version {
			return true
		}
	}
	return false
}

func negotiateProtocolVersion(requested string) string {
	if isSupportedProtocolVersion(requested) {
		return requested
	}
	return LatestProtocolVersion
}

// Helper functions
func (s *MCPServer) sendError(w http.ResponseWriter, id json.RawMessage, code int, message string) {
	writeResponse(w, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      nullableID(id),
		Error: &JSONRPCError{
			Code:    code,
			Message: message,
		},
	})
}

// sendToolError maps a ToolError onto a JSON-RPC error, keeping its data
func (s *MCPServer) sendToolError(w http.ResponseWriter, id json.RawMessage, toolErr *tools.ToolError) {
	code, message, data := toolErr.ToJSONRPCError()
	writeResponse(w, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      nullableID(id),
		Error: &JSONRPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	})
}

func (s *MCPServer) sendResult(w http.ResponseWriter, id json.RawMessage, result any) {
	data, err := json.Marshal(result)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode result")
		s.sendError(w, id, InternalError, "failed to encode result")
		return
	}

	writeResponse(w, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      nullableID(id),
		Result:  data,
	})
}

// writeResponse sends a JSON-RPC response. JSON-RPC errors are still HTTP 200.
func writeResponse(w http.ResponseWriter, response JSONRPCResponse) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(response); err != nil {
		log.Error().Err(err).Msg("failed to encode json-rpc response")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// nullableID renders a missing id as null, which JSON-RPC requires for errors
// raised before the id could be read
func nullableID(id json.RawMessage) json.RawMessage {
	if len(id) == 0 {
		return json.RawMessage("null")
	}
	return id
}
