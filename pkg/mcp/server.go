// Package mcp exposes the estimation engine as MCP tools over a line-delimited
// JSON-RPC 2.0 stream, typically stdio.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/stackquote/stackquote/pkg/estimate"
	"github.com/stackquote/stackquote/pkg/logging"
	"github.com/stackquote/stackquote/pkg/preset"
	"github.com/stackquote/stackquote/pkg/recommend"
)

const serverInstructions = "Estimate monthly and yearly costs of AI models, infrastructure and databases for a project, and get recommendations by scale."

// Server is a minimal MCP server.
type Server struct {
	engine  *estimate.Engine
	presets *preset.Manager
	locale  recommend.Locale
	version string
	log     *zap.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithPresets enables the presets tool backed by m.
func WithPresets(m *preset.Manager) Option {
	return func(s *Server) { s.presets = m }
}

// WithLocale sets the default locale for recommendation reasons and quotes.
func WithLocale(l recommend.Locale) Option {
	return func(s *Server) { s.locale = l }
}

// WithLogger sets the logger. Logs must not go to the response stream.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.log = l }
}

// New creates a new MCP Server. A nil engine uses the default catalog.
func New(e *estimate.Engine, version string, opts ...Option) *Server {
	if e == nil {
		e = estimate.New(nil)
	}
	s := &Server{
		engine:  e,
		locale:  recommend.DefaultLocale,
		version: version,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logging.OrNop(s.log)
	return s
}

// Run reads JSON-RPC requests from r line-by-line and writes responses to w.
// It blocks until r is closed or ctx is cancelled.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.writeResponse(w, errorResponse(nil, CodeParseError, "parse error"))
			continue
		}

		resp := s.dispatch(ctx, &req)
		if resp == nil {
			continue
		}
		s.writeResponse(w, resp)
	}
	return scanner.Err()
}

func (s *Server) dispatch(ctx context.Context, req *Request) *Response {
	s.log.Debug("mcp request", zap.String("method", req.Method))

	switch req.Method {
	case "initialize":
		return resultResponse(req.ID, InitializeResult{
			ProtocolVersion: ProtocolVersion,
			ServerInfo:      ServerInfo{Name: "stackquote", Version: s.version},
			Capabilities:    map[string]any{"tools": map[string]any{}},
			Instructions:    serverInstructions,
		})
	case "notifications/initialized", "notifications/cancelled":
		return nil
	case "ping":
		return resultResponse(req.ID, map[string]any{})
	case "tools/list":
		return resultResponse(req.ID, ToolsListResult{Tools: s.tools()})
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	default:
		if len(req.ID) == 0 {
			// Unknown notification.
			return nil
		}
		return errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("unknown method: %s", req.Method))
	}
}

// tools lists the tool definitions; the presets tool is hidden without a manager.
func (s *Server) tools() []ToolDefinition {
	out := make([]ToolDefinition, 0, len(allTools))
	for _, t := range allTools {
		if t.Name == toolPresets && s.presets == nil {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *Server) handleToolsCall(ctx context.Context, req *Request) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, CodeInvalidParams, "invalid params")
	}

	handler, ok := toolHandlers[params.Name]
	if !ok || (params.Name == toolPresets && s.presets == nil) {
		return resultResponse(req.ID, errorResult(fmt.Sprintf("unknown tool: %s", params.Name)))
	}

	result := handler(ctx, s, params.Arguments)
	if result.IsError {
		s.log.Debug("mcp tool error", zap.String("tool", params.Name))
	}
	return resultResponse(req.ID, result)
}

func (s *Server) writeResponse(w io.Writer, resp *Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.log.Error("mcp: marshal response", zap.Error(err))
		return
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		s.log.Error("mcp: write response", zap.Error(err))
	}
}
