package mcp

import (
	"context"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"rwsch/internal/config"
)

// Server exposes classification, scheduling and forecasting as MCP tools.
type Server struct {
	cfg     *config.AppConfig
	server  *gomcp.Server
	now     func() time.Time
	version string
}

// NewServer creates a server and registers its tools.
func NewServer(cfg *config.AppConfig, version string) *Server {
	s := &Server{
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
		version: version,
	}
	s.server = gomcp.NewServer(&gomcp.Implementation{Name: "rwsch", Version: version}, nil)
	s.registerTools()
	return s
}

// Start serves MCP over stdio until the client disconnects or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	log.Info().Str("version", s.version).Msg("MCP server listening on stdio")
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// Connect attaches the server to an arbitrary transport.
func (s *Server) Connect(ctx context.Context, t gomcp.Transport) (*gomcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}
