// ABOUTME: MCP server setup and lifecycle
// ABOUTME: Exposes calendar generation over the Model Context Protocol

package mcp

import (
	"context"
	"database/sql"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with database access.
type Server struct {
	mcp *mcp.Server
	db  *sql.DB
}

// NewServer creates an MCP server backed by the given database.
func NewServer(database *sql.DB) (*Server, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}

	impl := &mcp.Implementation{
		Name:    "mastermind",
		Version: "1.0.0",
	}

	s := &Server{
		mcp: mcp.NewServer(impl, nil),
		db:  database,
	}

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s, nil
}

// Serve runs the MCP server on stdio until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
