package mcp

import (
	"context"
	"net/http"
	"os"

	"github.com/m-mizutani/farrier/pkg/domain/interfaces"
	"github.com/m-mizutani/farrier/pkg/domain/types"
	"github.com/mark3labs/mcp-go/server"
)

const instructions = `Tools for managing Java library versions in Maven projects:
use update_library_version to rewrite a dependency version in pom.xml, and
check_compatibility to get an LLM assessment of an upgrade against the
project's own code. Project trees are exposed through codedir:// resources.`

// Server exposes the version management tools and directory resources over
// the Model Context Protocol.
type Server struct {
	mcp      *server.MCPServer
	compat   interfaces.CompatUseCase
	manifest interfaces.ManifestUseCase
}

// New builds an MCP server wired to the given use cases.
func New(compat interfaces.CompatUseCase, manifest interfaces.ManifestUseCase) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			types.AppName,
			types.Version,
			server.WithToolCapabilities(true),
			server.WithResourceCapabilities(false, true),
			server.WithRecovery(),
			server.WithInstructions(instructions),
		),
		compat:   compat,
		manifest: manifest,
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio serves MCP over stdin/stdout until ctx is canceled or the
// client closes the stream.
func (s *Server) ServeStdio(ctx context.Context) error {
	return server.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
}

// HTTPHandler returns the streamable HTTP transport, ready to mount on a
// mux next to the rest of the HTTP surface.
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp)
}
