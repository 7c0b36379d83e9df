package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/farrier/pkg/domain/model"
	"github.com/m-mizutani/farrier/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"greeting://{name}",
			"Personalized greeting",
			mcp.WithTemplateDescription("Get a personalized greeting"),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		s.handleGreeting,
	)

	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"codedir://{+path}",
			"Code directory listing",
			mcp.WithTemplateDescription("List the entries of a project directory"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleCodeDirectory,
	)
}

func (s *Server) handleGreeting(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	name := templateValue(req.Params.URI, "greeting://")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Hello, %s!", name),
		},
	}, nil
}

func (s *Server) handleCodeDirectory(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	path := templateValue(req.Params.URI, "codedir://")

	raw, err := json.Marshal(s.listDirectory(ctx, path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal directory listing", goerr.V("path", path))
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(raw),
		},
	}, nil
}

func (s *Server) listDirectory(ctx context.Context, path string) any {
	st, err := os.Stat(path)
	if err != nil || !st.IsDir() {
		ctxlog.From(ctx).Warn("Directory listing refused", "path", path, "error", err)
		return model.ErrorResponse{Status: model.StatusError, Message: types.ErrNotADirectory.Error()}
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return model.ErrorResponse{Status: model.StatusError, Message: err.Error()}
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		files = append(files, e.Name())
	}
	return model.DirListing{Status: model.StatusSuccess, Path: path, Files: files}
}

// templateValue pulls the templated tail out of a resource URI. Strict
// clients percent-encode it; decode when possible.
func templateValue(uri, prefix string) string {
	raw := strings.TrimPrefix(uri, prefix)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
