package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/farrier/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("add",
			mcp.WithDescription("Add two numbers"),
			mcp.WithNumber("a", mcp.Required(), mcp.Description("First number")),
			mcp.WithNumber("b", mcp.Required(), mcp.Description("Second number")),
		),
		s.handleAdd,
	)

	s.mcp.AddTool(
		mcp.NewTool("update_library_version",
			mcp.WithDescription("Update a specific library version in the root pom.xml"),
			mcp.WithString("code_dir", mcp.Required(), mcp.Description("Path to the project directory containing pom.xml")),
			mcp.WithString("library_name", mcp.Required(), mcp.Description("artifactId of the dependency to update")),
			mcp.WithString("new_version", mcp.Required(), mcp.Description("Version to write into the manifest")),
		),
		s.handleUpdateLibraryVersion,
	)

	s.mcp.AddTool(
		mcp.NewTool("check_compatibility",
			mcp.WithDescription("Check if an upgraded library version is compatible with the current code"),
			mcp.WithString("code_dir", mcp.Required(), mcp.Description("Path to the project directory to scan")),
			mcp.WithString("library_name", mcp.Required(), mcp.Description("Name of the library being upgraded")),
			mcp.WithString("old_version", mcp.Required(), mcp.Description("Version currently in use")),
			mcp.WithString("new_version", mcp.Required(), mcp.Description("Version to upgrade to")),
		),
		s.handleCheckCompatibility,
	)
}

func (s *Server) handleAdd(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := req.RequireInt("a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := req.RequireInt("b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strconv.Itoa(a + b)), nil
}

func (s *Server) handleUpdateLibraryVersion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	codeDir, err := req.RequireString("code_dir")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	library, err := req.RequireString("library_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	newVersion, err := req.RequireString("new_version")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	bump, err := s.manifest.UpdateVersion(ctx, codeDir, library, newVersion)
	if err != nil {
		ctxlog.From(ctx).Warn("Version update failed", "library", library, "dir", codeDir, "error", err)
		return errorResult(err.Error())
	}

	return jsonResult(model.UpdateResponse{
		Status:     model.StatusSuccess,
		Message:    fmt.Sprintf("Updated %s from %s to %s", bump.Artifact, bump.OldVersion, bump.NewVersion),
		OldVersion: bump.OldVersion,
		NewVersion: bump.NewVersion,
	})
}

func (s *Server) handleCheckCompatibility(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	codeDir, err := req.RequireString("code_dir")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	library, err := req.RequireString("library_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	oldVersion, err := req.RequireString("old_version")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	newVersion, err := req.RequireString("new_version")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := s.compat.CheckCompatibility(ctx, &model.CompatibilityRequest{
		Dir:         codeDir,
		Library:     library,
		FromVersion: oldVersion,
		ToVersion:   newVersion,
	})
	if err != nil {
		ctxlog.From(ctx).Error("Compatibility check failed", "library", library, "dir", codeDir, "error", err)
		return errorResult(err.Error())
	}

	return jsonResult(model.CompatResponse{
		Status:   model.StatusSuccess,
		Analysis: report.Analysis,
		CheckID:  report.CheckID,
	})
}

// jsonResult marshals v into the text content of a tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal tool result")
	}
	return mcp.NewToolResultText(string(raw)), nil
}

// errorResult renders a failure as a {status: error} payload. The protocol
// call itself still succeeds.
func errorResult(msg string) (*mcp.CallToolResult, error) {
	return jsonResult(model.ErrorResponse{
		Status:  model.StatusError,
		Message: msg,
	})
}
