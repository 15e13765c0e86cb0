// Package mcp exposes the knowledge-base analyses as MCP tools.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"cognet/internal/application/commands"
	"cognet/internal/ports"
)

// RegisterReadTools adds all read-only knowledge-base tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.CorpusRepository, cluster commands.ClusterParams, linking commands.LinkParams) {
	s.AddTool(themesTool(), themesHandler(repo, cluster))
	s.AddTool(searchTool(), searchHandler(repo))
	s.AddTool(orphansTool(), orphansHandler(repo))
	s.AddTool(brokenLinksTool(), brokenLinksHandler(repo, linking))
	s.AddTool(readNoteTool(), readNoteHandler(repo))
}

// --- themes ---

func themesTool() mcp.Tool {
	return mcp.NewTool("themes",
		mcp.WithDescription("Cluster the vault's notes into thematic groups by content similarity and return the theme summaries."),
		mcp.WithString("name",
			mcp.Description("Return only the theme with this name. Omit to list all themes."),
		),
	)
}

func themesHandler(repo ports.CorpusRepository, params commands.ClusterParams) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewThemesCommand(repo, params).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if name := req.GetString("name", ""); name != "" {
			for _, theme := range result.Themes {
				if strings.EqualFold(theme.Name, name) {
					return mcp.NewToolResultText(theme.Summary()), nil
				}
			}
			return toolError(fmt.Errorf("no theme named %q", name))
		}

		if len(result.Themes) == 0 {
			return mcp.NewToolResultText("No themes found."), nil
		}
		var sb strings.Builder
		for _, theme := range result.Themes {
			fmt.Fprintf(&sb, "%s  (%d notes)  %s\n", theme.Name, len(theme.Notes), theme.Description)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search notes by title, path, or tag. Results are ranked by relevance."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(repo ports.CorpusRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(repo, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s", r.Note.Title, r.Note.Path)
			if len(r.Note.Tags) > 0 {
				fmt.Fprintf(&sb, "  #%s", strings.Join(r.Note.Tags, " #"))
			}
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- orphans ---

func orphansTool() mcp.Tool {
	return mcp.NewTool("orphans",
		mcp.WithDescription("Find disconnected notes: no links, no backlinks, no tags, or no metadata."),
	)
}

func orphansHandler(repo ports.CorpusRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewOrphansCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Doc), nil
	}
}

// --- broken_links ---

func brokenLinksTool() mcp.Tool {
	return mcp.NewTool("broken_links",
		mcp.WithDescription("List wiki links whose target resolves to no note, with suggested new connections."),
	)
}

func brokenLinksHandler(repo ports.CorpusRepository, params commands.LinkParams) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewLinksCommand(repo, params).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Report), nil
	}
}

// --- read_note ---

func readNoteTool() mcp.Tool {
	return mcp.NewTool("read_note",
		mcp.WithDescription("Read the raw content of a note by its vault-relative path."),
		mcp.WithString("path",
			mcp.Description("Note path relative to the vault root (e.g. 02-Notes/spaced-repetition.md)"),
			mcp.Required(),
		),
	)
}

func readNoteHandler(repo ports.CorpusRepository) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		content, err := repo.ReadNote(path)
		if err != nil {
			return toolError(fmt.Errorf("reading note: %w", err))
		}
		return mcp.NewToolResultText(content), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
