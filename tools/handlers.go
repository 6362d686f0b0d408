package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/writefreely-mcp-server/metrics"
	"github.com/olgasafonova/writefreely-mcp-server/tracing"
	"github.com/olgasafonova/writefreely-mcp-server/writefreely"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *writefreely.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *writefreely.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	registered := 0
	for _, spec := range AllTools {
		if h.registerByName(server, spec) {
			registered++
		}
	}
	h.logger.Info("Registered all tools", "count", registered)
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) bool {
	tool := h.buildTool(spec)
	c := h.client

	switch spec.Method {
	// Account tools
	case "AuthStatus":
		register(h, server, tool, spec, c.AuthStatusMCP)
	case "Me":
		register(h, server, tool, spec, c.MeMCP)
	case "Logout":
		register(h, server, tool, spec, c.LogoutMCP)
	case "ListChannels":
		register(h, server, tool, spec, c.ListChannelsMCP)

	// Post tools
	case "CreatePost":
		register(h, server, tool, spec, c.CreatePostMCP)
	case "GetPost":
		register(h, server, tool, spec, c.GetPostMCP)
	case "ListPosts":
		register(h, server, tool, spec, c.ListPostsMCP)
	case "UpdatePost":
		register(h, server, tool, spec, c.UpdatePostMCP)
	case "DeletePost":
		register(h, server, tool, spec, c.DeletePostMCP)
	case "ClaimPosts":
		register(h, server, tool, spec, c.ClaimPostsMCP)
	case "MovePosts":
		register(h, server, tool, spec, c.MovePostsMCP)
	case "PinPosts":
		register(h, server, tool, spec, c.PinPostsMCP)
	case "UnpinPosts":
		register(h, server, tool, spec, c.UnpinPostsMCP)

	// Collection tools
	case "CreateCollection":
		register(h, server, tool, spec, c.CreateCollectionMCP)
	case "GetCollection":
		register(h, server, tool, spec, c.GetCollectionMCP)
	case "ListCollections":
		register(h, server, tool, spec, c.ListCollectionsMCP)
	case "UpdateCollection":
		register(h, server, tool, spec, c.UpdateCollectionMCP)
	case "DeleteCollection":
		register(h, server, tool, spec, c.DeleteCollectionMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
		return false
	}
	return true
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	} else if !spec.ReadOnly {
		annotations.DestructiveHint = ptr(false)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (res *mcp.CallToolResult, out Result, err error) {
		defer h.recoverPanic(spec.Name, &err)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		tracing.AddToolAttributes(span, spec.Name, spec.Category)
		span.SetAttributes(
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
			attribute.Bool("mcp.tool.requires_auth", spec.RequiresAuth),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			h.logger.Warn("Tool failed", "tool", spec.Name, "error", err)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers and turns them into a
// tool error.
func (h *HandlerRegistry) recoverPanic(toolName string, errp *error) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
		if errp != nil {
			*errp = fmt.Errorf("%s failed: internal error", toolName)
		}
	}
}

// logExecution logs tool execution details. Post bodies and tokens are never logged.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case writefreely.CreatePostArgs:
		attrs = append(attrs, "collection", a.Collection, "body_bytes", len(a.Body))
	case writefreely.GetPostArgs:
		attrs = append(attrs, "id", a.ID, "collection", a.Collection)
	case writefreely.ListPostsArgs:
		attrs = append(attrs, "collection", a.Collection)
	case writefreely.UpdatePostArgs:
		attrs = append(attrs, "id", a.ID, "body_bytes", len(a.Body), "owner_token", a.Token != "")
	case writefreely.DeletePostArgs:
		attrs = append(attrs, "id", a.ID, "owner_token", a.Token != "")
	case writefreely.ClaimPostsArgs:
		attrs = append(attrs, "posts", len(a.Posts), "collection", a.Collection)
	case writefreely.MovePostsArgs:
		attrs = append(attrs, "posts", len(a.Posts), "collection", a.Collection)
	case writefreely.PinPostsArgs:
		attrs = append(attrs, "posts", len(a.Posts), "collection", a.Collection)
	case writefreely.UnpinPostsArgs:
		attrs = append(attrs, "posts", len(a.IDs), "collection", a.Collection)
	case writefreely.CreateCollectionArgs:
		attrs = append(attrs, "alias", a.Alias)
	case writefreely.GetCollectionArgs:
		attrs = append(attrs, "alias", a.Alias)
	case writefreely.UpdateCollectionArgs:
		attrs = append(attrs, "alias", a.Alias)
	case writefreely.DeleteCollectionArgs:
		attrs = append(attrs, "alias", a.Alias)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case writefreely.PostResult:
		attrs = append(attrs, "post_id", r.Post.ID)
	case writefreely.ListPostsResult:
		attrs = append(attrs, "results_count", r.Count)
	case writefreely.ClaimPostsResult:
		attrs = append(attrs, "succeeded", r.Succeeded, "failed", r.Failed)
	case writefreely.PinPostsResult:
		attrs = append(attrs, "succeeded", r.Succeeded, "failed", r.Failed)
	case writefreely.ListCollectionsResult:
		attrs = append(attrs, "results_count", r.Count)
	case writefreely.ListChannelsResult:
		attrs = append(attrs, "results_count", r.Count)
	case writefreely.AuthStatusResult:
		attrs = append(attrs, "authenticated", r.Authenticated)
	}

	h.logger.Info("Tool executed", attrs...)
}
