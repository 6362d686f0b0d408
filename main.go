// WriteFreely MCP Server - A Model Context Protocol server for WriteFreely and Write.as
// Provides tools for publishing and managing posts and blogs
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/writefreely-mcp-server/tools"
	"github.com/olgasafonova/writefreely-mcp-server/tracing"
	"github.com/olgasafonova/writefreely-mcp-server/writefreely"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// recoverPanic logs a panic instead of crashing
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

const (
	ServerName    = "writefreely-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	level := slog.LevelInfo
	if os.Getenv("WRITEFREELY_DEBUG") == "true" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing is a no-op unless OTEL_ENABLED or an OTLP endpoint is set
	tracingConfig := tracing.DefaultConfig()
	tracingConfig.ServiceVersion = ServerVersion
	shutdownTracing, err := tracing.Setup(ctx, tracingConfig)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	// Load configuration from environment and log in if credentials are set
	config := writefreely.LoadConfig()
	client, err := writefreely.Connect(ctx, config, writefreely.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", config.Host, err)
	}

	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		srv := newMetricsServer(addr)
		go func() {
			defer recoverPanic(logger, "metrics server")
			logger.Info("Serving metrics", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Metrics server stopped", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions(),
	})

	// Register all tools
	tools.NewHandlerRegistry(client, logger).RegisterAll(server)

	logger.Info("Starting WriteFreely MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"host", client.Host(),
		"authenticated", client.IsAuthenticated(),
		"circuit_breaker", config.CircuitBreaker,
	)

	// Run server on stdio transport
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

// newMetricsServer exposes Prometheus metrics and a liveness probe
func newMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// serverInstructions lists every registered tool for the client
func serverInstructions() string {
	var b strings.Builder
	b.WriteString("WriteFreely MCP Server provides tools for publishing to WriteFreely instances and Write.as.\n\n")
	b.WriteString("Available tools:\n")
	for _, spec := range tools.AllTools {
		line := spec.Title
		if spec.RequiresAuth {
			line += " (requires authentication)"
		}
		fmt.Fprintf(&b, "- %s: %s\n", spec.Name, line)
	}
	b.WriteString(`
Configure via environment variables:
- WRITEFREELY_HOST: Instance URL (default https://write.as)
- WRITEFREELY_TOKEN: Access token
- WRITEFREELY_USERNAME / WRITEFREELY_PASSWORD: Log in at startup when no token is set
- WRITEFREELY_TIMEOUT: Per-request timeout (default 30s)
- WRITEFREELY_CIRCUIT_BREAKER: Fail fast after repeated server errors (default false)

Without credentials the server is anonymous: posts can be created and read, and anonymous posts can be edited with their token.`)
	return b.String()
}
