package tools

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/writefreely-mcp-server/writefreely"
)

func newTestRegistry() *HandlerRegistry {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := writefreely.NewClient("", writefreely.WithLogger(logger))
	return NewHandlerRegistry(client, logger)
}

func TestNewHandlerRegistry(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := writefreely.NewClient("", writefreely.WithLogger(logger))

	registry := NewHandlerRegistry(client, logger)

	if registry == nil {
		t.Fatal("Expected non-nil registry")
	}
	if registry.client != client {
		t.Error("Registry should hold the client reference")
	}
	if registry.logger != logger {
		t.Error("Registry should hold the logger reference")
	}
}

func TestBuildTool(t *testing.T) {
	registry := newTestRegistry()

	tests := []struct {
		name      string
		spec      ToolSpec
		wantRO    bool
		wantIdem  bool
		wantDestr *bool
		wantOpen  bool
	}{
		{
			name: "read-only tool",
			spec: ToolSpec{
				Name:        "writefreely_get_post",
				Title:       "Get Post",
				Description: "Fetch a post",
				Method:      "GetPost",
				ReadOnly:    true,
				Idempotent:  true,
				OpenWorld:   true,
			},
			wantRO:   true,
			wantIdem: true,
			wantOpen: true,
		},
		{
			name: "destructive tool",
			spec: ToolSpec{
				Name:        "writefreely_delete_post",
				Title:       "Delete Post",
				Description: "Delete a post",
				Method:      "DeletePost",
				Destructive: true,
				Idempotent:  true,
			},
			wantIdem:  true,
			wantDestr: ptr(true),
		},
		{
			name: "additive write tool",
			spec: ToolSpec{
				Name:        "writefreely_create_post",
				Title:       "Create Post",
				Description: "Create a post",
				Method:      "CreatePost",
			},
			wantDestr: ptr(false),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := registry.buildTool(tt.spec)

			if tool.Name != tt.spec.Name {
				t.Errorf("Name = %q, want %q", tool.Name, tt.spec.Name)
			}
			if tool.Description != tt.spec.Description {
				t.Errorf("Description = %q, want %q", tool.Description, tt.spec.Description)
			}
			if tool.Annotations == nil {
				t.Fatal("Expected annotations")
			}
			if tool.Annotations.Title != tt.spec.Title {
				t.Errorf("Title = %q, want %q", tool.Annotations.Title, tt.spec.Title)
			}
			if tool.Annotations.ReadOnlyHint != tt.wantRO {
				t.Errorf("ReadOnlyHint = %v, want %v", tool.Annotations.ReadOnlyHint, tt.wantRO)
			}
			if tool.Annotations.IdempotentHint != tt.wantIdem {
				t.Errorf("IdempotentHint = %v, want %v", tool.Annotations.IdempotentHint, tt.wantIdem)
			}
			switch {
			case tt.wantDestr == nil && tool.Annotations.DestructiveHint != nil:
				t.Errorf("DestructiveHint = %v, want unset", *tool.Annotations.DestructiveHint)
			case tt.wantDestr != nil && (tool.Annotations.DestructiveHint == nil || *tool.Annotations.DestructiveHint != *tt.wantDestr):
				t.Errorf("DestructiveHint should be %v", *tt.wantDestr)
			}
			if tt.wantOpen && (tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint) {
				t.Error("Expected OpenWorldHint to be true")
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	registry := newTestRegistry()

	var err error
	func() {
		defer registry.recoverPanic("test_tool", &err)
		panic("test panic")
	}()

	if err == nil || !strings.Contains(err.Error(), "test_tool") {
		t.Errorf("expected panic to become a tool error, got %v", err)
	}
}

func TestRecoverPanicWithoutPanic(t *testing.T) {
	registry := newTestRegistry()

	err := errors.New("unchanged")
	func() {
		defer registry.recoverPanic("test_tool", &err)
	}()

	if err.Error() != "unchanged" {
		t.Errorf("err was modified without a panic: %v", err)
	}
}

func TestLogExecution(t *testing.T) {
	registry := newTestRegistry()
	spec := ToolSpec{Name: "test_tool", Category: "posts"}

	registry.logExecution(spec,
		writefreely.CreatePostArgs{Body: "secret body", Collection: "blog"},
		writefreely.PostResult{Post: writefreely.PostSummary{ID: "abc"}})

	registry.logExecution(spec,
		writefreely.ClaimPostsArgs{Posts: []writefreely.PostRef{{ID: "a", Token: "t"}}},
		writefreely.ClaimPostsResult{Succeeded: 1})

	registry.logExecution(spec, writefreely.AuthStatusArgs{}, writefreely.AuthStatusResult{})
}

func TestLogExecutionOmitsSecrets(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	registry := NewHandlerRegistry(writefreely.NewClient(""), logger)

	registry.logExecution(ToolSpec{Name: "writefreely_update_post"},
		writefreely.UpdatePostArgs{ID: "abc", Body: "my private draft", Token: "owner-secret"},
		writefreely.PostResult{})

	out := buf.String()
	if strings.Contains(out, "my private draft") || strings.Contains(out, "owner-secret") {
		t.Errorf("log leaked content: %s", out)
	}
	if !strings.Contains(out, "id=abc") {
		t.Errorf("log should carry the post id: %s", out)
	}
}

func TestRegisterAll(t *testing.T) {
	registry := newTestRegistry()
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0.0.1"}, nil)

	for _, spec := range AllTools {
		if !registry.registerByName(server, spec) {
			t.Errorf("tool %s was not registered", spec.Name)
		}
	}

	if registry.registerByName(server, ToolSpec{Name: "bogus", Method: "Bogus"}) {
		t.Error("unknown method should not register")
	}
}

func TestAllToolsNotEmpty(t *testing.T) {
	if len(AllTools) == 0 {
		t.Error("AllTools should not be empty")
	}

	seen := make(map[string]bool)
	for i, spec := range AllTools {
		if spec.Name == "" {
			t.Errorf("Tool %d has empty Name", i)
		}
		if !strings.HasPrefix(spec.Name, "writefreely_") {
			t.Errorf("Tool %s should use the writefreely_ prefix", spec.Name)
		}
		if spec.Method == "" {
			t.Errorf("Tool %s has empty Method", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("Tool %s has empty Description", spec.Name)
		}
		if spec.Category == "" {
			t.Errorf("Tool %s has empty Category", spec.Name)
		}
		if seen[spec.Name] {
			t.Errorf("Tool %s is defined twice", spec.Name)
		}
		seen[spec.Name] = true
	}
}

func TestToolSpecHints(t *testing.T) {
	for _, spec := range AllTools {
		if spec.ReadOnly && spec.Destructive {
			t.Errorf("Tool %s cannot be both read-only and destructive", spec.Name)
		}
	}
}

func TestNoLoginTool(t *testing.T) {
	for _, spec := range AllTools {
		if strings.Contains(spec.Name, "login") {
			t.Errorf("credentials must come from the environment, found tool %s", spec.Name)
		}
	}
}

func TestToolsByCategory(t *testing.T) {
	for _, category := range []string{"account", "posts", "collections"} {
		tools := ToolsByCategory(category)
		if len(tools) == 0 {
			t.Errorf("Expected %s tools", category)
		}
		for _, tool := range tools {
			if tool.Category != category {
				t.Errorf("Tool %s has category %s, expected %s", tool.Name, tool.Category, category)
			}
		}
	}

	if unknown := ToolsByCategory("unknown"); len(unknown) != 0 {
		t.Errorf("Expected 0 tools for unknown category, got %d", len(unknown))
	}
}
