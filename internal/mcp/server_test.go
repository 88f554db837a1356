package mcp

import (
	"context"
	"encoding/json"
	"testing"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestServer_InMemorySession(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	clientTransport, serverTransport := gomcp.NewInMemoryTransports()
	if _, err := s.Connect(ctx, serverTransport); err != nil {
		t.Fatalf("Server connect failed: %v", err)
	}

	client := gomcp.NewClient(&gomcp.Implementation{Name: "test-client", Version: "v0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("Client connect failed: %v", err)
	}
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}
	names := map[string]bool{}
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"classify_activity", "get_schedule", "run_forecast"} {
		if !names[want] {
			t.Errorf("Tool %q not registered", want)
		}
	}

	res, err := session.CallTool(ctx, &gomcp.CallToolParams{
		Name: "get_schedule",
		Arguments: map[string]any{
			"items": inputs(30, mediumRatings...),
		},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("Tool reported an error: %+v", res.Content)
	}

	text, ok := res.Content[0].(*gomcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", res.Content[0])
	}
	var out ScheduleOutput
	if err := json.Unmarshal([]byte(text.Text), &out); err != nil {
		t.Fatalf("Invalid JSON payload: %v", err)
	}
	if out.Strategy != "MediumActivity" || len(out.Schedule) != 12 {
		t.Errorf("Unexpected schedule: %+v", out)
	}
}
