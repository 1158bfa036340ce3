package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stackquote/stackquote/pkg/preset"
)

func sendAndReceive(t *testing.T, srv *Server, req Request) Response {
	t.Helper()
	line, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	line = append(line, '\n')

	var out bytes.Buffer
	if err := srv.Run(context.Background(), bytes.NewReader(line), &out); err != nil {
		t.Fatal(err)
	}

	var resp Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v\nraw: %s", err, out.String())
	}
	return resp
}

func callTool(t *testing.T, srv *Server, name string, args any) ToolCallResult {
	t.Helper()
	rawArgs, err := json.Marshal(args)
	if err != nil {
		t.Fatal(err)
	}
	params, _ := json.Marshal(ToolCallParams{Name: name, Arguments: rawArgs})
	resp := sendAndReceive(t, srv, Request{
		JSONRPC: "2.0",
		ID:      json.RawMessage(`7`),
		Method:  "tools/call",
		Params:  params,
	})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}

	data, _ := json.Marshal(resp.Result)
	var result ToolCallResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatal(err)
	}
	if len(result.Content) != 1 {
		t.Fatalf("got %d content blocks, want 1", len(result.Content))
	}
	return result
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	m, err := preset.Open(context.Background(), preset.NewMemoryStore())
	if err != nil {
		t.Fatal(err)
	}
	return New(nil, "test", WithPresets(m))
}

func TestInitialize(t *testing.T) {
	srv := New(nil, "test")
	resp := sendAndReceive(t, srv, Request{
		JSONRPC: "2.0",
		ID:      json.RawMessage(`1`),
		Method:  "initialize",
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}

	data, _ := json.Marshal(resp.Result)
	var result InitializeResult
	json.Unmarshal(data, &result)

	if result.ProtocolVersion != "2024-11-05" {
		t.Errorf("protocol version = %s, want 2024-11-05", result.ProtocolVersion)
	}
	if result.ServerInfo.Name != "stackquote" {
		t.Errorf("server name = %s, want stackquote", result.ServerInfo.Name)
	}
	if result.ServerInfo.Version != "test" {
		t.Errorf("server version = %s, want test", result.ServerInfo.Version)
	}
}

func TestToolsList(t *testing.T) {
	tests := []struct {
		name string
		srv  *Server
		want []string
	}{
		{"with presets", newTestServer(t), []string{toolEstimate, toolRecommend, toolCatalog, toolPresets}},
		{"without presets", New(nil, "test"), []string{toolEstimate, toolRecommend, toolCatalog}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := sendAndReceive(t, tt.srv, Request{
				JSONRPC: "2.0",
				ID:      json.RawMessage(`2`),
				Method:  "tools/list",
			})
			if resp.Error != nil {
				t.Fatalf("unexpected error: %v", resp.Error)
			}

			data, _ := json.Marshal(resp.Result)
			var result ToolsListResult
			json.Unmarshal(data, &result)

			if len(result.Tools) != len(tt.want) {
				t.Fatalf("got %d tools, want %d", len(result.Tools), len(tt.want))
			}
			for i, want := range tt.want {
				if result.Tools[i].Name != want {
					t.Errorf("tool %d = %s, want %s", i, result.Tools[i].Name, want)
				}
			}
		})
	}
}

func TestUnknownMethod(t *testing.T) {
	resp := sendAndReceive(t, New(nil, "test"), Request{
		JSONRPC: "2.0",
		ID:      json.RawMessage(`3`),
		Method:  "resources/list",
	})
	if resp.Error == nil || resp.Error.Code != CodeMethodNotFound {
		t.Fatalf("expected method not found, got %+v", resp.Error)
	}
}

func TestNotificationsProduceNoOutput(t *testing.T) {
	input := `{"jsonrpc":"2.0","method":"notifications/initialized"}` + "\n" +
		`{"jsonrpc":"2.0","method":"notifications/whatever"}` + "\n"
	var out bytes.Buffer
	if err := New(nil, "test").Run(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %s", out.String())
	}
}

func TestParseError(t *testing.T) {
	var out bytes.Buffer
	if err := New(nil, "test").Run(context.Background(), strings.NewReader("{oops\n"), &out); err != nil {
		t.Fatal(err)
	}
	var resp Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == nil || resp.Error.Code != CodeParseError {
		t.Fatalf("expected parse error, got %+v", resp)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	input := `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n"
	var out bytes.Buffer
	if err := New(nil, "test").Run(ctx, strings.NewReader(input), &out); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestEstimateTool(t *testing.T) {
	srv := newTestServer(t)
	result := callTool(t, srv, toolEstimate, map[string]any{
		"name":           "Demo",
		"users":          1000,
		"calls":          10,
		"price":          1,
		"models":         []string{"gpt-4o"},
		"infrastructure": []string{"vercel:pro"},
		"databases":      []string{"supabase:pro"},
	})
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", result.Content[0].Text)
	}
	text := result.Content[0].Text
	for _, want := range []string{
		"Estimate: Demo",
		"OpenAI GPT-4o",
		"$100.00",
		"$20.14",
		"$25.02",
		"Total monthly:",
		"$145.16",
		"$1,741.92",
		"Revenue:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("estimate output missing %q:\n%s", want, text)
		}
	}
}

func TestEstimateToolQuote(t *testing.T) {
	result := callTool(t, New(nil, "test", WithLocale("en")), toolEstimate, map[string]any{
		"users":  1000,
		"calls":  10,
		"models": []string{"gpt-4o"},
		"format": "quote",
	})
	if !strings.Contains(result.Content[0].Text, "TOTAL MONTHLY COST: $100.00") {
		t.Errorf("unexpected quote:\n%s", result.Content[0].Text)
	}

	result = callTool(t, New(nil, "test"), toolEstimate, map[string]any{
		"users":  1000,
		"calls":  10,
		"format": "quote",
	})
	if !strings.Contains(result.Content[0].Text, "COTIZACIÓN") {
		t.Errorf("default locale should be Spanish:\n%s", result.Content[0].Text)
	}
}

func TestEstimateToolUnknownReference(t *testing.T) {
	result := callTool(t, New(nil, "test"), toolEstimate, map[string]any{
		"users":  10,
		"calls":  1,
		"models": []string{"gpt-9"},
	})
	if result.IsError {
		t.Fatal("unknown ids should not fail the estimate")
	}
	if !strings.Contains(result.Content[0].Text, "gpt-9 (unknown)") {
		t.Errorf("expected unknown marker:\n%s", result.Content[0].Text)
	}
}

func TestEstimateToolErrors(t *testing.T) {
	srv := New(nil, "test")
	if r := callTool(t, srv, toolEstimate, map[string]any{"users": -1}); !r.IsError {
		t.Error("expected error for negative users")
	}
	if r := callTool(t, srv, toolEstimate, map[string]any{"preset": "x"}); !r.IsError {
		t.Error("expected error for preset without manager")
	}
	if r := callTool(t, srv, toolEstimate, map[string]any{"users": "many"}); !r.IsError {
		t.Error("expected error for malformed arguments")
	}
}

func TestRecommendTool(t *testing.T) {
	srv := New(nil, "test", WithLocale("en"))
	result := callTool(t, srv, toolRecommend, map[string]any{"users": 60000, "calls": 10})
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", result.Content[0].Text)
	}
	text := result.Content[0].Text
	for _, want := range []string{"(claude-3-haiku)", "(aws-ec2:medium)", "(mongodb-atlas:serverless)", "A good balance"} {
		if !strings.Contains(text, want) {
			t.Errorf("recommend output missing %q:\n%s", want, text)
		}
	}

	result = callTool(t, srv, toolRecommend, map[string]any{"users": 100, "calls": 1, "locale": "es"})
	if !strings.Contains(result.Content[0].Text, "Supabase") {
		t.Errorf("unexpected output:\n%s", result.Content[0].Text)
	}

	if r := callTool(t, srv, toolRecommend, map[string]any{"users": 10}); !r.IsError {
		t.Error("expected error for missing calls")
	}
	if r := callTool(t, srv, toolRecommend, map[string]any{"users": -10, "calls": 1}); !r.IsError {
		t.Error("expected error for negative users")
	}
}

func TestCatalogTool(t *testing.T) {
	srv := New(nil, "test")

	text := callTool(t, srv, toolCatalog, map[string]any{"kind": "models"}).Content[0].Text
	if !strings.Contains(text, "gpt-4o") || strings.Contains(text, "vercel") {
		t.Errorf("unexpected models output:\n%s", text)
	}

	text = callTool(t, srv, toolCatalog, map[string]any{"kind": "infrastructure"}).Content[0].Text
	if !strings.Contains(text, "vercel") || !strings.Contains(text, "pro ×1") {
		t.Errorf("unexpected infrastructure output:\n%s", text)
	}

	text = callTool(t, srv, toolCatalog, map[string]any{}).Content[0].Text
	for _, want := range []string{"AI models", "Infrastructure", "Databases", "supabase"} {
		if !strings.Contains(text, want) {
			t.Errorf("full catalog missing %q", want)
		}
	}

	if r := callTool(t, srv, toolCatalog, map[string]any{"kind": "queues"}); !r.IsError {
		t.Error("expected error for unknown kind")
	}
}

func TestPresetsTool(t *testing.T) {
	srv := newTestServer(t)

	text := callTool(t, srv, toolPresets, map[string]any{"action": "list"}).Content[0].Text
	if text != "No presets saved." {
		t.Errorf("unexpected empty list: %s", text)
	}

	r := callTool(t, srv, toolPresets, map[string]any{
		"action": "save",
		"name":   "Launch",
		"users":  1000,
		"calls":  10,
		"models": []string{"gpt-4o"},
	})
	if r.IsError {
		t.Fatalf("save failed: %s", r.Content[0].Text)
	}

	text = callTool(t, srv, toolPresets, map[string]any{"action": "list"}).Content[0].Text
	if !strings.Contains(text, "Launch") || !strings.Contains(text, "$100.00") {
		t.Errorf("unexpected list:\n%s", text)
	}

	text = callTool(t, srv, toolPresets, map[string]any{"action": "show", "name": "Launch"}).Content[0].Text
	if !strings.Contains(text, "Estimate: Launch") {
		t.Errorf("unexpected show:\n%s", text)
	}

	text = callTool(t, srv, toolEstimate, map[string]any{"preset": "Launch"}).Content[0].Text
	if !strings.Contains(text, "$100.00") {
		t.Errorf("estimate by preset:\n%s", text)
	}

	if r := callTool(t, srv, toolPresets, map[string]any{"action": "save", "name": " "}); !r.IsError {
		t.Error("expected error for empty name")
	}

	r = callTool(t, srv, toolPresets, map[string]any{"action": "delete", "name": "Launch"})
	if r.IsError {
		t.Fatalf("delete failed: %s", r.Content[0].Text)
	}
	if r := callTool(t, srv, toolPresets, map[string]any{"action": "show", "name": "Launch"}); !r.IsError {
		t.Error("expected error for deleted preset")
	}
	if r := callTool(t, srv, toolPresets, map[string]any{"action": "rename"}); !r.IsError {
		t.Error("expected error for unknown action")
	}
}

func TestPresetsToolHiddenWithoutManager(t *testing.T) {
	r := callTool(t, New(nil, "test"), toolPresets, map[string]any{"action": "list"})
	if !r.IsError || !strings.Contains(r.Content[0].Text, "unknown tool") {
		t.Errorf("expected unknown tool, got %+v", r)
	}
}

func TestUnknownTool(t *testing.T) {
	r := callTool(t, New(nil, "test"), "nope", map[string]any{})
	if !r.IsError {
		t.Error("expected error result")
	}
}
