package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/server"
	"github.com/melkeydev/sqltypes/ddl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, s *server.MCPServer, msg string) map[string]any {
	t.Helper()
	resp := s.HandleMessage(context.Background(), json.RawMessage(msg))
	require.NotNil(t, resp)

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestRegisterTools(t *testing.T) {
	s := server.NewMCPServer("sqltypes", "test", server.WithToolCapabilities(false))
	RegisterTools(s, ddl.SQLite)

	out := handle(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	result, ok := out["result"].(map[string]any)
	require.True(t, ok, "unexpected response: %v", out)

	var names []string
	descriptions := make(map[string]string)
	for _, tool := range result["tools"].([]any) {
		tm := tool.(map[string]any)
		name := tm["name"].(string)
		names = append(names, name)
		descriptions[name], _ = tm["description"].(string)
	}
	assert.ElementsMatch(t, []string{
		"render_schema", "describe_type", "parse_call",
		"parse_label", "parse_identifier", "split_text",
	}, names)
	assert.Equal(t, "Strip the internal identifier wrapper from _name$; bare names are returned unchanged", descriptions["parse_identifier"])
}

func TestRegisterTools_CallUsesDefaultDialect(t *testing.T) {
	s := server.NewMCPServer("sqltypes", "test", server.WithToolCapabilities(false))
	RegisterTools(s, ddl.SQLite)

	out := handle(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"render_schema","arguments":{"schema":"tables:\n  - name: t\n    fields:\n      a: text\n"}}}`)
	result, ok := out["result"].(map[string]any)
	require.True(t, ok, "unexpected response: %v", out)

	content := result["content"].([]any)
	require.Len(t, content, 1)
	text := content[0].(map[string]any)["text"].(string)
	assert.Contains(t, text, `"dialect": "sqlite"`)
	assert.Contains(t, text, "AUTOINCREMENT")
}
