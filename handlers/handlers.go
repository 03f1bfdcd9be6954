package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/melkeydev/sqltypes/codec"
	"github.com/melkeydev/sqltypes/ddl"
	"github.com/melkeydev/sqltypes/schema"
	"github.com/melkeydev/sqltypes/schemafile"
	"github.com/melkeydev/sqltypes/strs"
	"github.com/melkeydev/sqltypes/types"
)

// RenderSchemaHandler creates a handler for the render_schema tool
func RenderSchemaHandler(defaultDialect ddl.Dialect) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := request.RequireString("schema")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing schema parameter: %v", err)), nil
		}

		dialect := defaultDialect
		if name := optionalString(request, "dialect"); name != "" {
			dialect, err = ddl.ParseDialect(name)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		}

		tables, err := schemafile.Parse([]byte(doc))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid schema: %v", err)), nil
		}

		stmts, err := ddl.Build(dialect, tables...)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Render failed: %v", err)), nil
		}

		slog.Info("rendered schema", "dialect", dialect, "tables", len(tables), "statements", len(stmts))
		return jsonResult(types.RenderResult{Dialect: string(dialect), Statements: stmts})
	}
}

// DescribeTypeHandler creates a handler for the describe_type tool
func DescribeTypeHandler() func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := request.RequireString("key")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing key parameter: %v", err)), nil
		}

		t, err := schema.ParseType(key)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Unknown type: %v", err)), nil
		}
		desc, err := types.DescribeType(t)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Describe failed: %v", err)), nil
		}
		return jsonResult(desc)
	}
}

// ParseCallHandler creates a handler for the parse_call tool
func ParseCallHandler() func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing text parameter: %v", err)), nil
		}

		call, err := codec.ParseCall(text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(call)
	}
}

// ParseLabelHandler creates a handler for the parse_label tool
func ParseLabelHandler() func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing text parameter: %v", err)), nil
		}

		label, err := codec.ParseLabel(text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(label)
	}
}

// ParseIdentifierHandler creates a handler for the parse_identifier tool
func ParseIdentifierHandler() func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing text parameter: %v", err)), nil
		}
		return mcp.NewToolResultText(codec.ParseIdentifier(text)), nil
	}
}

// SplitTextHandler creates a handler for the split_text tool
func SplitTextHandler() func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing text parameter: %v", err)), nil
		}
		delimiter, err := request.RequireString("delimiter")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Missing delimiter parameter: %v", err)), nil
		}
		return jsonResult(strs.Split(text, delimiter))
	}
}

func optionalString(request mcp.CallToolRequest, key string) string {
	if args, ok := request.Params.Arguments.(map[string]any); ok {
		if v, ok := args[key].(string); ok {
			return v
		}
	}
	return ""
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
