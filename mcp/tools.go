package mcp

import (
	goMCP "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/melkeydev/sqltypes/ddl"
	"github.com/melkeydev/sqltypes/handlers"
)

func RegisterTools(s *server.MCPServer, dialect ddl.Dialect) {
	// Render tool
	renderTool := goMCP.NewTool("render_schema",
		goMCP.WithDescription("Render CREATE TYPE and CREATE TABLE statements for a YAML schema document"),
		goMCP.WithString("schema",
			goMCP.Required(),
			goMCP.Description("YAML schema document with a top-level tables list"),
		),
		goMCP.WithString("dialect",
			goMCP.Description("Target dialect: postgres or sqlite (default: "+string(dialect)+")"),
		),
	)

	// Describe tool
	describeTool := goMCP.NewTool("describe_type",
		goMCP.WithDescription("Describe a column type key such as decimal(10, 2) or \"color: enum(red, green)\""),
		goMCP.WithString("key",
			goMCP.Required(),
			goMCP.Description("Column type key"),
		),
	)

	// Codec tools
	callTool := goMCP.NewTool("parse_call",
		goMCP.WithDescription("Split a call string like varchar(50) into its prefix and arguments"),
		goMCP.WithString("text",
			goMCP.Required(),
			goMCP.Description("Call string to parse"),
		),
	)

	labelTool := goMCP.NewTool("parse_label",
		goMCP.WithDescription("Split a labelled string like \"color: enum(red)\" into label and value"),
		goMCP.WithString("text",
			goMCP.Required(),
			goMCP.Description("Labelled string to parse"),
		),
	)

	identifierTool := goMCP.NewTool("parse_identifier",
		goMCP.WithDescription("Strip the internal identifier wrapper from _name$; bare names are returned unchanged"),
		goMCP.WithString("text",
			goMCP.Required(),
			goMCP.Description("Identifier, wrapped as _name$ or bare"),
		),
	)

	splitTool := goMCP.NewTool("split_text",
		goMCP.WithDescription("Split text on a delimiter, dropping a trailing empty piece"),
		goMCP.WithString("text",
			goMCP.Required(),
			goMCP.Description("Text to split"),
		),
		goMCP.WithString("delimiter",
			goMCP.Required(),
			goMCP.Description("Delimiter; empty splits into characters"),
		),
	)

	s.AddTool(renderTool, handlers.RenderSchemaHandler(dialect))
	s.AddTool(describeTool, handlers.DescribeTypeHandler())
	s.AddTool(callTool, handlers.ParseCallHandler())
	s.AddTool(labelTool, handlers.ParseLabelHandler())
	s.AddTool(identifierTool, handlers.ParseIdentifierHandler())
	s.AddTool(splitTool, handlers.SplitTextHandler())
}
