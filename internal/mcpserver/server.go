package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"travelhub/internal/catalog"
	"travelhub/internal/config"
	"travelhub/internal/output"
)

// Server wraps the MCP server with travel hub capabilities.
type Server struct {
	mcpServer *mcp.Server
	log       *zap.Logger
}

// NewServer creates a new MCP server instance.
func NewServer(cfg config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		log:       log,
	}
	s.registerTools()
	return s
}

// ListCountriesArgs defines the (empty) input for list_countries.
type ListCountriesArgs struct{}

// ListCountriesResult defines the output for list_countries.
type ListCountriesResult struct {
	Countries []string `json:"countries" jsonschema:"selectable country names in display order"`
}

// ListPurposesArgs defines the (empty) input for list_purposes.
type ListPurposesArgs struct{}

// ListPurposesResult defines the output for list_purposes.
type ListPurposesResult struct {
	Purposes []string `json:"purposes" jsonschema:"selectable travel purposes"`
}

// RequirementsArgs defines the input for get_travel_requirements.
type RequirementsArgs struct {
	From    string `json:"from" jsonschema:"departure country, as returned by list_countries"`
	To      string `json:"to" jsonschema:"destination country, as returned by list_countries"`
	Purpose string `json:"purpose,omitempty" jsonschema:"optional travel purpose, as returned by list_purposes"`
}

// RequirementsResult wraps the rendered results for tool output.
type RequirementsResult struct {
	ResultsVisible bool             `json:"results_visible" jsonschema:"false when a country is missing and the search did not run"`
	Header         string           `json:"header,omitempty" jsonschema:"results caption"`
	PurposeLine    string           `json:"purpose_line,omitempty" jsonschema:"purpose caption, empty without a purpose"`
	Sections       []output.Section `json:"sections" jsonschema:"requirement groups in display order"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_countries",
		Description: "List the countries that can be chosen as departure or destination.",
	}, s.handleListCountries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_purposes",
		Description: "List the optional travel purposes.",
	}, s.handleListPurposes)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_travel_requirements",
		Description: "Get document, health, customs and cultural requirements for a trip. Both countries are needed for results; the purpose is optional. The requirement catalog is sample data and is the same for every country pair.",
	}, s.handleGetTravelRequirements)
}

func (s *Server) handleListCountries(ctx context.Context, _ *mcp.CallToolRequest, _ ListCountriesArgs) (*mcp.CallToolResult, ListCountriesResult, error) {
	var out ListCountriesResult
	for _, c := range catalog.Countries() {
		out.Countries = append(out.Countries, string(c))
	}
	return nil, out, nil
}

func (s *Server) handleListPurposes(ctx context.Context, _ *mcp.CallToolRequest, _ ListPurposesArgs) (*mcp.CallToolResult, ListPurposesResult, error) {
	var out ListPurposesResult
	for _, p := range catalog.Purposes() {
		out.Purposes = append(out.Purposes, string(p))
	}
	return nil, out, nil
}

// handleGetTravelRequirements runs one search on a fresh selection state.
func (s *Server) handleGetTravelRequirements(ctx context.Context, _ *mcp.CallToolRequest, args RequirementsArgs) (*mcp.CallToolResult, RequirementsResult, error) {
	res, st, err := output.Run(output.Query{From: args.From, To: args.To, Purpose: args.Purpose})
	if err != nil {
		s.log.Info("get_travel_requirements rejected", zap.Error(err))
		return nil, RequirementsResult{}, fmt.Errorf("invalid selection: %w", err)
	}

	s.log.Info("get_travel_requirements",
		zap.String("from", string(st.From)),
		zap.String("to", string(st.To)),
		zap.String("purpose", string(st.Purpose)),
		zap.Bool("results_visible", st.ResultsVisible))

	out := RequirementsResult{Sections: []output.Section{}}
	if res == nil {
		return nil, out, nil
	}
	out.ResultsVisible = true
	out.Header = res.Header
	out.PurposeLine = res.PurposeLine
	out.Sections = res.Sections
	return nil, out, nil
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	s.log.Info("starting travelhub MCP server on stdio")
	if err := s.mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
