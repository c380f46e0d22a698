package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	// Optional overrides for the server (TRAVELHUB_*)
	_ = godotenv.Load(".env")

	fmt.Println("🧪 Testing Travel Hub MCP Server and Tool Calling")
	fmt.Println("=================================================")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	serverPath := findServerBinary()
	if serverPath == "" {
		log.Fatal("❌ MCP server binary not found. Run: go build -o travelhub-mcp ./cmd/travelhub-mcp")
	}
	fmt.Println("✅ Test 1: MCP server binary found")

	cmd := exec.Command(serverPath)
	cmd.Env = os.Environ()
	cmd.Stderr = os.Stderr
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MCP server: %v", err)
	}
	defer session.Close()
	fmt.Println("✅ Test 2: Connected to MCP server")

	fmt.Println("\n✓ Test 3: Listing available tools")
	listResult, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Fatalf("❌ Failed to list tools: %v", err)
	}
	fmt.Printf("  Found %d tools:\n", len(listResult.Tools))
	for _, tool := range listResult.Tools {
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}

	fmt.Println("\n✓ Test 4: Testing list_countries tool")
	check(ctx, session, "list_countries", map[string]any{}, false)

	fmt.Println("\n✓ Test 5: Testing get_travel_requirements (Japan → France, business)")
	check(ctx, session, "get_travel_requirements", map[string]any{
		"from":    "Japan",
		"to":      "France",
		"purpose": "business",
	}, false)

	fmt.Println("\n✓ Test 6: Testing get_travel_requirements without a destination")
	check(ctx, session, "get_travel_requirements", map[string]any{
		"from": "Japan",
		"to":   "",
	}, false)

	fmt.Println("\n✓ Test 7: Testing get_travel_requirements with an unknown country")
	check(ctx, session, "get_travel_requirements", map[string]any{
		"from": "Atlantis",
		"to":   "France",
	}, true)

	fmt.Println("\n=================================================")
	fmt.Println("✅ All MCP tool calling tests complete!")
	fmt.Println("\n💡 To test interactively, run: go run ./cmd/mcp-client ./travelhub-mcp")
}

func check(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any, wantToolError bool) {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		fmt.Printf("  ❌ %s failed: %v\n", name, err)
		return
	}
	if result.IsError != wantToolError {
		fmt.Printf("  ❌ %s: expected tool error=%v, got %v\n", name, wantToolError, result.IsError)
		return
	}
	fmt.Printf("  ✅ %s behaved as expected\n", name)
	for i, content := range result.Content {
		if i >= 3 {
			fmt.Printf("  ... and %d more content items\n", len(result.Content)-i)
			break
		}
		switch v := content.(type) {
		case *mcp.TextContent:
			preview := v.Text
			if len(preview) > 200 {
				preview = preview[:200] + "..."
			}
			fmt.Printf("    %s\n", preview)
		default:
			fmt.Printf("    [%T]\n", content)
		}
	}
}

func findServerBinary() string {
	candidates := []string{
		"./travelhub-mcp",
		"../../travelhub-mcp",
		"../../../travelhub-mcp",
	}
	for _, p := range candidates {
		if abs, err := filepath.Abs(p); err == nil {
			if _, err := os.Stat(abs); err == nil {
				return abs
			}
		}
	}
	return ""
}
