package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: mcp-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: mcp-client ./travelhub-mcp")
		os.Exit(2)
	}

	ctx := context.Background()

	// Start the server as a subprocess
	cmd := exec.Command(args[0], args[1:]...)
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "travelhub-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer session.Close()

	fmt.Println("Connected to Travel Hub MCP Server!")
	fmt.Println("Available commands:")
	fmt.Println("  /tools                          - List available tools")
	fmt.Println("  /countries                      - List selectable countries")
	fmt.Println("  /purposes                       - List travel purposes")
	fmt.Println("  /check <from> | <to> [| <purpose>] - Get travel requirements")
	fmt.Println("  /exit                           - Exit the client")
	fmt.Println()

	// Interactive REPL
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "/exit":
			fmt.Println("Safe travels!")
			return

		case input == "/tools":
			listTools(ctx, session)

		case input == "/countries":
			callTool(ctx, session, "list_countries", map[string]any{})

		case input == "/purposes":
			callTool(ctx, session, "list_purposes", map[string]any{})

		case strings.HasPrefix(input, "/check"):
			toolArgs, err := parseCheck(strings.TrimPrefix(input, "/check"))
			if err != nil {
				fmt.Println(err)
				continue
			}
			callTool(ctx, session, "get_travel_requirements", toolArgs)

		default:
			fmt.Println("Unknown command. Try /check Japan | France | business")
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Scanner error: %v", err)
	}
}

// parseCheck splits "Japan | France | business" into tool arguments. Country
// names contain spaces, so the fields are separated by '|'.
func parseCheck(s string) (map[string]any, error) {
	parts := strings.Split(s, "|")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("usage: /check <from> | <to> [| <purpose>]")
	}
	args := map[string]any{
		"from": strings.TrimSpace(parts[0]),
		"to":   strings.TrimSpace(parts[1]),
	}
	if len(parts) == 3 {
		args["purpose"] = strings.TrimSpace(parts[2])
	}
	return args, nil
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("Available Tools:")
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			log.Printf("Error listing tools: %v", err)
			return
		}
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Println()
}

func callTool(ctx context.Context, session *mcp.ClientSession, toolName string, args map[string]any) {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		log.Printf("Error calling tool: %v", err)
		return
	}

	printResult(result)
}

func printResult(result *mcp.CallToolResult) {
	if result.IsError {
		fmt.Printf("Error: ")
	}

	if result.StructuredContent != nil {
		jsonData, err := json.MarshalIndent(result.StructuredContent, "", "  ")
		if err == nil {
			fmt.Println(string(jsonData))
			fmt.Println()
			return
		}
	}

	for _, content := range result.Content {
		switch v := content.(type) {
		case *mcp.TextContent:
			fmt.Println(v.Text)
		default:
			fmt.Printf("%+v\n", content)
		}
	}
	fmt.Println()
}
