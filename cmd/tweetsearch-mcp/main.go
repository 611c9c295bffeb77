// Package main provides an MCP server that wraps the tweetsearch HTTP
// query service. This is a thin client that proxies requests to the
// HTTP server; it introduces no new query semantics of its own.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const version = "0.1.0"

var httpClient = &http.Client{Timeout: 30 * time.Second}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "tweetsearch service HTTP URL")
	flag.StringVar(baseURL, "u", "http://localhost:8080", "tweetsearch service HTTP URL (shorthand)")

	help := flag.Bool("help", false, "Show help")
	flag.BoolVar(help, "h", false, "Show help (shorthand)")

	flag.Parse()

	if *help {
		fmt.Fprintf(os.Stderr, `tweetsearch MCP Client v%s

MCP server that proxies queries to the tweetsearch HTTP service.
Requires tweetsearch-serve to be running.

Usage: tweetsearch-mcp [OPTIONS]

Options:
  -u, --url URL    tweetsearch service URL (default: http://localhost:8080)
  -h, --help       Show this help

MCP Configuration:
  "mcpServers": {
    "tweetsearch": {
      "command": "tweetsearch-mcp",
      "args": ["-u", "http://localhost:8080"]
    }
  }

The HTTP server must be running:
  tweetsearch-serve -c ./data/twitter-cleaned.tsv -p 8080
`, version)
		os.Exit(0)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "tweetsearch-mcp",
		Version: version,
	}, nil)

	proxy := &proxyClient{baseURL: *baseURL}
	registerTools(server, proxy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Fatalf("Server error: %v", err)
	}
}

type proxyClient struct {
	baseURL string
}

func (p *proxyClient) post(endpoint string, body any) (map[string]any, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Post(p.baseURL+endpoint, "application/json", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respData))
	}

	var result map[string]any
	if err := json.Unmarshal(respData, &result); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return result, nil
}

// QueryArgs is the tool input for tweets_query.
type QueryArgs struct {
	Terms []string `json:"terms" jsonschema:"Query terms; a term may contain one '*' wildcard, or be wrapped in '*' on both ends"`
}

func registerTools(server *mcp.Server, proxy *proxyClient) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "tweets_query",
		Description: "Conjunctive Boolean search over the tweet corpus. Every term must match (AND); one '*' wildcard per term is supported.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args QueryArgs) (*mcp.CallToolResult, any, error) {
		result, err := proxy.post("/query", map[string]any{"terms": args.Terms})
		if err != nil {
			return nil, nil, err
		}
		return formatQueryResult(result)
	})
}

func formatQueryResult(result map[string]any) (*mcp.CallToolResult, any, error) {
	results, _ := result["results"].([]any)
	count := len(results)
	totalResults, _ := result["total_results"].(float64)

	var text string
	if count == 0 {
		text = "No results found."
	} else {
		text = fmt.Sprintf("Found %d results", count)
		if totalResults > 0 && int(totalResults) > count {
			text += fmt.Sprintf(" (total: %.0f)", totalResults)
		}
		text += ":\n"

		for i, r := range results {
			rm, _ := r.(map[string]any)
			body, _ := rm["body"].(string)
			userHandle, _ := rm["user_handle"].(string)
			docID, _ := rm["doc_id"].(float64)

			text += fmt.Sprintf("\n%d. [#%.0f] %s\n   %s", i+1, docID, userHandle, body)
		}
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, result, nil
}
