package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	mcpadapter "roommind/internal/adapters/mcp"
	"roommind/internal/bootstrap"
	"roommind/internal/config"
	"roommind/internal/logging"
)

func main() {
	configFlag := flag.String("config", config.Path(), "path to the config file")
	anchorsFlag := flag.String("anchors", "", "path to a YAML anchors file")
	verboseFlag := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("roommind-mcp: %v", err)
	}
	if *anchorsFlag != "" {
		cfg.AnchorsFile = config.ExpandHome(*anchorsFlag)
	}

	// stdout carries the protocol, so logs go to stderr or log_file
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Verbose: *verboseFlag, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("roommind-mcp: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	rt, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to start", zap.Error(err))
	}
	seed, err := rt.Seed(ctx)
	if err != nil {
		logger.Fatal("failed to load seed", zap.Error(err))
	}

	mcpServer := server.NewMCPServer(
		"roommind-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	sess := mcpadapter.NewSession(rt.AI, rt.Anchors, seed, logger.Named("mcp"))
	mcpadapter.RegisterReadTools(mcpServer, sess)
	mcpadapter.RegisterAITools(mcpServer, sess)

	logger.Info("serving MCP on stdio", zap.String("model", rt.ModelName))
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal("MCP server stopped", zap.Error(err))
	}
}
