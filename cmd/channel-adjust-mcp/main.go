package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/channel-adjust-mcp/internal/config"
	"github.com/ironsheep/channel-adjust-mcp/internal/server"
	"github.com/ironsheep/channel-adjust-mcp/internal/store"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("channel-adjust-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("channel-adjust-mcp - MCP server hosting the Adjust Image Channel node")
			fmt.Println()
			fmt.Println("Usage: channel-adjust-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from ./.env):")
			fmt.Println("  IMAGE_MCP_LOG_LEVEL=debug        Enable debug logging")
			fmt.Println("  IMAGE_MCP_IMAGE_DIR=./images     Directory images are read from and written to")
			fmt.Println("  IMAGE_MCP_SESSION_ID=<id>        Session id stored with created images")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("Channel Adjust MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Image directory %s, session %s", cfg.ImageDir, cfg.SessionID)
	}

	st, err := store.New(cfg.ImageDir)
	if err != nil {
		log.Fatalf("Store error: %v", err)
	}

	srv := server.New(st, server.Options{
		SessionID: cfg.SessionID,
		Debug:     cfg.Debug(),
	})
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
