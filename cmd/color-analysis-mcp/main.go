package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/color-analysis-mcp/internal/server"
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
			fmt.Printf("color-analysis-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("color-analysis-mcp - MCP server for color-space analysis and vegetation detection")
			fmt.Println()
			fmt.Println("Usage: color-analysis-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COLOR_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := server.DefaultConfig()
	cfg.Debug = os.Getenv("COLOR_MCP_LOG_LEVEL") == "debug"
	if Version != "dev" {
		cfg.Version = Version
	}

	if cfg.Debug {
		log.Printf("Color Analysis MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.NewWithConfig(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
