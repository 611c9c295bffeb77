// Package main provides the HTTP query server entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbr9/information-retrieval-twitter/internal/api"
	"github.com/cbr9/information-retrieval-twitter/internal/engine"
	"github.com/cbr9/information-retrieval-twitter/internal/events"
	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

func main() {
	config := parseFlags()
	printBanner(config)

	log.Println("Building index...")
	emitter, err := events.NewEmitter(config.Persist.Path + ".events")
	if err != nil {
		log.Fatalf("Failed to initialize event emitter: %v", err)
	}

	eng, err := engine.LoadOrBuild(*config, emitter)
	if err != nil {
		log.Fatalf("Failed to build index: %v", err)
	}

	server := api.NewServer(config.Server, eng)

	shutdownDone := make(chan struct{})
	go handleShutdown(server, emitter, shutdownDone)

	log.Printf("Starting tweetsearch service on port %d", config.Server.Port)
	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}

	<-shutdownDone
	log.Println("tweetsearch service stopped")
}

func parseFlags() *types.Config {
	config := types.DefaultConfig()

	flag.IntVar(&config.Server.Port, "port", config.Server.Port, "HTTP port")
	flag.IntVar(&config.Server.Port, "p", config.Server.Port, "HTTP port (shorthand)")

	flag.StringVar(&config.Corpus.Path, "corpus", config.Corpus.Path, "Corpus TSV path")
	flag.StringVar(&config.Corpus.Path, "c", config.Corpus.Path, "Corpus TSV path (shorthand)")
	flag.StringVar(&config.Corpus.StopwordsPath, "stopwords", config.Corpus.StopwordsPath, "Stopwords file path")

	flag.BoolVar(&config.Persist.Enabled, "persist", config.Persist.Enabled, "Persist the built index to disk")
	flag.StringVar(&config.Persist.Path, "persist-path", config.Persist.Path, "Persisted index path")

	help := flag.Bool("help", false, "Show help")
	flag.BoolVar(help, "h", false, "Show help (shorthand)")

	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	return config
}

func printUsage() {
	fmt.Print(`tweetsearch-serve - HTTP query server over a tweet corpus index

Usage:
  tweetsearch-serve [options]

Options:
  -p, --port PORT          HTTP port (default: 8080)
  -c, --corpus PATH        Corpus TSV path
  --stopwords PATH         Stopwords file path
  --persist                Persist the built index to disk
  --persist-path PATH      Persisted index path
  -h, --help               Show this help
`)
}

func printBanner(config *types.Config) {
	fmt.Println(`
╔══════════════════════════════════════════╗
║              tweetsearch                  ║
║   Boolean wildcard search over tweets     ║
╚══════════════════════════════════════════╝`)
	fmt.Printf("  Port:   %d\n", config.Server.Port)
	fmt.Printf("  Corpus: %s\n", config.Corpus.Path)
	fmt.Println()
}

func handleShutdown(server *api.Server, emitter *events.Emitter, done chan struct{}) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), types.DefaultConfig().Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if emitter != nil {
		emitter.Flush()
		emitter.Close()
	}

	log.Println("Shutdown complete")
	close(done)
}
