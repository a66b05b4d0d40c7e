package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/engpractice/internal/cli"
	"github.com/example/engpractice/internal/database"
	"github.com/example/engpractice/internal/excel"
	"github.com/example/engpractice/internal/exercise"
	"github.com/example/engpractice/internal/scheduler"
	"github.com/example/engpractice/internal/server"
	"github.com/example/engpractice/internal/stats"
)

func main() {
	serve := flag.Bool("serve", false, "run the HTTP API instead of the terminal session")
	addr := flag.String("addr", defaultAddr(), "listen address for the HTTP API")
	importFile := flag.String("import", "", "import spelling words from an Excel or CSV file and exit")
	flag.Parse()

	// The .env file is optional
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if *importFile != "" {
		runImport(*importFile)
		return
	}

	words := database.NewWordListRepository()
	registry := exercise.DefaultRegistry(words)

	if *serve {
		runServer(registry, database.NewStatsRepository(), *addr)
		return
	}

	// The terminal session keeps its counters in a plain JSON file so they
	// stay readable without a database client.
	store, err := stats.NewFileStore(filepath.Join(database.DataDir(), "stats.json"))
	if err != nil {
		log.Fatalf("Failed to open statistics store: %v", err)
	}
	app := cli.New(registry, store, database.NewResultRepository())
	if err := app.Run(); err != nil {
		log.Fatalf("Session error: %v", err)
	}
}

func defaultAddr() string {
	if addr := os.Getenv("PRACTICE_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}

func runImport(path string) {
	result, err := excel.ImportWords(excel.DefaultImportConfig(path))
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Printf("Import finished: %d processed, %d added, %d skipped",
		result.TotalProcessed, result.Added, result.Skipped)
	for _, e := range result.Errors {
		log.Printf("Import error: %s", e)
	}
}

func runServer(registry *exercise.Registry, statsRepo *database.StatsRepository, addr string) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	s := server.New(registry, statsRepo)
	s.Run(addr)

	var snapshots *scheduler.Scheduler
	if os.Getenv("SNAPSHOT_ENABLED") == "true" {
		snapshots = scheduler.New(statsRepo)
		snapshots.Start()
		log.Println("Daily statistics snapshots enabled")
	}

	sig := <-sigChan
	log.Printf("Received signal: %v", sig)

	if snapshots != nil {
		snapshots.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped successfully")
}
