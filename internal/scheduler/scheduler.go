package scheduler

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/engpractice/internal/database"
	"github.com/example/engpractice/internal/stats"
)

// DefaultSnapshotTime is when the daily statistics snapshot is written
const DefaultSnapshotTime = "23:50"

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	stats     stats.Store
}

// New creates a new scheduler instance
func New(store stats.Store) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		stats:     store,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	at := os.Getenv("SNAPSHOT_TIME")
	if at == "" {
		at = DefaultSnapshotTime
	}

	if _, err := s.scheduler.Every(1).Day().At(at).Do(s.exportSnapshot); err != nil {
		log.Printf("Error scheduling snapshot export: %v", err)
		return
	}

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) exportSnapshot() {
	if err := s.RunManualExport(); err != nil {
		log.Printf("Error exporting statistics snapshot: %v", err)
	}
}

// RunManualExport writes a snapshot of the exercise totals immediately
func (s *Scheduler) RunManualExport() error {
	all, err := s.stats.All()
	if err != nil {
		return fmt.Errorf("failed to load statistics: %v", err)
	}

	dir := filepath.Join(database.DataDir(), "snapshots")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %v", err)
	}

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %v", err)
	}

	path := filepath.Join(dir, "stats-"+time.Now().Format("2006-01-02")+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %v", err)
	}

	log.Printf("Statistics snapshot written to %s", path)
	return nil
}
