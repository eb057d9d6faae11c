package ingest

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper periodically removes uploaded stores older than their TTL.
// Uploads are session-scoped; anything outliving the token TTL can no longer
// be referenced and only wastes disk.
type Sweeper struct {
	dataDir  string
	ttl      time.Duration
	schedule string
	cron     *cron.Cron
}

// NewSweeper creates a Sweeper over dataDir. Files older than ttl are
// removed on each run of the cron schedule.
func NewSweeper(dataDir string, ttl time.Duration, schedule string) *Sweeper {
	return &Sweeper{
		dataDir:  dataDir,
		ttl:      ttl,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start schedules the sweep and begins running it.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the schedule. Does not interrupt a sweep already running.
func (s *Sweeper) Stop() {
	s.cron.Stop()
}

func (s *Sweeper) sweep() {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		log.Printf("Store sweep failed to read %s: %v", s.dataDir, err)
		return
	}

	cutoff := time.Now().Add(-s.ttl)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".db") {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dataDir, entry.Name())); err != nil {
			log.Printf("Store sweep failed to remove %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}
	if removed > 0 {
		log.Printf("Store sweep removed %d expired store(s)", removed)
	}
}
