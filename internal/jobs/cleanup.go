package jobs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/acazacu/credit-docs/internal/config"
)

// Cleaner removes generated documents past the configured retention.
type Cleaner struct {
	outputDir string
	ttl       time.Duration
	log       *logrus.Logger
}

// NewCleaner creates a cleaner for the configured output directory.
func NewCleaner(cfg *config.Config, log *logrus.Logger) *Cleaner {
	return &Cleaner{
		outputDir: cfg.OutputDir,
		ttl:       time.Duration(cfg.DocumentTTLDays) * 24 * time.Hour,
		log:       log,
	}
}

// Schedule registers the daily purge on the given cron runner.
func (c *Cleaner) Schedule(runner *cron.Cron) error {
	_, err := runner.AddFunc("@daily", c.Run)
	return err
}

// Run deletes every generated file older than the retention period.
func (c *Cleaner) Run() {
	entries, err := os.ReadDir(c.outputDir)
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.Errorf("Cleanup: failed to read %s: %v", c.outputDir, err)
		}
		return
	}

	cutoff := time.Now().Add(-c.ttl)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(c.outputDir, entry.Name())
		if err := os.Remove(path); err != nil {
			c.log.Errorf("Cleanup: failed to remove %s: %v", path, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		c.log.Infof("Cleanup: removed %d expired document(s)", removed)
	}
}
