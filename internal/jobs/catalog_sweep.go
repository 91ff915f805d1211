package jobs

import (
	"log"
	"time"

	"github.com/disha-labs/disha-backend/internal/storage"
)

// CatalogSweepJob periodically removes opportunities whose deadline has
// passed, so they never reach the recommendation pipeline. Records with
// a malformed deadline are logged and left in place for an operator.
type CatalogSweepJob struct {
	store    storage.Store
	interval time.Duration
	stop     chan struct{}
}

// NewCatalogSweepJob creates a sweep job over the given store.
func NewCatalogSweepJob(store storage.Store, interval time.Duration) *CatalogSweepJob {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	return &CatalogSweepJob{
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins the sweep loop. It returns immediately.
func (j *CatalogSweepJob) Start() {
	log.Printf("Starting catalog sweep job (every %v)", j.interval)

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.Sweep(time.Now())
			case <-j.stop:
				return
			}
		}
	}()
}

// Stop halts the sweep loop.
func (j *CatalogSweepJob) Stop() {
	close(j.stop)
	log.Println("Stopped catalog sweep job")
}

// Sweep removes every opportunity whose deadline is before now and
// returns how many were removed.
func (j *CatalogSweepJob) Sweep(now time.Time) int {
	opps, err := j.store.ListOpportunities()
	if err != nil {
		log.Printf("Catalog sweep: list failed: %v", err)
		return 0
	}

	removed := 0
	today := now.Truncate(24 * time.Hour)
	for _, opp := range opps {
		deadline, err := opp.ParseDeadline()
		if err != nil {
			log.Printf("Catalog sweep: opportunity %s has invalid deadline %q", opp.ID, opp.Deadline)
			continue
		}
		if deadline.Before(today) {
			if err := j.store.DeleteOpportunity(opp.ID); err != nil {
				log.Printf("Catalog sweep: delete %s failed: %v", opp.ID, err)
				continue
			}
			removed++
		}
	}

	if removed > 0 {
		log.Printf("Catalog sweep: removed %d expired opportunities", removed)
	}
	return removed
}
