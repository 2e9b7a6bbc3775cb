package jobs

import (
	"log"
	"time"

	"github.com/markabahub/backend/internal/repositories"
)

// StoryCleanupJob periodically removes stories past their 24h expiry.
type StoryCleanupJob struct {
	storyRepository repositories.StoryRepository
	ticker          *time.Ticker
	done            chan bool
}

// NewStoryCleanupJob creates a new story cleanup job
func NewStoryCleanupJob(storyRepo repositories.StoryRepository, interval time.Duration) *StoryCleanupJob {
	return &StoryCleanupJob{
		storyRepository: storyRepo,
		ticker:          time.NewTicker(interval),
		done:            make(chan bool),
	}
}

// Start begins the cleanup job. The first sweep runs immediately.
func (j *StoryCleanupJob) Start() {
	log.Println("Story cleanup job started")

	go func() {
		j.cleanup()

		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				log.Println("Story cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *StoryCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *StoryCleanupJob) cleanup() {
	removed, err := j.storyRepository.DeleteExpired()
	if err != nil {
		log.Printf("Error during story cleanup: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Story cleanup removed %d expired stories", removed)
	}
}
