package repositories_test

import (
	"testing"
	"time"

	"github.com/markabahub/backend/internal/models"
	"github.com/markabahub/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStoryExpiresAfter24Hours(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresStoryRepository(db)

	owner := seedUser(t, db, "owner")
	story := &models.Story{UserID: owner, MediaURL: "https://cdn.example.com/a.jpg", MediaType: "image"}
	assert.NoError(t, repo.CreateStory(story))
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), story.ExpiresAt, time.Minute)

	active, err := repo.GetActiveByUsers([]uint{owner})
	assert.NoError(t, err)
	assert.Len(t, active, 1)

	// force the story past its expiry; it disappears from every read path
	assert.NoError(t, db.Model(&models.Story{}).Where("id = ?", story.ID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	active, err = repo.GetActiveByUsers([]uint{owner})
	assert.NoError(t, err)
	assert.Empty(t, active)

	_, err = repo.GetStoryByID(story.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStoryViewIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresStoryRepository(db)

	owner := seedUser(t, db, "owner")
	watcher := seedUser(t, db, "watcher")

	story := &models.Story{UserID: owner, MediaURL: "https://cdn.example.com/a.jpg", MediaType: "image"}
	assert.NoError(t, repo.CreateStory(story))

	viewed, err := repo.HasViewed(story.ID, watcher)
	assert.NoError(t, err)
	assert.False(t, viewed)

	assert.NoError(t, repo.AddView(&models.StoryView{StoryID: story.ID, UserID: watcher}))
	assert.ErrorIs(t, repo.AddView(&models.StoryView{StoryID: story.ID, UserID: watcher}), gorm.ErrDuplicatedKey)

	viewed, err = repo.HasViewed(story.ID, watcher)
	assert.NoError(t, err)
	assert.True(t, viewed)

	var count int64
	assert.NoError(t, db.Model(&models.StoryView{}).Where("story_id = ?", story.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteExpiredSweepsViewsToo(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresStoryRepository(db)

	owner := seedUser(t, db, "owner")
	watcher := seedUser(t, db, "watcher")

	fresh := &models.Story{UserID: owner, MediaURL: "https://cdn.example.com/fresh.jpg", MediaType: "image"}
	stale := &models.Story{UserID: owner, MediaURL: "https://cdn.example.com/stale.jpg", MediaType: "image"}
	assert.NoError(t, repo.CreateStory(fresh))
	assert.NoError(t, repo.CreateStory(stale))
	assert.NoError(t, repo.AddView(&models.StoryView{StoryID: stale.ID, UserID: watcher}))

	assert.NoError(t, db.Model(&models.Story{}).Where("id = ?", stale.ID).
		Update("expires_at", time.Now().Add(-time.Hour)).Error)

	removed, err := repo.DeleteExpired()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	active, err := repo.GetActiveByUsers([]uint{owner})
	assert.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, fresh.ID, active[0].ID)

	var views int64
	assert.NoError(t, db.Model(&models.StoryView{}).Where("story_id = ?", stale.ID).Count(&views).Error)
	assert.Zero(t, views)
}
