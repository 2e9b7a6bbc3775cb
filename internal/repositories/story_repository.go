package repositories

import (
	"time"

	"github.com/markabahub/backend/internal/models"
	"gorm.io/gorm"
)

// StoryRepository defines the interface for story data operations
type StoryRepository interface {
	CreateStory(story *models.Story) error
	GetStoryByID(id uint) (*models.Story, error)
	GetActiveByUsers(userIDs []uint) ([]models.Story, error)
	DeleteStory(id uint) error
	DeleteExpired() (int64, error)

	HasViewed(storyID, userID uint) (bool, error)
	AddView(view *models.StoryView) error
}

// PostgresStoryRepository implements StoryRepository for PostgreSQL
type PostgresStoryRepository struct {
	db *gorm.DB
}

// NewPostgresStoryRepository creates a new PostgresStoryRepository
func NewPostgresStoryRepository(db *gorm.DB) *PostgresStoryRepository {
	return &PostgresStoryRepository{db: db}
}

// CreateStory creates a story expiring 24h after creation
func (r *PostgresStoryRepository) CreateStory(story *models.Story) error {
	story.ExpiresAt = time.Now().Add(24 * time.Hour)
	return r.db.Create(story).Error
}

// GetStoryByID retrieves a non-expired story with its views
func (r *PostgresStoryRepository) GetStoryByID(id uint) (*models.Story, error) {
	var story models.Story
	err := r.db.Preload("Views").
		Where("expires_at > ?", time.Now()).
		First(&story, id).Error
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// GetActiveByUsers retrieves non-expired stories of the given owners,
// newest first
func (r *PostgresStoryRepository) GetActiveByUsers(userIDs []uint) ([]models.Story, error) {
	if len(userIDs) == 0 {
		return []models.Story{}, nil
	}
	var stories []models.Story
	err := r.db.Preload("Views").
		Where("user_id IN ? AND expires_at > ?", userIDs, time.Now()).
		Order("created_at DESC").
		Find(&stories).Error
	return stories, err
}

// DeleteStory removes a story and its view records
func (r *PostgresStoryRepository) DeleteStory(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("story_id = ?", id).Delete(&models.StoryView{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Story{}, id).Error
	})
}

// DeleteExpired sweeps stories past their expiry, returning the number removed
func (r *PostgresStoryRepository) DeleteExpired() (int64, error) {
	var expired []models.Story
	if err := r.db.Where("expires_at <= ?", time.Now()).Find(&expired).Error; err != nil {
		return 0, err
	}
	var removed int64
	for _, story := range expired {
		if err := r.DeleteStory(story.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// HasViewed reports whether a user already viewed a story
func (r *PostgresStoryRepository) HasViewed(storyID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.StoryView{}).Where("story_id = ? AND user_id = ?", storyID, userID).Count(&count).Error
	return count > 0, err
}

// AddView records a view
func (r *PostgresStoryRepository) AddView(view *models.StoryView) error {
	if view.ViewedAt.IsZero() {
		view.ViewedAt = time.Now()
	}
	return r.db.Create(view).Error
}
