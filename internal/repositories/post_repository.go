package repositories

import (
	"time"

	"github.com/markabahub/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostsByUser(userID uint, visibilities []models.Visibility) ([]models.Post, error)
	DeletePost(id uint) error

	GetFeed(viewerID uint, friendIDs []uint, offset, limit int) ([]models.Post, int64, error)
	GetTrending(since time.Time, limit int) ([]models.Post, error)

	HasLiked(postID, userID uint) (bool, error)
	AddLike(postID, userID uint) error
	RemoveLike(postID, userID uint) error
	CountLikes(postID uint) (int64, error)

	AddComment(comment *models.PostComment) error
	CountComments(postID uint) (int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	if post.Privacy == "" {
		post.Privacy = models.VisibilityPublic
	}
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post with its likes and comments
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Likes").Preload("Comments").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostsByUser retrieves a user's posts restricted to the given privacy tiers
func (r *PostgresPostRepository) GetPostsByUser(userID uint, visibilities []models.Visibility) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.Preload("Likes").Preload("Comments").Where("user_id = ?", userID)
	if len(visibilities) > 0 {
		q = q.Where("privacy IN ?", visibilities)
	}
	err := q.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// DeletePost removes a post with its likes and comments
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// feedScope restricts posts to what viewerID may see: public posts, own
// posts, and friends-or-public posts of accepted friends.
func (r *PostgresPostRepository) feedScope(viewerID uint, friendIDs []uint) *gorm.DB {
	q := r.db.Model(&models.Post{})
	if len(friendIDs) > 0 {
		return q.Where("privacy = ? OR user_id = ? OR (user_id IN ? AND privacy IN ?)",
			models.VisibilityPublic, viewerID, friendIDs,
			[]models.Visibility{models.VisibilityPublic, models.VisibilityFriends})
	}
	return q.Where("privacy = ? OR user_id = ?", models.VisibilityPublic, viewerID)
}

// GetFeed returns the paginated feed for a viewer plus the stable total count
func (r *PostgresPostRepository) GetFeed(viewerID uint, friendIDs []uint, offset, limit int) ([]models.Post, int64, error) {
	var total int64
	if err := r.feedScope(viewerID, friendIDs).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := r.feedScope(viewerID, friendIDs).
		Preload("Likes").Preload("Comments").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// GetTrending returns public posts since the cutoff ordered by engagement
// (likes + comments) descending, recency breaking ties.
func (r *PostgresPostRepository) GetTrending(since time.Time, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Likes").Preload("Comments").
		Select("posts.*, (SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) + (SELECT COUNT(*) FROM post_comments WHERE post_comments.post_id = posts.id) AS engagement").
		Where("privacy = ? AND created_at >= ?", models.VisibilityPublic, since).
		Order("engagement DESC").Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// HasLiked reports whether a user already liked a post
func (r *PostgresPostRepository) HasLiked(postID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PostLike{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error
	return count > 0, err
}

// AddLike records a like
func (r *PostgresPostRepository) AddLike(postID, userID uint) error {
	return r.db.Create(&models.PostLike{PostID: postID, UserID: userID}).Error
}

// RemoveLike removes a like
func (r *PostgresPostRepository) RemoveLike(postID, userID uint) error {
	return r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.PostLike{}).Error
}

// CountLikes returns the like count of a post
func (r *PostgresPostRepository) CountLikes(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// AddComment appends a comment to a post
func (r *PostgresPostRepository) AddComment(comment *models.PostComment) error {
	return r.db.Create(comment).Error
}

// CountComments returns the comment count of a post
func (r *PostgresPostRepository) CountComments(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.PostComment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
