package repositories

import (
	"github.com/markabahub/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateUser(user *models.User) error
	SearchUsers(query string) ([]models.User, error)

	AddFavorite(userID, postID uint) error
	RemoveFavorite(userID, postID uint) error
	GetFavoritePostIDs(userID uint) ([]uint, error)

	Subscribe(userID, targetID uint) error
	Unsubscribe(userID, targetID uint) error
	GetSubscriptions(userID uint) ([]models.User, error)

	AddMarketplaceFavorite(userID, itemID uint) error
	RemoveMarketplaceFavorite(userID, itemID uint) error
	GetMarketplaceFavoriteIDs(userID uint) ([]uint, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// SearchUsers searches for users by name or username (case-insensitive)
func (r *PostgresUserRepository) SearchUsers(query string) ([]models.User, error) {
	var users []models.User
	pattern := "%" + query + "%"
	if err := r.db.Where("LOWER(name) LIKE LOWER(?) OR LOWER(username) LIKE LOWER(?)", pattern, pattern).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AddFavorite bookmarks a post for a user, idempotently
func (r *PostgresUserRepository) AddFavorite(userID, postID uint) error {
	var existing models.Favorite
	err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.Create(&models.Favorite{UserID: userID, PostID: postID}).Error
}

// RemoveFavorite removes a post bookmark
func (r *PostgresUserRepository) RemoveFavorite(userID, postID uint) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Favorite{}).Error
}

// GetFavoritePostIDs lists the post IDs a user has bookmarked
func (r *PostgresUserRepository) GetFavoritePostIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Favorite{}).Where("user_id = ?", userID).
		Order("created_at DESC").Pluck("post_id", &ids).Error
	return ids, err
}

// Subscribe adds a subscription to another user, idempotently
func (r *PostgresUserRepository) Subscribe(userID, targetID uint) error {
	var existing models.Subscription
	err := r.db.Where("user_id = ? AND target_id = ?", userID, targetID).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.Create(&models.Subscription{UserID: userID, TargetID: targetID}).Error
}

// Unsubscribe removes a subscription
func (r *PostgresUserRepository) Unsubscribe(userID, targetID uint) error {
	return r.db.Where("user_id = ? AND target_id = ?", userID, targetID).Delete(&models.Subscription{}).Error
}

// GetSubscriptions lists the users someone subscribes to
func (r *PostgresUserRepository) GetSubscriptions(userID uint) ([]models.User, error) {
	var users []models.User
	sub := r.db.Model(&models.Subscription{}).Select("target_id").Where("user_id = ?", userID)
	if err := r.db.Where("id IN (?)", sub).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AddMarketplaceFavorite bookmarks a marketplace item, idempotently
func (r *PostgresUserRepository) AddMarketplaceFavorite(userID, itemID uint) error {
	var existing models.MarketplaceFavorite
	err := r.db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.Create(&models.MarketplaceFavorite{UserID: userID, ItemID: itemID}).Error
}

// RemoveMarketplaceFavorite removes a marketplace item bookmark
func (r *PostgresUserRepository) RemoveMarketplaceFavorite(userID, itemID uint) error {
	return r.db.Where("user_id = ? AND item_id = ?", userID, itemID).Delete(&models.MarketplaceFavorite{}).Error
}

// GetMarketplaceFavoriteIDs lists the marketplace item IDs a user has bookmarked
func (r *PostgresUserRepository) GetMarketplaceFavoriteIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.MarketplaceFavorite{}).Where("user_id = ?", userID).
		Order("created_at DESC").Pluck("item_id", &ids).Error
	return ids, err
}
