package repositories

import (
	"github.com/markabahub/backend/internal/models"
	"gorm.io/gorm"
)

// FriendRepository defines the interface for friend-request data operations
type FriendRepository interface {
	CreateRequest(req *models.Friend) error
	GetRequestByID(id uint) (*models.Friend, error)
	GetBetween(userA, userB uint) (*models.Friend, error)
	GetPendingForRecipient(userID uint) ([]models.Friend, error)
	GetFriends(userID uint) ([]models.User, error)
	GetAcceptedFriendIDs(userID uint) ([]uint, error)
	UpdateStatus(id uint, status models.FriendStatus) error
	DeleteBetween(userA, userB uint) (bool, error)
}

// PostgresFriendRepository implements FriendRepository for PostgreSQL
type PostgresFriendRepository struct {
	db *gorm.DB
}

// NewPostgresFriendRepository creates a new PostgresFriendRepository
func NewPostgresFriendRepository(db *gorm.DB) *PostgresFriendRepository {
	return &PostgresFriendRepository{db: db}
}

// CreateRequest inserts a pending friend request. The sorted-pair unique
// index is the backstop when both parties race past the existence check;
// the caller maps gorm.ErrDuplicatedKey to a conflict.
func (r *PostgresFriendRepository) CreateRequest(req *models.Friend) error {
	req.Status = models.FriendStatusPending
	return r.db.Create(req).Error
}

// GetRequestByID retrieves a friend request by ID
func (r *PostgresFriendRepository) GetRequestByID(id uint) (*models.Friend, error) {
	var req models.Friend
	if err := r.db.Preload("Requester").Preload("Recipient").First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// GetBetween retrieves the single record between two users in either direction
func (r *PostgresFriendRepository) GetBetween(userA, userB uint) (*models.Friend, error) {
	low, high := models.SortPair(userA, userB)
	var req models.Friend
	if err := r.db.Where("pair_low_id = ? AND pair_high_id = ?", low, high).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// GetPendingForRecipient retrieves pending requests addressed to a user
func (r *PostgresFriendRepository) GetPendingForRecipient(userID uint) ([]models.Friend, error) {
	var requests []models.Friend
	err := r.db.Preload("Requester").
		Where("recipient_id = ? AND status = ?", userID, models.FriendStatusPending).
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// GetFriends retrieves all accepted friends of a user, mapped to the other party
func (r *PostgresFriendRepository) GetFriends(userID uint) ([]models.User, error) {
	ids, err := r.GetAcceptedFriendIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	var friends []models.User
	if err := r.db.Where("id IN ?", ids).Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}

// GetAcceptedFriendIDs returns the IDs of the other party of every accepted
// record touching userID
func (r *PostgresFriendRepository) GetAcceptedFriendIDs(userID uint) ([]uint, error) {
	var records []models.Friend
	err := r.db.Where("(requester_id = ? OR recipient_id = ?) AND status = ?",
		userID, userID, models.FriendStatusAccepted).Find(&records).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(records))
	for _, rec := range records {
		if rec.RequesterID == userID {
			ids = append(ids, rec.RecipientID)
		} else {
			ids = append(ids, rec.RequesterID)
		}
	}
	return ids, nil
}

// UpdateStatus sets the status of a friend request
func (r *PostgresFriendRepository) UpdateStatus(id uint, status models.FriendStatus) error {
	return r.db.Model(&models.Friend{}).Where("id = ?", id).Update("status", status).Error
}

// DeleteBetween removes any record between the pair regardless of status.
// Returns false when no record existed.
func (r *PostgresFriendRepository) DeleteBetween(userA, userB uint) (bool, error) {
	low, high := models.SortPair(userA, userB)
	res := r.db.Where("pair_low_id = ? AND pair_high_id = ?", low, high).Delete(&models.Friend{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
