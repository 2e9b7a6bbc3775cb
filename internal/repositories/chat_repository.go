package repositories

import (
	"github.com/markabahub/backend/internal/models"
	"gorm.io/gorm"
)

// ChatRepository defines the interface for chat data operations
type ChatRepository interface {
	GetOrCreateChat(userA, userB uint) (*models.Chat, error)
	GetChatByID(id uint) (*models.Chat, error)
	GetChatsForUser(userID uint) ([]models.Chat, error)
	AddMessage(message *models.ChatMessage) error
	MarkRead(chatID, readerID uint) error
}

// PostgresChatRepository implements ChatRepository for PostgreSQL
type PostgresChatRepository struct {
	db *gorm.DB
}

// NewPostgresChatRepository creates a new PostgresChatRepository
func NewPostgresChatRepository(db *gorm.DB) *PostgresChatRepository {
	return &PostgresChatRepository{db: db}
}

// GetOrCreateChat returns the existing two-party chat or creates one. The
// sorted-pair unique index resolves concurrent first contact to one record.
func (r *PostgresChatRepository) GetOrCreateChat(userA, userB uint) (*models.Chat, error) {
	low, high := models.SortPair(userA, userB)

	var chat models.Chat
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Where("user_low_id = ? AND user_high_id = ?", low, high).First(&chat).Error
	if err == nil {
		return &chat, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	chat = models.Chat{UserLowID: low, UserHighID: high}
	if err := r.db.Create(&chat).Error; err != nil {
		return nil, err
	}
	return &chat, nil
}

// GetChatByID retrieves a chat with its messages in order
func (r *PostgresChatRepository) GetChatByID(id uint) (*models.Chat, error) {
	var chat models.Chat
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&chat, id).Error
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

// GetChatsForUser retrieves all chats a user participates in, most recently
// active first
func (r *PostgresChatRepository) GetChatsForUser(userID uint) ([]models.Chat, error) {
	var chats []models.Chat
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Where("user_low_id = ? OR user_high_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&chats).Error
	return chats, err
}

// AddMessage appends a message and bumps the chat's activity timestamp
func (r *PostgresChatRepository) AddMessage(message *models.ChatMessage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		return tx.Model(&models.Chat{}).Where("id = ?", message.ChatID).
			Update("updated_at", message.CreatedAt).Error
	})
}

// MarkRead flips every unread message not sent by the reader
func (r *PostgresChatRepository) MarkRead(chatID, readerID uint) error {
	return r.db.Model(&models.ChatMessage{}).
		Where("chat_id = ? AND sender_id <> ? AND read = ?", chatID, readerID, false).
		Update("read", true).Error
}
