package repositories_test

import (
	"fmt"
	"testing"

	"github.com/markabahub/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory SQLite database and migrates the
// full schema. TranslateError is on so unique violations surface as
// gorm.ErrDuplicatedKey, matching the production configuration.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Favorite{},
		&models.Subscription{},
		&models.MarketplaceFavorite{},
		&models.Friend{},
		&models.Post{},
		&models.PostLike{},
		&models.PostComment{},
		&models.Story{},
		&models.StoryView{},
		&models.MarketplaceItem{},
		&models.Notification{},
		&models.Chat{},
		&models.ChatMessage{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

// seedUser inserts a minimal user and returns its ID.
func seedUser(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return user.ID
}
