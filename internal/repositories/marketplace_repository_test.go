package repositories_test

import (
	"testing"

	"github.com/markabahub/backend/internal/models"
	"github.com/markabahub/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedItem(t *testing.T, db *gorm.DB, userID uint, title, category string, price float64, status models.ItemStatus) uint {
	t.Helper()
	item := models.MarketplaceItem{
		UserID:      userID,
		Title:       title,
		Description: title + " description",
		Price:       price,
		Category:    category,
		Location:    "Riyadh",
		Condition:   "used",
		Status:      status,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}
	return item.ID
}

func TestListItemsPriceRangeIsInclusive(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresMarketplaceRepository(db)
	seller := seedUser(t, db, "seller")

	cheap := seedItem(t, db, seller, "Cheap phone", "electronics", 100, models.ItemStatusAvailable)
	mid := seedItem(t, db, seller, "Mid phone", "electronics", 500, models.ItemStatusAvailable)
	pricey := seedItem(t, db, seller, "Pricey phone", "electronics", 900, models.ItemStatusAvailable)

	min, max := 100.0, 500.0
	items, total, err := repo.ListItems(models.ItemFilter{MinPrice: &min, MaxPrice: &max})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)

	got := make(map[uint]bool)
	for _, item := range items {
		got[item.ID] = true
	}
	assert.True(t, got[cheap], "boundary price equal to min must match")
	assert.True(t, got[mid], "boundary price equal to max must match")
	assert.False(t, got[pricey])
}

func TestListItemsExcludesSoldAndFiltersCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresMarketplaceRepository(db)
	seller := seedUser(t, db, "seller")

	sofa := seedItem(t, db, seller, "Sofa", "furniture", 300, models.ItemStatusAvailable)
	seedItem(t, db, seller, "Old sofa", "furniture", 150, models.ItemStatusSold)
	seedItem(t, db, seller, "Laptop", "electronics", 2000, models.ItemStatusAvailable)

	items, total, err := repo.ListItems(models.ItemFilter{Category: "furniture"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, sofa, items[0].ID)

	// owner listing includes sold items
	mine, err := repo.GetItemsByUser(seller)
	assert.NoError(t, err)
	assert.Len(t, mine, 3)
}

func TestListItemsSearchMatchesTitleAndDescription(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresMarketplaceRepository(db)
	seller := seedUser(t, db, "seller")

	bike := seedItem(t, db, seller, "Mountain bike", "vehicles", 700, models.ItemStatusAvailable)
	seedItem(t, db, seller, "Road car", "vehicles", 9000, models.ItemStatusAvailable)

	items, total, err := repo.ListItems(models.ItemFilter{Search: "bike"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, bike, items[0].ID)
}

func TestListItemsPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresMarketplaceRepository(db)
	seller := seedUser(t, db, "seller")

	for i := 0; i < 12; i++ {
		seedItem(t, db, seller, "Chair", "furniture", float64(10+i), models.ItemStatusAvailable)
	}

	items, total, err := repo.ListItems(models.ItemFilter{Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, items, 10)

	items, _, err = repo.ListItems(models.ItemFilter{Page: 2, Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, items, 2)
}
