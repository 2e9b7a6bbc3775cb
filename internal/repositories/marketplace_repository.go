package repositories

import (
	"github.com/markabahub/backend/internal/models"
	"gorm.io/gorm"
)

// MarketplaceRepository defines the interface for marketplace data operations
type MarketplaceRepository interface {
	CreateItem(item *models.MarketplaceItem) error
	GetItemByID(id uint) (*models.MarketplaceItem, error)
	ListItems(filter models.ItemFilter) ([]models.MarketplaceItem, int64, error)
	GetItemsByUser(userID uint) ([]models.MarketplaceItem, error)
	GetItemsByIDs(ids []uint) ([]models.MarketplaceItem, error)
	UpdateItem(item *models.MarketplaceItem) error
	DeleteItem(id uint) error
}

// PostgresMarketplaceRepository implements MarketplaceRepository for PostgreSQL
type PostgresMarketplaceRepository struct {
	db *gorm.DB
}

// NewPostgresMarketplaceRepository creates a new PostgresMarketplaceRepository
func NewPostgresMarketplaceRepository(db *gorm.DB) *PostgresMarketplaceRepository {
	return &PostgresMarketplaceRepository{db: db}
}

// CreateItem creates a new listing
func (r *PostgresMarketplaceRepository) CreateItem(item *models.MarketplaceItem) error {
	return r.db.Create(item).Error
}

// GetItemByID retrieves a listing by ID
func (r *PostgresMarketplaceRepository) GetItemByID(id uint) (*models.MarketplaceItem, error) {
	var item models.MarketplaceItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems returns available listings matching the filter with pagination.
// Only available-status items appear in the public list.
func (r *PostgresMarketplaceRepository) ListItems(filter models.ItemFilter) ([]models.MarketplaceItem, int64, error) {
	q := r.db.Model(&models.MarketplaceItem{}).Where("status = ?", models.ItemStatusAvailable)

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE LOWER(?)", "%"+filter.Location+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var items []models.MarketplaceItem
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&items).Error
	return items, total, err
}

// GetItemsByUser retrieves all listings of an owner, any status
func (r *PostgresMarketplaceRepository) GetItemsByUser(userID uint) ([]models.MarketplaceItem, error) {
	var items []models.MarketplaceItem
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

// GetItemsByIDs retrieves listings by ID set
func (r *PostgresMarketplaceRepository) GetItemsByIDs(ids []uint) ([]models.MarketplaceItem, error) {
	if len(ids) == 0 {
		return []models.MarketplaceItem{}, nil
	}
	var items []models.MarketplaceItem
	err := r.db.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

// UpdateItem saves a modified listing
func (r *PostgresMarketplaceRepository) UpdateItem(item *models.MarketplaceItem) error {
	return r.db.Save(item).Error
}

// DeleteItem removes a listing
func (r *PostgresMarketplaceRepository) DeleteItem(id uint) error {
	return r.db.Delete(&models.MarketplaceItem{}, id).Error
}
