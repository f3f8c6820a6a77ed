package database

import (
	"context"
	"errors"

	"github.com/yeremiapane/restaurant-api/models"
	"gorm.io/gorm"
)

type MenuStore interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
}

type GormMenuStore struct {
	DB *gorm.DB
}

func NewMenuStore(db *gorm.DB) *GormMenuStore {
	return &GormMenuStore{DB: db}
}

func (s *GormMenuStore) List(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if err := s.DB.WithContext(ctx).Order("category ASC").Order("name ASC").Find(&items).Error; err != nil {
		return nil, storeErr("list menu items", err)
	}
	return items, nil
}

// GetByID passes the raw path token to the query. A token that is not a
// number simply matches no row.
func (s *GormMenuStore) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.DB.WithContext(ctx).Where("id = ?", id).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get menu item", err)
	}
	return &item, nil
}

// Create inserts the item and reads it back in the same transaction, so a
// failed read-back does not leave an orphaned row.
func (s *GormMenuStore) Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	var created models.MenuItem
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return storeErr("insert menu item", err)
		}
		if err := tx.Where("id = ?", item.ID).Take(&created).Error; err != nil {
			return storeErr("read back menu item", err)
		}
		return nil
	})
	if err != nil {
		var se *StoreError
		if !errors.As(err, &se) {
			err = storeErr("create menu item", err)
		}
		return nil, err
	}
	return &created, nil
}
