package repositories

import (
	"errors"

	"stockpulse_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrWatchlistNotFound = errors.New("watchlist not found")
	ErrSymbolExists      = errors.New("symbol already on watchlist")
)

type WatchlistRepository interface {
	Create(watchlist *models.Watchlist) error
	FindByUserID(userID string) ([]models.Watchlist, error)
	FindByID(id string) (*models.Watchlist, error)
	Delete(id string) error
	AddItem(item *models.WatchlistItem) error
	RemoveItem(watchlistID, symbol string) error
}

type WatchlistRepositoryImpl struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &WatchlistRepositoryImpl{db: db}
}

func (r *WatchlistRepositoryImpl) Create(watchlist *models.Watchlist) error {
	return r.db.Create(watchlist).Error
}

func (r *WatchlistRepositoryImpl) FindByUserID(userID string) ([]models.Watchlist, error) {
	var lists []models.Watchlist
	err := r.db.Preload("Items").Where("user_id = ?", userID).
		Order("created_at").Find(&lists).Error
	return lists, err
}

func (r *WatchlistRepositoryImpl) FindByID(id string) (*models.Watchlist, error) {
	var list models.Watchlist
	err := r.db.Preload("Items").First(&list, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWatchlistNotFound
		}
		return nil, err
	}
	return &list, nil
}

func (r *WatchlistRepositoryImpl) Delete(id string) error {
	return r.db.Select("Items").Delete(&models.Watchlist{BaseModel: models.BaseModel{ID: id}}).Error
}

func (r *WatchlistRepositoryImpl) AddItem(item *models.WatchlistItem) error {
	if err := r.db.Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSymbolExists
		}
		return err
	}
	return nil
}

func (r *WatchlistRepositoryImpl) RemoveItem(watchlistID, symbol string) error {
	return r.db.Where("watchlist_id = ? AND symbol = ?", watchlistID, symbol).
		Delete(&models.WatchlistItem{}).Error
}
