package repositories

import (
	"errors"

	"stockpulse_backend/internal/models"

	"gorm.io/gorm"
)

var ErrHoldingNotFound = errors.New("holding not found")

type PortfolioRepository interface {
	Create(holding *models.Holding) error
	Update(holding *models.Holding) error
	FindByUserID(userID string) ([]models.Holding, error)
	FindByID(id string) (*models.Holding, error)
	FindByUserAndSymbol(userID, symbol string) (*models.Holding, error)
	Delete(id string) error
}

type PortfolioRepositoryImpl struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &PortfolioRepositoryImpl{db: db}
}

func (r *PortfolioRepositoryImpl) Create(holding *models.Holding) error {
	return r.db.Create(holding).Error
}

func (r *PortfolioRepositoryImpl) Update(holding *models.Holding) error {
	return r.db.Save(holding).Error
}

func (r *PortfolioRepositoryImpl) FindByUserID(userID string) ([]models.Holding, error) {
	var holdings []models.Holding
	err := r.db.Where("user_id = ?", userID).Order("symbol").Find(&holdings).Error
	return holdings, err
}

func (r *PortfolioRepositoryImpl) FindByID(id string) (*models.Holding, error) {
	var holding models.Holding
	err := r.db.First(&holding, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHoldingNotFound
		}
		return nil, err
	}
	return &holding, nil
}

func (r *PortfolioRepositoryImpl) FindByUserAndSymbol(userID, symbol string) (*models.Holding, error) {
	var holding models.Holding
	err := r.db.First(&holding, "user_id = ? AND symbol = ?", userID, symbol).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHoldingNotFound
		}
		return nil, err
	}
	return &holding, nil
}

func (r *PortfolioRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Holding{}, "id = ?", id).Error
}
