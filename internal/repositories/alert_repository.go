package repositories

import (
	"errors"

	"stockpulse_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAlertNotFound = errors.New("alert not found")

type AlertRepository interface {
	Create(alert *models.PriceAlert) error
	Update(alert *models.PriceAlert) error
	FindByUserID(userID string) ([]models.PriceAlert, error)
	FindByID(id string) (*models.PriceAlert, error)
	Delete(id string) error
}

type AlertRepositoryImpl struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &AlertRepositoryImpl{db: db}
}

func (r *AlertRepositoryImpl) Create(alert *models.PriceAlert) error {
	return r.db.Create(alert).Error
}

func (r *AlertRepositoryImpl) Update(alert *models.PriceAlert) error {
	return r.db.Save(alert).Error
}

func (r *AlertRepositoryImpl) FindByUserID(userID string) ([]models.PriceAlert, error) {
	var alerts []models.PriceAlert
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&alerts).Error
	return alerts, err
}

func (r *AlertRepositoryImpl) FindByID(id string) (*models.PriceAlert, error) {
	var alert models.PriceAlert
	err := r.db.First(&alert, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}

func (r *AlertRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.PriceAlert{}, "id = ?", id).Error
}
