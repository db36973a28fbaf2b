package services

import (
	"stockpulse_backend/internal/appErrors"
	"stockpulse_backend/internal/models"
	"stockpulse_backend/internal/repositories"
	"stockpulse_backend/internal/services/dto"
)

type AlertService interface {
	Create(userID string, req *dto.CreateAlertRequest) (*dto.AlertResponse, error)
	List(userID string) ([]dto.AlertResponse, error)
	Update(userID, alertID string, req *dto.UpdateAlertRequest) (*dto.AlertResponse, error)
	Delete(userID, alertID string) error
}

type AlertServiceImpl struct {
	alertRepo repositories.AlertRepository
}

func NewAlertService(alertRepo repositories.AlertRepository) AlertService {
	return &AlertServiceImpl{alertRepo: alertRepo}
}

func (s *AlertServiceImpl) Create(userID string, req *dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	alert := &models.PriceAlert{
		UserID:    userID,
		Symbol:    normalizeSymbol(req.Symbol),
		Direction: models.AlertDirection(req.Direction),
		Threshold: req.Threshold,
		Enabled:   true,
	}
	if err := s.alertRepo.Create(alert); err != nil {
		return nil, appErrors.InternalError(err)
	}
	resp := buildAlertResponse(alert)
	return &resp, nil
}

func (s *AlertServiceImpl) List(userID string) ([]dto.AlertResponse, error) {
	alerts, err := s.alertRepo.FindByUserID(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	out := make([]dto.AlertResponse, 0, len(alerts))
	for i := range alerts {
		out = append(out, buildAlertResponse(&alerts[i]))
	}
	return out, nil
}

func (s *AlertServiceImpl) Update(userID, alertID string, req *dto.UpdateAlertRequest) (*dto.AlertResponse, error) {
	alert, err := s.findOwned(userID, alertID)
	if err != nil {
		return nil, err
	}
	alert.Enabled = *req.Enabled
	if err := s.alertRepo.Update(alert); err != nil {
		return nil, appErrors.InternalError(err)
	}
	resp := buildAlertResponse(alert)
	return &resp, nil
}

func (s *AlertServiceImpl) Delete(userID, alertID string) error {
	alert, err := s.findOwned(userID, alertID)
	if err != nil {
		return err
	}
	if err := s.alertRepo.Delete(alert.ID); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *AlertServiceImpl) findOwned(userID, alertID string) (*models.PriceAlert, error) {
	alert, err := s.alertRepo.FindByID(alertID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrAlertNotFound) {
			return nil, appErrors.NotFoundError("alert")
		}
		return nil, appErrors.InternalError(err)
	}
	if alert.UserID != userID {
		return nil, appErrors.NotFoundError("alert")
	}
	return alert, nil
}

func buildAlertResponse(alert *models.PriceAlert) dto.AlertResponse {
	return dto.AlertResponse{
		ID:        alert.ID,
		Symbol:    alert.Symbol,
		Direction: string(alert.Direction),
		Threshold: alert.Threshold,
		Enabled:   alert.Enabled,
	}
}
