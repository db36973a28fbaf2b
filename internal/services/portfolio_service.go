package services

import (
	"stockpulse_backend/internal/appErrors"
	"stockpulse_backend/internal/models"
	"stockpulse_backend/internal/repositories"
	"stockpulse_backend/internal/services/dto"
)

type PortfolioService interface {
	UpsertHolding(userID string, req *dto.UpsertHoldingRequest) (*dto.HoldingResponse, error)
	Summary(userID string) (*dto.PortfolioSummary, error)
	DeleteHolding(userID, holdingID string) error
}

type PortfolioServiceImpl struct {
	portfolioRepo repositories.PortfolioRepository
}

func NewPortfolioService(portfolioRepo repositories.PortfolioRepository) PortfolioService {
	return &PortfolioServiceImpl{portfolioRepo: portfolioRepo}
}

// UpsertHolding creates the position or replaces its quantity and average
// cost when the symbol is already held.
func (s *PortfolioServiceImpl) UpsertHolding(userID string, req *dto.UpsertHoldingRequest) (*dto.HoldingResponse, error) {
	symbol := normalizeSymbol(req.Symbol)

	holding, err := s.portfolioRepo.FindByUserAndSymbol(userID, symbol)
	switch {
	case err == nil:
		holding.Quantity = req.Quantity
		holding.AvgCost = req.AvgCost
		if err := s.portfolioRepo.Update(holding); err != nil {
			return nil, appErrors.InternalError(err)
		}
	case appErrors.Is(err, repositories.ErrHoldingNotFound):
		holding = &models.Holding{
			UserID:   userID,
			Symbol:   symbol,
			Quantity: req.Quantity,
			AvgCost:  req.AvgCost,
		}
		if err := s.portfolioRepo.Create(holding); err != nil {
			return nil, appErrors.InternalError(err)
		}
	default:
		return nil, appErrors.InternalError(err)
	}

	resp := buildHoldingResponse(holding)
	return &resp, nil
}

func (s *PortfolioServiceImpl) Summary(userID string) (*dto.PortfolioSummary, error) {
	holdings, err := s.portfolioRepo.FindByUserID(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	summary := &dto.PortfolioSummary{
		Holdings:  make([]dto.HoldingResponse, 0, len(holdings)),
		Positions: len(holdings),
	}
	for i := range holdings {
		summary.Holdings = append(summary.Holdings, buildHoldingResponse(&holdings[i]))
		summary.CostBasis += holdings[i].Quantity * holdings[i].AvgCost
	}
	return summary, nil
}

func (s *PortfolioServiceImpl) DeleteHolding(userID, holdingID string) error {
	holding, err := s.portfolioRepo.FindByID(holdingID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrHoldingNotFound) {
			return appErrors.NotFoundError("holding")
		}
		return appErrors.InternalError(err)
	}
	if holding.UserID != userID {
		return appErrors.NotFoundError("holding")
	}
	if err := s.portfolioRepo.Delete(holding.ID); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func buildHoldingResponse(holding *models.Holding) dto.HoldingResponse {
	return dto.HoldingResponse{
		ID:       holding.ID,
		Symbol:   holding.Symbol,
		Quantity: holding.Quantity,
		AvgCost:  holding.AvgCost,
	}
}
