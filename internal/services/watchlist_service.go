package services

import (
	"strings"

	"stockpulse_backend/internal/appErrors"
	"stockpulse_backend/internal/models"
	"stockpulse_backend/internal/repositories"
	"stockpulse_backend/internal/services/dto"
)

type WatchlistService interface {
	Create(userID string, req *dto.CreateWatchlistRequest) (*dto.WatchlistResponse, error)
	List(userID string) ([]dto.WatchlistResponse, error)
	Delete(userID, watchlistID string) error
	AddSymbol(userID, watchlistID string, req *dto.AddSymbolRequest) (*dto.WatchlistResponse, error)
	RemoveSymbol(userID, watchlistID, symbol string) error
}

type WatchlistServiceImpl struct {
	watchlistRepo repositories.WatchlistRepository
}

func NewWatchlistService(watchlistRepo repositories.WatchlistRepository) WatchlistService {
	return &WatchlistServiceImpl{watchlistRepo: watchlistRepo}
}

func (s *WatchlistServiceImpl) Create(userID string, req *dto.CreateWatchlistRequest) (*dto.WatchlistResponse, error) {
	list := &models.Watchlist{
		UserID: userID,
		Name:   req.Name,
	}
	if err := s.watchlistRepo.Create(list); err != nil {
		return nil, appErrors.InternalError(err)
	}
	resp := buildWatchlistResponse(list)
	return &resp, nil
}

func (s *WatchlistServiceImpl) List(userID string) ([]dto.WatchlistResponse, error) {
	lists, err := s.watchlistRepo.FindByUserID(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	out := make([]dto.WatchlistResponse, 0, len(lists))
	for i := range lists {
		out = append(out, buildWatchlistResponse(&lists[i]))
	}
	return out, nil
}

func (s *WatchlistServiceImpl) Delete(userID, watchlistID string) error {
	list, err := s.findOwned(userID, watchlistID)
	if err != nil {
		return err
	}
	if err := s.watchlistRepo.Delete(list.ID); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *WatchlistServiceImpl) AddSymbol(userID, watchlistID string, req *dto.AddSymbolRequest) (*dto.WatchlistResponse, error) {
	list, err := s.findOwned(userID, watchlistID)
	if err != nil {
		return nil, err
	}

	item := &models.WatchlistItem{
		WatchlistID: list.ID,
		Symbol:      normalizeSymbol(req.Symbol),
	}
	if err := s.watchlistRepo.AddItem(item); err != nil {
		if appErrors.Is(err, repositories.ErrSymbolExists) {
			return nil, appErrors.ValidationError("symbol already on watchlist")
		}
		return nil, appErrors.InternalError(err)
	}

	updated, err := s.watchlistRepo.FindByID(list.ID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	resp := buildWatchlistResponse(updated)
	return &resp, nil
}

func (s *WatchlistServiceImpl) RemoveSymbol(userID, watchlistID, symbol string) error {
	list, err := s.findOwned(userID, watchlistID)
	if err != nil {
		return err
	}
	if err := s.watchlistRepo.RemoveItem(list.ID, normalizeSymbol(symbol)); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

// findOwned resolves a watchlist and enforces ownership. A watchlist
// belonging to someone else reads as not found to avoid leaking ids.
func (s *WatchlistServiceImpl) findOwned(userID, watchlistID string) (*models.Watchlist, error) {
	list, err := s.watchlistRepo.FindByID(watchlistID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrWatchlistNotFound) {
			return nil, appErrors.NotFoundError("watchlist")
		}
		return nil, appErrors.InternalError(err)
	}
	if list.UserID != userID {
		return nil, appErrors.NotFoundError("watchlist")
	}
	return list, nil
}

func buildWatchlistResponse(list *models.Watchlist) dto.WatchlistResponse {
	symbols := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		symbols = append(symbols, item.Symbol)
	}
	return dto.WatchlistResponse{
		ID:        list.ID,
		Name:      list.Name,
		Symbols:   symbols,
		CreatedAt: list.CreatedAt,
	}
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
