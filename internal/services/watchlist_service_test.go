package services

import (
	"sync"
	"testing"

	"stockpulse_backend/internal/appErrors"
	"stockpulse_backend/internal/models"
	"stockpulse_backend/internal/repositories"
	"stockpulse_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWatchlistRepo struct {
	mu    sync.Mutex
	lists map[string]*models.Watchlist
}

func newFakeWatchlistRepo() *fakeWatchlistRepo {
	return &fakeWatchlistRepo{lists: make(map[string]*models.Watchlist)}
}

func (r *fakeWatchlistRepo) Create(list *models.Watchlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if list.ID == "" {
		list.ID = uuid.NewString()
	}
	clone := *list
	r.lists[list.ID] = &clone
	return nil
}

func (r *fakeWatchlistRepo) FindByUserID(userID string) ([]models.Watchlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Watchlist
	for _, l := range r.lists {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeWatchlistRepo) FindByID(id string) (*models.Watchlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[id]
	if !ok {
		return nil, repositories.ErrWatchlistNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *fakeWatchlistRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.lists, id)
	return nil
}

func (r *fakeWatchlistRepo) AddItem(item *models.WatchlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[item.WatchlistID]
	if !ok {
		return repositories.ErrWatchlistNotFound
	}
	for _, existing := range l.Items {
		if existing.Symbol == item.Symbol {
			return repositories.ErrSymbolExists
		}
	}
	l.Items = append(l.Items, *item)
	return nil
}

func (r *fakeWatchlistRepo) RemoveItem(watchlistID, symbol string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[watchlistID]
	if !ok {
		return nil
	}
	kept := l.Items[:0]
	for _, item := range l.Items {
		if item.Symbol != symbol {
			kept = append(kept, item)
		}
	}
	l.Items = kept
	return nil
}

func TestWatchlist_CreateAndAddSymbols(t *testing.T) {
	t.Parallel()

	svc := NewWatchlistService(newFakeWatchlistRepo())

	list, err := svc.Create("user-1", &dto.CreateWatchlistRequest{Name: "Tech"})
	require.NoError(t, err)
	assert.Equal(t, "Tech", list.Name)
	assert.Empty(t, list.Symbols)

	// Symbols are normalized to upper case.
	updated, err := svc.AddSymbol("user-1", list.ID, &dto.AddSymbolRequest{Symbol: " aapl "})
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL"}, updated.Symbols)

	// Duplicates are rejected regardless of casing.
	_, err = svc.AddSymbol("user-1", list.ID, &dto.AddSymbolRequest{Symbol: "AAPL"})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidationFailed)
}

func TestWatchlist_OwnershipReadsAsNotFound(t *testing.T) {
	t.Parallel()

	svc := NewWatchlistService(newFakeWatchlistRepo())

	list, err := svc.Create("user-1", &dto.CreateWatchlistRequest{Name: "Tech"})
	require.NoError(t, err)

	_, err = svc.AddSymbol("user-2", list.ID, &dto.AddSymbolRequest{Symbol: "AAPL"})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	err = svc.Delete("user-2", list.ID)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	// The rightful owner still sees it.
	lists, err := svc.List("user-1")
	require.NoError(t, err)
	assert.Len(t, lists, 1)
}

func TestWatchlist_RemoveSymbolAndDelete(t *testing.T) {
	t.Parallel()

	svc := NewWatchlistService(newFakeWatchlistRepo())

	list, err := svc.Create("user-1", &dto.CreateWatchlistRequest{Name: "Tech"})
	require.NoError(t, err)
	_, err = svc.AddSymbol("user-1", list.ID, &dto.AddSymbolRequest{Symbol: "AAPL"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveSymbol("user-1", list.ID, "aapl"))

	lists, err := svc.List("user-1")
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Empty(t, lists[0].Symbols)

	require.NoError(t, svc.Delete("user-1", list.ID))
	lists, err = svc.List("user-1")
	require.NoError(t, err)
	assert.Empty(t, lists)
}
