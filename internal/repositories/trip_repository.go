package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/models/response_models"
)

type Trip struct {
	ID          uuid.UUID
	AccountID   string
	Destination string
	Days        int
	Budget      float64
	Preferences request_models.TripPreferences
	Itinerary   *response_models.ItineraryResponse
	CreatedAt   time.Time
}

type TripRepository interface {
	Insert(ctx context.Context, trip *Trip) error
	ListByAccountID(ctx context.Context, accountID string) ([]*Trip, error)
}

type tripRepository struct {
	mu        sync.RWMutex
	byAccount map[string][]*Trip
}

func NewTripRepository() TripRepository {
	return &tripRepository{
		byAccount: make(map[string][]*Trip),
	}
}

func (t *tripRepository) Insert(ctx context.Context, trip *Trip) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cp := *trip
	t.byAccount[cp.AccountID] = append(t.byAccount[cp.AccountID], &cp)
	return nil
}

func (t *tripRepository) ListByAccountID(ctx context.Context, accountID string) ([]*Trip, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	trips := t.byAccount[accountID]
	out := make([]*Trip, 0, len(trips))
	for _, trip := range trips {
		cp := *trip
		out = append(out, &cp)
	}
	return out, nil
}
