package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID             uuid.UUID
	Name           string
	Email          string
	PasswordHash   string
	Tier           string
	TripsThisMonth int
	TotalTrips     int
	CreatedAt      time.Time
}

type AccountRepository interface {
	Insert(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	IncrementTripCounters(ctx context.Context, id string) error
}

// accountRepository keeps accounts in process memory. Persistence is out of
// scope; the interface is what the services depend on.
type accountRepository struct {
	mu      sync.RWMutex
	byID    map[string]*Account
	byEmail map[string]string
}

func NewAccountRepository() AccountRepository {
	return &accountRepository{
		byID:    make(map[string]*Account),
		byEmail: make(map[string]string),
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *Account) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	cp := *account
	a.byID[cp.ID.String()] = &cp
	a.byEmail[cp.Email] = cp.ID.String()
	return nil
}

func (a *accountRepository) FindByID(ctx context.Context, id string) (*Account, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	account, ok := a.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *account
	return &cp, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	id, ok := a.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *a.byID[id]
	return &cp, nil
}

func (a *accountRepository) IncrementTripCounters(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	account, ok := a.byID[id]
	if !ok {
		return nil
	}
	account.TripsThisMonth++
	account.TotalTrips++
	return nil
}
