// Package inmem provides in-memory repositories used by tests and by local
// runs without a database.
package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vetipro/quoteapi/internal/domain"
	"github.com/vetipro/quoteapi/internal/repository"
	"github.com/vetipro/quoteapi/pkg/errors"
)

// NewRepositories creates an in-memory repository set.
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		QuoteRequest: &quoteRequestRepository{quotes: make(map[uuid.UUID]*domain.QuoteRequest)},
		QuoteDesign:  &quoteDesignRepository{},
		QuoteEvent:   &quoteEventRepository{},
		APIClient:    &apiClientRepository{},
	}
}

type quoteRequestRepository struct {
	mu     sync.RWMutex
	quotes map[uuid.UUID]*domain.QuoteRequest
}

func (r *quoteRequestRepository) Create(_ context.Context, quote *domain.QuoteRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if quote.ID == uuid.Nil {
		quote.ID = uuid.New()
	}
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = time.Now()
	}
	r.quotes[quote.ID] = quote
	return nil
}

func (r *quoteRequestRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	quote, ok := r.quotes[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "quote request", ID: id.String()}
	}
	return quote, nil
}

func (r *quoteRequestRepository) List(_ context.Context, limit, offset int) ([]*domain.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*domain.QuoteRequest, 0, len(r.quotes))
	for _, quote := range r.quotes {
		all = append(all, quote)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

type quoteDesignRepository struct {
	mu      sync.RWMutex
	designs []*domain.QuoteRequestDesign
}

func (r *quoteDesignRepository) CreateBatch(_ context.Context, designs []*domain.QuoteRequestDesign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, design := range designs {
		if design.ID == uuid.Nil {
			design.ID = uuid.New()
		}
		if design.CreatedAt.IsZero() {
			design.CreatedAt = now
		}
		r.designs = append(r.designs, design)
	}
	return nil
}

func (r *quoteDesignRepository) GetByQuoteID(_ context.Context, quoteID uuid.UUID) ([]*domain.QuoteRequestDesign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.QuoteRequestDesign
	for _, design := range r.designs {
		if design.QuoteRequestID == quoteID {
			out = append(out, design)
		}
	}
	return out, nil
}

type quoteEventRepository struct {
	mu     sync.Mutex
	events []*domain.QuoteEvent
}

func (r *quoteEventRepository) Create(_ context.Context, event *domain.QuoteEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	r.events = append(r.events, event)
	return nil
}

type apiClientRepository struct {
	mu      sync.RWMutex
	clients []*domain.APIClient
}

func (r *apiClientRepository) GetByAPIKey(_ context.Context, apiKey string) (*domain.APIClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, client := range r.clients {
		if !client.IsActive {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(client.APIKeyHash), []byte(apiKey)); err == nil {
			return client, nil
		}
	}
	return nil, &errors.ErrUnauthorized{Message: "invalid API key"}
}

func (r *apiClientRepository) Create(_ context.Context, client *domain.APIClient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = now
	}
	if client.UpdatedAt.IsZero() {
		client.UpdatedAt = now
	}
	r.clients = append(r.clients, client)
	return nil
}
