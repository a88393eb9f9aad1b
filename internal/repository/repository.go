package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/vetipro/quoteapi/internal/domain"
)

// QuoteRequestRepository manages archived quote requests.
type QuoteRequestRepository interface {
	Create(ctx context.Context, quote *domain.QuoteRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.QuoteRequest, error)
	List(ctx context.Context, limit, offset int) ([]*domain.QuoteRequest, error)
}

// QuoteDesignRepository manages the design lines of archived quotes.
type QuoteDesignRepository interface {
	CreateBatch(ctx context.Context, designs []*domain.QuoteRequestDesign) error
	GetByQuoteID(ctx context.Context, quoteID uuid.UUID) ([]*domain.QuoteRequestDesign, error)
}

// QuoteEventRepository manages audit events for quotes.
type QuoteEventRepository interface {
	Create(ctx context.Context, event *domain.QuoteEvent) error
}

// APIClientRepository manages admin API consumers.
type APIClientRepository interface {
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.APIClient, error)
	Create(ctx context.Context, client *domain.APIClient) error
}

// Repositories aggregates all repositories.
type Repositories struct {
	QuoteRequest QuoteRequestRepository
	QuoteDesign  QuoteDesignRepository
	QuoteEvent   QuoteEventRepository
	APIClient    APIClientRepository
}
