package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vetipro/quoteapi/internal/domain"
	"github.com/vetipro/quoteapi/pkg/errors"
)

type apiClientRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAPIClientRepository creates a new API client repository
func NewAPIClientRepository(db *sql.DB, logger *zap.Logger) *apiClientRepository {
	return &apiClientRepository{
		db:     db,
		logger: logger,
	}
}

func (r *apiClientRepository) GetByAPIKey(ctx context.Context, apiKey string) (*domain.APIClient, error) {
	// bcrypt hashes are salted, so there is no direct lookup; iterate active
	// clients and verify the key against each hash. For production, consider
	// adding a lookup_hash column (SHA256) for efficient lookup.

	query := `
		SELECT id, name, api_key_hash, is_active, created_at, updated_at
		FROM api_clients
		WHERE is_active = true
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query API clients", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var client domain.APIClient

		err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.APIKeyHash,
			&client.IsActive,
			&client.CreatedAt,
			&client.UpdatedAt,
		)
		if err != nil {
			continue
		}

		if err := bcrypt.CompareHashAndPassword([]byte(client.APIKeyHash), []byte(apiKey)); err == nil {
			return &client, nil
		}
	}

	return nil, &errors.ErrUnauthorized{Message: "invalid API key"}
}

func (r *apiClientRepository) Create(ctx context.Context, client *domain.APIClient) error {
	query := `
		INSERT INTO api_clients (id, name, api_key_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

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

	_, err := r.db.ExecContext(ctx, query,
		client.ID,
		client.Name,
		client.APIKeyHash,
		client.IsActive,
		client.CreatedAt,
		client.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create API client", zap.Error(err))
		return err
	}

	return nil
}
