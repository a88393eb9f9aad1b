package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/domain"
	"github.com/vetipro/quoteapi/pkg/errors"
)

type quoteRequestRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewQuoteRequestRepository creates a new quote request repository
func NewQuoteRequestRepository(db *sql.DB, logger *zap.Logger) *quoteRequestRepository {
	return &quoteRequestRepository{
		db:     db,
		logger: logger,
	}
}

func (r *quoteRequestRepository) Create(ctx context.Context, quote *domain.QuoteRequest) error {
	query := `
		INSERT INTO quote_requests (
			id, customer_name, email, phone, company,
			product_name, quantity, size, description, deadline, additional_notes,
			design_count, total_quantity, attachment_count, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	if quote.ID == uuid.Nil {
		quote.ID = uuid.New()
	}
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		quote.ID,
		quote.CustomerName,
		quote.Email,
		quote.Phone,
		quote.Company,
		quote.ProductName,
		quote.Quantity,
		quote.Size,
		quote.Description,
		quote.Deadline,
		quote.AdditionalNotes,
		quote.DesignCount,
		quote.TotalQuantity,
		quote.AttachmentCount,
		quote.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create quote request", zap.Error(err))
		return err
	}

	return nil
}

func (r *quoteRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.QuoteRequest, error) {
	query := `
		SELECT id, customer_name, email, phone, company,
		       product_name, quantity, size, description, deadline, additional_notes,
		       design_count, total_quantity, attachment_count, created_at
		FROM quote_requests
		WHERE id = $1
	`

	var quote domain.QuoteRequest
	var company, deadline, notes sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&quote.ID,
		&quote.CustomerName,
		&quote.Email,
		&quote.Phone,
		&company,
		&quote.ProductName,
		&quote.Quantity,
		&quote.Size,
		&quote.Description,
		&deadline,
		&notes,
		&quote.DesignCount,
		&quote.TotalQuantity,
		&quote.AttachmentCount,
		&quote.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "quote request", ID: id.String()}
	}
	if err != nil {
		r.logger.Error("Failed to get quote request by ID", zap.Error(err))
		return nil, err
	}

	if company.Valid {
		quote.Company = &company.String
	}
	if deadline.Valid {
		quote.Deadline = &deadline.String
	}
	if notes.Valid {
		quote.AdditionalNotes = &notes.String
	}

	return &quote, nil
}

func (r *quoteRequestRepository) List(ctx context.Context, limit, offset int) ([]*domain.QuoteRequest, error) {
	query := `
		SELECT id, customer_name, email, phone, company,
		       product_name, quantity, size, description, deadline, additional_notes,
		       design_count, total_quantity, attachment_count, created_at
		FROM quote_requests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("Failed to list quote requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var quotes []*domain.QuoteRequest
	for rows.Next() {
		var quote domain.QuoteRequest
		var company, deadline, notes sql.NullString

		err := rows.Scan(
			&quote.ID,
			&quote.CustomerName,
			&quote.Email,
			&quote.Phone,
			&company,
			&quote.ProductName,
			&quote.Quantity,
			&quote.Size,
			&quote.Description,
			&deadline,
			&notes,
			&quote.DesignCount,
			&quote.TotalQuantity,
			&quote.AttachmentCount,
			&quote.CreatedAt,
		)
		if err != nil {
			continue
		}

		if company.Valid {
			quote.Company = &company.String
		}
		if deadline.Valid {
			quote.Deadline = &deadline.String
		}
		if notes.Valid {
			quote.AdditionalNotes = &notes.String
		}

		quotes = append(quotes, &quote)
	}

	return quotes, rows.Err()
}

type quoteDesignRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewQuoteDesignRepository creates a new quote design repository
func NewQuoteDesignRepository(db *sql.DB, logger *zap.Logger) *quoteDesignRepository {
	return &quoteDesignRepository{
		db:     db,
		logger: logger,
	}
}

func (r *quoteDesignRepository) CreateBatch(ctx context.Context, designs []*domain.QuoteRequestDesign) error {
	if len(designs) == 0 {
		return nil
	}

	query := `
		INSERT INTO quote_request_designs (
			id, quote_request_id, design_number, product_name,
			quantity, selected_size, item_names, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	for _, design := range designs {
		if design.ID == uuid.Nil {
			design.ID = uuid.New()
		}
		if design.CreatedAt.IsZero() {
			design.CreatedAt = now
		}

		_, err := tx.ExecContext(ctx, query,
			design.ID,
			design.QuoteRequestID,
			design.DesignNumber,
			design.ProductName,
			design.Quantity,
			design.SelectedSize,
			pq.Array(design.ItemNames),
			design.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to create quote design", zap.Error(err))
			return err
		}
	}

	return tx.Commit()
}

func (r *quoteDesignRepository) GetByQuoteID(ctx context.Context, quoteID uuid.UUID) ([]*domain.QuoteRequestDesign, error) {
	query := `
		SELECT id, quote_request_id, design_number, product_name,
		       quantity, selected_size, item_names, created_at
		FROM quote_request_designs
		WHERE quote_request_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, quoteID)
	if err != nil {
		r.logger.Error("Failed to get quote designs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var designs []*domain.QuoteRequestDesign
	for rows.Next() {
		var design domain.QuoteRequestDesign
		err := rows.Scan(
			&design.ID,
			&design.QuoteRequestID,
			&design.DesignNumber,
			&design.ProductName,
			&design.Quantity,
			&design.SelectedSize,
			pq.Array(&design.ItemNames),
			&design.CreatedAt,
		)
		if err != nil {
			continue
		}
		designs = append(designs, &design)
	}

	return designs, rows.Err()
}

type quoteEventRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewQuoteEventRepository creates a new quote event repository
func NewQuoteEventRepository(db *sql.DB, logger *zap.Logger) *quoteEventRepository {
	return &quoteEventRepository{
		db:     db,
		logger: logger,
	}
}

func (r *quoteEventRepository) Create(ctx context.Context, event *domain.QuoteEvent) error {
	query := `
		INSERT INTO quote_events (id, quote_request_id, event_type, event_data, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	eventData, err := json.Marshal(event.EventData)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		event.ID,
		event.QuoteRequestID,
		event.EventType,
		eventData,
		event.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create quote event", zap.Error(err))
		return err
	}

	return nil
}
