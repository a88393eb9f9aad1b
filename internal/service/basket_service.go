package service

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/domain"
	"github.com/vetipro/quoteapi/pkg/errors"
)

// defaultPackName is used when an assembled pack is not given a name.
const defaultPackName = "Pack Personnalisé"

type basketService struct {
	mu      sync.RWMutex
	baskets map[string]*domain.Basket
	logger  *zap.Logger
}

// NewBasketService creates a new basket service.
func NewBasketService(logger *zap.Logger) *basketService {
	return &basketService{
		baskets: make(map[string]*domain.Basket),
		logger:  logger,
	}
}

func (s *basketService) get(sessionID string) *domain.Basket {
	if basket, ok := s.baskets[sessionID]; ok {
		return basket
	}
	basket := &domain.Basket{}
	s.baskets[sessionID] = basket
	return basket
}

// snapshot copies the basket so callers read it outside the lock.
func snapshot(basket *domain.Basket) *domain.Basket {
	return &domain.Basket{
		Items: append([]domain.Product(nil), basket.Items...),
		Note:  basket.Note,
	}
}

// Drop parses the serialized drag payload and appends the item. A malformed
// payload adds nothing and surfaces a validation error.
func (s *basketService) Drop(sessionID string, payload []byte) (*domain.Basket, error) {
	var product domain.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		s.logger.Warn("Malformed drop payload", zap.Error(err))
		return nil, &errors.ErrValidation{Message: "malformed drop payload"}
	}
	if product.ID == "" && product.Name == "" {
		return nil, &errors.ErrValidation{Message: "drop payload is not an item reference"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	basket := s.get(sessionID)
	basket.Items = append(basket.Items, product)

	s.logger.Debug("Item dropped into basket",
		zap.String("item_id", product.ID),
		zap.Int("basket_size", len(basket.Items)),
	)

	return snapshot(basket), nil
}

// Basket returns a copy of the current basket contents for the session.
func (s *basketService) Basket(sessionID string) *domain.Basket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if basket, ok := s.baskets[sessionID]; ok {
		return snapshot(basket)
	}
	return &domain.Basket{}
}

// SetNote stores the free-text personalization note.
func (s *basketService) SetNote(sessionID, note string) *domain.Basket {
	s.mu.Lock()
	defer s.mu.Unlock()
	basket := s.get(sessionID)
	basket.Note = note
	return snapshot(basket)
}

// Clear empties the session's basket.
func (s *basketService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.baskets, sessionID)
}

// Assemble turns the basket into a pack design ready for the quote entry
// handoff, then empties the basket.
func (s *basketService) Assemble(sessionID string, input AssembleInput) (*domain.Design, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	basket, ok := s.baskets[sessionID]
	if !ok || len(basket.Items) == 0 {
		return nil, &errors.ErrValidation{Message: "basket is empty"}
	}

	name := input.ProductName
	if name == "" {
		name = defaultPackName
	}

	items := make([]domain.DesignItem, len(basket.Items))
	for i, item := range basket.Items {
		items[i] = domain.DesignItem{Name: item.Name}
	}

	design := &domain.Design{
		DesignNumber: domain.PackDesignPrefix + strings.ToUpper(uuid.NewString()[:8]),
		ProductName:  name,
		Quantity:     input.Quantity,
		SelectedSize: input.SelectedSize,
		Items:        items,
	}

	delete(s.baskets, sessionID)

	s.logger.Info("Pack assembled from basket",
		zap.String("design_number", design.DesignNumber),
		zap.Int("items", len(items)),
	)

	return design, nil
}
