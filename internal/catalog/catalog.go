// Package catalog derives the purchasable pack catalog from the static menu
// tree plus the per-pack item and price tables. Derivation happens once at
// load and is the single source of truth for lookups; inconsistencies
// between the menu and the tables are logged there instead of being patched
// over lazily at lookup time.
package catalog

import (
	"strings"

	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/domain"
	"github.com/vetipro/quoteapi/pkg/errors"
)

// Catalog exposes the derived pack list. Read-only after construction.
type Catalog struct {
	packs  []domain.PackConfig
	byID   map[string]domain.PackConfig
	logger *zap.Logger
}

// New builds the catalog from the built-in menu and tables.
func New(logger *zap.Logger) *Catalog {
	return NewFromData(defaultMenu, defaultItemTable, defaultPriceTable, logger)
}

// NewFromData derives a catalog from explicit menu and table data. Every pack
// entry of the packs menu group resolves eagerly; a pack missing from the
// price table gets its total computed from item prices, a pack missing from
// the item table resolves with an empty item list. Both are soft
// inconsistencies worth a warning, not fatal.
func NewFromData(
	menu []MenuGroup,
	itemTable map[string][]domain.PackItem,
	priceTable map[string]float64,
	logger *zap.Logger,
) *Catalog {
	c := &Catalog{
		byID:   make(map[string]domain.PackConfig),
		logger: logger,
	}

	for _, group := range menu {
		if group.Title != packsMenuTitle {
			continue
		}
		for _, entry := range group.SubItems {
			id := packIDFromPath(entry.Path)

			items, ok := itemTable[id]
			if !ok {
				logger.Warn("Pack present in menu but missing from item table",
					zap.String("pack_id", id))
			}

			total, ok := priceTable[id]
			if !ok {
				total = sumItemPrices(items)
				logger.Warn("Pack present in menu but missing from price table, using item sum",
					zap.String("pack_id", id),
					zap.Float64("computed_total", total))
			}

			pack := domain.PackConfig{
				ID:           id,
				Title:        entry.Title,
				Description:  entry.Description,
				Image:        entry.Image,
				Items:        items,
				TotalPrice:   total,
				Discount:     defaultDiscount,
				Availability: domain.AvailabilityInStock,
			}

			c.packs = append(c.packs, pack)
			c.byID[id] = pack
		}
	}

	logger.Info("Pack catalog derived", zap.Int("packs", len(c.packs)))
	return c
}

// Packs returns the derived pack list in menu order.
func (c *Catalog) Packs() []domain.PackConfig {
	return c.packs
}

// PackByID returns the pack with the given id, or a not-found error. This is
// the only lookup path; there is no lazy reconstruction fallback.
func (c *Catalog) PackByID(id string) (domain.PackConfig, error) {
	pack, ok := c.byID[id]
	if !ok {
		return domain.PackConfig{}, &errors.ErrNotFound{Resource: "pack", ID: id}
	}
	return pack, nil
}

func packIDFromPath(path string) string {
	segments := strings.Split(path, "/")
	return segments[len(segments)-1]
}

func sumItemPrices(items []domain.PackItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price
	}
	return total
}
