package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/domain"
	"github.com/vetipro/quoteapi/pkg/errors"
)

func TestDefaultCatalogDerivation(t *testing.T) {
	c := New(zap.NewNop())

	packs := c.Packs()
	require.Len(t, packs, 4)

	// menu order is preserved
	assert.Equal(t, "restaurant", packs[0].ID)
	assert.Equal(t, "cafe", packs[1].ID)
	assert.Equal(t, "hotel", packs[2].ID)
	assert.Equal(t, "medecin", packs[3].ID)

	restaurant, err := c.PackByID("restaurant")
	require.NoError(t, err)
	assert.Equal(t, "Pack Restaurant", restaurant.Title)
	assert.Len(t, restaurant.Items, 4)
	assert.Equal(t, 399.99, restaurant.TotalPrice)
	assert.Equal(t, "15%", restaurant.Discount)
	assert.Equal(t, domain.AvailabilityInStock, restaurant.Availability)

	medecin, err := c.PackByID("medecin")
	require.NoError(t, err)
	assert.Len(t, medecin.Items, 3)
	assert.Equal(t, 349.99, medecin.TotalPrice)
}

func TestPackByIDUnknown(t *testing.T) {
	c := New(zap.NewNop())

	_, err := c.PackByID("boulangerie")
	require.Error(t, err)
	var notFound *errors.ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestMenuOnlyPackResolvesFromItemSum(t *testing.T) {
	menu := []MenuGroup{
		{
			Title: packsMenuTitle,
			SubItems: []MenuEntry{
				{Title: "Pack Boulangerie", Path: "/packs/boulangerie", Description: "d", Image: "/i.jpg"},
			},
		},
	}
	items := map[string][]domain.PackItem{
		"boulangerie": {
			{ID: "tablier-1", Name: "Tablier Boulanger", Price: 59.99},
			{ID: "veste-1", Name: "Veste Blanche", Price: 89.99},
		},
	}
	// price table has no entry for the pack
	c := NewFromData(menu, items, map[string]float64{}, zap.NewNop())

	pack, err := c.PackByID("boulangerie")
	require.NoError(t, err)
	assert.Len(t, pack.Items, 2)
	assert.InDelta(t, 149.98, pack.TotalPrice, 0.001)
}

func TestNonPackMenuGroupsIgnored(t *testing.T) {
	menu := []MenuGroup{
		{
			Title: "Vêtements de cuisine",
			SubItems: []MenuEntry{
				{Title: "Veste de Chef", Path: "/products/veste-cuisine-1"},
			},
		},
	}
	c := NewFromData(menu, nil, nil, zap.NewNop())
	assert.Empty(t, c.Packs())
}
