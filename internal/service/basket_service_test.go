package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/domain"
	"github.com/vetipro/quoteapi/pkg/errors"
)

func TestBasketDropAppendsItem(t *testing.T) {
	svc := NewBasketService(zap.NewNop())

	payload := []byte(`{"id":"veste-cuisine-1","name":"Veste de Chef","price":129.99}`)
	basket, err := svc.Drop("s1", payload)
	require.NoError(t, err)
	require.Len(t, basket.Items, 1)
	assert.Equal(t, "Veste de Chef", basket.Items[0].Name)

	// duplicates are allowed in the basket, unlike the quote draft
	basket, err = svc.Drop("s1", payload)
	require.NoError(t, err)
	assert.Len(t, basket.Items, 2)
	assert.InDelta(t, 259.98, basket.TotalPrice(), 0.001)
}

func TestBasketDropMalformedPayloadIsNoOp(t *testing.T) {
	svc := NewBasketService(zap.NewNop())

	_, err := svc.Drop("s1", []byte(`{"id":"veste-`))
	var validationErr *errors.ErrValidation
	require.ErrorAs(t, err, &validationErr)

	// a parseable payload that references nothing is rejected too
	_, err = svc.Drop("s1", []byte(`{}`))
	require.ErrorAs(t, err, &validationErr)

	assert.Empty(t, svc.Basket("s1").Items)
}

func TestBasketNoteAndClear(t *testing.T) {
	svc := NewBasketService(zap.NewNop())

	svc.Drop("s1", []byte(`{"id":"a","name":"Tablier","price":79.99}`))
	basket := svc.SetNote("s1", "Logo sur la poche")
	assert.Equal(t, "Logo sur la poche", basket.Note)

	svc.Clear("s1")
	basket = svc.Basket("s1")
	assert.Empty(t, basket.Items)
	assert.Empty(t, basket.Note)
}

func TestBasketSessionsAreIsolated(t *testing.T) {
	svc := NewBasketService(zap.NewNop())

	svc.Drop("s1", []byte(`{"id":"a","name":"Tablier","price":79.99}`))
	assert.Empty(t, svc.Basket("s2").Items)
}

func TestBasketReturnsCopy(t *testing.T) {
	svc := NewBasketService(zap.NewNop())

	svc.Drop("s1", []byte(`{"id":"a","name":"Veste de Chef","price":129.99}`))

	basket := svc.Basket("s1")
	basket.Items[0].Name = "mutated"
	basket.Items = append(basket.Items, domain.Product{ID: "x", Name: "Injected"})
	basket.Note = "mutated"

	fresh := svc.Basket("s1")
	require.Len(t, fresh.Items, 1)
	assert.Equal(t, "Veste de Chef", fresh.Items[0].Name)
	assert.Empty(t, fresh.Note)
}

func TestAssembleBuildsPackDesign(t *testing.T) {
	svc := NewBasketService(zap.NewNop())

	svc.Drop("s1", []byte(`{"id":"a","name":"Veste de Chef","price":129.99}`))
	svc.Drop("s1", []byte(`{"id":"b","name":"Tablier Professionnel","price":79.99}`))

	design, err := svc.Assemble("s1", AssembleInput{Quantity: 4, SelectedSize: "M"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(design.DesignNumber, domain.PackDesignPrefix))
	assert.Equal(t, "Pack Personnalisé", design.ProductName)
	assert.Equal(t, 4, design.Quantity)
	assert.Equal(t, "M", design.SelectedSize)
	require.Len(t, design.Items, 2)
	assert.Equal(t, "Veste de Chef", design.Items[0].Name)

	// the handoff consumes the basket
	assert.Empty(t, svc.Basket("s1").Items)
}

func TestAssembleEmptyBasket(t *testing.T) {
	svc := NewBasketService(zap.NewNop())

	_, err := svc.Assemble("s1", AssembleInput{Quantity: 1, SelectedSize: "M"})
	var validationErr *errors.ErrValidation
	require.ErrorAs(t, err, &validationErr)
}

func TestAssembleUsesGivenName(t *testing.T) {
	svc := NewBasketService(zap.NewNop())

	svc.Drop("s1", []byte(`{"id":"a","name":"Blouse Médicale","price":149.99}`))
	design, err := svc.Assemble("s1", AssembleInput{ProductName: "Clinique", Quantity: 2, SelectedSize: "S"})
	require.NoError(t, err)
	assert.Equal(t, "Clinique", design.ProductName)
}
