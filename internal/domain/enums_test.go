package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteStepCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    QuoteStep
		to      QuoteStep
		allowed bool
	}{
		{StepContact, StepProduct, true},
		{StepContact, StepReview, false},
		{StepContact, StepContact, false},
		{StepProduct, StepReview, true},
		{StepProduct, StepContact, true},
		{StepProduct, StepSubmitting, false},
		{StepReview, StepSubmitting, true},
		{StepReview, StepProduct, true},
		{StepReview, StepSuccess, false},
		{StepSubmitting, StepSuccess, true},
		{StepSubmitting, StepReview, true},
		{StepSubmitting, StepContact, false},
		{StepSuccess, StepContact, false},
		{StepSuccess, StepReview, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestQuoteStepPrev(t *testing.T) {
	assert.Equal(t, StepContact, StepProduct.Prev())
	assert.Equal(t, StepProduct, StepReview.Prev())
	// no backward transition out of the first or terminal steps
	assert.Equal(t, StepContact, StepContact.Prev())
	assert.Equal(t, StepSuccess, StepSuccess.Prev())
}

func TestQuoteStepIsValid(t *testing.T) {
	assert.True(t, StepContact.IsValid())
	assert.True(t, StepSubmitting.IsValid())
	assert.False(t, QuoteStep("STEP-4").IsValid())
}

func TestAvailabilityIsValid(t *testing.T) {
	assert.True(t, AvailabilityInStock.IsValid())
	assert.True(t, AvailabilityLimited.IsValid())
	assert.False(t, Availability("backorder").IsValid())
}

func TestDesignIsPack(t *testing.T) {
	assert.True(t, Design{DesignNumber: "PACK-1A2B"}.IsPack())
	assert.False(t, Design{DesignNumber: "DSG-1A2B"}.IsPack())
}

func TestDesignPackDescription(t *testing.T) {
	d := Design{
		DesignNumber: "PACK-1A2B",
		ProductName:  "Restaurant",
		Items: []DesignItem{
			{Name: "Veste de Chef"},
			{Name: "Tablier Professionnel"},
		},
	}
	assert.Equal(t, "Pack Restaurant comprenant: Veste de Chef, Tablier Professionnel", d.PackDescription())
}

func TestQuoteDraftTotalsAndGating(t *testing.T) {
	draft := &QuoteDraft{}
	assert.Equal(t, 0, draft.TotalQuantity())
	assert.False(t, draft.SubmitEnabled())

	draft.Designs = append(draft.Designs, Design{DesignNumber: "A", Quantity: 2})
	draft.Designs = append(draft.Designs, Design{DesignNumber: "B", Quantity: 3})
	assert.Equal(t, 5, draft.TotalQuantity())
	assert.True(t, draft.SubmitEnabled())
	assert.True(t, draft.HasDesign("A"))
	assert.False(t, draft.HasDesign("C"))
}
