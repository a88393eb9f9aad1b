package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetipro/quoteapi/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Load("s1")
	assert.False(t, ok)

	draft := &domain.QuoteDraft{Step: domain.StepContact}
	store.Save("s1", draft)

	got, ok := store.Load("s1")
	require.True(t, ok)
	assert.Equal(t, domain.StepContact, got.Step)

	// sessions are isolated
	_, ok = store.Load("s2")
	assert.False(t, ok)

	store.Clear("s1")
	_, ok = store.Load("s1")
	assert.False(t, ok)
}
