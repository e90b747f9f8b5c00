package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreReturnsSameSessionPerUser(t *testing.T) {
	store := NewStore(testPricing())

	s1 := store.Session("user-a")
	s2 := store.Session("user-a")
	other := store.Session("user-b")

	assert.Same(t, s1, s2)
	assert.NotSame(t, s1, other)
}

func TestSessionsAreIsolated(t *testing.T) {
	store := NewStore(testPricing())

	store.Session("user-a").Do(func(e *Engine) {
		require.NoError(t, e.AddItem(candidate("m1", "10.00", "r1")))
	})

	store.Session("user-b").Do(func(e *Engine) {
		assert.True(t, e.IsEmpty())
	})
}

func TestSingleSubmissionInFlight(t *testing.T) {
	store := NewStore(testPricing())
	session := store.Session("user-a")

	require.NoError(t, session.BeginSubmission())
	assert.ErrorIs(t, session.BeginSubmission(), ErrSubmissionInFlight)

	session.EndSubmission()
	assert.NoError(t, session.BeginSubmission())
	session.EndSubmission()
}
