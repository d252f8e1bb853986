package randx

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntNRange(t *testing.T) {
	t.Parallel()

	var src Source
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		n := src.IntN(6)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 6)
		seen[n] = true
	}
	assert.Len(t, seen, 6)
}

func TestIntNPanicsOnZero(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Source{}.IntN(0) })
}

func TestSessionID(t *testing.T) {
	t.Parallel()

	id := SessionID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, SessionID())
}
