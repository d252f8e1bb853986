package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roombot/internal/app/user"
)

func TestAppendAndLookup(t *testing.T) {
	t.Parallel()

	s := NewStore()
	assert.True(t, s.Append(user.User{ID: "1", Name: "alice"}))
	assert.True(t, s.Append(user.User{ID: "2", Name: "bob"}))

	u, ok := s.LookupByID("2")
	assert.True(t, ok)
	assert.Equal(t, "bob", u.Name)

	_, ok = s.LookupByID("3")
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestAppendRejectsDuplicateID(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Append(user.User{ID: "1", Name: "first"})

	assert.False(t, s.Append(user.User{ID: "1", Name: "second"}))
	u, _ := s.LookupByID("1")
	assert.Equal(t, "first", u.Name)
	assert.Equal(t, 1, s.Len())
}

func TestRemoveThenAppendUpdates(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Append(user.User{ID: "1", Name: "alice"})
	s.Append(user.User{ID: "2", Name: "bob"})

	assert.True(t, s.RemoveByID("1"))
	assert.True(t, s.Append(user.User{ID: "1", Name: "alice (mod)"}))

	users := s.Users()
	assert.Len(t, users, 2)
	assert.Equal(t, "2", users[0].ID)
	assert.Equal(t, "alice (mod)", users[1].Name)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Append(user.User{ID: "1"})

	assert.False(t, s.RemoveByID("9"))
	assert.Equal(t, 1, s.Len())
}

func TestUsersReturnsCopy(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Append(user.User{ID: "1", Name: "alice"})

	users := s.Users()
	users[0].Name = "mutated"

	u, _ := s.LookupByID("1")
	assert.Equal(t, "alice", u.Name)
}
