/*
Package roster keeps the set of participants currently present in the room.

Store is an ordered container keyed by participant id. Insertion order is kept for display
only. An id appears at most once; updating a participant means RemoveByID then Append.
Store is owned by the session event loop and is not safe for concurrent use.
*/
package roster

import (
	"container/list"

	"roombot/internal/app/user"
)

// Store is the id-keyed, insertion-ordered roster.
type Store struct {
	// order holds user.User values in insertion order.
	order *list.List

	// index maps a participant id to its element in order.
	index map[string]*list.Element
}

// NewStore returns an empty roster.
func NewStore() *Store {
	return &Store{
		order: list.New(),
		index: make(map[string]*list.Element),
	}
}

// Append adds u at the end of the roster. It reports false and leaves the roster unchanged
// when a participant with the same id is already present.
func (s *Store) Append(u user.User) bool {
	if _, exists := s.index[u.ID]; exists {
		return false
	}
	s.index[u.ID] = s.order.PushBack(u)
	return true
}

// RemoveByID removes the participant with the given id. It reports whether one was present.
func (s *Store) RemoveByID(id string) bool {
	el, ok := s.index[id]
	if !ok {
		return false
	}
	s.order.Remove(el)
	delete(s.index, id)
	return true
}

// LookupByID returns the participant with the given id.
func (s *Store) LookupByID(id string) (user.User, bool) {
	el, ok := s.index[id]
	if !ok {
		return user.User{}, false
	}
	return el.Value.(user.User), true
}

// Len returns the number of participants.
func (s *Store) Len() int {
	return len(s.index)
}

// Users returns a copy of the roster in insertion order.
func (s *Store) Users() []user.User {
	users := make([]user.User, 0, s.order.Len())
	for el := s.order.Front(); el != nil; el = el.Next() {
		users = append(users, el.Value.(user.User))
	}
	return users
}
