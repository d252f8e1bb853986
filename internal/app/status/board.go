/*
Package status publishes a read-only view of the bot for the status API.

Board receives snapshots from the session event loop through the session.Observer
interface and serves them to HTTP handlers running on other goroutines. The roster
itself never leaves the event loop; only copies are stored here.
*/
package status

import (
	"sync"

	"roombot/internal/app/session"
	"roombot/internal/app/user"
)

// Board holds the latest published session info and roster snapshot.
type Board struct {
	// mu protects info and users.
	mu sync.RWMutex

	info  session.Info
	users []user.User
}

// NewBoard creates a Board for the given room in the idle state.
func NewBoard(roomID string) *Board {
	return &Board{
		info: session.Info{State: session.StateIdle, RoomID: roomID},
	}
}

// SessionChanged implements session.Observer.
func (b *Board) SessionChanged(info session.Info) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.info = info
}

// RosterChanged implements session.Observer.
func (b *Board) RosterChanged(users []user.User) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users = users
}

// Info returns the latest session info.
func (b *Board) Info() session.Info {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.info
}

// Users returns a copy of the latest roster snapshot.
func (b *Board) Users() []user.User {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]user.User{}, b.users...)
}

// User looks up one participant in the latest roster snapshot.
func (b *Board) User(id string) (user.User, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, u := range b.users {
		if u.ID == id {
			return u, true
		}
	}
	return user.User{}, false
}

var _ session.Observer = (*Board)(nil)
