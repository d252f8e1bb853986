package session

import (
	"roombot/internal/app/wire"
)

// KickReason is sent when a message contains a banned phrase.
const KickReason = "Offensive language"

// Session is a joined, authenticated connection. It implements command.Responder.
type Session struct {
	// ID correlates the log lines of this connect attempt.
	ID string

	conn  *wire.Conn
	creds Credentials
}

// Say broadcasts text to the room.
func (s *Session) Say(text string) error {
	return s.conn.Send("m", map[string]string{
		"t": text,
		"u": s.creds.RegID,
	})
}

// PM sends a private message to userID.
func (s *Session) PM(userID, text string) error {
	return s.conn.SendOrdered("p",
		wire.Attr{Key: "u", Value: userID},
		wire.Attr{Key: "t", Value: text},
	)
}

// PC sends text to userID in a private chat window.
func (s *Session) PC(userID, text string) error {
	return s.conn.SendOrdered("p",
		wire.Attr{Key: "u", Value: userID},
		wire.Attr{Key: "t", Value: text},
		wire.Attr{Key: "s", Value: "2"},
		wire.Attr{Key: "d", Value: s.creds.RegID},
	)
}

// Kick removes userID from the room with the given reason.
func (s *Session) Kick(userID, reason string) error {
	return s.conn.SendOrdered("c",
		wire.Attr{Key: "p", Value: reason},
		wire.Attr{Key: "u", Value: userID},
		wire.Attr{Key: "t", Value: "/k"},
	)
}
