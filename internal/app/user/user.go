/*
Package user contains the representation of a chat participant as announced by the server.

A participant arrives as a `u` record. Parse validates the record at the boundary and turns
it into a typed User; attributes without a named field are kept in Extra so nothing the
server sent is lost.
*/
package user

import (
	"roombot/internal/app/wire"
	"roombot/internal/pkg/errs"
)

// User represents one chat participant present in the room.
// Fields use JSON tags for the status API.
type User struct {
	// ID is the unique participant id (attribute "u").
	ID string `json:"id"`

	// Name is the display name (attribute "n").
	Name string `json:"name,omitempty"`

	// RegName is the registered account name (attribute "N"), empty for guests.
	RegName string `json:"regName,omitempty"`

	// Avatar is the avatar id or URL (attribute "a").
	Avatar string `json:"avatar,omitempty"`

	// Home is the participant's home page (attribute "h").
	Home string `json:"home,omitempty"`

	// Flags carries the rank and status bits (attribute "f").
	Flags string `json:"flags,omitempty"`

	// Extra holds every other attribute in received order.
	Extra []wire.Attr `json:"-"`
}

// Parse converts a `u` record into a User. The record must carry the "u" attribute.
func Parse(rec wire.Record) (User, error) {
	var u User
	hasID := false

	for _, a := range rec.Attrs {
		switch a.Key {
		case "u":
			u.ID = a.Value
			hasID = true
		case "n":
			u.Name = a.Value
		case "N":
			u.RegName = a.Value
		case "a":
			u.Avatar = a.Value
		case "h":
			u.Home = a.Value
		case "f":
			u.Flags = a.Value
		default:
			u.Extra = append(u.Extra, a)
		}
	}

	if !hasID || u.ID == "" {
		return User{}, errs.NewError(errs.ErrUnexpectedRecord, rec.Tag, "u")
	}

	return u, nil
}
