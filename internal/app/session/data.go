package session

import (
	"strconv"

	"roombot/internal/app/wire"
)

// Field is an attribute that the server may or may not send.
type Field struct {
	Value string
	Set   bool
}

func field(rec wire.Record, key string) Field {
	v, ok := rec.Get(key)
	return Field{Value: v, Set: ok}
}

// DynamicKeys is the number of numbered continuation keys d0..d15.
const DynamicKeys = 16

// LoginData is what the server returns for the credentials exchange.
type LoginData struct {
	// K1 and K3 are session keys echoed in the connect packet as "k" and "k3".
	K1 Field
	K3 Field

	// ID is the login id (attribute "i"), echoed as "u".
	ID Field

	// D holds the optional continuation keys d0..d15.
	D [DynamicKeys]Field

	// DX and DT are further optional continuation keys.
	DX Field
	DT Field
}

// ParseLoginData extracts LoginData from the credentials response.
// Mandatory keys are checked when the connect packet is built.
func ParseLoginData(rec wire.Record) LoginData {
	ld := LoginData{
		K1: field(rec, "k1"),
		K3: field(rec, "k3"),
		ID: field(rec, "i"),
		DX: field(rec, "dx"),
		DT: field(rec, "dt"),
	}
	for i := range ld.D {
		ld.D[i] = field(rec, "d"+strconv.Itoa(i))
	}
	return ld
}

// RoomData is what the server returns for the room query.
type RoomData struct {
	// ID is the room's internal id (attribute "i").
	ID Field
}

// ParseRoomData extracts RoomData from the room query response.
func ParseRoomData(rec wire.Record) RoomData {
	return RoomData{ID: field(rec, "i")}
}
