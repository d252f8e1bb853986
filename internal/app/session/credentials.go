/*
Package session implements the protocol engine that logs the bot in, joins its room and
drives the live event loop.

This file defines the bot's Credentials and the password transform the service expects.
*/
package session

import (
	"hash/crc32"
	"strconv"
)

// Credentials identify the bot account and the room it joins.
// They are passed by value and never modified after NewCredentials.
type Credentials struct {
	// RegName is the registered account name.
	RegName string

	// RegID is the registered numeric account id.
	RegID string

	// Password is the transformed password; the raw password is never kept.
	Password string

	// DisplayName is the name shown in the room.
	DisplayName string

	// Avatar is the avatar id.
	Avatar string

	// RoomID is the numeric id of the target room.
	RoomID string
}

// NewCredentials builds Credentials, transforming the raw password with EncodePassword.
func NewCredentials(regName, regID, rawPassword, displayName, avatar, roomID string) Credentials {
	return Credentials{
		RegName:     regName,
		RegID:       regID,
		Password:    EncodePassword(rawPassword),
		DisplayName: displayName,
		Avatar:      avatar,
		RoomID:      roomID,
	}
}

// EncodePassword returns the CRC-32 (IEEE) of the UTF-8 password, read as a signed
// 32-bit integer and rendered in base 10 with a "$" prefix.
func EncodePassword(raw string) string {
	sum := crc32.ChecksumIEEE([]byte(raw))
	return "$" + strconv.FormatInt(int64(int32(sum)), 10)
}
