package session

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"roombot/internal/app/wire"
	"roombot/internal/pkg/errs"
)

const (
	// protocolRevision is sent as "r" in the login intro.
	protocolRevision = "8"

	// rejectMarker in the connect response means the server refused the bot.
	rejectMarker = "Failed"
)

// login performs the intro and credentials exchanges on a dedicated socket and closes it.
// The server ends the login connection after this exchange.
func (b *Bot) login(ctx context.Context, logger zerolog.Logger) (LoginData, error) {
	conn, err := b.dialer.Dial(ctx)
	if err != nil {
		return LoginData{}, err
	}
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if err := conn.Send("y", map[string]string{
		"r": protocolRevision,
		"v": "0",
		"u": b.creds.RegID,
	}); err != nil {
		return LoginData{}, err
	}

	// the acknowledgement carries nothing we need
	if _, err := conn.Receive(); err != nil {
		return LoginData{}, err
	}

	if err := conn.Send("v", map[string]string{
		"n": b.creds.RegName,
		"p": b.creds.Password,
	}); err != nil {
		return LoginData{}, err
	}

	rec, err := conn.ReceiveRecord()
	if err != nil {
		return LoginData{}, err
	}

	logger.Debug().Str("tag", rec.Tag).Int("attrs", len(rec.Attrs)).Msg("Login data received.")
	return ParseLoginData(rec), nil
}

// queryRoom asks the room for its internal id on the session socket.
func (b *Bot) queryRoom(conn *wire.Conn, logger zerolog.Logger) (RoomData, error) {
	if err := conn.Send("y", map[string]string{
		"r": b.creds.RoomID,
		"m": "1",
		"v": "0",
		"u": b.creds.RegID,
	}); err != nil {
		return RoomData{}, err
	}

	rec, err := conn.ReceiveRecord()
	if err != nil {
		return RoomData{}, err
	}

	logger.Debug().Interface("room_data", rec.Map()).Msg("Room data received.")
	return ParseRoomData(rec), nil
}

// join sends the connect packet and checks the server's answer.
func (b *Bot) join(conn *wire.Conn, packet []wire.Attr, logger zerolog.Logger) error {
	if err := conn.SendOrdered(ConnectTag, packet...); err != nil {
		return err
	}

	resp, err := conn.Receive()
	if err != nil {
		return err
	}

	if strings.Contains(resp, rejectMarker) {
		rejected := errs.NewError(errs.ErrConnectionRejected)
		logger.Error().Err(rejected).Str("response", resp).Msg("Connect packet rejected.")
		return rejected
	}

	return nil
}

// bootstrap consumes the initial burst up to `done`, filling the roster from `u` records.
// Chat history in the burst is skipped. It reports true if the server logged the bot out.
func (b *Bot) bootstrap(sess *Session, logger zerolog.Logger) (bool, error) {
	for {
		raw, err := sess.conn.Receive()
		if err != nil {
			if errs.HasCode(err, errs.ErrMalformedRecord) {
				logger.Warn().Err(err).Msg("Skipping malformed record during bootstrap.")
				continue
			}
			return false, err
		}

		switch wire.TagOf(raw) {
		case "u":
			b.handleJoin(raw, logger)
		case "done":
			logger.Info().Int("roster_size", b.roster.Len()).Msg("Roster bootstrap complete.")
			return false, nil
		case "logout":
			return true, nil
		}
	}
}
