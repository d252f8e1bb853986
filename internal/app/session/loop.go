package session

import (
	"github.com/rs/zerolog"

	"roombot/internal/app/command"
	"roombot/internal/app/user"
	"roombot/internal/app/wire"
	"roombot/internal/pkg/errs"
)

// listen is the live event loop. Each record is handled completely before the next read.
// It returns nil on logout and the transport error otherwise.
func (b *Bot) listen(sess *Session, logger zerolog.Logger) error {
	for {
		raw, err := sess.conn.Receive()
		if err != nil {
			if errs.HasCode(err, errs.ErrMalformedRecord) {
				logger.Warn().Err(err).Msg("Skipping malformed record.")
				continue
			}
			logger.Error().Err(err).Msg("Session ended by transport failure.")
			return err
		}

		switch wire.TagOf(raw) {
		case "u":
			b.handleJoin(raw, logger)
		case "l":
			b.handleLeave(raw, logger)
		case "m":
			if err := b.handleMessage(sess, raw, logger); err != nil {
				return err
			}
		case "logout":
			logger.Info().Msg("Received logout. Session closed.")
			return nil
		}
	}
}

// handleJoin replaces any entry with the same id, covering re-logins without a logout.
func (b *Bot) handleJoin(raw string, logger zerolog.Logger) {
	rec, err := wire.Decode(raw)
	if err != nil {
		logger.Warn().Err(err).Msg("Ignoring undecodable join record.")
		return
	}

	u, err := user.Parse(rec)
	if err != nil {
		logger.Warn().Err(err).Msg("Ignoring join record without id.")
		return
	}

	b.roster.RemoveByID(u.ID)
	b.roster.Append(u)

	logger.Debug().Str("user_id", u.ID).Str("name", u.Name).Int("roster_size", b.roster.Len()).Msg("User joined.")
	b.publishRoster()
}

// handleLeave removes the departing participant named by the record's "u" attribute.
func (b *Bot) handleLeave(raw string, logger zerolog.Logger) {
	rec, err := wire.Decode(raw)
	if err != nil {
		logger.Warn().Err(err).Msg("Ignoring undecodable leave record.")
		return
	}

	id, ok := rec.Get("u")
	if !ok {
		logger.Warn().Err(errs.NewError(errs.ErrUnexpectedRecord, "l", "u")).Msg("Ignoring leave record.")
		return
	}

	if b.roster.RemoveByID(id) {
		logger.Debug().Str("user_id", id).Int("roster_size", b.roster.Len()).Msg("User left.")
		b.publishRoster()
	}
}

// handleMessage kicks senders of banned phrases and routes commands to the dispatcher.
// Only send failures are returned.
func (b *Bot) handleMessage(sess *Session, raw string, logger zerolog.Logger) error {
	rec, err := wire.Decode(raw)
	if err != nil {
		logger.Warn().Err(err).Msg("Ignoring undecodable message record.")
		return nil
	}

	senderID, hasSender := rec.Get("u")
	text, hasText := rec.Get("t")
	if !hasSender || !hasText {
		logger.Debug().Str("record", raw).Msg("Ignoring message without sender or text.")
		return nil
	}

	if b.dispatcher.IsBanned(text) {
		logger.Info().Str("user_id", senderID).Msg("Kicking user for banned phrase.")
		return sess.Kick(senderID, KickReason)
	}

	if command.IsCommand(text) {
		return b.dispatcher.Dispatch(sess, senderID, text)
	}

	return nil
}
