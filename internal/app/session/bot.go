package session

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"roombot/internal/app/command"
	"roombot/internal/app/roster"
	"roombot/internal/app/user"
	"roombot/internal/app/wire"
	"roombot/internal/pkg/logx"
	"roombot/internal/pkg/randx"
)

// State is the lifecycle stage of a connect attempt.
type State string

const (
	StateIdle          State = "idle"
	StateHandshaking   State = "handshaking"
	StateBootstrapping State = "bootstrapping"
	StateJoined        State = "joined"
	StateClosed        State = "closed"
)

// Info describes the current connect attempt.
type Info struct {
	State     State  `json:"state"`
	SessionID string `json:"sessionId,omitempty"`
	RoomID    string `json:"roomId"`
}

// Observer is notified from the event loop after session and roster changes.
// Implementations must not block.
type Observer interface {
	SessionChanged(info Info)
	RosterChanged(users []user.User)
}

// Dialer opens a fresh connection to the chat service.
type Dialer interface {
	Dial(ctx context.Context) (*wire.Conn, error)
}

// Options carries the collaborators of a Bot.
type Options struct {
	// Dialer opens the login and session sockets.
	Dialer Dialer

	// Dispatcher answers chat commands and detects banned phrases.
	Dispatcher *command.Dispatcher

	// Observer is optional.
	Observer Observer

	// Now stamps the connect packet; time.Now when nil.
	Now func() time.Time
}

// Bot drives the handshake and the event loop for one set of Credentials.
// Connect must not be called concurrently.
type Bot struct {
	creds      Credentials
	dialer     Dialer
	dispatcher *command.Dispatcher
	observer   Observer
	now        func() time.Time

	// roster is rebuilt for every connect attempt and touched only by the event loop.
	roster *roster.Store

	info   Info
	logger zerolog.Logger
}

// NewBot constructs a Bot.
func NewBot(creds Credentials, opts Options) *Bot {
	b := &Bot{
		creds:      creds,
		dialer:     opts.Dialer,
		dispatcher: opts.Dispatcher,
		observer:   opts.Observer,
		now:        opts.Now,
		roster:     roster.NewStore(),
		info:       Info{State: StateIdle, RoomID: creds.RoomID},
		logger: logx.Component("session").With().
			Str("room_id", creds.RoomID).
			Str("reg_id", creds.RegID).
			Logger(),
	}

	if b.dispatcher == nil {
		b.dispatcher = command.NewDispatcher(command.Config{
			BannedPhrases: command.DefaultBannedPhrases,
			BallResponses: command.DefaultBallResponses,
		})
	}
	if b.now == nil {
		b.now = time.Now
	}

	return b
}

// Roster exposes the roster of the current or last connect attempt.
// It must only be read when Connect is not running.
func (b *Bot) Roster() *roster.Store {
	return b.roster
}

// Connect runs the handshake and then the event loop until the server sends logout (nil
// error) or the attempt fails. Failures carry an errs code: ErrTransport,
// ErrMissingCredentialField, ErrConnectionRejected or ErrMalformedRecord. Cancelling ctx
// closes the open socket. Connect never retries.
func (b *Bot) Connect(ctx context.Context) error {
	sessionID := randx.SessionID()
	logger := b.logger.With().Str("session_id", sessionID).Logger()

	b.roster = roster.NewStore()
	b.publishRoster()
	b.setState(StateHandshaking, sessionID)
	defer b.setState(StateClosed, sessionID)

	logger.Info().Msg("Starting handshake.")

	login, err := b.login(ctx, logger)
	if err != nil {
		return contextErr(ctx, err)
	}

	conn, err := b.dialer.Dial(ctx)
	if err != nil {
		return contextErr(ctx, err)
	}
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	room, err := b.queryRoom(conn, logger)
	if err != nil {
		return contextErr(ctx, err)
	}

	packet, err := BuildConnectPacket(b.creds, login, room, b.now())
	if err != nil {
		logger.Error().Err(err).Msg("Connect packet could not be assembled.")
		return err
	}

	if err := b.join(conn, packet, logger); err != nil {
		return contextErr(ctx, err)
	}

	sess := &Session{ID: sessionID, conn: conn, creds: b.creds}
	logger.Info().Msg("Successfully connected to the chat.")

	b.setState(StateBootstrapping, sessionID)
	loggedOut, err := b.bootstrap(sess, logger)
	if err != nil {
		return contextErr(ctx, err)
	}
	if loggedOut {
		logger.Info().Msg("Logged out during roster bootstrap.")
		return nil
	}

	b.setState(StateJoined, sessionID)
	return contextErr(ctx, b.listen(sess, logger))
}

// contextErr prefers the cancellation cause over the transport error it provoked.
func contextErr(ctx context.Context, err error) error {
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (b *Bot) setState(state State, sessionID string) {
	b.info = Info{State: state, SessionID: sessionID, RoomID: b.creds.RoomID}
	if b.observer != nil {
		b.observer.SessionChanged(b.info)
	}
}

func (b *Bot) publishRoster() {
	if b.observer != nil {
		b.observer.RosterChanged(b.roster.Users())
	}
}
