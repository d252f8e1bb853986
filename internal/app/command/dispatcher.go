/*
Package command implements the chat commands the bot answers to.

Dispatcher is stateless apart from its configuration: it inspects the text of a chat message
and answers through a Responder with a broadcast, a private reply, or nothing at all.
Syntax errors are answered with a private usage message and never surface to the caller.
*/
package command

import (
	"fmt"
	"hash/crc32"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"roombot/internal/pkg/errs"
	"roombot/internal/pkg/logx"
	"roombot/internal/pkg/randx"
)

const (
	// Prefix marks a chat message as a command.
	Prefix = "!"

	// MaxDice and MaxFaces bound the !roll command.
	MaxDice  = 10
	MaxFaces = 100

	rollUsage   = "!roll [1-10]D[1-100]"
	drloveUsage = "!drlove NAME1 NAME2"
)

// DefaultBannedPhrases is used when no banned phrases are configured.
var DefaultBannedPhrases = []string{"smeckledorfed"}

// DefaultBallResponses are the canned !8ball answers.
var DefaultBallResponses = []string{
	"It will happen!",
	"The odds are in your favor.",
	"You might get lucky!",
	"Maybe on a blue moon.",
	"The odds are stacked against you.",
	"Not today I'm afraid.",
}

var rollPattern = regexp.MustCompile(`^!roll (\d+)[dD](\d+)\s*$`)

// Responder sends the dispatcher's answers into the room.
type Responder interface {
	// Say broadcasts text to the room.
	Say(text string) error

	// PM sends a private message to a participant.
	PM(userID, text string) error

	// PC opens a private chat with a participant.
	PC(userID, text string) error
}

// Rand draws uniform integers in [0, n).
type Rand interface {
	IntN(n int) int
}

// Config holds the dispatcher's fixed data.
type Config struct {
	// BannedPhrases trigger a kick when contained in a message.
	BannedPhrases []string

	// BallResponses are the answers !8ball chooses from.
	BallResponses []string

	// Rand is the random source; randx.Source is used when nil.
	Rand Rand
}

// Dispatcher parses chat commands.
type Dispatcher struct {
	banned    []string
	responses []string
	rand      Rand
	logger    zerolog.Logger
}

// NewDispatcher builds a Dispatcher from cfg. The slices are copied.
func NewDispatcher(cfg Config) *Dispatcher {
	d := &Dispatcher{
		banned:    append([]string(nil), cfg.BannedPhrases...),
		responses: append([]string(nil), cfg.BallResponses...),
		rand:      cfg.Rand,
		logger:    logx.Component("command"),
	}

	if d.rand == nil {
		d.rand = randx.Source{}
	}

	return d
}

// IsBanned reports whether text contains any banned phrase.
func (d *Dispatcher) IsBanned(text string) bool {
	for _, phrase := range d.banned {
		if phrase != "" && strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

// IsCommand reports whether text should be handed to Dispatch.
func IsCommand(text string) bool {
	return strings.HasPrefix(text, Prefix)
}

// Dispatch handles one command from senderID. Unknown commands are ignored.
// The returned error comes only from the Responder.
func (d *Dispatcher) Dispatch(r Responder, senderID, text string) error {
	switch {
	case strings.HasPrefix(text, "!roll"):
		return d.roll(r, senderID, text)
	case strings.HasPrefix(text, "!8ball "):
		return d.eightBall(r)
	case strings.HasPrefix(text, "!drlove"):
		return d.drLove(r, senderID, text)
	default:
		d.logger.Debug().Str("user_id", senderID).Str("text", text).Msg("Ignoring unknown command")
		return nil
	}
}

func (d *Dispatcher) roll(r Responder, senderID, text string) error {
	match := rollPattern.FindStringSubmatch(text)
	if match == nil {
		return r.PM(senderID, d.usage(senderID, rollUsage))
	}

	dice, errDice := strconv.Atoi(match[1])
	faces, errFaces := strconv.Atoi(match[2])
	if errDice != nil || errFaces != nil || dice < 1 || dice > MaxDice || faces < 1 || faces > MaxFaces {
		return r.PC(senderID, d.usage(senderID, rollUsage))
	}

	results := make([]string, dice)
	for i := range results {
		results[i] = strconv.Itoa(d.rand.IntN(faces) + 1)
	}

	return r.Say(strings.Join(results, " "))
}

func (d *Dispatcher) eightBall(r Responder) error {
	if len(d.responses) == 0 {
		d.logger.Warn().Msg("No 8ball responses configured")
		return nil
	}

	return r.Say("8ball: " + d.responses[d.rand.IntN(len(d.responses))])
}

func (d *Dispatcher) drLove(r Responder, senderID, text string) error {
	names := strings.Fields(text)
	if len(names) != 3 {
		return r.PM(senderID, d.usage(senderID, drloveUsage))
	}

	return r.Say(fmt.Sprintf(
		"Dr. Love thinks there is a %d%% love connection between %s and %s.",
		LovePercent(names[1], names[2]), names[1], names[2],
	))
}

// usage builds the CommandSyntaxError reply for a failed command.
func (d *Dispatcher) usage(senderID, usage string) string {
	syntaxErr := errs.NewError(errs.ErrCommandSyntax, usage)
	d.logger.Debug().Err(syntaxErr).Str("user_id", senderID).Msg("Rejected command")
	return syntaxErr.Message
}

// LovePercent is the CRC-32 of first+second reduced to [1, 100].
// Order matters: the names are concatenated, not combined symmetrically.
func LovePercent(first, second string) int {
	return int(crc32.ChecksumIEEE([]byte(first+second))%100) + 1
}
