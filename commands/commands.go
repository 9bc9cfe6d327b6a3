package commands

import (
	"strconv"
	"strings"

	"relay-desk/errors"
)

type Kind int

const (
	Start Kind = iota
	Help
	Users
	Stats
	Reply
	Broadcast
	Block
	Unblock
)

// Command is a parsed operator (or client /start, /help) intent.
type Command struct {
	Kind     Kind
	TargetID int64
	Text     string
}

// UsageError carries the guidance text sent back to the operator when a
// command is malformed. No state changes on a usage error.
type UsageError struct {
	Guidance string
}

func (e *UsageError) Error() string { return e.Guidance }

func (e *UsageError) Unwrap() error { return errors.ErrInvalidCommand }

func IsCommand(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "/")
}

// Parse recognizes the relay command surface. Unknown commands yield
// ErrInvalidCommand without guidance; malformed arguments yield a UsageError.
func Parse(text string) (Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return Command{}, errors.ErrInvalidCommand
	}
	name := strings.TrimPrefix(fields[0], "/")
	args := fields[1:]

	switch name {
	case "start":
		return Command{Kind: Start}, nil
	case "help":
		return Command{Kind: Help}, nil
	case "users":
		return Command{Kind: Users}, nil
	case "stats":
		return Command{Kind: Stats}, nil
	case "reply":
		if len(args) < 2 {
			return Command{}, &UsageError{Guidance: "Usage: /reply <user_id> <message>"}
		}
		id, err := parseUserID(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: Reply, TargetID: id, Text: strings.Join(args[1:], " ")}, nil
	case "broadcast":
		if len(args) < 1 {
			return Command{}, &UsageError{Guidance: "Usage: /broadcast <message>"}
		}
		return Command{Kind: Broadcast, Text: strings.Join(args, " ")}, nil
	case "block":
		if len(args) != 1 {
			return Command{}, &UsageError{Guidance: "Usage: /block <user_id>"}
		}
		id, err := parseUserID(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: Block, TargetID: id}, nil
	case "unblock":
		if len(args) != 1 {
			return Command{}, &UsageError{Guidance: "Usage: /unblock <user_id>"}
		}
		id, err := parseUserID(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: Unblock, TargetID: id}, nil
	default:
		return Command{}, errors.ErrInvalidCommand
	}
}

func parseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &UsageError{Guidance: "Invalid user ID. Please provide a valid number."}
	}
	return id, nil
}
