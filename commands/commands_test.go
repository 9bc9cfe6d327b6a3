package commands

import (
	"strings"
	"testing"
	"time"

	"relay-desk/domain/relay"
	"relay-desk/errors"

	"github.com/stretchr/testify/require"
)

func Test_Parse_Recognizes_The_Command_Surface(t *testing.T) {
	req := require.New(t)

	cmd, err := Parse("/reply 42 your issue is fixed")
	req.NoError(err)
	req.Equal(Reply, cmd.Kind)
	req.Equal(int64(42), cmd.TargetID)
	req.Equal("your issue is fixed", cmd.Text)

	cmd, err = Parse("/broadcast maintenance at noon")
	req.NoError(err)
	req.Equal(Broadcast, cmd.Kind)
	req.Equal("maintenance at noon", cmd.Text)

	cmd, err = Parse("/block 42")
	req.NoError(err)
	req.Equal(Block, cmd.Kind)
	req.Equal(int64(42), cmd.TargetID)

	cmd, err = Parse("/unblock 42")
	req.NoError(err)
	req.Equal(Unblock, cmd.Kind)

	for text, kind := range map[string]Kind{"/start": Start, "/help": Help, "/users": Users, "/stats": Stats} {
		cmd, err = Parse(text)
		req.NoError(err)
		req.Equal(kind, cmd.Kind)
	}
}

func Test_Parse_Rejects_Malformed_Arguments(t *testing.T) {
	req := require.New(t)

	for text, guidance := range map[string]string{
		"/reply":           "Usage: /reply <user_id> <message>",
		"/reply 42":        "Usage: /reply <user_id> <message>",
		"/reply abc hello": "Invalid user ID. Please provide a valid number.",
		"/broadcast":       "Usage: /broadcast <message>",
		"/block":           "Usage: /block <user_id>",
		"/block 1 2":       "Usage: /block <user_id>",
		"/block abc":       "Invalid user ID. Please provide a valid number.",
		"/unblock":         "Usage: /unblock <user_id>",
	} {
		_, err := Parse(text)
		req.ErrorIs(err, errors.ErrInvalidCommand, text)
		var usage *UsageError
		req.ErrorAs(err, &usage, text)
		req.Equal(guidance, usage.Guidance, text)
	}
}

func Test_Parse_Unknown_Command(t *testing.T) {
	req := require.New(t)

	_, err := Parse("/selfdestruct")
	req.ErrorIs(err, errors.ErrInvalidCommand)
	var usage *UsageError
	req.False(strings.HasPrefix(err.Error(), "Usage"))
	req.NotErrorAs(err, &usage)
}

func Test_IsCommand(t *testing.T) {
	req := require.New(t)
	req.True(IsCommand("/users"))
	req.True(IsCommand("  /stats"))
	req.False(IsCommand("hello /users"))
	req.False(IsCommand(""))
}

func Test_Chunk_Splits_On_Rune_Boundaries(t *testing.T) {
	req := require.New(t)

	req.Equal([]string{"short"}, Chunk("short", 10))

	long := strings.Repeat("é", 25)
	parts := Chunk(long, 10)
	req.Len(parts, 3)
	req.Equal(strings.Repeat("é", 10), parts[0])
	req.Equal(strings.Repeat("é", 10), parts[1])
	req.Equal(strings.Repeat("é", 5), parts[2])
	req.Equal(long, strings.Join(parts, ""))
}

func Test_UserListing_Renders_Every_User(t *testing.T) {
	req := require.New(t)

	users := []relay.User{
		{ID: 42, DisplayName: "Alice", Handle: "alice", JoinedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 7, DisplayName: "Bob", JoinedAt: time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
			Messages: []relay.Message{{Text: "hi"}, {Text: "still there?"}}},
	}

	listing := UserListing(users)
	req.Contains(listing, "42")
	req.Contains(listing, "@alice")
	req.Contains(listing, "2025-03-01")
	req.Contains(listing, "@No username")
	req.Contains(listing, "2")
}

func Test_ForwardEnvelope_Contains_Identity_And_Hint(t *testing.T) {
	req := require.New(t)

	user := relay.User{ID: 42, DisplayName: "Alice", Handle: "alice"}
	envelope := ForwardEnvelope(user, "my order is late")
	req.Contains(envelope, "Alice")
	req.Contains(envelope, "@alice")
	req.Contains(envelope, "🆔 ID: 42")
	req.Contains(envelope, "my order is late")
	req.Contains(envelope, "/reply 42")
}
