package session_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsobakin/armada/internal/game/field"
	"github.com/mrsobakin/armada/internal/session"
)

type exchange struct {
	cmd   string
	reply string
	err   error
}

func run(t *testing.T, s *session.Session, script []exchange) {
	t.Helper()

	for _, e := range script {
		reply, err := s.Exec(e.cmd)
		if e.err != nil {
			assert.ErrorIs(t, err, e.err, "command %q", e.cmd)
			continue
		}

		require.NoError(t, err, "command %q", e.cmd)
		assert.Equal(t, e.reply, reply, "command %q", e.cmd)
	}
}

// . . . . .
// . . . . .
// . . . . .
// . . . C .
// . . . C .
func TestExec_Game(t *testing.T) {
	run(t, session.New(0), []exchange{
		{cmd: "place caravel n 3 3", reply: "ok"},
		{cmd: "place barge n 3 4", reply: "rejected"},
		{cmd: "place galleon x 0 0", err: field.ErrUnknownCompass},
		{cmd: "place dinghy n 0 0", err: session.ErrMalformedCommand},
		{cmd: "place barge n 9", err: session.ErrMalformedCommand},
		{cmd: "get ships", reply: "1"},
		{cmd: "win", reply: "no"},

		{cmd: "fire 3 3", reply: "hit"},
		{cmd: "place barge n 0 0", err: session.ErrWrongPhase},
		{cmd: "shot 3 3", reply: "repeated"},
		{cmd: "fire 10 0", reply: "invalid"},
		{cmd: "  fire   0 0  ", reply: "miss"},
		{cmd: "fire 4 3", reply: "kill"},
		{cmd: "win", reply: "yes"},
		{cmd: "fire 0 1", err: session.ErrWrongPhase},

		{cmd: "get hits", reply: "2"},
		{cmd: "get sinks", reply: "1"},
		{cmd: "get shots", reply: "3"},
		{cmd: "get repeated", reply: "1"},
		{cmd: "get invalid", reply: "1"},
		{cmd: "get remaining", reply: "0"},
		{cmd: "get ships", reply: "1"},
	})
}

func TestExec_Errors(t *testing.T) {
	run(t, session.New(0), []exchange{
		{cmd: "", err: session.ErrUnknownCommand},
		{cmd: "   ", err: session.ErrUnknownCommand},
		{cmd: "jump 1 2", err: session.ErrUnknownCommand},
		{cmd: "FIRE 1 2", err: session.ErrUnknownCommand},
		{cmd: "fire a b", err: session.ErrMalformedCommand},
		{cmd: "fire 1", err: session.ErrMalformedCommand},
		{cmd: "fire 1 2 3", err: session.ErrMalformedCommand},
		{cmd: "get", err: session.ErrMalformedCommand},
		{cmd: "get width", err: session.ErrMalformedCommand},
		{cmd: "start now", err: session.ErrMalformedCommand},
		{cmd: "random please", err: session.ErrMalformedCommand},
		{cmd: "win now", err: session.ErrMalformedCommand},
		{cmd: "board 1", err: session.ErrMalformedCommand},
		{cmd: "fleet all", err: session.ErrMalformedCommand},
		{cmd: "status x y", err: session.ErrMalformedCommand},
		{cmd: "start", err: session.ErrNoShips},
		{cmd: "fire 0 0", err: session.ErrNoShips},
	})
}

func TestExec_Random(t *testing.T) {
	s := session.New(11)

	run(t, s, []exchange{
		{cmd: "random", reply: "ok"},
		{cmd: "get ships", reply: "10"},
		{cmd: "start", reply: "ok"},
		{cmd: "random", err: session.ErrWrongPhase},
	})
}

func TestExec_Render(t *testing.T) {
	s := session.New(0)

	run(t, s, []exchange{
		{cmd: "place carrack e 5 5", reply: "ok"},
		{cmd: "fire 5 5", reply: "hit"},
		{cmd: "fire 0 0", reply: "miss"},
	})

	board, err := s.Exec("board")
	require.NoError(t, err)
	lines := strings.Split(board, "\n")
	require.Len(t, lines, field.BoardSize+1)
	assert.Equal(t, "0 X . . . . . . . . .", lines[1])
	assert.Equal(t, "5 . . . . . X . . . .", lines[6])

	fleet, err := s.Exec("fleet")
	require.NoError(t, err)
	assert.Equal(t, "5 . . . . . # # # . .", strings.Split(fleet, "\n")[6])

	status, err := s.Exec("status")
	require.NoError(t, err)
	assert.Contains(t, status, "Carrack")
}
