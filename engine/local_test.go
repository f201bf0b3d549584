package engine

import (
	"reversi/agent"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/gamemaster"
	"testing"

	"github.com/stretchr/testify/require"
)

type passBot struct{}

func (passBot) NextMove() (game.ScoredMove, bool) { return game.ScoredMove{}, false }

type cornerBot struct{}

func (cornerBot) NextMove() (game.ScoredMove, bool) { return game.ScoredMove{Row: 0, Col: 0}, true }

func lookup(t *testing.T, name string) agent.Constructor {
	t.Helper()
	c, err := agent.Lookup(name)
	require.NoError(t, err)
	return c
}

func TestRun(t *testing.T) {
	for _, pair := range [][2]string{
		{"GreedyBot", "RandomBot"},
		{"TwoStepsBot", "TwoStepsWithLocationBot"},
	} {
		t.Run(pair[0]+" vs "+pair[1], func(t *testing.T) {
			e := LocalEngine(pair, [2]agent.Constructor{lookup(t, pair[0]), lookup(t, pair[1])},
				WithSeeds(1, 2), WithMetrics(metrics.NewCollector()))

			outcome, gm, moves, err := e.Run()
			require.NoError(t, err)

			state := e.Master.State()
			require.True(t, state.IsGameOver())
			require.Equal(t, state.Winner(), outcome)
			require.NotEqual(t, game.NoneYet, outcome)

			require.Equal(t, len(e.Master.Updates()), gm.TotalMoves)
			require.Len(t, moves, gm.TotalMoves)
			require.Equal(t, state.DiskCount(game.PlayerOne), gm.PlayerOneDisks)
			require.Equal(t, state.DiskCount(game.PlayerTwo), gm.PlayerTwoDisks)
			require.Equal(t, pair[0], gm.PlayerOne)
			require.Equal(t, pair[1], gm.PlayerTwo)

			switch outcome {
			case game.PlayerOneWins:
				require.Equal(t, pair[0], gm.Winner)
			case game.PlayerTwoWins:
				require.Equal(t, pair[1], gm.Winner)
			default:
				require.Equal(t, "tie", gm.Winner)
			}

			for i, mm := range moves {
				u := e.Master.Updates()[i]
				require.Equal(t, i+1, mm.Step)
				require.Equal(t, int(u.Player), mm.Player)
				require.Equal(t, pair[u.Player-1], mm.Bot)
				require.Equal(t, u.Flips, mm.Flips)
				require.Positive(t, mm.Flips, "Every placement flips at least one disk")
			}
		})
	}
}

func TestRunIsReproducible(t *testing.T) {
	names := [2]string{"GreedyBot", "TwoStepsBot"}
	play := func() []gamemaster.Update {
		e := LocalEngine(names, [2]agent.Constructor{lookup(t, names[0]), lookup(t, names[1])}, WithSeeds(7, 8))
		_, _, _, err := e.Run()
		require.NoError(t, err)
		return e.Master.Updates()
	}

	require.Equal(t, play(), play(), "Same seeds should replay the same game")
}

func TestRunWithoutMetrics(t *testing.T) {
	names := [2]string{"RandomBot", "RandomBot"}
	random := lookup(t, "RandomBot")
	e := LocalEngine(names, [2]agent.Constructor{random, random}, WithSeeds(3, 4))

	outcome, gm, moves, err := e.Run()
	require.NoError(t, err)
	require.NotEqual(t, game.NoneYet, outcome)
	require.Equal(t, metrics.GameMetric{}, gm)
	require.Empty(t, moves)
}

func TestRunErrors(t *testing.T) {
	greedy := lookup(t, "GreedyBot")

	t.Run("bot passes while it has moves", func(t *testing.T) {
		pass := func(*game.GameState, ...agent.Option) agent.Bot { return passBot{} }
		e := LocalEngine([2]string{"GreedyBot", "PassBot"}, [2]agent.Constructor{greedy, pass}, WithSeeds(1, 1))

		outcome, _, _, err := e.Run()
		require.ErrorIs(t, err, ErrNoMove)
		require.ErrorContains(t, err, "PassBot")
		require.Equal(t, game.NoneYet, outcome)
		require.Len(t, e.Master.Updates(), 1, "Only PlayerOne's opening move should be played")
	})

	t.Run("bot plays an illegal move", func(t *testing.T) {
		corner := func(*game.GameState, ...agent.Option) agent.Bot { return cornerBot{} }
		e := LocalEngine([2]string{"CornerBot", "GreedyBot"}, [2]agent.Constructor{corner, greedy})

		_, _, _, err := e.Run()
		require.ErrorIs(t, err, gamemaster.ErrIllegalMove)
		require.ErrorContains(t, err, "CornerBot")
		require.Empty(t, e.Master.Updates())
	})
}

func TestLocalEnginePanicsWithoutBots(t *testing.T) {
	require.Panics(t, func() {
		LocalEngine([2]string{"GreedyBot", ""}, [2]agent.Constructor{lookup(t, "GreedyBot"), nil})
	}, "Should panic when a player has no bot")
}
