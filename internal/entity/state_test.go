package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	state := NewGameState()

	assert.Equal(t, GameLobby, state.GameName)
	assert.Empty(t, state.Players)
	assert.Equal(t, -1, state.Round)
	assert.Nil(t, state.CurrentQuestion)
	assert.Nil(t, state.Teams)
	assert.Nil(t, state.TugOfWar)
	assert.Nil(t, state.Winner)
	assert.Nil(t, state.Countdown)
	assert.NotNil(t, state.AdminStats.Game1Scores)
}

func TestGameState_ActivePlayers(t *testing.T) {
	state := NewGameState()
	alive := &Player{ID: "p1", Status: StatusAlive}
	out := &Player{ID: "p2", Status: StatusOut}
	admin := &Player{ID: "p3", Status: StatusAlive, IsAdmin: true}
	state.Players = []*Player{alive, out, admin}

	require.Equal(t, []*Player{alive}, state.ActivePlayers())
	require.Equal(t, []*Player{alive, out}, state.NonAdmins())
}

func TestGameState_InProgress(t *testing.T) {
	cases := []struct {
		name GameName
		want bool
	}{
		{GameLobby, false},
		{Game1, true},
		{Game2, true},
		{Game3, true},
		{GameLeaderboard, true},
		{GameWinner, false},
	}

	for _, tc := range cases {
		state := NewGameState()
		state.GameName = tc.name
		assert.Equal(t, tc.want, state.InProgress(), "state %s", tc.name)
	}
}

func TestGameState_Clone(t *testing.T) {
	red := &Player{ID: "p1", Name: "Alice", HP: 3, Status: StatusAlive, Team: TeamRed}
	blue := &Player{ID: "p2", Name: "Bob", HP: 2, Status: StatusAlive, Team: TeamBlue}
	countdown := 5

	state := NewGameState()
	state.GameName = Game2
	state.Round = 1
	state.Players = []*Player{red, blue}
	state.CurrentQuestion = &Question{ID: "q1", Text: "?", Options: []string{"a", "b"}, Answer: "a"}
	state.Teams = &Teams{Red: []*Player{red}, Blue: []*Player{blue}}
	state.TugOfWar = &TugOfWar{Position: -2, LastRoundWinner: TeamRed}
	state.Winner = red
	state.Countdown = &countdown

	clone := state.Clone()

	// The clone is equal but shares no mutable memory with the original
	require.Equal(t, state, clone)

	clone.Players[0].HP = 0
	clone.CurrentQuestion.Options[0] = "z"
	clone.TugOfWar.Position = 9
	*clone.Countdown = 0

	assert.Equal(t, 3, red.HP)
	assert.Equal(t, "a", state.CurrentQuestion.Options[0])
	assert.Equal(t, -2, state.TugOfWar.Position)
	assert.Equal(t, 5, countdown)

	// Team and winner pointers are remapped into the cloned roster
	assert.Same(t, clone.Players[0], clone.Teams.Red[0])
	assert.Same(t, clone.Players[0], clone.Winner)
	assert.NotSame(t, red, clone.Teams.Red[0])
}

func TestPlayer_Eliminate(t *testing.T) {
	player := &Player{ID: "p1", Status: StatusAlive, HP: 1}

	require.True(t, player.IsAlive())

	player.Eliminate()

	require.False(t, player.IsAlive())
	require.Equal(t, StatusOut, player.Status)
}
