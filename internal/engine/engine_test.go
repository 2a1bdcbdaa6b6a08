package engine

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/quiz-royale-backend/internal/entity"
)

const (
	waitFor  = 2 * time.Second
	pollTick = 5 * time.Millisecond
)

type recordedEvent struct {
	Event   string
	Target  string
	Payload string
}

// fakePublisher records every event the way the real hub would: the payload
// is marshaled at publish time, freezing the snapshot.
type fakePublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (that *fakePublisher) Publish(event string, payload any) {
	that.record("", event, payload)
}

func (that *fakePublisher) PublishTo(id, event string, payload any) {
	that.record(id, event, payload)
}

func (that *fakePublisher) record(target, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()
	that.events = append(that.events, recordedEvent{Event: event, Target: target, Payload: string(data)})
}

func (that *fakePublisher) all() []recordedEvent {
	that.mu.Lock()
	defer that.mu.Unlock()
	return append([]recordedEvent(nil), that.events...)
}

// sounds returns the recorded sound cues for one target ("" = broadcast).
func (that *fakePublisher) sounds(target string) []string {
	var sounds []string
	for _, event := range that.all() {
		if event.Event == EventPlaySound && event.Target == target {
			sounds = append(sounds, strings.Trim(event.Payload, `"`))
		}
	}
	return sounds
}

func (that *fakePublisher) hasNotification(substring string) bool {
	for _, event := range that.all() {
		if event.Event == EventNotification && strings.Contains(event.Payload, substring) {
			return true
		}
	}
	return false
}

func testRules() Rules {
	return Rules{
		RoundCap:              5,
		MinPlayers:            2,
		AutoAdvance:           true,
		QuestionTime:          15 * time.Second,
		RoundDelay:            2 * time.Second,
		LeaderboardDwell:      8 * time.Second,
		LobbyCountdownSeconds: 1,
		ReadyCountdownSeconds: 1,
	}
}

func newTestEngine(rules Rules) (*Engine, *fakePublisher, *clockwork.FakeClock) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pub := &fakePublisher{}
	clock := clockwork.NewFakeClock()

	return New(logger, rules, clock, pub), pub, clock
}

func waitForState(t *testing.T, game *Engine, name entity.GameName) {
	t.Helper()
	require.Eventually(t, func() bool {
		return game.Snapshot().GameName == name
	}, waitFor, pollTick, "expected state %s", name)
}

func waitForRound(t *testing.T, game *Engine, round int) {
	t.Helper()
	require.Eventually(t, func() bool {
		snapshot := game.Snapshot()
		return snapshot.Round == round && snapshot.CurrentQuestion != nil
	}, waitFor, pollTick, "expected round %d", round)
}

// startMatch joins the given players and drives the lobby countdown until
// game1 serves its first question.
func startMatch(t *testing.T, game *Engine, clock *clockwork.FakeClock, ids ...string) {
	t.Helper()

	for _, id := range ids {
		game.Join(id, "Player "+id, false)
	}

	require.Eventually(t, func() bool {
		return game.Snapshot().Countdown != nil
	}, waitFor, pollTick, "lobby countdown should be running")

	clock.Advance(time.Second)
	waitForState(t, game, entity.Game1)
	waitForRound(t, game, 0)
}

// answerAll submits the current question's answer (or a wrong one) for the
// given players and waits until the next round is served.
func completeRound(t *testing.T, game *Engine, clock *clockwork.FakeClock, correct []string, wrong []string) {
	t.Helper()

	snapshot := game.Snapshot()
	require.NotNil(t, snapshot.CurrentQuestion)

	for _, id := range correct {
		game.SubmitAnswer(id, snapshot.CurrentQuestion.Answer)
	}
	for _, id := range wrong {
		game.SubmitAnswer(id, "definitely not it")
	}

	clock.Advance(2 * time.Second)
}

func TestEngine_Join(t *testing.T) {
	t.Run("below quorum no countdown", func(t *testing.T) {
		game, _, _ := newTestEngine(testRules())

		// When: a single player joins
		game.Join("p1", "Alice", false)

		// Then: the lobby waits, no countdown is running
		snapshot := game.Snapshot()
		require.Len(t, snapshot.Players, 1)
		require.Equal(t, entity.GameLobby, snapshot.GameName)
		require.Nil(t, snapshot.Countdown)
		require.Equal(t, 3, snapshot.Players[0].HP)
		require.Equal(t, entity.StatusAlive, snapshot.Players[0].Status)
	})

	t.Run("quorum starts lobby countdown", func(t *testing.T) {
		game, _, _ := newTestEngine(testRules())

		// When: the second player joins
		game.Join("p1", "Alice", false)
		game.Join("p2", "Bob", false)

		// Then: the countdown begins
		snapshot := game.Snapshot()
		require.NotNil(t, snapshot.Countdown)
	})

	t.Run("join is idempotent", func(t *testing.T) {
		game, _, _ := newTestEngine(testRules())

		game.Join("p1", "Alice", false)
		game.Join("p1", "Alice again", false)

		snapshot := game.Snapshot()
		require.Len(t, snapshot.Players, 1)
		require.Equal(t, "Alice", snapshot.Players[0].Name)
	})

	t.Run("name is trimmed and capped", func(t *testing.T) {
		game, _, _ := newTestEngine(testRules())

		game.Join("p1", "   a very long display name   ", false)

		snapshot := game.Snapshot()
		require.Equal(t, "a very long dis", snapshot.Players[0].Name)
	})

	t.Run("admin gets no roster entry", func(t *testing.T) {
		game, pub, _ := newTestEngine(testRules())

		// When: an administrative viewer joins
		game.Join("a1", "Operator", true)

		// Then: the roster is untouched but stats went out
		snapshot := game.Snapshot()
		require.Empty(t, snapshot.Players)

		events := pub.all()
		require.NotEmpty(t, events)
		assert.Equal(t, EventAdminStats, events[0].Event)
	})
}

func TestEngine_LobbyCountdown(t *testing.T) {
	game, _, clock := newTestEngine(testRules())

	// Given: two players, quorum reached, countdown running
	// When: the countdown elapses
	// Then: game1 is entered with round 0 served and baseline health
	startMatch(t, game, clock, "p1", "p2")

	snapshot := game.Snapshot()
	require.Equal(t, entity.Game1, snapshot.GameName)
	require.Equal(t, 0, snapshot.Round)
	require.NotNil(t, snapshot.CurrentQuestion)
	require.Equal(t, "g1q1", snapshot.CurrentQuestion.ID)
	for _, player := range snapshot.Players {
		require.Equal(t, 3, player.HP)
		require.False(t, player.Answered)
	}
}

func TestEngine_SubmitAnswer(t *testing.T) {
	t.Run("correct answer keeps health", func(t *testing.T) {
		game, pub, clock := newTestEngine(testRules())
		startMatch(t, game, clock, "p1", "p2")

		answer := game.Snapshot().CurrentQuestion.Answer
		game.SubmitAnswer("p1", answer)

		snapshot := game.Snapshot()
		player := snapshot.FindPlayer("p1")
		require.Equal(t, 3, player.HP)
		require.True(t, player.Answered)
		assert.Contains(t, pub.sounds("p1"), SoundCorrect)
	})

	t.Run("wrong answer costs one hp", func(t *testing.T) {
		game, pub, clock := newTestEngine(testRules())
		startMatch(t, game, clock, "p1", "p2")

		game.SubmitAnswer("p1", "nope")

		player := game.Snapshot().FindPlayer("p1")
		require.Equal(t, 2, player.HP)
		require.True(t, player.Answered)
		assert.Contains(t, pub.sounds("p1"), SoundGunshot)
	})

	t.Run("duplicate submission ignored", func(t *testing.T) {
		game, _, clock := newTestEngine(testRules())
		startMatch(t, game, clock, "p1", "p2")

		game.SubmitAnswer("p1", "nope")
		game.SubmitAnswer("p1", "nope")

		require.Equal(t, 2, game.Snapshot().FindPlayer("p1").HP)
	})

	t.Run("unknown player ignored", func(t *testing.T) {
		game, _, clock := newTestEngine(testRules())
		startMatch(t, game, clock, "p1", "p2")

		game.SubmitAnswer("ghost", "nope")

		for _, player := range game.Snapshot().Players {
			require.False(t, player.Answered)
		}
	})

	t.Run("no active question ignored", func(t *testing.T) {
		game, _, _ := newTestEngine(testRules())
		game.Join("p1", "Alice", false)

		game.SubmitAnswer("p1", "nope")

		require.Equal(t, 3, game.Snapshot().FindPlayer("p1").HP)
	})

	t.Run("health zero eliminates for good", func(t *testing.T) {
		game, pub, clock := newTestEngine(testRules())
		startMatch(t, game, clock, "p1", "p2", "p3")

		// When: p1 answers wrong three rounds in a row
		for round := 0; round < 3; round++ {
			waitForRound(t, game, round)
			completeRound(t, game, clock, []string{"p2", "p3"}, []string{"p1"})
		}

		// Then: p1 is out and stays out
		require.Eventually(t, func() bool {
			return game.Snapshot().FindPlayer("p1").Status == entity.StatusOut
		}, waitFor, pollTick)
		assert.Contains(t, pub.sounds("p1"), SoundEliminated)
		assert.True(t, pub.hasNotification("has been eliminated"))
	})
}

func TestEngine_RoundTimeout(t *testing.T) {
	game, _, clock := newTestEngine(testRules())
	startMatch(t, game, clock, "p1", "p2", "p3")

	// Given: p1 answers correctly, p2 and p3 stay silent
	answer := game.Snapshot().CurrentQuestion.Answer
	game.SubmitAnswer("p1", answer)

	// When: the question timer fires
	clock.Advance(15 * time.Second)

	// Then: silence counted as wrong for p2/p3, p1 untouched, and the
	// round resolved (everyone marked answered, next round scheduled)
	require.Eventually(t, func() bool {
		snapshot := game.Snapshot()
		return snapshot.FindPlayer("p2").HP == 2 && snapshot.FindPlayer("p3").HP == 2
	}, waitFor, pollTick)

	snapshot := game.Snapshot()
	require.Equal(t, 3, snapshot.FindPlayer("p1").HP)
	for _, player := range snapshot.Players {
		require.True(t, player.Answered)
	}

	// And: after the post-round delay the next round is served
	clock.Advance(2 * time.Second)
	waitForRound(t, game, 1)
}

func TestEngine_RoundIndexMonotonic(t *testing.T) {
	game, _, clock := newTestEngine(testRules())
	startMatch(t, game, clock, "p1", "p2", "p3")

	answer := func() string { return game.Snapshot().CurrentQuestion.Answer }

	for round := 0; round < 3; round++ {
		waitForRound(t, game, round)
		require.Equal(t, round, game.Snapshot().Round)
		game.SubmitAnswer("p1", answer())
		game.SubmitAnswer("p2", answer())
		game.SubmitAnswer("p3", answer())
		clock.Advance(2 * time.Second)
	}

	waitForRound(t, game, 3)
}

func TestEngine_ResetGame(t *testing.T) {
	game, pub, clock := newTestEngine(testRules())
	startMatch(t, game, clock, "p1", "p2")

	// When: the match is reset mid-game
	game.ResetGame()

	// Then: the state is back to its zero values
	snapshot := game.Snapshot()
	require.Equal(t, entity.GameLobby, snapshot.GameName)
	require.Empty(t, snapshot.Players)
	require.Equal(t, -1, snapshot.Round)
	require.Nil(t, snapshot.CurrentQuestion)
	require.Equal(t, 0, snapshot.AdminStats.TotalPlayers)
	require.Equal(t, 0, snapshot.AdminStats.AlivePlayers)
	require.Equal(t, 0, snapshot.AdminStats.EliminatedPlayers)
	assert.True(t, pub.hasNotification("has been reset"))

	// And: no stale timer fires into the fresh lobby
	clock.Advance(time.Minute)
	require.Never(t, func() bool {
		return game.Snapshot().GameName != entity.GameLobby
	}, 100*time.Millisecond, pollTick)
}

func TestEngine_Leave(t *testing.T) {
	t.Run("in lobby removes the record", func(t *testing.T) {
		game, _, _ := newTestEngine(testRules())
		game.Join("p1", "Alice", false)

		game.Leave("p1")

		require.Empty(t, game.Snapshot().Players)
	})

	t.Run("losing quorum cancels the lobby countdown", func(t *testing.T) {
		game, pub, clock := newTestEngine(testRules())
		game.Join("p1", "Alice", false)
		game.Join("p2", "Bob", false)
		require.NotNil(t, game.Snapshot().Countdown)

		// When: the roster drops back below quorum before the start
		game.Leave("p2")

		// Then: the countdown is cancelled and the lobby stays put
		require.Nil(t, game.Snapshot().Countdown)
		assert.True(t, pub.hasNotification("Not enough players"))

		clock.Advance(time.Minute)
		require.Never(t, func() bool {
			return game.Snapshot().GameName != entity.GameLobby
		}, 100*time.Millisecond, pollTick)

		// And: a fresh quorum arms a fresh countdown
		game.Join("p3", "Carol", false)
		require.NotNil(t, game.Snapshot().Countdown)
	})

	t.Run("mid-match marks out instead", func(t *testing.T) {
		game, _, clock := newTestEngine(testRules())
		startMatch(t, game, clock, "p1", "p2", "p3")

		game.Leave("p1")

		snapshot := game.Snapshot()
		require.Len(t, snapshot.Players, 3)
		require.Equal(t, entity.StatusOut, snapshot.FindPlayer("p1").Status)
	})

	t.Run("dropping to one survivor ends the match", func(t *testing.T) {
		game, _, clock := newTestEngine(testRules())
		startMatch(t, game, clock, "p1", "p2")

		// When: p2 disconnects mid-game
		game.Leave("p2")

		// Then: the match routes straight to winner, skipping leaderboard
		snapshot := game.Snapshot()
		require.Equal(t, entity.GameWinner, snapshot.GameName)
		require.NotNil(t, snapshot.Winner)
		require.Equal(t, "p1", snapshot.Winner.ID)
	})

	t.Run("leaving last unanswered completes the round", func(t *testing.T) {
		game, _, clock := newTestEngine(testRules())
		startMatch(t, game, clock, "p1", "p2", "p3")

		answer := game.Snapshot().CurrentQuestion.Answer
		game.SubmitAnswer("p1", answer)
		game.SubmitAnswer("p2", answer)

		// When: the only player yet to answer disconnects
		game.Leave("p3")

		// Then: the round resolves and the next one is served
		clock.Advance(2 * time.Second)
		waitForRound(t, game, 1)
	})
}

func TestEngine_AdminStats(t *testing.T) {
	game, _, clock := newTestEngine(testRules())
	startMatch(t, game, clock, "p1", "p2", "p3")

	completeRound(t, game, clock, []string{"p2", "p3"}, []string{"p1"})
	waitForRound(t, game, 1)
	completeRound(t, game, clock, []string{"p2", "p3"}, []string{"p1"})
	waitForRound(t, game, 2)
	completeRound(t, game, clock, []string{"p2", "p3"}, []string{"p1"})

	// p1 lost 3 hp over three rounds and is out
	require.Eventually(t, func() bool {
		stats := game.Snapshot().AdminStats
		return stats.TotalPlayers == 3 && stats.AlivePlayers == 2 && stats.EliminatedPlayers == 1
	}, waitFor, pollTick)
}
