// Package engine owns the authoritative match state and all of its
// transitions. Every mutating entry point (participant events, admin
// commands, timer expiries) is serialized behind one mutex; broadcasts
// happen only after a mutation is fully applied. Nothing outside this
// package mutates the state: callers submit events and receive snapshots.
package engine

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/rocketscienceinc/quiz-royale-backend/internal/entity"
)

const maxNameLength = 15

// Per-mini-game health baselines.
const (
	lobbyHP = 3
	game1HP = 3
	game2HP = 3
	game3HP = 5
)

type Engine struct {
	logger *slog.Logger
	rules  Rules
	pub    Publisher

	mu    sync.Mutex
	state *entity.GameState

	roundTimer     *timerSlot
	countdownTimer *timerSlot

	// lastFinished records which mini-game the leaderboard checkpoint
	// follows, so advancing resumes the right successor.
	lastFinished entity.GameName
}

func New(logger *slog.Logger, rules Rules, clock clockwork.Clock, pub Publisher) *Engine {
	engine := &Engine{
		logger: logger.With("component", "engine"),
		rules:  rules,
		pub:    pub,
		state:  entity.NewGameState(),
	}
	engine.roundTimer = newTimerSlot(clock, &engine.mu)
	engine.countdownTimer = newTimerSlot(clock, &engine.mu)

	return engine
}

// Join registers a participant. Administrative viewers get no roster entry,
// only a statistics broadcast; a second join with the same id is a no-op.
func (that *Engine) Join(id, name string, isAdmin bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if isAdmin {
		that.updateAdminStats()
		that.broadcastState()
		return
	}

	if that.state.FindPlayer(id) != nil {
		return
	}

	player := &entity.Player{
		ID:     id,
		Name:   sanitizeName(name),
		HP:     lobbyHP,
		Status: entity.StatusAlive,
	}
	that.state.Players = append(that.state.Players, player)

	that.logger.Info("player joined", "id", id, "name", player.Name)

	that.updateAdminStats()
	that.broadcastState()

	if that.rules.AutoAdvance &&
		that.state.GameName == entity.GameLobby &&
		that.state.Countdown == nil &&
		len(that.state.NonAdmins()) >= that.rules.MinPlayers {
		that.startCountdown(that.rules.LobbyCountdownSeconds, that.startGame1)
	}
}

// Leave handles a disconnect. Mid-match the participant is marked out rather
// than removed, so round-quorum arithmetic and leaderboard history stay
// consistent; in lobby or winner the record is dropped outright.
func (that *Engine) Leave(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	index := -1
	for i, player := range that.state.Players {
		if player.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return
	}

	if that.state.InProgress() {
		that.state.Players[index].Eliminate()
	} else {
		that.state.Players = append(that.state.Players[:index], that.state.Players[index+1:]...)
	}

	that.logger.Info("player left", "id", id)

	if that.state.GameName == entity.GameLobby &&
		that.state.Countdown != nil &&
		len(that.state.NonAdmins()) < that.rules.MinPlayers {
		that.clearTimers()
		that.pub.Publish(EventNotification, "Not enough players, start canceled.")
	}

	that.checkMatchStatus()
	if that.state.CurrentQuestion != nil {
		that.checkRoundCompletion()
	}
	that.updateAdminStats()
	that.broadcastState()
}

// SubmitAnswer resolves one participant's answer for the active round.
// Late, duplicate and otherwise ineligible submissions are silently
// ignored: they are expected races against the round timer, not faults.
func (that *Engine) SubmitAnswer(id, answer string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	player := that.state.FindPlayer(id)
	question := that.state.CurrentQuestion
	if player == nil || question == nil || player.IsAdmin || !player.IsAlive() || player.Answered {
		return
	}

	player.Answered = true

	if question.IsCorrect(answer) {
		player.AnsweredCorrectly = true
		that.pub.PublishTo(player.ID, EventPlaySound, SoundCorrect)
	} else {
		player.HP--
		that.pub.PublishTo(player.ID, EventPlaySound, SoundGunshot)
		if player.HP <= 0 {
			that.eliminate(player, fmt.Sprintf("%s has been eliminated!", player.Name))
		}
	}

	that.checkRoundCompletion()
	that.updateAdminStats()
	that.broadcastState()
}

// StartGame is the admin command that launches the match from the lobby.
func (that *Engine) StartGame() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state.GameName != entity.GameLobby {
		that.pub.Publish(EventNotification, "Game already in progress or not in lobby.")
		return
	}

	that.clearTimers()
	that.startCountdown(that.rules.ReadyCountdownSeconds, that.startGame1)
}

// StartNextGame is the admin command that advances the match from wherever
// it stands: lobby, a running mini-game, or the leaderboard checkpoint.
func (that *Engine) StartNextGame() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clearTimers()

	switch that.state.GameName {
	case entity.GameLobby:
		that.startCountdown(that.rules.ReadyCountdownSeconds, that.startGame1)
	case entity.Game1:
		that.startCountdown(that.rules.ReadyCountdownSeconds, that.startGame2)
	case entity.Game2:
		that.startCountdown(that.rules.ReadyCountdownSeconds, that.startGame3)
	case entity.Game3:
		if that.state.Round < that.rules.RoundCap-1 {
			that.nextQuestion()
		} else {
			that.endCurrentGame()
		}
	case entity.GameLeaderboard:
		that.advanceFromLeaderboard(true)
	default:
		that.pub.Publish(EventNotification, "Nothing to advance, the match is over.")
	}
}

// ResetGame unconditionally cancels all timers, discards the roster and
// reinitializes the match to its zero state. The only full reset path.
func (that *Engine) ResetGame() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clearTimers()
	that.state = entity.NewGameState()
	that.lastFinished = ""

	that.logger.Info("match reset")

	that.updateAdminStats()
	that.broadcastState()
	that.pub.Publish(EventNotification, "Game has been reset. Waiting for players to join.")
}

// Snapshot returns a deep copy of the current match state.
func (that *Engine) Snapshot() *entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state.Clone()
}

// eliminate marks a player out and emits the elimination cues. Lock held.
func (that *Engine) eliminate(player *entity.Player, message string) {
	player.Eliminate()
	that.pub.PublishTo(player.ID, EventPlaySound, SoundEliminated)
	that.pub.Publish(EventNotification, message)

	that.logger.Info("player eliminated", "id", player.ID, "name", player.Name)
}

// updateAdminStats recomputes the aggregate statistics wholesale and
// publishes them. The per-game score lists are owned by scoring. Lock held.
func (that *Engine) updateAdminStats() {
	players := that.state.NonAdmins()

	alive := 0
	for _, player := range players {
		if player.IsAlive() {
			alive++
		}
	}

	that.state.AdminStats.TotalPlayers = len(players)
	that.state.AdminStats.AlivePlayers = alive
	that.state.AdminStats.EliminatedPlayers = len(players) - alive

	that.pub.Publish(EventAdminStats, that.state.AdminStats)
}

// broadcastState publishes the full snapshot to everyone. Lock held.
func (that *Engine) broadcastState() {
	that.pub.Publish(EventGameState, that.state)
}

func (that *Engine) clearTimers() {
	that.roundTimer.cancel()
	that.countdownTimer.cancel()
	that.state.Countdown = nil
}

func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if runes := []rune(name); len(runes) > maxNameLength {
		name = string(runes[:maxNameLength])
	}
	return name
}
