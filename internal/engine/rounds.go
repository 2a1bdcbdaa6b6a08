package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/quiz-royale-backend/internal/entity"
	"github.com/rocketscienceinc/quiz-royale-backend/internal/quiz"
)

const countdownTick = time.Second

// All functions in this file run with the engine mutex held: they are
// reached from the public entry points or from timer slot callbacks.

// startCountdown arms the countdown slot to tick once per second, then run
// done. The countdown slot is distinct from the round slot so a get-ready
// countdown never cancels a pending round expiry and vice versa.
func (that *Engine) startCountdown(seconds int, done func()) {
	count := seconds
	that.state.Countdown = &count
	that.pub.Publish(EventPlaySound, SoundCountdown)
	that.broadcastState()

	var tick func()
	tick = func() {
		count--
		remaining := count
		that.state.Countdown = &remaining
		that.broadcastState()

		if count <= 0 {
			that.state.Countdown = nil
			that.broadcastState()
			done()
			return
		}
		that.countdownTimer.arm(countdownTick, tick)
	}
	that.countdownTimer.arm(countdownTick, tick)
}

func (that *Engine) startGame1() {
	that.clearTimers()
	that.state.GameName = entity.Game1
	that.state.Round = -1
	that.resetPlayersForNewGame(game1HP)
	that.state.AdminStats.Game1Scores = []entity.ScoreEntry{}

	that.logger.Info("mini-game started", "game", entity.Game1)
	that.pub.Publish(EventNotification, "Game 1: Red Light, Green Light begins!")

	that.nextQuestion()
}

func (that *Engine) startGame2() {
	that.clearTimers()
	that.state.GameName = entity.Game2
	that.state.Round = -1
	that.resetPlayersForNewGame(game2HP)
	that.splitTeams()
	that.state.TugOfWar = &entity.TugOfWar{}
	that.state.AdminStats.Game2Scores = []entity.ScoreEntry{}

	that.logger.Info("mini-game started", "game", entity.Game2)
	that.pub.Publish(EventNotification, "Game 2: Tug of War begins!")

	that.nextQuestion()
}

func (that *Engine) startGame3() {
	that.clearTimers()
	that.state.GameName = entity.Game3
	that.state.Round = -1
	that.resetPlayersForNewGame(game3HP)
	that.state.AdminStats.Game3Scores = []entity.ScoreEntry{}

	that.logger.Info("mini-game started", "game", entity.Game3)
	that.pub.Publish(EventNotification, "Final Game: Last One Standing begins!")

	that.nextQuestion()
}

// splitTeams shuffles the alive players and deals them into red and blue
// halves. Team slices reference the roster records, they do not copy them.
func (that *Engine) splitTeams() {
	alive := that.state.ActivePlayers()
	shuffled := make([]*entity.Player, len(alive))
	copy(shuffled, alive)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	mid := (len(shuffled) + 1) / 2
	red, blue := shuffled[:mid], shuffled[mid:]
	for _, player := range red {
		player.Team = entity.TeamRed
	}
	for _, player := range blue {
		player.Team = entity.TeamBlue
	}

	that.state.Teams = &entity.Teams{Red: red, Blue: blue}
}

// nextQuestion starts the next round, or ends the mini-game when the round
// cap or the question sequence is exhausted, or fewer than two eligible
// players remain.
func (that *Engine) nextQuestion() {
	round := that.state.Round + 1
	questions := quiz.ForGame(that.state.GameName)

	if round >= that.rules.RoundCap || round >= len(questions) || len(that.state.ActivePlayers()) <= 1 {
		that.endCurrentGame()
		return
	}

	that.state.Round = round
	for _, player := range that.state.Players {
		player.Answered = false
		player.AnsweredCorrectly = false
	}

	question := questions[round]
	that.state.CurrentQuestion = &question
	that.broadcastState()

	that.roundTimer.arm(that.rules.QuestionTime, that.handleTimeUp)
}

// handleTimeUp resolves the round expiry: silence counts as a wrong answer
// for every alive player who has not answered yet.
func (that *Engine) handleTimeUp() {
	for _, player := range that.state.Players {
		if !player.IsAlive() || player.Answered || player.IsAdmin {
			continue
		}
		player.Answered = true
		player.HP--
		if player.HP <= 0 {
			that.eliminate(player, fmt.Sprintf("%s has been eliminated (time up)!", player.Name))
		}
	}

	that.pub.Publish(EventPlaySound, SoundGunshot)

	that.checkRoundCompletion()
	that.updateAdminStats()
	that.broadcastState()
}

// checkRoundCompletion resolves the round once every eligible player has
// answered, or none remain. Resolution is one-shot: the question is cleared
// here, not in the delay callback, so a disconnect or a late event landing
// during the post-round delay cannot resolve the same round again. Arming
// the round slot for the delay supersedes any pending expiry for this round.
func (that *Engine) checkRoundCompletion() {
	if that.state.CurrentQuestion == nil {
		return
	}

	active := that.state.ActivePlayers()
	for _, player := range active {
		if !player.Answered {
			return
		}
	}

	if that.state.GameName == entity.Game2 {
		that.resolveTugOfWarRound()
	}
	that.state.CurrentQuestion = nil

	that.roundTimer.arm(that.rules.RoundDelay, that.nextQuestion)
}

// checkMatchStatus ends the running mini-game early once the count of alive
// players drops to one or below.
func (that *Engine) checkMatchStatus() {
	if !that.state.InProgress() {
		return
	}
	if len(that.state.ActivePlayers()) <= 1 {
		that.endCurrentGame()
	}
}

// endCurrentGame closes out the running mini-game: scores are applied
// exactly once here, then the match moves to the leaderboard checkpoint,
// or straight to the winner screen when at most one player is left.
func (that *Engine) endCurrentGame() {
	that.clearTimers()
	that.calculateScores()

	that.state.CurrentQuestion = nil
	if that.state.GameName == entity.Game2 {
		that.dissolveTeams()
	}

	if len(that.state.ActivePlayers()) <= 1 {
		that.endMatch()
		return
	}

	if that.state.GameName != entity.GameLeaderboard {
		that.lastFinished = that.state.GameName
	}
	that.state.GameName = entity.GameLeaderboard

	that.logger.Info("mini-game finished", "game", that.lastFinished)

	that.broadcastState()

	if that.rules.AutoAdvance {
		that.roundTimer.arm(that.rules.LeaderboardDwell, func() {
			that.advanceFromLeaderboard(false)
		})
	}
}

// advanceFromLeaderboard resumes the successor of the mini-game the
// leaderboard follows. The hosted flow inserts a get-ready countdown, the
// classic flow goes straight in.
func (that *Engine) advanceFromLeaderboard(withCountdown bool) {
	start := func(fn func()) {
		if withCountdown {
			that.startCountdown(that.rules.ReadyCountdownSeconds, fn)
			return
		}
		fn()
	}

	switch that.lastFinished {
	case entity.Game1:
		start(that.startGame2)
	case entity.Game2:
		start(that.startGame3)
	default:
		that.endMatch()
	}
}

// endMatch declares the winner and parks the match in its terminal state.
func (that *Engine) endMatch() {
	that.clearTimers()
	that.state.GameName = entity.GameWinner
	that.state.CurrentQuestion = nil

	winner := that.pickWinner()
	that.state.Winner = winner

	that.pub.Publish(EventPlaySound, SoundCheer)
	that.broadcastState()

	name := "No one"
	if winner != nil {
		name = winner.Name
	}
	that.logger.Info("match finished", "winner", name)
	that.pub.Publish(EventNotification, fmt.Sprintf("%s wins Quiz Royale!", name))
}

func (that *Engine) dissolveTeams() {
	for _, player := range that.state.Players {
		player.Team = ""
	}
	that.state.Teams = nil
	that.state.TugOfWar = nil
}

func (that *Engine) resetPlayersForNewGame(hp int) {
	for _, player := range that.state.Players {
		if player.IsAlive() && !player.IsAdmin {
			player.HP = hp
			player.Answered = false
			player.AnsweredCorrectly = false
			player.Team = ""
		}
	}
	that.updateAdminStats()
}
