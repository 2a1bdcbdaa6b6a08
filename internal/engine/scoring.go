package engine

import (
	"sort"

	"github.com/rocketscienceinc/quiz-royale-backend/internal/entity"
)

// Game1 places by remaining health: first, second, everyone else.
const (
	game1FirstPlacePoints  = 15
	game1SecondPlacePoints = 10
	game1SurvivorPoints    = 5

	game2TeamWinPoints = 10
	game3PointsPerHP   = 5
)

// resolveTugOfWarRound shifts the rope by one step toward whichever team
// produced more correct answers this round. The accumulator is the
// persistent signal; lastRoundWinner is advisory. Lock held.
func (that *Engine) resolveTugOfWarRound() {
	teams := that.state.Teams
	tug := that.state.TugOfWar
	if teams == nil || tug == nil || that.state.CurrentQuestion == nil {
		return
	}

	redCorrect := countCorrect(teams.Red)
	blueCorrect := countCorrect(teams.Blue)

	switch {
	case redCorrect > blueCorrect:
		tug.Position--
		tug.LastRoundWinner = entity.TeamRed
		that.pub.Publish(EventNotification, "Red Team pulled ahead in Tug of War!")
	case blueCorrect > redCorrect:
		tug.Position++
		tug.LastRoundWinner = entity.TeamBlue
		that.pub.Publish(EventNotification, "Blue Team pulled ahead in Tug of War!")
	default:
		tug.LastRoundWinner = "tie"
		that.pub.Publish(EventNotification, "Tug of War round was a tie!")
	}
}

func countCorrect(team []*entity.Player) int {
	count := 0
	for _, player := range team {
		if player.IsAlive() && player.Answered && player.AnsweredCorrectly {
			count++
		}
	}
	return count
}

// calculateScores applies the just-finished mini-game's awards to the
// cumulative scores and the admin score lists. It runs exactly once per
// mini-game: only endCurrentGame calls it, and by the time the leaderboard
// is re-entered the game name no longer matches any case. Lock held.
func (that *Engine) calculateScores() {
	switch that.state.GameName {
	case entity.Game1:
		that.scoreGame1()
	case entity.Game2:
		that.scoreGame2()
	case entity.Game3:
		that.scoreGame3()
	}
}

func (that *Engine) scoreGame1() {
	alive := that.state.ActivePlayers()
	// Stable sort: health ties keep roster order.
	sort.SliceStable(alive, func(i, j int) bool {
		return alive[i].HP > alive[j].HP
	})

	for place, player := range alive {
		points := game1SurvivorPoints
		switch place {
		case 0:
			points = game1FirstPlacePoints
		case 1:
			points = game1SecondPlacePoints
		}
		player.Score += points
		that.state.AdminStats.Game1Scores = append(that.state.AdminStats.Game1Scores, entity.ScoreEntry{
			Name:  player.Name,
			Score: points,
		})
	}

	sortScoreEntries(that.state.AdminStats.Game1Scores)
}

func (that *Engine) scoreGame2() {
	teams := that.state.Teams
	tug := that.state.TugOfWar
	if teams == nil || tug == nil {
		return
	}

	var winners []*entity.Player
	switch {
	case tug.Position > 0:
		winners = teams.Blue
		that.pub.Publish(EventNotification, "Blue Team wins Tug of War!")
	case tug.Position < 0:
		winners = teams.Red
		that.pub.Publish(EventNotification, "Red Team wins Tug of War!")
	default:
		that.pub.Publish(EventNotification, "Tug of War is a draw!")
		return
	}

	for _, player := range winners {
		if !player.IsAlive() || player.IsAdmin {
			continue
		}
		player.Score += game2TeamWinPoints
		that.state.AdminStats.Game2Scores = append(that.state.AdminStats.Game2Scores, entity.ScoreEntry{
			Name:  player.Name,
			Score: game2TeamWinPoints,
		})
	}

	sortScoreEntries(that.state.AdminStats.Game2Scores)
}

func (that *Engine) scoreGame3() {
	for _, player := range that.state.ActivePlayers() {
		points := player.HP * game3PointsPerHP
		player.Score += points
		that.state.AdminStats.Game3Scores = append(that.state.AdminStats.Game3Scores, entity.ScoreEntry{
			Name:  player.Name,
			Score: points,
		})
	}

	sortScoreEntries(that.state.AdminStats.Game3Scores)
}

// pickWinner prefers a sole surviving player; with several survivors, or
// none, the highest cumulative score wins. Score ties resolve by roster
// order: first joined wins. Lock held.
func (that *Engine) pickWinner() *entity.Player {
	candidates := that.state.ActivePlayers()
	if len(candidates) == 0 {
		candidates = that.state.NonAdmins()
	}
	if len(candidates) == 0 {
		return nil
	}

	ranked := make([]*entity.Player, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked[0]
}

func sortScoreEntries(entries []entity.ScoreEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}
