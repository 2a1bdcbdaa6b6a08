// Package quiz holds the fixed question sequences, one per mini-game.
// Pure data: the engine indexes into a sequence by round number.
package quiz

import "github.com/rocketscienceinc/quiz-royale-backend/internal/entity"

// ForGame returns the ordered question sequence for a mini-game, or nil
// for states that have no questions.
func ForGame(name entity.GameName) []entity.Question {
	switch name {
	case entity.Game1:
		return game1Questions
	case entity.Game2:
		return game2Questions
	case entity.Game3:
		return game3Questions
	default:
		return nil
	}
}
