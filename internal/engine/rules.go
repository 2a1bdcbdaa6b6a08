package engine

import "time"

// Rules parameterizes the two historical flows of the match as one state
// machine. The classic flow starts itself once a lobby quorum is reached and
// leaves the leaderboard on a dwell timer; the hosted flow waits for an
// operator command on both edges.
type Rules struct {
	// RoundCap is the number of rounds per mini-game.
	RoundCap int
	// MinPlayers is the lobby quorum required before a match can start.
	MinPlayers int
	// AutoAdvance selects the classic flow: quorum-triggered lobby countdown
	// and timed leaderboard dwell. When false every transition out of lobby
	// and leaderboard is operator-gated.
	AutoAdvance bool

	QuestionTime     time.Duration
	RoundDelay       time.Duration
	LeaderboardDwell time.Duration

	// Countdowns tick once per second, so they are specified in seconds.
	LobbyCountdownSeconds int
	ReadyCountdownSeconds int
}

// ClassicRules is the self-running preset: 5 rounds per mini-game, the match
// starts on its own once two players are in the lobby.
func ClassicRules() Rules {
	return Rules{
		RoundCap:              5,
		MinPlayers:            2,
		AutoAdvance:           true,
		QuestionTime:          15 * time.Second,
		RoundDelay:            2 * time.Second,
		LeaderboardDwell:      8 * time.Second,
		LobbyCountdownSeconds: 5,
		ReadyCountdownSeconds: 10,
	}
}

// HostedRules is the operator-gated preset: 10 rounds per mini-game, lobby
// and leaderboard transitions wait for admin commands.
func HostedRules() Rules {
	return Rules{
		RoundCap:              10,
		MinPlayers:            2,
		AutoAdvance:           false,
		QuestionTime:          15 * time.Second,
		RoundDelay:            2 * time.Second,
		LeaderboardDwell:      8 * time.Second,
		LobbyCountdownSeconds: 5,
		ReadyCountdownSeconds: 10,
	}
}
