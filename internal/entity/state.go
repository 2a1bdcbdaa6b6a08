package entity

type GameName string

const (
	GameLobby       GameName = "lobby"
	Game1           GameName = "game1"
	Game2           GameName = "game2"
	Game3           GameName = "game3"
	GameLeaderboard GameName = "leaderboard"
	GameWinner      GameName = "winner"
)

type ScoreEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type AdminStats struct {
	TotalPlayers      int          `json:"totalPlayers"`
	AlivePlayers      int          `json:"alivePlayers"`
	EliminatedPlayers int          `json:"eliminatedPlayers"`
	Game1Scores       []ScoreEntry `json:"game1Scores"`
	Game2Scores       []ScoreEntry `json:"game2Scores"`
	Game3Scores       []ScoreEntry `json:"game3Scores"`
}

// Teams holds references into the roster, not copies: a player in a team
// slice is the same record as in Players.
type Teams struct {
	Red  []*Player `json:"red"`
	Blue []*Player `json:"blue"`
}

type TugOfWar struct {
	Position        int    `json:"position"`
	LastRoundWinner string `json:"lastRoundWinner,omitempty"`
}

// GameState is the single authoritative match snapshot. Teams and TugOfWar
// are present iff the current mini-game is game2; CurrentQuestion is present
// iff a round is active; Round is -1 while no round has started.
type GameState struct {
	GameName        GameName   `json:"gameName"`
	Players         []*Player  `json:"players"`
	CurrentQuestion *Question  `json:"currentQuestion,omitempty"`
	Round           int        `json:"round"`
	Teams           *Teams     `json:"teams,omitempty"`
	TugOfWar        *TugOfWar  `json:"tugOfWar,omitempty"`
	Winner          *Player    `json:"winner,omitempty"`
	Countdown       *int       `json:"countdown,omitempty"`
	AdminStats      AdminStats `json:"adminStats"`
}

func NewGameState() *GameState {
	return &GameState{
		GameName: GameLobby,
		Players:  []*Player{},
		Round:    -1,
		AdminStats: AdminStats{
			Game1Scores: []ScoreEntry{},
			Game2Scores: []ScoreEntry{},
			Game3Scores: []ScoreEntry{},
		},
	}
}

func (that *GameState) FindPlayer(id string) *Player {
	for _, player := range that.Players {
		if player.ID == id {
			return player
		}
	}
	return nil
}

// NonAdmins returns the roster without administrative viewers, in
// insertion order.
func (that *GameState) NonAdmins() []*Player {
	players := make([]*Player, 0, len(that.Players))
	for _, player := range that.Players {
		if !player.IsAdmin {
			players = append(players, player)
		}
	}
	return players
}

// ActivePlayers returns the alive, non-administrative participants, the
// quorum that round completion and elimination arithmetic run over.
func (that *GameState) ActivePlayers() []*Player {
	players := make([]*Player, 0, len(that.Players))
	for _, player := range that.Players {
		if player.IsAlive() && !player.IsAdmin {
			players = append(players, player)
		}
	}
	return players
}

// InProgress reports whether a match is running: any state between lobby
// and winner, the leaderboard checkpoint included.
func (that *GameState) InProgress() bool {
	return that.GameName != GameLobby && that.GameName != GameWinner
}

// Clone returns a deep copy of the snapshot. Team and winner references
// are remapped so they point into the cloned roster.
func (that *GameState) Clone() *GameState {
	clone := *that

	remap := make(map[*Player]*Player, len(that.Players))
	clone.Players = make([]*Player, len(that.Players))
	for i, player := range that.Players {
		copied := *player
		clone.Players[i] = &copied
		remap[player] = &copied
	}

	if that.CurrentQuestion != nil {
		question := *that.CurrentQuestion
		question.Options = append([]string(nil), that.CurrentQuestion.Options...)
		clone.CurrentQuestion = &question
	}

	if that.Teams != nil {
		teams := &Teams{
			Red:  make([]*Player, len(that.Teams.Red)),
			Blue: make([]*Player, len(that.Teams.Blue)),
		}
		for i, player := range that.Teams.Red {
			teams.Red[i] = remap[player]
		}
		for i, player := range that.Teams.Blue {
			teams.Blue[i] = remap[player]
		}
		clone.Teams = teams
	}

	if that.TugOfWar != nil {
		tug := *that.TugOfWar
		clone.TugOfWar = &tug
	}

	if that.Winner != nil {
		if mapped, ok := remap[that.Winner]; ok {
			clone.Winner = mapped
		} else {
			winner := *that.Winner
			clone.Winner = &winner
		}
	}

	if that.Countdown != nil {
		countdown := *that.Countdown
		clone.Countdown = &countdown
	}

	clone.AdminStats.Game1Scores = append([]ScoreEntry(nil), that.AdminStats.Game1Scores...)
	clone.AdminStats.Game2Scores = append([]ScoreEntry(nil), that.AdminStats.Game2Scores...)
	clone.AdminStats.Game3Scores = append([]ScoreEntry(nil), that.AdminStats.Game3Scores...)

	return &clone
}
