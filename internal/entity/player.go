package entity

const (
	StatusAlive = "alive"
	StatusOut   = "out"

	TeamRed  = "red"
	TeamBlue = "blue"
)

type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	HP       int    `json:"hp"`
	Score    int    `json:"score"`
	Team     string `json:"team,omitempty"`
	Status   string `json:"status"`
	Answered bool   `json:"answered"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`

	// AnsweredCorrectly is round-local bookkeeping for the tug-of-war
	// tally; it never leaves the process.
	AnsweredCorrectly bool `json:"-"`
}

func (that *Player) IsAlive() bool {
	return that.Status == StatusAlive
}

// Eliminate marks the player out. An eliminated player never regains
// health or alive status within the same match; only a full reset does.
func (that *Player) Eliminate() {
	that.Status = StatusOut
}
