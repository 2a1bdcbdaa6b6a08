package websocket

import "encoding/json"

// Inbound actions. Admin actions are trust-by-convention: any client may
// send them, there is no authorization layer.
const (
	ActionJoin          = "join"
	ActionSubmitAnswer  = "submitAnswer"
	ActionStartGame     = "admin:startGame"
	ActionStartNextGame = "admin:startNextGame"
	ActionResetGame     = "admin:resetGame"
)

// Message is the wire envelope in both directions: outbound events reuse
// the action field for the event name.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type JoinPayload struct {
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}

type AnswerPayload struct {
	Answer string `json:"answer"`
}

func encodeMessage(event string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: event, Payload: raw})
}
