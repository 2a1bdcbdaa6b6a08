package entity

type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// IsCorrect compares a submitted answer to the correct option. The match
// is exact: case- and whitespace-sensitive, as received.
func (that *Question) IsCorrect(answer string) bool {
	return answer == that.Answer
}
