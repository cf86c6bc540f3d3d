package formatter

import (
	"encoding/json"
	"time"

	"github.com/theoremus-urban-solutions/detour-board/board"
	"github.com/theoremus-urban-solutions/detour-board/utils"
)

// Envelope is the JSON representation of a board.
type Envelope struct {
	Status            string          `json:"status"`
	ResponseTimestamp string          `json:"responseTimestamp"`
	ValidUntil        string          `json:"validUntil,omitempty"`
	Error             string          `json:"error,omitempty"`
	Messages          []board.Message `json:"messages"`
}

// NewEnvelope wraps res. Messages is empty unless the board is ready.
func NewEnvelope(res board.Result[[]board.Message], now time.Time, validFor time.Duration) Envelope {
	env := Envelope{
		Status:            res.State().String(),
		ResponseTimestamp: utils.Iso8601(now),
		ValidUntil:        utils.ValidUntil(now, validFor),
		Messages:          []board.Message{},
	}
	if err := res.Err(); err != nil {
		env.Error = err.Error()
	}
	if msgs, ok := res.Value(); ok && msgs != nil {
		env.Messages = msgs
	}
	return env
}

// BuildJSON serializes a board to JSON
func BuildJSON(res board.Result[[]board.Message], now time.Time, validFor time.Duration) ([]byte, error) {
	return json.Marshal(NewEnvelope(res, now, validFor))
}
