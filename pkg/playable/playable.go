package playable

import (
	"fmt"
	"time"

	"klaverjas-server/pkg/deck"

	"github.com/google/uuid"
)

// LogMessage is the format the session sends game narration in
// If PlayerIDs is empty, it's a general statement, otherwise the message reads like "{player} did X, Y, Z"
type LogMessage struct {
	UUID      string       `json:"uuid"`
	PlayerIDs []int64      `json:"playerIds"`
	Cards     []*deck.Card `json:"cards"`
	Message   string       `json:"message"`
	Time      time.Time    `json:"time"`
}

// Response is a message sent to the client
// Key names the action the message answers, Context is copied from the request
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// Ack returns a success response keyed by the action
func Ack(key, ctx string) *Response {
	return &Response{
		Key:     key,
		Value:   "OK",
		Context: ctx,
	}
}

// ErrorResponse returns the response for a failed command
func ErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

// PayloadIn is the format we expect from the client
type PayloadIn struct {
	Action         string         `json:"action"`
	Subject        string         `json:"subject"`
	Cards          []*deck.Card   `json:"cards"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
// JSON numbers decode as float64, ints are accepted for payloads built in Go
func (a AdditionalData) GetInt(key string) (int, bool) {
	switch val := a[key].(type) {
	case float64:
		return int(val), true
	case int:
		return val, true
	case int64:
		return int(val), true
	}

	return 0, false
}

// GetInt64 returns an id for the given key
// JSON numbers decode as float64, ints are accepted for payloads built in Go
func (a AdditionalData) GetInt64(key string) (int64, bool) {
	switch val := a[key].(type) {
	case float64:
		return int64(val), true
	case int64:
		return val, true
	case int:
		return int64(val), true
	}

	return 0, false
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	boolVal, ok := a[key].(bool)
	if !ok {
		return false, false
	}

	return boolVal, true
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerID int64, format string, a ...interface{}) *LogMessage {
	var playerIDs []int64
	if playerID > 0 {
		playerIDs = []int64{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// CardLogMessage returns a LogMessage about cards a player played
func CardLogMessage(playerID int64, cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(playerID, format, a...)
	lm.Cards = cards
	return lm
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(playerID int64, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(playerID, format, a...)}
}
