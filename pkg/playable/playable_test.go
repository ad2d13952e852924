package playable

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"klaverjas-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage(0, "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Nil(t, lm.PlayerIDs)
	assert.False(t, lm.Time.Before(before))
	assert.False(t, time.Now().Before(lm.Time))
	assert.Nil(t, lm.Cards)
	assert.NotEmpty(t, lm.UUID)
}

func TestSimpleLogMessage_withPlayerID(t *testing.T) {
	lm := SimpleLogMessage(1, "test %d", 4)
	assert.Equal(t, "test 4", lm.Message)
	assert.Equal(t, []int64{1}, lm.PlayerIDs)
}

func TestSimpleLogMessageSlice(t *testing.T) {
	lms := SimpleLogMessageSlice(0, "test %d", 38)
	assert.Equal(t, 1, len(lms))
	assert.Equal(t, "test 38", lms[0].Message)
}

func TestCardLogMessage(t *testing.T) {
	cards := deck.CardsFromString("14s")
	lm := CardLogMessage(3, cards, "%s played", "Bob")
	assert.Equal(t, "Bob played", lm.Message)
	assert.Equal(t, cards, lm.Cards)
	assert.Equal(t, []int64{3}, lm.PlayerIDs)
}

func TestResponses(t *testing.T) {
	a := assert.New(t)

	a.Equal(&Response{Key: "status", Value: "OK", Context: "abc"}, OK("abc"))
	a.Equal(&Response{Key: "status", Value: "OK"}, OK())
	a.Equal(&Response{Key: "nextRound", Value: "OK", Context: "1"}, Ack("nextRound", "1"))
	a.Equal(&Response{Key: "error", Value: "boom", Context: "2"}, ErrorResponse("2", errors.New("boom")))
}

func TestPayloadIn_JSON(t *testing.T) {
	a := assert.New(t)

	var msg PayloadIn
	err := json.Unmarshal([]byte(`{
		"action": "makeMove",
		"cards": [{"rank": 11, "suit": "clubs"}],
		"additionalData": {"playerId": 1, "playerName": "John Doe", "fast": true},
		"context": "c1"
	}`), &msg)
	a.NoError(err)
	a.Equal("makeMove", msg.Action)
	a.Equal("c1", msg.Context)
	a.Equal("11c", deck.CardsToString(msg.Cards))

	id, ok := msg.AdditionalData.GetInt64("playerId")
	a.True(ok)
	a.Equal(int64(1), id)

	i, ok := msg.AdditionalData.GetInt("playerId")
	a.True(ok)
	a.Equal(1, i)

	name, ok := msg.AdditionalData.GetString("playerName")
	a.True(ok)
	a.Equal("John Doe", name)

	fast, ok := msg.AdditionalData.GetBool("fast")
	a.True(ok)
	a.True(fast)

	_, ok = msg.AdditionalData.GetInt64("playerName")
	a.False(ok)

	_, ok = msg.AdditionalData.GetString("missing")
	a.False(ok)

	_, ok = AdditionalData{"id": 5}.GetInt64("id")
	a.True(ok)

	i, ok = AdditionalData{"step": 3}.GetInt("step")
	a.True(ok)
	a.Equal(3, i)

	i, ok = AdditionalData{"step": int64(2)}.GetInt("step")
	a.True(ok)
	a.Equal(2, i)

	_, ok = AdditionalData{"step": "2"}.GetInt("step")
	a.False(ok)
}
