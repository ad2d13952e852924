package room

import (
	"io"
	"strings"
	"testing"

	"klaverjas-server/internal/rng"
	"klaverjas-server/pkg/deck"
	"klaverjas-server/pkg/playable"
	"klaverjas-server/pkg/playable/klaverjas"
	"klaverjas-server/pkg/record"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testOptions() Options {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return Options{
		Game:     klaverjas.DefaultOptions(),
		Recorder: &record.MemoryRecorder{},
		Logger:   logger,
		Rng:      rng.NewSeeded(1),
	}
}

func newTestSession(opts Options) *Session {
	return NewSession(NewClient(nil), opts)
}

// do runs the command in the calling goroutine and returns every response except log messages
func do(s *Session, msg *playable.PayloadIn) []*playable.Response {
	s.handle(msg)
	return withoutLogs(drain(s.client))
}

func action(name string, data ...playable.AdditionalData) *playable.PayloadIn {
	msg := &playable.PayloadIn{Action: name, Context: name + "-ctx"}
	if len(data) > 0 {
		msg.AdditionalData = data[0]
	}

	return msg
}

func moveOf(card *deck.Card, data ...playable.AdditionalData) *playable.PayloadIn {
	msg := action("makeMove", data...)
	msg.Cards = []*deck.Card{card}
	return msg
}

func drain(c *Client) []*playable.Response {
	var out []*playable.Response
	for {
		select {
		case msg := <-c.send:
			out = append(out, msg.(*playable.Response))
		default:
			return out
		}
	}
}

func withoutLogs(responses []*playable.Response) []*playable.Response {
	out := make([]*playable.Response, 0, len(responses))
	for _, res := range responses {
		if res.Key != "log" {
			out = append(out, res)
		}
	}

	return out
}

func keys(responses []*playable.Response) []string {
	k := make([]string, len(responses))
	for i, res := range responses {
		k[i] = res.Key
	}

	return k
}

func assertError(t *testing.T, responses []*playable.Response, err error) bool {
	t.Helper()

	if !assert.Equal(t, 1, len(responses)) {
		return false
	}

	// wrapped errors carry more detail after the sentinel's message
	return assert.Equal(t, "error", responses[0].Key) && assert.True(t, strings.HasPrefix(responses[0].Value, err.Error()), "%q does not start with %q", responses[0].Value, err.Error())
}

// startAndDeal seats the players and deals a full round with hearts as trump
func startAndDeal(t *testing.T, s *Session) {
	t.Helper()

	res := do(s, action("startGame"))
	assert.Equal(t, []string{"startGame"}, keys(res))

	res = do(s, action("dealFirstCards"))
	assert.Equal(t, []string{"firstCards"}, keys(res))

	msg := action("chooseTrump")
	msg.Subject = "hearts"
	res = do(s, msg)
	assert.Equal(t, []string{"allCards"}, keys(res))
}
