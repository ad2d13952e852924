package room

import (
	"klaverjas-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages adds log messages, keeping the latest logMessageLimit
// Note: this must only be called from within the run loop
func (s *Session) addLogMessages(messages []*playable.LogMessage) {
	m := append(s.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	s.logMessages = m
}

// log records the messages and pushes them to the client
func (s *Session) log(ctx string, messages ...*playable.LogMessage) {
	s.addLogMessages(messages)
	s.send(&playable.Response{
		Key:     "log",
		Data:    messages,
		Context: ctx,
	})
}
