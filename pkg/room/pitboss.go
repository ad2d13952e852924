package room

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// PitBoss is responsible for handing every connection its own session
type PitBoss struct {
	options  Options
	sessions map[*Client]*Session
	lock     sync.RWMutex
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(opts Options) *PitBoss {
	return &PitBoss{
		options:  opts,
		sessions: make(map[*Client]*Session),
	}
}

// ClientConnected is called when a client connects to the server
// The session is running when this returns
func (p *PitBoss) ClientConnected(client *Client) *Session {
	s := NewSession(client, p.options)
	s.StartShift()

	p.lock.Lock()
	p.sessions[client] = s
	p.lock.Unlock()

	s.logger.Debug("client connected")
	return s
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.lock.Lock()
	s, found := p.sessions[client]
	delete(p.sessions, client)
	p.lock.Unlock()

	if !found {
		logrus.WithField("client", client.String()).WithField("type", "exception").Error("session not found")
		return
	}

	logger := s.logger
	if client.CloseError != nil {
		logger = logger.WithError(client.CloseError)
	}

	logger.Debug("client disconnected")
	s.EndShift()
}

// Sessions returns the number of running sessions
func (p *PitBoss) Sessions() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.sessions)
}
