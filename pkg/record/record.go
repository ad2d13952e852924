// Package record archives decided matches
package record

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"klaverjas-server/pkg/playable/klaverjas"

	"github.com/google/uuid"
)

// Match is a decided match
type Match struct {
	UUID        string                   `json:"uuid"`
	GameID      string                   `json:"gameId"`
	Teams       []string                 `json:"teams"`
	Scores      map[string]int           `json:"scores"`
	Players     []*klaverjas.RosterEntry `json:"players"`
	WinningTeam string                   `json:"winningTeam"`
	Rounds      int                      `json:"rounds"`
	PlayedAt    time.Time                `json:"playedAt"`
}

// Recorder stores decided matches
type Recorder interface {
	RecordMatch(ctx context.Context, m *Match) error
}

// Archive reads recorded matches
type Archive interface {
	// RecentMatches returns up to limit matches, newest first, skipping the first offset
	RecentMatches(ctx context.Context, offset int64, limit int) ([]*Match, error)

	// MatchByUUID returns sql.ErrNoRows if the match does not exist
	MatchByUUID(ctx context.Context, id string) (*Match, error)
}

// NopRecorder drops every match, used when the archive is disabled
type NopRecorder struct{}

// RecordMatch does nothing
func (NopRecorder) RecordMatch(context.Context, *Match) error {
	return nil
}

// MemoryRecorder keeps matches in memory
type MemoryRecorder struct {
	mu      sync.Mutex
	matches []*Match
}

// RecordMatch appends the match
func (m *MemoryRecorder) RecordMatch(_ context.Context, match *Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if match.UUID == "" {
		match.UUID = uuid.New().String()
	}

	if match.PlayedAt.IsZero() {
		match.PlayedAt = time.Now()
	}

	m.matches = append(m.matches, match)
	return nil
}

// Matches returns the recorded matches, oldest first
func (m *MemoryRecorder) Matches() []*Match {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]*Match{}, m.matches...)
}

// RecentMatches returns up to limit matches, newest first
func (m *MemoryRecorder) RecentMatches(_ context.Context, offset int64, limit int) ([]*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matches := make([]*Match, 0, limit)
	for i := len(m.matches) - 1 - int(offset); i >= 0 && len(matches) < limit; i-- {
		matches = append(matches, m.matches[i])
	}

	return matches, nil
}

// MatchByUUID returns the match with the UUID
func (m *MemoryRecorder) MatchByUUID(_ context.Context, id string) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, match := range m.matches {
		if match.UUID == id {
			return match, nil
		}
	}

	return nil, sql.ErrNoRows
}

var (
	_ Recorder = NopRecorder{}
	_ Recorder = (*MemoryRecorder)(nil)
	_ Archive  = (*MemoryRecorder)(nil)
	_ Recorder = (*PostgresRecorder)(nil)
	_ Archive  = (*PostgresRecorder)(nil)
)
