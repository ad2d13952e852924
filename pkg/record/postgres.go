package record

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"klaverjas-server/pkg/db"

	"github.com/google/uuid"
)

// ErrInvalidMatch is returned when a match has no game or no winner
var ErrInvalidMatch = errors.New("match must have a game ID and a winning team")

// PostgresRecorder stores matches in the `matches` table
type PostgresRecorder struct {
	db *sql.DB
}

// NewPostgresRecorder returns a recorder backed by dbh
func NewPostgresRecorder(dbh *sql.DB) *PostgresRecorder {
	return &PostgresRecorder{db: dbh}
}

const matchesColumns = `uuid, game_id, teams, scores, players, winning_team, rounds, played_at`

// RecordMatch inserts the match
// A missing UUID is generated, PlayedAt is set by the database
func (p *PostgresRecorder) RecordMatch(ctx context.Context, m *Match) error {
	if m.GameID == "" || m.WinningTeam == "" {
		return ErrInvalidMatch
	}

	if m.UUID == "" {
		m.UUID = uuid.New().String()
	}

	teams, err := json.Marshal(m.Teams)
	if err != nil {
		return err
	}

	scores, err := json.Marshal(m.Scores)
	if err != nil {
		return err
	}

	players, err := json.Marshal(m.Players)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO matches (uuid, game_id, teams, scores, players, winning_team, rounds)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING played_at`

	row := p.db.QueryRowContext(ctx, query, m.UUID, m.GameID, teams, scores, players, m.WinningTeam, m.Rounds)
	return row.Scan(&m.PlayedAt)
}

// MatchByUUID returns a recorded match
func (p *PostgresRecorder) MatchByUUID(ctx context.Context, id string) (*Match, error) {
	const query = `
SELECT ` + matchesColumns + `
FROM matches
WHERE uuid = $1`

	return matchByRow(p.db.QueryRowContext(ctx, query, id))
}

// RecentMatches returns up to limit matches, newest first
func (p *PostgresRecorder) RecentMatches(ctx context.Context, offset int64, limit int) ([]*Match, error) {
	const query = `
SELECT ` + matchesColumns + `
FROM matches
ORDER BY played_at DESC, id DESC
OFFSET $1
LIMIT $2`

	rows, err := p.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*Match, 0, limit)
	for rows.Next() {
		m, err := matchByRow(rows)
		if err != nil {
			return nil, err
		}

		matches = append(matches, m)
	}

	return matches, rows.Err()
}

func matchByRow(row db.Scanner) (*Match, error) {
	var m Match
	var teams, scores, players []byte
	if err := row.Scan(&m.UUID, &m.GameID, &teams, &scores, &players, &m.WinningTeam, &m.Rounds, &m.PlayedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(teams, &m.Teams); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(scores, &m.Scores); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(players, &m.Players); err != nil {
		return nil, err
	}

	return &m, nil
}
