package record

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"klaverjas-server/pkg/db"
	"klaverjas-server/pkg/playable/klaverjas"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var cbg = context.Background()

func testMatch() *Match {
	return &Match{
		GameID: uuid.New().String(),
		Teams:  []string{"Team Suriname", "Team Nederland"},
		Scores: map[string]int{"Team Suriname": 1512, "Team Nederland": 1204},
		Players: []*klaverjas.RosterEntry{
			{Index: 0, Name: "John Doe", ID: 1, Team: "Team Suriname", IsHuman: true},
			{Index: 1, Name: "Tupac Shakur", ID: 3, Team: "Team Nederland"},
		},
		WinningTeam: "Team Suriname",
		Rounds:      10,
	}
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = NopRecorder{}
	assert.NoError(t, r.RecordMatch(cbg, testMatch()))
}

func TestMemoryRecorder(t *testing.T) {
	a := assert.New(t)

	r := &MemoryRecorder{}
	a.Empty(r.Matches())

	before := time.Now()
	m := testMatch()
	a.NoError(r.RecordMatch(cbg, m))

	matches := r.Matches()
	a.Equal(1, len(matches))
	a.Equal(m, matches[0])
	a.NotEmpty(m.UUID)
	a.False(matches[0].PlayedAt.Before(before))

	m2 := testMatch()
	a.NoError(r.RecordMatch(cbg, m2))

	recent, err := r.RecentMatches(cbg, 0, 10)
	a.NoError(err)
	a.Equal([]*Match{m2, m}, recent)

	recent, _ = r.RecentMatches(cbg, 1, 10)
	a.Equal([]*Match{m}, recent)

	recent, _ = r.RecentMatches(cbg, 5, 10)
	a.Empty(recent)

	found, err := r.MatchByUUID(cbg, m2.UUID)
	a.NoError(err)
	a.Equal(m2, found)

	_, err = r.MatchByUUID(cbg, uuid.New().String())
	a.Equal(sql.ErrNoRows, err)
}

func postgresRecorder(t *testing.T) *PostgresRecorder {
	t.Helper()

	dsn := os.Getenv("KJS_PG_DSN")
	if dsn == "" {
		t.Skip("KJS_PG_DSN is not set")
	}

	dbh, err := db.Open(dsn)
	if err != nil {
		t.Fatal(err)
	}

	if err := db.MigrateFrom(dbh, "../../sql"); err != nil {
		t.Fatal(err)
	}

	return NewPostgresRecorder(dbh)
}

func TestPostgresRecorder_RecordMatch(t *testing.T) {
	r := postgresRecorder(t)
	a := assert.New(t)

	a.Equal(ErrInvalidMatch, r.RecordMatch(cbg, &Match{}))

	m := testMatch()
	a.NoError(r.RecordMatch(cbg, m))
	a.NotEmpty(m.UUID)
	a.False(m.PlayedAt.IsZero())

	m2, err := r.MatchByUUID(cbg, m.UUID)
	a.NoError(err)
	a.Equal(m.GameID, m2.GameID)
	a.Equal(m.Scores, m2.Scores)
	a.Equal(m.Teams, m2.Teams)
	a.Equal(m.Players, m2.Players)
	a.Equal("Team Suriname", m2.WinningTeam)
	a.Equal(10, m2.Rounds)

	recent, err := r.RecentMatches(cbg, 0, 1)
	a.NoError(err)
	a.Equal(1, len(recent))

	_, err = r.MatchByUUID(cbg, uuid.New().String())
	a.Equal(sql.ErrNoRows, err)
}
