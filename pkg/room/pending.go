package room

import "klaverjas-server/pkg/playable/klaverjas"

// pendingMove is where the trick loop stopped to wait for a human player
type pendingMove struct {
	trickID  int
	step     int
	playerID int64
}

// matches returns true if the trick is still where the loop stopped
func (p *pendingMove) matches(t *klaverjas.Trick) bool {
	return t != nil && t.ID() == p.trickID && t.Step() == p.step
}
