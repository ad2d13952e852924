package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_scrub(t *testing.T) {
	obj := map[string]interface{}{
		"gameId": "5b0ec8a4-1b4e-4f0b-8a4a-7d3a9c1e2f10",
		"round":  2,
		"players": []interface{}{
			map[string]interface{}{"name": "Bob", "seed": 42},
		},
		"playedAt": nil,
	}

	clean, err := scrub(obj)
	assert.NoError(t, err)

	m := clean.(map[string]interface{})
	assert.Equal(t, scrubbed, m["gameId"])
	assert.Equal(t, float64(2), m["round"])
	assert.Nil(t, m["playedAt"])

	player := m["players"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, scrubbed, player["seed"])
	assert.Equal(t, "Bob", player["name"])
}
