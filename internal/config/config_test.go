package config

import (
	"testing"

	"klaverjas-server/internal/util"
	"klaverjas-server/pkg/playable/klaverjas"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("KJS_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("KJS_GAME_WIN_THRESHOLD", "800")
	defer clear2()

	a := assert.New(t)
	cfg := Instance()
	a.Equal("postgres://klaverjas@db:5432/klaverjas?sslmode=disable", cfg.PGDSN)
	a.Equal("./sql", cfg.MigrationsPath, "defaults fill what the file leaves out")
	a.Equal(logrus.DebugLevel, cfg.LogLevel())
	a.True(cfg.Log.DisableAccessLogs)
	a.True(cfg.Archive.Enabled)
	a.True(cfg.Bots.RandomNames)
	a.Equal([]string{"https://klaverjas.example.com"}, cfg.Websocket.AllowedOrigins)
	a.Equal(800, cfg.Game.WinThreshold, "the environment wins over the file")
	a.Equal(5, cfg.Game.FirstDealCount)

	opts, err := cfg.GameOptions()
	a.NoError(err)
	a.Equal(800, opts.WinThreshold)
	a.Equal(klaverjas.TrumpPolicyMustOvertrump, opts.Rules.TrumpPolicy)
	a.Equal(klaverjas.FairLeader, opts.LeaderSeat)
	a.Equal(10, opts.Rules.Points.LastTrickBonus)

	// ensure that it's only loaded once
	clear3 := util.SetEnv("KJS_GAME_WIN_THRESHOLD", "900")
	defer clear3()
	// ensure we aren't using a pointer
	cfg.Game.WinThreshold = 1
	cfg = Instance()
	a.Equal(800, cfg.Game.WinThreshold)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("KJS_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, DefaultConfig().PGDSN, cfg.PGDSN)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel())
	assert.False(t, cfg.Archive.Enabled)

	opts, err := cfg.GameOptions()
	assert.NoError(t, err)
	assert.Equal(t, klaverjas.DefaultOptions(), opts)
}

func TestConfig_GameOptions(t *testing.T) {
	a := assert.New(t)

	cfg := DefaultConfig()
	cfg.Game.TrumpPolicy = "sometimes"
	_, err := cfg.GameOptions()
	a.EqualError(err, `unknown trump policy: "sometimes"`)

	cfg = DefaultConfig()
	cfg.Game.LeaderSeat = -2
	_, err = cfg.GameOptions()
	a.EqualError(err, "leader seat must be -1 or a seat index from 0 to 3: -2")

	// seats past the table do not wrap around
	cfg.Game.LeaderSeat = 4
	_, err = cfg.GameOptions()
	a.ErrorIs(err, klaverjas.ErrInvalidLeaderSeat)

	cfg.Game.LeaderSeat = 3
	opts, err := cfg.GameOptions()
	a.NoError(err)
	a.Equal(3, opts.LeaderSeat)

	cfg = DefaultConfig()
	cfg.Game.FirstDealCount = 9
	_, err = cfg.GameOptions()
	a.Error(err)

	cfg = DefaultConfig()
	cfg.Game.LastTrickBonus = -10
	_, err = cfg.GameOptions()
	a.Equal(klaverjas.ErrNegativePoints, err)

	cfg = DefaultConfig()
	cfg.Log.Level = "loud"
	a.Equal(logrus.InfoLevel, cfg.LogLevel())
}
