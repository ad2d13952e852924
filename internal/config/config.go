package config

import (
	"errors"
	"fmt"
	"os"

	"klaverjas-server/internal/util"
	"klaverjas-server/pkg/playable/klaverjas"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the klaverjas server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Archive struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"archive"`
	Websocket struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"websocket"`
	Game struct {
		WinThreshold   int    `yaml:"winThreshold" envconfig:"win_threshold"`
		FirstDealCount int    `yaml:"firstDealCount" envconfig:"first_deal_count"`
		TrumpPolicy    string `yaml:"trumpPolicy" envconfig:"trump_policy"`
		LeaderSeat     int    `yaml:"leaderSeat" envconfig:"leader_seat"`
		LastTrickBonus int    `yaml:"lastTrickBonus" envconfig:"last_trick_bonus"`
	} `yaml:"game"`
	Bots struct {
		RandomNames bool `yaml:"randomNames" envconfig:"random_names"`
	} `yaml:"bots"`
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides it
func DefaultConfig() Config {
	defaults := klaverjas.DefaultOptions()

	var c Config
	c.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	c.MigrationsPath = "./sql"
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Websocket.AllowedOrigins = []string{"*"}
	c.Game.WinThreshold = defaults.WinThreshold
	c.Game.FirstDealCount = defaults.Rules.FirstDealCount
	c.Game.TrumpPolicy = string(defaults.Rules.TrumpPolicy)
	c.Game.LeaderSeat = defaults.LeaderSeat
	c.Game.LastTrickBonus = defaults.Rules.Points.LastTrickBonus

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults and the environment are used instead
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("KJS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("kjs", &c); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}

// LogLevel returns the logrus level, info if the configured level is unknown
func (c Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}

// GameOptions builds the options for a new match
func (c Config) GameOptions() (klaverjas.Options, error) {
	opts := klaverjas.DefaultOptions()

	if c.Game.WinThreshold > 0 {
		opts.WinThreshold = c.Game.WinThreshold
	}

	if c.Game.FirstDealCount > 0 {
		opts.Rules.FirstDealCount = c.Game.FirstDealCount
	}

	if c.Game.TrumpPolicy != "" {
		policy, err := klaverjas.ParseTrumpPolicy(c.Game.TrumpPolicy)
		if err != nil {
			return opts, err
		}

		opts.Rules.TrumpPolicy = policy
	}

	opts.LeaderSeat = c.Game.LeaderSeat

	if c.Game.LastTrickBonus < 0 {
		return opts, klaverjas.ErrNegativePoints
	}

	opts.Rules.Points.LastTrickBonus = c.Game.LastTrickBonus

	if err := opts.Validate(); err != nil {
		return opts, err
	}

	return opts, nil
}
