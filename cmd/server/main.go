package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"klaverjas-server/internal/config"
	"klaverjas-server/internal/mux"
	"klaverjas-server/pkg/db"
	"klaverjas-server/pkg/record"
	"klaverjas-server/pkg/room"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	// fail fast
	gameOptions, err := config.Instance().GameOptions()
	if err != nil {
		logrus.WithError(err).Fatal("invalid game configuration")
	}

	sessionOptions := room.Options{
		Game:           gameOptions,
		RandomBotNames: config.Instance().Bots.RandomNames,
		Logger:         logrus.StandardLogger(),
	}

	var archive record.Archive
	if config.Instance().Archive.Enabled {
		// run the db migrations
		if err := db.Migrate(); err != nil {
			logrus.WithError(err).Fatal("could not run migrations")
		}

		recorder := record.NewPostgresRecorder(db.Instance())
		sessionOptions.Recorder = recorder
		archive = recorder
	}

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet},
	})

	m := mux.NewMux(Version, mux.Options{
		Session:        sessionOptions,
		Archive:        archive,
		AllowedOrigins: config.Instance().Websocket.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(m)),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).WithField("version", Version).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
