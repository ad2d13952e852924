package mux

import (
	"net/http"

	"klaverjas-server/pkg/record"
	"klaverjas-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

// Options configure the HTTP mux
type Options struct {
	// Session is handed to every websocket session
	Session room.Options

	// Archive serves /matches, the routes are not registered when nil
	Archive record.Archive

	// AllowedOrigins lists the origins allowed to open a websocket, "*" allows any
	AllowedOrigins []string
}

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version        string
	pitBoss        *room.PitBoss
	archive        record.Archive
	allowedOrigins []string
}

// NewMux returns a new HTTP mux
func NewMux(version string, opts Options) *Mux {
	this := &Mux{
		Router:         gmux.NewRouter(),
		version:        version,
		pitBoss:        room.NewPitBoss(opts.Session),
		archive:        opts.Archive,
		allowedOrigins: opts.AllowedOrigins,
	}

	r := this.Router
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, nil)
	})

	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	if this.archive != nil {
		r.Methods(http.MethodGet).Path("/matches").Handler(this.getMatches())
		r.Methods(http.MethodGet).Path("/matches/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Handler(this.getMatchUUID())
	}

	return this
}
