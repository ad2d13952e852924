package mux

import (
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"
)

func (m *Mux) getMatches() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		matches, err := m.archive.RecentMatches(r.Context(), start, rows)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, matches)
	}
}

func (m *Mux) getMatchUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.ToLower(gmux.Vars(r)["uuid"])
		match, err := m.archive.MatchByUUID(r.Context(), id)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, match)
	}
}
