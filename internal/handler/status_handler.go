/*
Package handler provides the HTTP handlers of the read-only status API.

This file contains the handlers that report the session state and the roster snapshot
published by the event loop.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"roombot/internal/pkg/errs"
	"roombot/internal/pkg/resp"
)

// SessionView is the response body of GET /api/session.
type SessionView struct {
	State      string `json:"state"`
	SessionID  string `json:"sessionId,omitempty"`
	RoomID     string `json:"roomId"`
	RosterSize int    `json:"rosterSize"`
}

// HandleGetSession reports the state of the current connect attempt.
func HandleGetSession(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := deps.Board.Info()

		resp.RespondSuccess(w, r, SessionView{
			State:      string(info.State),
			SessionID:  info.SessionID,
			RoomID:     info.RoomID,
			RosterSize: len(deps.Board.Users()),
		})
	}
}

// HandleListRoster returns the roster snapshot in roster order.
func HandleListRoster(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, deps.Board.Users())
	}
}

// HandleGetRosterUser returns one participant by id.
func HandleGetRosterUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		u, ok := deps.Board.User(id)
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrNotFound, "user "+id))
			return
		}

		resp.RespondSuccess(w, r, u)
	}
}
