package testutil

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	id "crewdock/pkg/domain"
	"crewdock/pkg/requestcontext"
)

// DiscardLogger returns a logger that drops everything; keeps test output
// readable while satisfying constructors that require a logger.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithActor injects an authenticated user into the request context, the way
// the auth middleware would for a valid bearer token.
func WithActor(req *http.Request, userID id.UserID, role id.Role) *http.Request {
	ctx := requestcontext.WithUserID(req.Context(), userID)
	ctx = requestcontext.WithRole(ctx, role)
	return req.WithContext(ctx)
}

// WithFrozenTime pins the request time so lifecycle timestamps are
// deterministic in tests.
func WithFrozenTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
